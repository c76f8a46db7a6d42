// Package config handles configuration loading and saving.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/tesso57/numpick/internal/application/settings"
	"gopkg.in/yaml.v3"
)

// Store manages persisted application settings.
type Store struct {
	Settings   settings.Settings
	configPath string
}

// DefaultPath returns ~/.config/numpick/config.yaml, honouring XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "numpick", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve home directory")
	}
	return filepath.Join(home, ".config", "numpick", "config.yaml"), nil
}

// Load loads the configuration from the specified path or default location.
// A missing file is created with the defaults.
func Load(customPath ...string) (*Store, error) {
	var configPath string
	if len(customPath) > 0 && customPath[0] != "" {
		configPath = customPath[0]
	} else {
		path, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		configPath = path
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, errors.Wrap(err, "create config directory")
	}

	cfg := settings.Settings{}
	store := &Store{configPath: configPath}

	var options []kong.Option
	if _, err := os.Stat(configPath); err == nil {
		options = append(options, kong.Configuration(yamlKongLoader, configPath))
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, errors.Wrap(err, "build config parser")
	}
	if _, err := parser.Parse([]string{}); err != nil {
		return nil, errors.Wrapf(err, "read config %s", configPath)
	}

	store.Settings = normalize(cfg)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := store.Save(); err != nil {
			return nil, errors.Wrap(err, "save default config")
		}
	}

	return store, nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.configPath
}

// Save writes the current settings to the config file.
func (s *Store) Save() error {
	f, err := os.Create(s.configPath)
	if err != nil {
		return errors.Wrap(err, "create config file")
	}
	defer func() { _ = f.Close() }()

	return yaml.NewEncoder(f).Encode(s.Settings)
}

func normalize(cfg settings.Settings) settings.Settings {
	if cfg.Fit.HeaderMinPadding < 0 {
		cfg.Fit.HeaderMinPadding = 0
	}
	if cfg.Fit.HeaderMaxPadding < cfg.Fit.HeaderMinPadding {
		cfg.Fit.HeaderMaxPadding = cfg.Fit.HeaderMinPadding
	}
	if cfg.Fit.TileMinWidth < 3 {
		cfg.Fit.TileMinWidth = 3
	}
	if cfg.Fit.TileMaxWidth < cfg.Fit.TileMinWidth {
		cfg.Fit.TileMaxWidth = cfg.Fit.TileMinWidth
	}
	if cfg.Card.MaxSize < cfg.Card.MinSize {
		cfg.Card.MaxSize = cfg.Card.MinSize
	}
	cfg.LogFile = expandHome(strings.TrimSpace(cfg.LogFile))
	cfg.Card.Font = expandHome(strings.TrimSpace(cfg.Card.Font))
	cfg.Card.Dir = expandHome(strings.TrimSpace(cfg.Card.Dir))
	return cfg
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		names := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}
		for _, name := range names {
			if v, ok := values[name]; ok {
				return v, nil
			}

			// Nested sections such as grid.tiles.
			parts := strings.Split(name, ".")
			if len(parts) < 2 {
				continue
			}
			curr := values
			for i, part := range parts {
				if i == len(parts)-1 {
					if v, ok := curr[part]; ok {
						return v, nil
					}
					break
				}
				next, ok := curr[part].(map[string]any)
				if !ok {
					break
				}
				curr = next
			}
		}
		return nil, nil
	}
	return f, nil
}
