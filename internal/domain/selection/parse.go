package selection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// MaxParsedValues bounds how many values a single expression may expand to.
const MaxParsedValues = 1 << 16

var (
	// ErrReversedRange is returned for a range such as "5-3".
	ErrReversedRange = errors.New("range end precedes start")
	// ErrTooManyValues is returned when an expression expands past MaxParsedValues.
	ErrTooManyValues = errors.New("selection expression covers too many values")
)

var (
	summaryLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Int", Pattern: `\d+`},
		{Name: "Ident", Pattern: `[A-Za-z]+`},
		{Name: "Punct", Pattern: `[,:-]`},
	})

	summaryParser = participle.MustBuild[summary](
		participle.Lexer(summaryLexer),
		participle.Elide("Whitespace"),
	)
)

// summary is the grammar of a compressed selection, optionally carrying the
// clipboard prefix: `Processed: 1-3, 5`.
type summary struct {
	Processed bool    `parser:"( @'Processed' ':' )?"`
	Items     []*term `parser:"( @@ ( ',' @@ )* )?"`
}

type term struct {
	Start int  `parser:"@Int"`
	End   *int `parser:"( '-' @Int )?"`
}

// Parse reads a summary such as "1-3, 5-6, 9" back into ascending distinct values.
// Overlapping or repeated terms are merged. Only non-negative values are accepted,
// so Parse(Compress(x)) returns x for ascending distinct non-negative x; a negative
// value would render as an ambiguous "-1-1".
func Parse(expr string) ([]int, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}
	ast, err := summaryParser.ParseString("", expr)
	if err != nil {
		return nil, fmt.Errorf("parse selection %q: %w", expr, err)
	}

	runs := make([]Run, 0, len(ast.Items))
	total := 0
	for _, t := range ast.Items {
		r := Run{Start: t.Start, End: t.Start}
		if t.End != nil {
			r.End = *t.End
		}
		if r.End < r.Start {
			return nil, fmt.Errorf("%w: %d-%d", ErrReversedRange, r.Start, r.End)
		}
		if r.Len() > MaxParsedValues-total {
			return nil, ErrTooManyValues
		}
		total += r.Len()
		runs = append(runs, r)
	}
	return NewSet(Expand(runs)...).Sorted(), nil
}
