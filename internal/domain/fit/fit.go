// Package fit finds the largest size at which rendered content stays within a width.
//
// The search never looks at a rendering surface directly. Callers inject a
// MeasureFunc that reports the rendered width at a given size; it must be
// monotonically non-decreasing in size for the result to be the true maximum.
package fit

// Width is the unit a MeasureFunc reports: terminal cells, pixels or millimetres.
type Width interface {
	~int | ~float64
}

// MeasureFunc reports the rendered width of some content at size.
type MeasureFunc[W Width] func(size int) W

// Bounds is an inclusive size range.
type Bounds struct {
	Min int
	Max int
}

// Clamp limits size to the bounds. Inverted bounds clamp to Min.
func (b Bounds) Clamp(size int) int {
	if size > b.Max {
		size = b.Max
	}
	if size < b.Min {
		size = b.Min
	}
	return size
}

// Fit returns the largest size in [minSize, maxSize] whose measured width does not
// exceed available. When nothing fits, minSize is returned and the overflow is
// accepted. When maxSize already fits it is returned after a single measurement.
//
// minSize > maxSize is a caller error; the result is minSize.
func Fit[W Width](maxSize, minSize int, measure func(size int) W, available W) int {
	if maxSize <= minSize {
		return minSize
	}
	if measure(maxSize) <= available {
		return maxSize
	}

	lo, hi, best := minSize, maxSize, minSize
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if measure(mid) <= available {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best
}

// Within is Fit over b.
func Within[W Width](b Bounds, measure func(size int) W, available W) int {
	return Fit(b.Max, b.Min, measure, available)
}
