package selection

import (
	"math"
	"strconv"
	"strings"
)

// Separator joins runs in a compressed summary.
const Separator = ", "

// Run is a maximal sequence of consecutive selected values, inclusive on both ends.
type Run struct {
	Start int
	End   int
}

// Len returns the number of values covered by the run, saturating at math.MaxInt.
// A reversed run covers nothing.
func (r Run) Len() int {
	if r.End < r.Start {
		return 0
	}
	d := uint(r.End) - uint(r.Start)
	if d >= math.MaxInt {
		return math.MaxInt
	}
	return int(d) + 1
}

// String renders a single value as "5" and a longer run as "1-3".
func (r Run) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return strconv.Itoa(r.Start) + "-" + strconv.Itoa(r.End)
}

// Runs splits an ascending sequence of distinct values into maximal runs.
// The input is not sorted here; callers pass Set.Sorted or an equivalent.
func Runs(values []int) []Run {
	if len(values) == 0 {
		return nil
	}
	var runs []Run
	current := Run{Start: values[0], End: values[0]}
	for _, n := range values[1:] {
		if n == current.End+1 {
			current.End = n
			continue
		}
		runs = append(runs, current)
		current = Run{Start: n, End: n}
	}
	return append(runs, current)
}

// Compress renders an ascending sequence of distinct values as a summary,
// e.g. [1 2 3 5 6 9] becomes "1-3, 5-6, 9". An empty input yields "".
func Compress(values []int) string {
	if len(values) == 0 {
		return ""
	}
	var b strings.Builder
	start, end := values[0], values[0]
	emit := func() {
		if b.Len() > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(Run{Start: start, End: end}.String())
	}
	for _, n := range values[1:] {
		if n == end+1 {
			end = n
			continue
		}
		emit()
		start, end = n, n
	}
	emit()
	return b.String()
}

// Expand returns every value covered by runs, in run order.
// Reversed runs are skipped.
func Expand(runs []Run) []int {
	capacity := 0
	for _, r := range runs {
		capacity = min(capacity+min(r.Len(), MaxParsedValues), MaxParsedValues)
	}
	out := make([]int, 0, capacity)
	for _, r := range runs {
		if r.End < r.Start {
			continue
		}
		// Stop on End itself so a run ending at math.MaxInt terminates.
		for n := r.Start; ; n++ {
			out = append(out, n)
			if n == r.End {
				break
			}
		}
	}
	return out
}
