package seg

import (
	"sort"
	"strconv"
	"strings"
)

// FormatPoints renders points in run-length notation: consecutive integers
// collapse to [a..b], singletons stay literal, the empty set is ∅. Input
// order does not matter; duplicates collapse.
func FormatPoints(points []int) string {
	if len(points) == 0 {
		return "∅"
	}
	ps := append([]int(nil), points...)
	sort.Ints(ps)

	var runs []string
	start, end := ps[0], ps[0]
	flush := func() {
		if start == end {
			runs = append(runs, strconv.Itoa(start))
			return
		}
		runs = append(runs, "["+strconv.Itoa(start)+".."+strconv.Itoa(end)+"]")
	}
	for _, p := range ps[1:] {
		switch {
		case p == end:
		case p == end+1:
			end = p
		default:
			flush()
			start, end = p, p
		}
	}
	flush()
	return strings.Join(runs, ", ")
}
