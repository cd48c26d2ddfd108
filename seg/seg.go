// Package seg provides closed integer segments on the number line.
package seg

import "fmt"

// Segment is the closed integer interval [Left, Right] with Left <= Right.
// Construct with [New] to keep the invariant.
type Segment struct {
	Left, Right int
}

// New builds the segment with the given endpoints; argument order does not
// matter.
func New(a, b int) Segment {
	if a > b {
		a, b = b, a
	}
	return Segment{Left: a, Right: b}
}

func (s Segment) Contains(x int) bool {
	return s.Left <= x && x <= s.Right
}

// Len is Right - Left. A single point has length 0.
func (s Segment) Len() int {
	return s.Right - s.Left
}

func (s Segment) String() string {
	return fmt.Sprintf("[%d, %d]", s.Left, s.Right)
}
