package emulator

// Segment is the directive selected source segment.
type Segment int

//go:generate go tool stringer -linecomment -type=Segment
const (
	SEGMENT_CODE  = Segment(0) // .CODE
	SEGMENT_DATA  = Segment(1) // .DATA
	SEGMENT_STACK = Segment(2) // .STACK
)
