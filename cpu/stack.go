package cpu

const (
	STACK_LIMIT = 1024 // Default maximum stack depth, in cells.
	STACK_CELL  = 4    // Bytes per stack cell.
)

// Stack is the LIFO call stack of 4-byte cells.
type Stack struct {
	Limit int // Maximum depth. Zero selects STACK_LIMIT.
	Data  []int32
}

func (s *Stack) Push(value int32) (ok bool) {
	if s.Full() {
		return
	}
	s.Data = append(s.Data, value)
	return true
}

func (s *Stack) Pop() (value int32, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	limit := s.Limit
	if limit <= 0 {
		limit = STACK_LIMIT
	}
	return len(s.Data) >= limit
}

func (s *Stack) Peek() (value int32, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
