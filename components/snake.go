package components

// Snake is the ordered list of occupied cells, head first
type Snake struct {
	body []Position
}

// NewSnake creates a snake of the given length with its head at head and the
// body trailing away from dir
func NewSnake(head Position, length int, dir Direction) *Snake {
	s := &Snake{}
	s.Reset(head, length, dir)
	return s
}

// Reset rebuilds the body in place
func (s *Snake) Reset(head Position, length int, dir Direction) {
	if length < 1 {
		length = 1
	}
	s.body = s.body[:0]
	back := dir.Opposite()
	pos := head
	for i := 0; i < length; i++ {
		s.body = append(s.body, pos)
		pos = pos.Add(back)
	}
}

// Head returns the first segment. The body is never empty after Reset.
func (s *Snake) Head() Position {
	return s.body[0]
}

// Tail returns the last segment
func (s *Snake) Tail() Position {
	return s.body[len(s.body)-1]
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.body)
}

// Advance prepends newHead and drops the tail unless the snake ate this step
func (s *Snake) Advance(newHead Position, ate bool) {
	s.body = append(s.body, Position{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead
	if !ate {
		s.body = s.body[:len(s.body)-1]
	}
}

// Occupies reports whether any segment, tail included, is on pos
func (s *Snake) Occupies(pos Position) bool {
	for _, p := range s.body {
		if p == pos {
			return true
		}
	}
	return false
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []Position {
	out := make([]Position, len(s.body))
	copy(out, s.body)
	return out
}
