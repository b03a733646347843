package parse

import "github.com/ef-ds/deque"

// State represents the current state of the argument matcher: a cursor over the
// tokens which have not been consumed yet
type State interface {
	Pos() int                 // Get the position of the current argument in the original vector
	CurrentArg() string       // Get the current argument
	Advance() bool            // Advance to the next argument
	TakeNext() (string, bool) // Consume the next argument as the value of the current one
	Terminate()               // Stop option recognition; every remaining token is literal
	Terminated() bool         // Report whether option recognition has stopped
	Remaining() []string      // Get the arguments not consumed yet
}

// DefaultState is the default implementation of the State interface, backed by a deque
type DefaultState struct {
	pending    *deque.Deque
	current    string
	pos        int
	terminated bool
}

// NewState creates a new State instance with the given argument list
func NewState(args []string) State {
	d := deque.New()
	for _, a := range args {
		d.PushBack(a)
	}
	return &DefaultState{
		pending: d,
		pos:     -1,
	}
}

// Pos returns the position of the current argument
func (s *DefaultState) Pos() int {
	return s.pos
}

// CurrentArg returns the current argument
func (s *DefaultState) CurrentArg() string {
	return s.current
}

// Advance advances to the next argument, returning true if successful
func (s *DefaultState) Advance() bool {
	v, ok := s.pending.PopFront()
	if !ok {
		return false
	}
	s.current = v.(string)
	s.pos++
	return true
}

// TakeNext consumes the next argument without making it current
func (s *DefaultState) TakeNext() (string, bool) {
	v, ok := s.pending.PopFront()
	if !ok {
		return "", false
	}
	s.pos++
	return v.(string), true
}

func (s *DefaultState) Terminate() {
	s.terminated = true
}

func (s *DefaultState) Terminated() bool {
	return s.terminated
}

// Remaining returns a copy of the arguments not consumed yet
func (s *DefaultState) Remaining() []string {
	out := make([]string, 0, s.pending.Len())
	for i := s.pending.Len(); i > 0; i-- {
		v, _ := s.pending.PopFront()
		out = append(out, v.(string))
		s.pending.PushBack(v)
	}
	return out
}
