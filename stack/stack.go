// Package stack keeps a current transform with a save/restore stack,
// the way a renderer tracks its coordinate system while it walks a
// scene.
package stack

import (
	"errors"
	"log/slog"

	"github.com/ScriptRock/matrix3"
)

// ErrEmpty is returned by Restore when no transform was saved.
var ErrEmpty = errors.New("stack: restore without save")

// Stack holds the current transform and the transforms saved before it.
// The zero value is ready to use; its current transform is the identity.
type Stack struct {
	ctm   *matrix3.Matrix
	saved []matrix3.Matrix
}

func (s *Stack) current() *matrix3.Matrix {
	if s.ctm == nil {
		m := matrix3.Identity()
		s.ctm = &m
	}
	return s.ctm
}

// Current returns a copy of the current transform.
func (s *Stack) Current() matrix3.Matrix { return *s.current() }

// Depth returns the number of saved transforms.
func (s *Stack) Depth() int { return len(s.saved) }

// Save pushes the current transform.
func (s *Stack) Save() {
	s.saved = append(s.saved, *s.current())
}

// Restore pops the most recently saved transform and makes it current.
func (s *Stack) Restore() error {
	n := len(s.saved)
	if n == 0 {
		slog.Debug("restore on empty stack")
		return ErrEmpty
	}
	m := s.saved[n-1]
	s.ctm = &m
	s.saved = s.saved[:n-1]
	return nil
}

// Reset drops the saved transforms and sets the current one to the identity.
func (s *Stack) Reset() {
	s.ctm = nil
	s.saved = s.saved[:0]
}

// Concat applies m in the current frame.
func (s *Stack) Concat(m *matrix3.Matrix) {
	s.current().Mul(m)
}

func (s *Stack) Translate(v matrix3.Vec2) { s.current().Translate(v) }

func (s *Stack) Rotate(angle float64) {
	var r matrix3.Matrix
	s.Concat(r.Rotation(angle))
}

func (s *Stack) Scale(v matrix3.Vec2) {
	s.current().Scale(matrix3.Vec3{v[0], v[1], 1})
}

// Apply maps p from the current frame to the base frame.
func (s *Stack) Apply(p matrix3.Vec2) matrix3.Vec2 {
	return s.current().Apply(p)
}
