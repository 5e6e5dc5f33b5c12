package model

import (
	"errors"
	"fmt"
	"slices"
)

// ErrDuplicate is returned when an add would break a uniqueness rule.
var ErrDuplicate = errors.New("duplicate entity")

// Group is a tutorial or lab group of one course.
type Group struct {
	Name     string
	students []*Student
	sessions []*Session
}

func NewGroup(name string) (*Group, error) {
	if !IsValidGroupName(name) {
		return nil, &ConstraintViolation{Field: "GroupName", Value: name, Message: MessageGroupNameConstraints}
	}
	return &Group{Name: name}, nil
}

func (g *Group) String() string { return g.Name }

// Students returns the students in insertion order.
func (g *Group) Students() []*Student { return slices.Clone(g.students) }

// Sessions returns the sessions in insertion order.
func (g *Group) Sessions() []*Session { return slices.Clone(g.sessions) }

func (g *Group) Student(id string) (*Student, bool) {
	i := slices.IndexFunc(g.students, func(s *Student) bool { return s.ID == id })
	if i < 0 {
		return nil, false
	}
	return g.students[i], true
}

func (g *Group) Session(name string) (*Session, bool) {
	i := slices.IndexFunc(g.sessions, func(s *Session) bool { return s.Name == name })
	if i < 0 {
		return nil, false
	}
	return g.sessions[i], true
}

func (g *Group) HasStudent(id string) bool {
	_, ok := g.Student(id)
	return ok
}

func (g *Group) HasSession(name string) bool {
	_, ok := g.Session(name)
	return ok
}

// AddStudent appends s and opens an absent record for it in every session.
func (g *Group) AddStudent(s *Student) error {
	if g.HasStudent(s.ID) {
		return fmt.Errorf("student %s in group %s: %w", s.ID, g.Name, ErrDuplicate)
	}
	g.students = append(g.students, s)
	for _, se := range g.sessions {
		se.track(s.ID)
	}
	return nil
}

// AddSession appends se and opens an absent record in it for every student.
func (g *Group) AddSession(se *Session) error {
	if g.HasSession(se.Name) {
		return fmt.Errorf("session %s in group %s: %w", se.Name, g.Name, ErrDuplicate)
	}
	for _, s := range g.students {
		se.track(s.ID)
	}
	g.sessions = append(g.sessions, se)
	return nil
}

// SessionsWithAttendance lists every session of the group with the student's
// attendance flag, in session order.
func (g *Group) SessionsWithAttendance(studentID string) []SessionWithAttendance {
	out := make([]SessionWithAttendance, 0, len(g.sessions))
	for _, se := range g.sessions {
		out = append(out, SessionWithAttendance{Session: se.Name, Present: se.Present(studentID)})
	}
	return out
}
