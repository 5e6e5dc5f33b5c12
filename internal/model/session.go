package model

import "maps"

// Session is one meeting of a group with an attendance record per student.
type Session struct {
	Name       string
	attendance map[string]bool
}

func NewSession(name string) (*Session, error) {
	if !IsValidSessionName(name) {
		return nil, &ConstraintViolation{Field: "SessionName", Value: name, Message: MessageSessionNameConstraints}
	}
	return &Session{Name: name, attendance: map[string]bool{}}, nil
}

func (s *Session) String() string { return s.Name }

// Present reports whether the student attended. Unknown students are absent.
func (s *Session) Present(studentID string) bool {
	return s.attendance[studentID]
}

// SetPresent records attendance for one student.
func (s *Session) SetPresent(studentID string, present bool) {
	s.attendance[studentID] = present
}

// Attendance returns a copy of the studentID -> present map.
func (s *Session) Attendance() map[string]bool {
	return maps.Clone(s.attendance)
}

func (s *Session) track(studentID string) {
	if _, ok := s.attendance[studentID]; !ok {
		s.attendance[studentID] = false
	}
}
