package model

import "fmt"

// Student is one enrolled student. It belongs to exactly one group.
type Student struct {
	ID    string `json:"studentId" validate:"required,studentid"`
	Name  string `json:"name" validate:"required,personname"`
	Phone string `json:"phone,omitempty" validate:"omitempty,number,min=3"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// NewStudent validates every field and returns a *ConstraintViolation for the
// first one that fails.
func NewStudent(id, name, phone, email string) (*Student, error) {
	s := &Student{ID: id, Name: name, Phone: phone, Email: email}
	if err := validate.Struct(s); err != nil {
		return nil, studentViolation(err)
	}
	return s, nil
}

func (s *Student) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.ID)
}

// SessionWithAttendance joins a student to one session of their group.
type SessionWithAttendance struct {
	Session string
	Present bool
}
