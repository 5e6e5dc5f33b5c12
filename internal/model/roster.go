package model

import (
	"fmt"
	"slices"
)

// Roster is the root aggregate and the sole owner of every course, group,
// student and session.
type Roster struct {
	courses []*Course
}

func NewRoster() *Roster { return &Roster{} }

func (r *Roster) Courses() []*Course { return slices.Clone(r.courses) }

func (r *Roster) Course(code string) (*Course, bool) {
	i := slices.IndexFunc(r.courses, func(c *Course) bool { return c.Code == code })
	if i < 0 {
		return nil, false
	}
	return r.courses[i], true
}

func (r *Roster) HasCourse(code string) bool {
	_, ok := r.Course(code)
	return ok
}

func (r *Roster) AddCourse(c *Course) error {
	if r.HasCourse(c.Code) {
		return fmt.Errorf("course %s: %w", c.Code, ErrDuplicate)
	}
	r.courses = append(r.courses, c)
	return nil
}

// StudentLocation says where a student id is enrolled.
type StudentLocation struct {
	Course  *Course
	Group   *Group
	Student *Student
}

// FindStudent searches every group of every course for the student id.
func (r *Roster) FindStudent(id string) (StudentLocation, bool) {
	for _, c := range r.courses {
		for _, g := range c.groups {
			if s, ok := g.Student(id); ok {
				return StudentLocation{Course: c, Group: g, Student: s}, true
			}
		}
	}
	return StudentLocation{}, false
}

// Size counts the courses in the roster.
func (r *Roster) Size() int { return len(r.courses) }
