package model

import (
	"fmt"
	"slices"
)

// Course is identified by its course code and owns an ordered list of groups.
type Course struct {
	Code   string
	groups []*Group
}

func NewCourse(code string) (*Course, error) {
	if !IsValidCourseCode(code) {
		return nil, &ConstraintViolation{Field: "CourseCode", Value: code, Message: MessageCourseCodeConstraints}
	}
	return &Course{Code: code}, nil
}

func (c *Course) String() string { return c.Code }

func (c *Course) Groups() []*Group { return slices.Clone(c.groups) }

func (c *Course) Group(name string) (*Group, bool) {
	i := slices.IndexFunc(c.groups, func(g *Group) bool { return g.Name == name })
	if i < 0 {
		return nil, false
	}
	return c.groups[i], true
}

func (c *Course) HasGroup(name string) bool {
	_, ok := c.Group(name)
	return ok
}

func (c *Course) AddGroup(g *Group) error {
	if c.HasGroup(g.Name) {
		return fmt.Errorf("group %s in course %s: %w", g.Name, c.Code, ErrDuplicate)
	}
	c.groups = append(c.groups, g)
	return nil
}
