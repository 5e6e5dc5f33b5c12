package logic

import (
	"github.com/jask/clipboard/internal/model"
)

const (
	MessageDuplicateCourse  = "This course already exists"
	MessageDuplicateGroup   = "This group already exists in the course"
	MessageDuplicateSession = "This session already exists in the course"
	MessageDuplicateStudent = "This student already exists"
)

func (c Command) executeAddCourse(r *model.Roster, sel *Selection) (Result, error) {
	if sel.Page() != CoursePage {
		return Result{}, &WrongPageError{Required: CoursePage, Action: "add course"}
	}
	if r.HasCourse(c.Course.Code) {
		return Result{}, &DuplicateEntityError{Entity: EntityCourse, Message: MessageDuplicateCourse}
	}
	if err := r.AddCourse(c.Course); err != nil {
		return Result{}, err
	}
	return c.result("New course added: %s", c.Course), nil
}

func (c Command) executeAddGroup(r *model.Roster, sel *Selection) (Result, error) {
	if sel.Page() != GroupPage {
		return Result{}, &WrongPageError{Required: GroupPage, Action: "add group"}
	}
	res, err := sel.Resolve(r)
	if err != nil {
		return Result{}, err
	}
	if res.Course.HasGroup(c.Group.Name) {
		return Result{}, &DuplicateEntityError{Entity: EntityGroup, Message: MessageDuplicateGroup}
	}
	if err := res.Course.AddGroup(c.Group); err != nil {
		return Result{}, err
	}
	return c.result("New group added in %s: %s", res.Course, c.Group), nil
}

// executeAddStudent rejects a student id enrolled anywhere in the roster,
// since a student belongs to exactly one group.
func (c Command) executeAddStudent(r *model.Roster, sel *Selection) (Result, error) {
	if sel.Page() != StudentPage {
		return Result{}, &WrongPageError{Required: StudentPage, Action: "add student"}
	}
	res, err := sel.Resolve(r)
	if err != nil {
		return Result{}, err
	}
	if _, ok := r.FindStudent(c.Student.ID); ok {
		return Result{}, &DuplicateEntityError{Entity: EntityStudent, Message: MessageDuplicateStudent}
	}
	if err := res.Group.AddStudent(c.Student); err != nil {
		return Result{}, err
	}
	return c.result("New student added in %s: %s", res.Group, c.Student), nil
}

func (c Command) executeAddSession(r *model.Roster, sel *Selection) (Result, error) {
	if sel.Page() != SessionPage {
		return Result{}, &WrongPageError{Required: SessionPage, Action: "add session"}
	}
	res, err := sel.Resolve(r)
	if err != nil {
		return Result{}, err
	}
	if res.Group.HasSession(c.Session.Name) {
		return Result{}, &DuplicateEntityError{Entity: EntitySession, Message: MessageDuplicateSession}
	}
	if err := res.Group.AddSession(c.Session); err != nil {
		return Result{}, err
	}
	return c.result("New session added in %s: %s", res.Group, c.Session), nil
}
