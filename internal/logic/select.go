package logic

import (
	"fmt"

	"github.com/jask/clipboard/internal/model"
)

func (c Command) executeSelect(r *model.Roster, sel *Selection) (Result, error) {
	list, err := CurrentList(sel, r)
	if err != nil {
		return Result{}, err
	}
	item, err := list.At(c.Index)
	if err != nil {
		return Result{}, err
	}

	switch sel.Page() {
	case CoursePage:
		if err := sel.SelectCourse(item.Key); err != nil {
			return Result{}, err
		}
		return c.result("[%s]\nViewing: groups for course %s", GroupPage.Title(), item.Key), nil
	case GroupPage:
		course := sel.CourseCode()
		if err := sel.SelectGroup(item.Key); err != nil {
			return Result{}, err
		}
		return c.result("[%s]\nViewing: students in group %s of %s", StudentPage.Title(), item.Key, course), nil
	case StudentPage:
		if err := sel.SelectStudent(item.Key); err != nil {
			return Result{}, err
		}
		return c.result("Viewing: %s", item.Label), nil
	case SessionPage:
		if err := sel.SelectSession(item.Key); err != nil {
			return Result{}, err
		}
		return c.result("Viewing: session attendance for %s", item.Key), nil
	case SessionStudentPage:
		if err := sel.SelectSessionStudent(item.Key); err != nil {
			return Result{}, err
		}
		return c.result("Viewing: attendance of %s for %s", item.Key, sel.SessionName()), nil
	}
	return Result{}, fmt.Errorf("unable to select from page %q", sel.Page())
}

// executeOpenSessions is the group page's second forward transition: it
// selects a group and lands on its session list instead of its student list.
func (c Command) executeOpenSessions(r *model.Roster, sel *Selection) (Result, error) {
	if sel.Page() != GroupPage {
		return Result{}, &WrongPageError{Required: GroupPage, Action: "view the sessions of a group"}
	}
	list, err := CurrentList(sel, r)
	if err != nil {
		return Result{}, err
	}
	item, err := list.At(c.Index)
	if err != nil {
		return Result{}, err
	}
	course := sel.CourseCode()
	if err := sel.SelectGroupSessions(item.Key); err != nil {
		return Result{}, err
	}
	return c.result("[%s]\nViewing: sessions in group %s of %s", SessionPage.Title(), item.Key, course), nil
}

// executeSelectSessionStudent resolves the index against the selected group's
// students and opens that student's attendance for the selected session.
func (c Command) executeSelectSessionStudent(r *model.Roster, sel *Selection) (Result, error) {
	if sel.Page() != SessionPage && sel.Page() != SessionStudentPage {
		return Result{}, &WrongPageError{Required: SessionPage, Action: "view a student's attendance"}
	}
	res, err := sel.Resolve(r)
	if err != nil {
		return Result{}, err
	}
	if res.Session == nil {
		return Result{}, &InvalidTransitionError{From: sel.Page(), Message: "Select a session first"}
	}
	list, err := listFor(SessionStudentPage, res, r)
	if err != nil {
		return Result{}, err
	}
	item, err := list.At(c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := sel.SelectSessionStudent(item.Key); err != nil {
		return Result{}, err
	}
	return c.result("[%s]\nViewing: attendance of %s for %s", SessionStudentPage.Title(), item.Key, res.Session.Name), nil
}
