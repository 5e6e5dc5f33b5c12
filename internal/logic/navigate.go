package logic

import "github.com/jask/clipboard/internal/model"

func (c Command) executeBack(_ *model.Roster, sel *Selection) (Result, error) {
	from := sel.Page()
	course, group := sel.CourseCode(), sel.GroupName()
	if err := sel.Back(); err != nil {
		return Result{}, err
	}
	switch from {
	case GroupPage:
		return c.result("Back to course page"), nil
	case StudentPage, SessionPage:
		return c.result("Back to group page of %s", course), nil
	default:
		return c.result("Back to session page of %s", group), nil
	}
}
