package logic

import "github.com/jask/clipboard/internal/model"

// executeAttendance marks or unmarks one student in the selected session.
// Without an index it targets the selected session-student; with one it
// targets that row of the attendance list and leaves the selection alone.
func (c Command) executeAttendance(r *model.Roster, sel *Selection) (Result, error) {
	if sel.Page() != SessionStudentPage {
		return Result{}, &WrongPageError{Required: SessionStudentPage, Action: "mark attendance"}
	}
	res, err := sel.Resolve(r)
	if err != nil {
		return Result{}, err
	}
	target := res.SessionStudent.ID
	if c.Index != NoIndex {
		list, err := listFor(SessionStudentPage, res, r)
		if err != nil {
			return Result{}, err
		}
		item, err := list.At(c.Index)
		if err != nil {
			return Result{}, err
		}
		target = item.Key
	}

	present := c.Kind == KindMark
	res.Session.SetPresent(target, present)
	state := "absent"
	if present {
		state = "present"
	}
	return c.result("Marked %s as %s for %s", target, state, res.Session), nil
}
