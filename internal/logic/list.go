package logic

import (
	"fmt"

	"github.com/jask/clipboard/internal/model"
)

// Item is one row of a displayed list. Key is the identifier a Selection
// transition takes.
type Item struct {
	Key   string
	Label string
}

// Listing is the ordered list shown for a page.
type Listing struct {
	Page   Page
	Entity EntityKind
	Items  []Item
}

// At returns the item at a zero-based index or an InvalidIndexError naming
// the list's entity kind.
func (l Listing) At(index int) (Item, error) {
	if index < 0 || index >= len(l.Items) {
		return Item{}, &InvalidIndexError{Entity: l.Entity, Index: index}
	}
	return l.Items[index], nil
}

// CurrentList resolves the list the current page displays: courses, groups of
// the selected course, students or sessions of the selected group, or the
// attendance of the selected session.
func CurrentList(sel *Selection, r *model.Roster) (Listing, error) {
	res, err := sel.Resolve(r)
	if err != nil {
		return Listing{}, err
	}
	return listFor(sel.Page(), res, r)
}

func listFor(p Page, res Resolved, r *model.Roster) (Listing, error) {
	out := Listing{Page: p}
	switch p {
	case CoursePage:
		out.Entity = EntityCourse
		for _, c := range r.Courses() {
			out.Items = append(out.Items, Item{Key: c.Code, Label: c.Code})
		}
	case GroupPage:
		out.Entity = EntityGroup
		for _, g := range res.Course.Groups() {
			out.Items = append(out.Items, Item{Key: g.Name, Label: g.Name})
		}
	case StudentPage:
		out.Entity = EntityStudent
		for _, s := range res.Group.Students() {
			out.Items = append(out.Items, Item{Key: s.ID, Label: s.String()})
		}
	case SessionPage:
		out.Entity = EntitySession
		for _, se := range res.Group.Sessions() {
			out.Items = append(out.Items, Item{Key: se.Name, Label: se.Name})
		}
	case SessionStudentPage:
		out.Entity = EntityStudent
		for _, s := range res.Group.Students() {
			out.Items = append(out.Items, Item{Key: s.ID, Label: attendanceLabel(res.Session, s)})
		}
	default:
		return Listing{}, fmt.Errorf("unknown page %q", p)
	}
	return out, nil
}

func attendanceLabel(se *model.Session, s *model.Student) string {
	mark := " "
	if se != nil && se.Present(s.ID) {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s", mark, s)
}
