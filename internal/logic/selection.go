package logic

import (
	"fmt"

	"github.com/jask/clipboard/internal/model"
)

// Selection is the current page plus the identifiers selected on the way to
// it. The set identifiers are always exactly the prefix of the hierarchy the
// page implies:
//
//	course          -> none
//	group           -> course
//	student         -> course, group, optional student
//	session         -> course, group, optional session
//	session-student -> course, group, session, session-student
//
// An empty string means "not selected". Selection holds identifiers, never
// entities; Resolve looks them up in a Roster at use time.
type Selection struct {
	page             Page
	courseCode       string
	groupName        string
	studentID        string
	sessionName      string
	sessionStudentID string
}

func NewSelection() *Selection {
	return &Selection{page: CoursePage}
}

func (s *Selection) Page() Page               { return s.page }
func (s *Selection) CourseCode() string       { return s.courseCode }
func (s *Selection) GroupName() string        { return s.groupName }
func (s *Selection) StudentID() string        { return s.studentID }
func (s *Selection) SessionName() string      { return s.sessionName }
func (s *Selection) SessionStudentID() string { return s.sessionStudentID }

// SelectCourse: course page -> group page.
func (s *Selection) SelectCourse(code string) error {
	if s.page != CoursePage {
		return illegalFrom(s.page, "select a course")
	}
	s.courseCode = code
	s.page = GroupPage
	return nil
}

// SelectGroup: group page -> student page (student list view).
func (s *Selection) SelectGroup(name string) error {
	if s.page != GroupPage {
		return illegalFrom(s.page, "select a group")
	}
	s.groupName = name
	s.page = StudentPage
	return nil
}

// SelectGroupSessions: group page -> session page (session list view).
func (s *Selection) SelectGroupSessions(name string) error {
	if s.page != GroupPage {
		return illegalFrom(s.page, "open the sessions of a group")
	}
	s.groupName = name
	s.page = SessionPage
	return nil
}

// SelectStudent views a single student. The page does not change.
func (s *Selection) SelectStudent(id string) error {
	if s.page != StudentPage {
		return illegalFrom(s.page, "select a student")
	}
	s.studentID = id
	return nil
}

// SelectSession views a single session. The page does not change.
func (s *Selection) SelectSession(name string) error {
	if s.page != SessionPage {
		return illegalFrom(s.page, "select a session")
	}
	s.sessionName = name
	return nil
}

// SelectSessionStudent enters the attendance view of one student for the
// selected session, or re-targets it when already there.
func (s *Selection) SelectSessionStudent(id string) error {
	switch s.page {
	case SessionPage:
		if s.sessionName == "" {
			return &InvalidTransitionError{From: s.page, Message: "Select a session first"}
		}
		s.page = SessionStudentPage
	case SessionStudentPage:
	default:
		return illegalFrom(s.page, "select a student's attendance")
	}
	s.sessionStudentID = id
	return nil
}

// EmptySelectedStudent closes the single-student view.
func (s *Selection) EmptySelectedStudent() {
	s.studentID = ""
}

// EmptySelectedSession closes the single-session view.
func (s *Selection) EmptySelectedSession() {
	if s.page == SessionPage {
		s.sessionName = ""
	}
}

func (s *Selection) NavigateBackFromGroupPage() error {
	if s.page != GroupPage {
		return illegalFrom(s.page, "go back to the course page")
	}
	*s = Selection{page: CoursePage}
	return nil
}

func (s *Selection) NavigateBackFromStudentPage() error {
	if s.page != StudentPage {
		return illegalFrom(s.page, "go back to the group page")
	}
	s.toGroupPage()
	return nil
}

func (s *Selection) NavigateBackFromSessionPage() error {
	if s.page != SessionPage {
		return illegalFrom(s.page, "go back to the group page")
	}
	s.toGroupPage()
	return nil
}

func (s *Selection) NavigateBackFromSessionStudentPage() error {
	if s.page != SessionStudentPage {
		return illegalFrom(s.page, "go back to the session page")
	}
	s.sessionStudentID = ""
	s.page = SessionPage
	return nil
}

// Back unwinds one level from whatever page is current.
func (s *Selection) Back() error {
	switch s.page {
	case CoursePage:
		return &InvalidTransitionError{From: s.page, Message: "Cannot go back any further"}
	case GroupPage:
		return s.NavigateBackFromGroupPage()
	case StudentPage:
		return s.NavigateBackFromStudentPage()
	case SessionPage:
		return s.NavigateBackFromSessionPage()
	case SessionStudentPage:
		return s.NavigateBackFromSessionStudentPage()
	}
	return fmt.Errorf("unknown page %q", s.page)
}

// NavigateBackToCoursePage resets to the root page from anywhere.
func (s *Selection) NavigateBackToCoursePage() {
	*s = Selection{page: CoursePage}
}

func (s *Selection) toGroupPage() {
	code := s.courseCode
	*s = Selection{page: GroupPage, courseCode: code}
}

// Resolved holds the entities a Selection points at. Unselected levels are nil.
type Resolved struct {
	Course         *model.Course
	Group          *model.Group
	Student        *model.Student
	Session        *model.Session
	SessionStudent *model.Student
}

// Resolve looks every selected identifier up in r. An identifier that no
// longer resolves fails with ErrStaleSelection.
func (s *Selection) Resolve(r *model.Roster) (Resolved, error) {
	var out Resolved
	if s.courseCode == "" {
		return out, nil
	}
	c, ok := r.Course(s.courseCode)
	if !ok {
		return out, fmt.Errorf("course %s: %w", s.courseCode, ErrStaleSelection)
	}
	out.Course = c
	if s.groupName == "" {
		return out, nil
	}
	g, ok := c.Group(s.groupName)
	if !ok {
		return out, fmt.Errorf("group %s of %s: %w", s.groupName, c.Code, ErrStaleSelection)
	}
	out.Group = g
	if s.studentID != "" {
		st, ok := g.Student(s.studentID)
		if !ok {
			return out, fmt.Errorf("student %s in %s: %w", s.studentID, g.Name, ErrStaleSelection)
		}
		out.Student = st
	}
	if s.sessionName != "" {
		se, ok := g.Session(s.sessionName)
		if !ok {
			return out, fmt.Errorf("session %s in %s: %w", s.sessionName, g.Name, ErrStaleSelection)
		}
		out.Session = se
	}
	if s.sessionStudentID != "" {
		st, ok := g.Student(s.sessionStudentID)
		if !ok {
			return out, fmt.Errorf("student %s in %s: %w", s.sessionStudentID, g.Name, ErrStaleSelection)
		}
		out.SessionStudent = st
	}
	return out, nil
}
