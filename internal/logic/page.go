package logic

import "strings"

// Page is the current navigation context.
type Page string

const (
	CoursePage         Page = "course"
	GroupPage          Page = "group"
	StudentPage        Page = "student"
	SessionPage        Page = "session"
	SessionStudentPage Page = "session-student"
)

// Title is the banner shown above a page's list, e.g. "STUDENT PAGE".
func (p Page) Title() string {
	if p == SessionStudentPage {
		return "ATTENDANCE PAGE"
	}
	return strings.ToUpper(string(p)) + " PAGE"
}
