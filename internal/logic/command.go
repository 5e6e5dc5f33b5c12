package logic

import (
	"fmt"

	"github.com/jask/clipboard/internal/model"
)

// Kind tags a Command variant. It doubles as the command word for the
// single-word commands.
type Kind string

const (
	KindSelect               Kind = "select"
	KindSelectSessionStudent Kind = "select student"
	KindOpenSessions         Kind = "session"
	KindBack                 Kind = "back"
	KindHome                 Kind = "home"
	KindHelp                 Kind = "help"
	KindExit                 Kind = "exit"
	KindAddCourse            Kind = "add course"
	KindAddGroup             Kind = "add group"
	KindAddStudent           Kind = "add student"
	KindAddSession           Kind = "add session"
	KindMark                 Kind = "mark"
	KindUnmark               Kind = "unmark"
)

// Kinds lists every variant, in help order.
var Kinds = []Kind{
	KindSelect, KindSelectSessionStudent, KindOpenSessions, KindBack, KindHome,
	KindAddCourse, KindAddGroup, KindAddStudent, KindAddSession,
	KindMark, KindUnmark, KindHelp, KindExit,
}

// NoIndex marks a command parsed without an index argument.
const NoIndex = -1

// Command is one parsed user action. Fields other than Kind are parameters
// captured at parse time; which ones are set depends on Kind.
type Command struct {
	Kind    Kind
	Index   int
	Course  *model.Course
	Group   *model.Group
	Session *model.Session
	Student *model.Student
}

func NewSelect(index int) Command { return Command{Kind: KindSelect, Index: index} }

func NewSelectSessionStudent(index int) Command {
	return Command{Kind: KindSelectSessionStudent, Index: index}
}

func NewOpenSessions(index int) Command { return Command{Kind: KindOpenSessions, Index: index} }

func NewBack() Command { return Command{Kind: KindBack, Index: NoIndex} }
func NewHome() Command { return Command{Kind: KindHome, Index: NoIndex} }
func NewHelp() Command { return Command{Kind: KindHelp, Index: NoIndex} }
func NewExit() Command { return Command{Kind: KindExit, Index: NoIndex} }

func NewAddCourse(c *model.Course) Command {
	return Command{Kind: KindAddCourse, Index: NoIndex, Course: c}
}

func NewAddGroup(g *model.Group) Command {
	return Command{Kind: KindAddGroup, Index: NoIndex, Group: g}
}

func NewAddStudent(s *model.Student) Command {
	return Command{Kind: KindAddStudent, Index: NoIndex, Student: s}
}

func NewAddSession(se *model.Session) Command {
	return Command{Kind: KindAddSession, Index: NoIndex, Session: se}
}

func NewMark(index int) Command   { return Command{Kind: KindMark, Index: index} }
func NewUnmark(index int) Command { return Command{Kind: KindUnmark, Index: index} }

// WillModifyState reports whether a successful execution mutates the
// persisted Roster.
func (c Command) WillModifyState() bool {
	switch c.Kind {
	case KindAddCourse, KindAddGroup, KindAddStudent, KindAddSession, KindMark, KindUnmark:
		return true
	case KindSelect, KindSelectSessionStudent, KindOpenSessions, KindBack, KindHome, KindHelp, KindExit:
		return false
	}
	return false
}

// Result is what one successful execution hands to the presentation layer.
type Result struct {
	Command         Command
	Message         string
	WillModifyState bool
}

func (c Command) result(format string, args ...any) Result {
	return Result{Command: c, Message: fmt.Sprintf(format, args...), WillModifyState: c.WillModifyState()}
}

// Execute validates c against the current page and the roster, then applies
// either one Selection transition or one roster mutation. On error neither
// sel nor r has changed.
func (c Command) Execute(r *model.Roster, sel *Selection) (Result, error) {
	switch c.Kind {
	case KindSelect:
		return c.executeSelect(r, sel)
	case KindSelectSessionStudent:
		return c.executeSelectSessionStudent(r, sel)
	case KindOpenSessions:
		return c.executeOpenSessions(r, sel)
	case KindBack:
		return c.executeBack(r, sel)
	case KindHome:
		sel.NavigateBackToCoursePage()
		return c.result("Returned to course page"), nil
	case KindHelp:
		return c.result("%s", HelpMessage()), nil
	case KindExit:
		return c.result("Exiting CLIpboard as requested ..."), nil
	case KindAddCourse:
		return c.executeAddCourse(r, sel)
	case KindAddGroup:
		return c.executeAddGroup(r, sel)
	case KindAddStudent:
		return c.executeAddStudent(r, sel)
	case KindAddSession:
		return c.executeAddSession(r, sel)
	case KindMark, KindUnmark:
		return c.executeAttendance(r, sel)
	}
	return Result{}, fmt.Errorf("unknown command kind %q", c.Kind)
}
