package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/clipboard/internal/logic"
	"github.com/jask/clipboard/internal/model"
)

var pageOrder = []logic.Page{
	logic.CoursePage, logic.GroupPage, logic.StudentPage, logic.SessionPage, logic.SessionStudentPage,
}

func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}

	sections := []string{
		a.renderHeader(width),
		a.styles.crumb.Render(a.breadcrumb()),
		a.renderBody(width),
		a.renderFeedback(width),
		a.input.View(),
		a.renderStatus(width),
		a.renderFooter(width),
	}
	return strings.Join(sections, "\n")
}

func (a *App) renderHeader(width int) string {
	current := a.logic.Selection().Page()
	tabs := make([]string, 0, len(pageOrder))
	for _, p := range pageOrder {
		if p == current {
			tabs = append(tabs, a.styles.activeTab.Render(p.Title()))
		} else {
			tabs = append(tabs, a.styles.inactiveTab.Render(p.Title()))
		}
	}
	line := a.styles.app.Render(appName) + "  " + strings.Join(tabs, a.styles.tabSep.Render("│"))
	return a.styles.header.Width(width).Render(line)
}

// breadcrumb shows the selected path, e.g. "CS2103T › T08 › Tutorial1".
func (a *App) breadcrumb() string {
	sel := a.logic.Selection()
	parts := []string{"Courses"}
	for _, s := range []string{sel.CourseCode(), sel.GroupName(), sel.SessionName()} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " › ")
}

func (a *App) renderBody(width int) string {
	listWidth := max(24, width*2/5)
	detailWidth := max(24, width-listWidth-4)

	list, err := a.logic.CurrentList()
	if err != nil {
		return a.styles.errorText.Render(err.Error())
	}
	left := a.renderList(list, listWidth)
	right := a.styles.pane.Width(detailWidth).Render(a.detail())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (a *App) renderList(list logic.Listing, width int) string {
	selected := a.selectedKey()
	var b strings.Builder
	b.WriteString(a.styles.paneTitle.Render(list.Page.Title()))
	if len(list.Items) == 0 {
		b.WriteString("\n" + a.styles.muted.Render(fmt.Sprintf("No %ss yet", list.Entity)))
	}
	for i, it := range list.Items {
		prefix := "  "
		line := fmt.Sprintf("%d. %s", i+1, it.Label)
		if it.Key == selected {
			prefix = a.styles.cursor.Render("> ")
			line = a.styles.cursor.Render(line)
		}
		b.WriteString("\n" + prefix + line)
	}
	return a.styles.focusPane.Width(width).Render(b.String())
}

// selectedKey is the key of the list item the detail pane is showing.
func (a *App) selectedKey() string {
	sel := a.logic.Selection()
	switch sel.Page() {
	case logic.StudentPage:
		return sel.StudentID()
	case logic.SessionPage:
		return sel.SessionName()
	case logic.SessionStudentPage:
		return sel.SessionStudentID()
	case logic.CoursePage, logic.GroupPage:
	}
	return ""
}

func (a *App) detail() string {
	if a.showHelp {
		return a.styles.paneTitle.Render("Commands") + "\n" + logic.HelpMessage()
	}
	res, err := a.logic.Resolved()
	if err != nil {
		return a.styles.errorText.Render(err.Error())
	}
	switch a.logic.Selection().Page() {
	case logic.CoursePage:
		return a.styles.muted.Render("select INDEX to view a course's groups\nadd course CODE to add one")
	case logic.GroupPage:
		return a.styles.muted.Render("select INDEX for a group's students\nsession INDEX for its sessions")
	case logic.StudentPage:
		if res.Student == nil {
			return a.styles.muted.Render("select INDEX to view a student")
		}
		return a.studentCard(res.Group, res.Student)
	case logic.SessionPage:
		if res.Session == nil {
			return a.styles.muted.Render("select INDEX to view a session's attendance")
		}
		return a.sessionCard(res.Group, res.Session)
	case logic.SessionStudentPage:
		return a.attendanceCard(res.Session, res.SessionStudent)
	}
	return ""
}

func (a *App) studentCard(g *model.Group, s *model.Student) string {
	lines := []string{
		a.styles.paneTitle.Render(s.Name),
		"Student ID: " + s.ID,
		"Phone:      " + orDash(s.Phone),
		"Email:      " + orDash(s.Email),
		"",
		a.styles.paneTitle.Render("Attendance"),
	}
	sessions := g.SessionsWithAttendance(s.ID)
	if len(sessions) == 0 {
		lines = append(lines, a.styles.muted.Render("No sessions yet"))
	}
	for _, swa := range sessions {
		lines = append(lines, swa.Session+": "+a.presence(swa.Present))
	}
	return strings.Join(lines, "\n")
}

func (a *App) sessionCard(g *model.Group, se *model.Session) string {
	students := g.Students()
	present := 0
	rows := make([]string, 0, len(students))
	for _, s := range students {
		p := se.Present(s.ID)
		if p {
			present++
		}
		rows = append(rows, s.String()+": "+a.presence(p))
	}
	head := []string{
		a.styles.paneTitle.Render(se.Name),
		fmt.Sprintf("Present: %d/%d", present, len(students)),
		"",
	}
	return strings.Join(append(head, rows...), "\n")
}

func (a *App) attendanceCard(se *model.Session, s *model.Student) string {
	if se == nil || s == nil {
		return ""
	}
	return strings.Join([]string{
		a.styles.paneTitle.Render(s.String()),
		se.Name + ": " + a.presence(se.Present(s.ID)),
		"",
		a.styles.muted.Render("mark / unmark [INDEX] to record attendance"),
	}, "\n")
}

func (a *App) presence(p bool) string {
	if p {
		return a.styles.present.Render("present")
	}
	return a.styles.absent.Render("absent")
}

func (a *App) renderFeedback(width int) string {
	style := a.styles.feedback
	if a.isError {
		style = a.styles.errorText
	}
	return a.styles.pane.Width(max(10, width-2)).Render(style.Render(a.feedback))
}

func (a *App) renderStatus(width int) string {
	line := fmt.Sprintf("%s · %d course(s)", a.logic.StorePath(), a.logic.Roster().Size())
	return a.styles.statusBar.Width(width).Render(line)
}

func (a *App) renderFooter(width int) string {
	parts := make([]string, 0, len(a.keys.ShortHelp()))
	for _, b := range a.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, a.styles.helpKey.Render(h.Key)+" "+a.styles.helpDesc.Render(h.Desc))
	}
	return a.styles.footer.Width(width).Render(strings.Join(parts, "  "))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
