package logic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/clipboard/internal/model"
)

// newTestRoster builds:
//
//	CS2103T
//	  T08: students Alex (A0000001A), Bea (A0000002B); sessions Tutorial1
//	  T09: empty
//	MA1521: no groups
func newTestRoster(t *testing.T) *model.Roster {
	t.Helper()
	r := model.NewRoster()
	cs, err := model.NewCourse("CS2103T")
	require.NoError(t, err)
	require.NoError(t, r.AddCourse(cs))
	ma, err := model.NewCourse("MA1521")
	require.NoError(t, err)
	require.NoError(t, r.AddCourse(ma))

	t08, err := model.NewGroup("T08")
	require.NoError(t, err)
	require.NoError(t, cs.AddGroup(t08))
	t09, err := model.NewGroup("T09")
	require.NoError(t, err)
	require.NoError(t, cs.AddGroup(t09))

	for _, s := range [][2]string{{"A0000001A", "Alex"}, {"A0000002B", "Bea"}} {
		st, err := model.NewStudent(s[0], s[1], "", "")
		require.NoError(t, err)
		require.NoError(t, t08.AddStudent(st))
	}
	tut, err := model.NewSession("Tutorial1")
	require.NoError(t, err)
	require.NoError(t, t08.AddSession(tut))
	return r
}

// exec parses and executes input, failing the test on error.
func exec(t *testing.T, r *model.Roster, sel *Selection, input string) Result {
	t.Helper()
	cmd, err := Parse(input)
	require.NoError(t, err, input)
	res, err := cmd.Execute(r, sel)
	require.NoError(t, err, input)
	return res
}

// execErr parses and executes input, returning the execution error.
func execErr(t *testing.T, r *model.Roster, sel *Selection, input string) error {
	t.Helper()
	cmd, err := Parse(input)
	require.NoError(t, err, input)
	_, err = cmd.Execute(r, sel)
	return err
}

// walk drives a fresh selection to the given page of the test roster.
func walk(t *testing.T, r *model.Roster, p Page) *Selection {
	t.Helper()
	sel := NewSelection()
	steps := map[Page][]string{
		CoursePage:         nil,
		GroupPage:          {"select 1"},
		StudentPage:        {"select 1", "select 1"},
		SessionPage:        {"select 1", "session 1"},
		SessionStudentPage: {"select 1", "session 1", "select 1", "select student 2"},
	}
	for _, in := range steps[p] {
		exec(t, r, sel, in)
	}
	require.Equal(t, p, sel.Page())
	return sel
}

var allPages = []Page{CoursePage, GroupPage, StudentPage, SessionPage, SessionStudentPage}
