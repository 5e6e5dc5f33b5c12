package logic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/clipboard/internal/model"
)

func TestSelectionStartsOnCoursePage(t *testing.T) {
	t.Parallel()

	sel := NewSelection()
	require.Equal(t, CoursePage, sel.Page())
	require.Empty(t, sel.CourseCode())
	require.Empty(t, sel.GroupName())
}

func TestSelectionForwardTransitions(t *testing.T) {
	t.Parallel()

	sel := NewSelection()
	require.NoError(t, sel.SelectCourse("CS2103T"))
	require.Equal(t, GroupPage, sel.Page())

	require.NoError(t, sel.SelectGroup("T08"))
	require.Equal(t, StudentPage, sel.Page())
	require.NoError(t, sel.SelectStudent("A0000001A"))
	require.Equal(t, StudentPage, sel.Page(), "selecting a student does not change page")
	require.Equal(t, "A0000001A", sel.StudentID())

	require.NoError(t, sel.NavigateBackFromStudentPage())
	require.Equal(t, GroupPage, sel.Page())
	require.Empty(t, sel.GroupName())
	require.Empty(t, sel.StudentID())
	require.Equal(t, "CS2103T", sel.CourseCode())

	require.NoError(t, sel.SelectGroupSessions("T08"))
	require.Equal(t, SessionPage, sel.Page())
	require.NoError(t, sel.SelectSession("Tutorial1"))
	require.Equal(t, SessionPage, sel.Page(), "selecting a session does not change page")

	require.NoError(t, sel.SelectSessionStudent("A0000002B"))
	require.Equal(t, SessionStudentPage, sel.Page())
	require.NoError(t, sel.SelectSessionStudent("A0000001A"))
	require.Equal(t, "A0000001A", sel.SessionStudentID())

	require.NoError(t, sel.NavigateBackFromSessionStudentPage())
	require.Equal(t, SessionPage, sel.Page())
	require.Empty(t, sel.SessionStudentID())
	require.Equal(t, "Tutorial1", sel.SessionName())
}

func TestSelectionIllegalTransitionsLeaveStateUnchanged(t *testing.T) {
	t.Parallel()

	sel := NewSelection()
	before := *sel
	for name, op := range map[string]func() error{
		"group":           func() error { return sel.SelectGroup("T08") },
		"group sessions":  func() error { return sel.SelectGroupSessions("T08") },
		"student":         func() error { return sel.SelectStudent("A0000001A") },
		"session":         func() error { return sel.SelectSession("Tutorial1") },
		"session student": func() error { return sel.SelectSessionStudent("A0000001A") },
		"back from group": sel.NavigateBackFromGroupPage,
		"back from stud":  sel.NavigateBackFromStudentPage,
		"back from sess":  sel.NavigateBackFromSessionPage,
		"back from att":   sel.NavigateBackFromSessionStudentPage,
	} {
		err := op()
		require.ErrorIs(t, err, ErrInvalidTransition, name)
		require.Equal(t, before, *sel, name)
	}

	require.NoError(t, sel.SelectCourse("CS2103T"))
	require.NoError(t, sel.SelectGroupSessions("T08"))
	before = *sel
	require.ErrorIs(t, sel.SelectSessionStudent("A0000001A"), ErrInvalidTransition, "needs a selected session")
	require.Equal(t, before, *sel)
}

func TestBackFromEveryPageEndsAtRootThenFails(t *testing.T) {
	t.Parallel()

	r := newTestRoster(t)
	for _, p := range allPages {
		sel := walk(t, r, p)
		for i := 0; sel.Page() != CoursePage; i++ {
			require.Less(t, i, len(allPages), "back did not reach the course page from %s", p)
			require.NoError(t, sel.Back())
		}
		require.Equal(t, Selection{page: CoursePage}, *sel)

		err := sel.Back()
		var it *InvalidTransitionError
		require.ErrorAs(t, err, &it)
		require.Equal(t, "Cannot go back any further", it.Error())
		require.Equal(t, CoursePage, sel.Page())
	}
}

func TestHomeResetsFromEveryPage(t *testing.T) {
	t.Parallel()

	r := newTestRoster(t)
	for _, p := range allPages {
		sel := walk(t, r, p)
		sel.NavigateBackToCoursePage()
		require.Equal(t, Selection{page: CoursePage}, *sel, "from %s", p)
	}
}

func TestResolveReportsStaleIdentifiers(t *testing.T) {
	t.Parallel()

	r := newTestRoster(t)
	sel := walk(t, r, StudentPage)
	res, err := sel.Resolve(r)
	require.NoError(t, err)
	require.Equal(t, "CS2103T", res.Course.Code)
	require.Equal(t, "T08", res.Group.Name)
	require.Nil(t, res.Student)

	_, err = sel.Resolve(model.NewRoster())
	require.ErrorIs(t, err, ErrStaleSelection)

	stale := NewSelection()
	require.NoError(t, stale.SelectCourse("CS2103T"))
	require.NoError(t, stale.SelectGroup("Z99"))
	_, err = stale.Resolve(r)
	require.ErrorIs(t, err, ErrStaleSelection)
}
