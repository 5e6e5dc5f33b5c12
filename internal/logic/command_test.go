package logic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/clipboard/internal/model"
)

func TestSelectCourseByIndex(t *testing.T) {
	t.Parallel()

	r := newTestRoster(t)
	courses := r.Courses()
	for i := 0; i < len(courses)+2; i++ {
		sel := NewSelection()
		res, err := NewSelect(i).Execute(r, sel)
		if i < len(courses) {
			require.NoError(t, err)
			require.Equal(t, GroupPage, sel.Page())
			require.Equal(t, courses[i].Code, sel.CourseCode())
			require.Contains(t, res.Message, courses[i].Code)
			require.False(t, res.WillModifyState)
			continue
		}
		var ie *InvalidIndexError
		require.ErrorAs(t, err, &ie)
		require.Equal(t, EntityCourse, ie.Entity)
		require.Equal(t, "The course index provided is invalid", err.Error())
		require.Equal(t, *NewSelection(), *sel)
	}
}

func TestSelectThenBackScenario(t *testing.T) {
	t.Parallel()

	r := model.NewRoster()
	c, err := model.NewCourse("CS2103T")
	require.NoError(t, err)
	require.NoError(t, r.AddCourse(c))
	sel := NewSelection()

	res := exec(t, r, sel, "select 1")
	require.Equal(t, GroupPage, sel.Page())
	require.Contains(t, res.Message, "CS2103T")
	require.Equal(t, KindSelect, res.Command.Kind)

	res = exec(t, r, sel, "back")
	require.Equal(t, CoursePage, sel.Page())
	require.Equal(t, "Back to course page", res.Message)
	require.Equal(t, KindBack, res.Command.Kind)
}

func TestSelectResolvesAgainstCurrentPageList(t *testing.T) {
	t.Parallel()

	r := newTestRoster(t)
	sel := NewSelection()

	res := exec(t, r, sel, "select 1")
	require.Equal(t, "[GROUP PAGE]\nViewing: groups for course CS2103T", res.Message)

	res = exec(t, r, sel, "select 1")
	require.Equal(t, "[STUDENT PAGE]\nViewing: students in group T08 of CS2103T", res.Message)
	require.Equal(t, StudentPage, sel.Page())

	res = exec(t, r, sel, "select 2")
	require.Equal(t, "Viewing: Bea (A0000002B)", res.Message)
	require.Equal(t, "A0000002B", sel.StudentID())

	err := execErr(t, r, sel, "select 3")
	var ie *InvalidIndexError
	require.ErrorAs(t, err, &ie)
	require.Equal(t, EntityStudent, ie.Entity)

	exec(t, r, sel, "back")
	require.Equal(t, GroupPage, sel.Page())
	res = exec(t, r, sel, "session 1")
	require.Equal(t, "[SESSION PAGE]\nViewing: sessions in group T08 of CS2103T", res.Message)
	require.Equal(t, SessionPage, sel.Page())

	err = execErr(t, r, sel, "select 2")
	require.ErrorAs(t, err, &ie)
	require.Equal(t, EntitySession, ie.Entity)

	res = exec(t, r, sel, "select 1")
	require.Equal(t, "Viewing: session attendance for Tutorial1", res.Message)
	require.Equal(t, SessionPage, sel.Page())
}

func TestGroupIndexOutOfRange(t *testing.T) {
	t.Parallel()

	r := newTestRoster(t)
	sel := walk(t, r, GroupPage)
	before := *sel
	for _, in := range []string{"select 3", "session 3"} {
		err := execErr(t, r, sel, in)
		var ie *InvalidIndexError
		require.ErrorAs(t, err, &ie, in)
		require.Equal(t, EntityGroup, ie.Entity)
		require.Equal(t, before, *sel)
	}
}

func TestOpenSessionsOnlyFromGroupPage(t *testing.T) {
	t.Parallel()

	r := newTestRoster(t)
	sel := NewSelection()
	err := execErr(t, r, sel, "session 1")
	var wp *WrongPageError
	require.ErrorAs(t, err, &wp)
	require.Equal(t, GroupPage, wp.Required)
	require.Equal(t, CoursePage, sel.Page())
}

func TestAddCourse(t *testing.T) {
	t.Parallel()

	r := newTestRoster(t)
	sel := NewSelection()

	res := exec(t, r, sel, "add course cs2101")
	require.Equal(t, "New course added: CS2101", res.Message)
	require.True(t, res.WillModifyState)
	require.Equal(t, 3, r.Size())

	err := execErr(t, r, sel, "add course CS2103T")
	var de *DuplicateEntityError
	require.ErrorAs(t, err, &de)
	require.Equal(t, MessageDuplicateCourse, err.Error())
	require.Equal(t, 3, r.Size())

	sel = walk(t, r, GroupPage)
	err = execErr(t, r, sel, "add course GEA1000")
	var wp *WrongPageError
	require.ErrorAs(t, err, &wp)
	require.Equal(t, "Wrong page. Navigate to course page to add course", err.Error())
	require.Equal(t, 3, r.Size())
}

func TestAddSessionDuplicateScenario(t *testing.T) {
	t.Parallel()

	r := newTestRoster(t)
	sel := walk(t, r, SessionPage)
	require.Equal(t, "T08", sel.GroupName())

	err := execErr(t, r, sel, "add session Tutorial1")
	require.ErrorIs(t, err, ErrDuplicateEntity)
	require.Equal(t, "This session already exists in the course", err.Error())

	res := exec(t, r, sel, "add session Tutorial2")
	require.Equal(t, "New session added in T08: Tutorial2", res.Message)
	g := mustGroup(t, r, "CS2103T", "T08")
	require.Len(t, g.Sessions(), 2)
	require.Equal(t, map[string]bool{"A0000001A": false, "A0000002B": false}, g.Sessions()[1].Attendance())

	sel = walk(t, r, StudentPage)
	err = execErr(t, r, sel, "add session Tutorial3")
	require.ErrorIs(t, err, ErrWrongPage)
}

func TestAddGroupAndStudent(t *testing.T) {
	t.Parallel()

	r := newTestRoster(t)
	sel := walk(t, r, GroupPage)

	res := exec(t, r, sel, "add group W10")
	require.Equal(t, "New group added in CS2103T: W10", res.Message)
	err := execErr(t, r, sel, "add group T08")
	require.Equal(t, MessageDuplicateGroup, err.Error())

	exec(t, r, sel, "select 3")
	require.Equal(t, "W10", sel.GroupName())
	res = exec(t, r, sel, "add student n/Charlotte Oliveiro sid/a0000003c p/93210283 e/charlotte@example.com")
	require.Equal(t, "New student added in W10: Charlotte Oliveiro (A0000003C)", res.Message)
	require.True(t, res.WillModifyState)

	// a student belongs to exactly one group
	err = execErr(t, r, sel, "add student n/Alex sid/A0000001A")
	var de *DuplicateEntityError
	require.ErrorAs(t, err, &de)
	require.Equal(t, MessageDuplicateStudent, err.Error())
	require.Len(t, mustGroup(t, r, "CS2103T", "W10").Students(), 1)
}

func TestAttendanceFlow(t *testing.T) {
	t.Parallel()

	r := newTestRoster(t)
	sel := walk(t, r, SessionPage)
	tut := mustSession(t, r, "Tutorial1")

	err := execErr(t, r, sel, "select student 1")
	require.ErrorIs(t, err, ErrInvalidTransition, "session must be selected first")
	require.Equal(t, SessionPage, sel.Page())

	err = execErr(t, r, sel, "mark")
	require.ErrorIs(t, err, ErrWrongPage)

	exec(t, r, sel, "select 1")
	err = execErr(t, r, sel, "select student 3")
	require.ErrorIs(t, err, ErrInvalidIndex)

	res := exec(t, r, sel, "select student 2")
	require.Equal(t, SessionStudentPage, sel.Page())
	require.Equal(t, "A0000002B", sel.SessionStudentID())
	require.Equal(t, "[ATTENDANCE PAGE]\nViewing: attendance of A0000002B for Tutorial1", res.Message)

	res = exec(t, r, sel, "mark")
	require.Equal(t, "Marked A0000002B as present for Tutorial1", res.Message)
	require.True(t, res.WillModifyState)
	require.Equal(t, map[string]bool{"A0000001A": false, "A0000002B": true}, tut.Attendance())

	res = exec(t, r, sel, "mark 1")
	require.Equal(t, "Marked A0000001A as present for Tutorial1", res.Message)
	require.Equal(t, "A0000002B", sel.SessionStudentID(), "mark with index leaves the selection alone")

	exec(t, r, sel, "unmark")
	require.Equal(t, map[string]bool{"A0000001A": true, "A0000002B": false}, tut.Attendance())

	err = execErr(t, r, sel, "unmark 5")
	require.ErrorIs(t, err, ErrInvalidIndex)
	require.Equal(t, map[string]bool{"A0000001A": true, "A0000002B": false}, tut.Attendance())

	exec(t, r, sel, "select 1")
	require.Equal(t, "A0000001A", sel.SessionStudentID())

	list, err := CurrentList(sel, r)
	require.NoError(t, err)
	require.Equal(t, []Item{
		{Key: "A0000001A", Label: "[x] Alex (A0000001A)"},
		{Key: "A0000002B", Label: "[ ] Bea (A0000002B)"},
	}, list.Items)

	res = exec(t, r, sel, "back")
	require.Equal(t, "Back to session page of T08", res.Message)
	require.Equal(t, SessionPage, sel.Page())
	require.Equal(t, "Tutorial1", sel.SessionName())
}

func TestHomeAndMiscCommands(t *testing.T) {
	t.Parallel()

	r := newTestRoster(t)
	for _, p := range allPages {
		sel := walk(t, r, p)
		res := exec(t, r, sel, "home")
		require.Equal(t, KindHome, res.Command.Kind)
		require.Equal(t, *NewSelection(), *sel)
	}

	sel := walk(t, r, StudentPage)
	res := exec(t, r, sel, "help")
	require.Contains(t, res.Message, UsageSelect)
	require.Contains(t, res.Message, UsageAddStudent)
	require.Equal(t, StudentPage, sel.Page())

	res = exec(t, r, sel, "exit")
	require.Equal(t, KindExit, res.Command.Kind)
	require.False(t, res.WillModifyState)
}

func TestBackMessages(t *testing.T) {
	t.Parallel()

	r := newTestRoster(t)
	res := exec(t, r, walk(t, r, StudentPage), "back")
	require.Equal(t, "Back to group page of CS2103T", res.Message)
	res = exec(t, r, walk(t, r, SessionPage), "back")
	require.Equal(t, "Back to group page of CS2103T", res.Message)

	err := execErr(t, r, NewSelection(), "back")
	require.ErrorIs(t, err, ErrInvalidTransition)
	require.Equal(t, "Cannot go back any further", err.Error())
}

func TestWillModifyStateByKind(t *testing.T) {
	t.Parallel()

	modifying := map[Kind]bool{
		KindAddCourse: true, KindAddGroup: true, KindAddStudent: true,
		KindAddSession: true, KindMark: true, KindUnmark: true,
	}
	for _, k := range Kinds {
		require.Equal(t, modifying[k], Command{Kind: k}.WillModifyState(), string(k))
	}
}

func TestCurrentListPerPage(t *testing.T) {
	t.Parallel()

	r := newTestRoster(t)
	want := map[Page]struct {
		entity EntityKind
		keys   []string
	}{
		CoursePage:         {EntityCourse, []string{"CS2103T", "MA1521"}},
		GroupPage:          {EntityGroup, []string{"T08", "T09"}},
		StudentPage:        {EntityStudent, []string{"A0000001A", "A0000002B"}},
		SessionPage:        {EntitySession, []string{"Tutorial1"}},
		SessionStudentPage: {EntityStudent, []string{"A0000001A", "A0000002B"}},
	}
	for _, p := range allPages {
		list, err := CurrentList(walk(t, r, p), r)
		require.NoError(t, err)
		require.Equal(t, p, list.Page)
		require.Equal(t, want[p].entity, list.Entity, p)
		var keys []string
		for _, it := range list.Items {
			keys = append(keys, it.Key)
		}
		require.Equal(t, want[p].keys, keys, p)
	}
}

func mustGroup(t *testing.T, r *model.Roster, course, group string) *model.Group {
	t.Helper()
	c, ok := r.Course(course)
	require.True(t, ok)
	g, ok := c.Group(group)
	require.True(t, ok)
	return g
}

func mustSession(t *testing.T, r *model.Roster, name string) *model.Session {
	t.Helper()
	se, ok := mustGroup(t, r, "CS2103T", "T08").Session(name)
	require.True(t, ok)
	return se
}
