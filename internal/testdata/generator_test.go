package testdata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRosterShapeAndDeterminism(t *testing.T) {
	t.Parallel()

	opts := Options{Courses: 3, Groups: 2, Students: 4, Sessions: 2, Seed: 42}
	r, err := Roster(opts)
	require.NoError(t, err)
	require.Equal(t, 3, r.Size())

	ids := map[string]bool{}
	for _, c := range r.Courses() {
		require.Len(t, c.Groups(), 2)
		for _, g := range c.Groups() {
			require.Len(t, g.Students(), 4)
			require.Len(t, g.Sessions(), 2)
			for _, s := range g.Students() {
				require.False(t, ids[s.ID], "duplicate id %s", s.ID)
				ids[s.ID] = true
			}
			for _, se := range g.Sessions() {
				require.Len(t, se.Attendance(), 4)
			}
		}
	}

	again, err := Roster(opts)
	require.NoError(t, err)
	for i, c := range again.Courses() {
		require.Equal(t, r.Courses()[i].Code, c.Code)
	}
}

func TestRosterEmpty(t *testing.T) {
	t.Parallel()

	r, err := Roster(Options{})
	require.NoError(t, err)
	require.Zero(t, r.Size())
}
