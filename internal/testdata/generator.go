// Package testdata generates sample rosters for demos and tests.
package testdata

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/jask/clipboard/internal/model"
)

// Options sizes a generated roster. Counts are per parent.
type Options struct {
	Courses  int
	Groups   int
	Students int
	Sessions int
	Seed     uint64
}

func DefaultOptions() Options {
	return Options{Courses: 2, Groups: 2, Students: 5, Sessions: 3, Seed: 1}
}

var (
	coursePrefixes = []string{"CS", "MA", "GEA", "ST", "EE", "IS", "LAJ"}
	firstNames     = []string{"Alex", "Bernice", "Charlotte", "David", "Irfan", "Roy", "Mei", "Siti", "Tan", "Yusuf"}
	lastNames      = []string{"Yeoh", "Yu", "Oliveiro", "Li", "Ibrahim", "Balakrishnan", "Ling", "Aminah", "Wei", "Khan"}
)

// Roster builds a valid roster. The same Options always give the same roster.
func Roster(opts Options) (*model.Roster, error) {
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	r := model.NewRoster()
	nextStudent := 1

	for len(r.Courses()) < opts.Courses {
		code := fmt.Sprintf("%s%04d", coursePrefixes[rng.IntN(len(coursePrefixes))], 1000+rng.IntN(9000))
		if r.HasCourse(code) {
			continue
		}
		c, err := model.NewCourse(code)
		if err != nil {
			return nil, err
		}
		if err := r.AddCourse(c); err != nil {
			return nil, err
		}
		for gi := range opts.Groups {
			g, err := model.NewGroup(fmt.Sprintf("T%02d", gi+1))
			if err != nil {
				return nil, err
			}
			if err := c.AddGroup(g); err != nil {
				return nil, err
			}
			for range opts.Students {
				s, err := student(rng, nextStudent)
				if err != nil {
					return nil, err
				}
				nextStudent++
				if err := g.AddStudent(s); err != nil {
					return nil, err
				}
			}
			for si := range opts.Sessions {
				se, err := model.NewSession(fmt.Sprintf("Tutorial%d", si+1))
				if err != nil {
					return nil, err
				}
				if err := g.AddSession(se); err != nil {
					return nil, err
				}
				for _, s := range g.Students() {
					se.SetPresent(s.ID, rng.IntN(10) < 7)
				}
			}
		}
	}
	return r, nil
}

// student makes the n-th student; ids are unique across the roster.
func student(rng *rand.Rand, n int) (*model.Student, error) {
	first := firstNames[rng.IntN(len(firstNames))]
	last := lastNames[rng.IntN(len(lastNames))]
	id := fmt.Sprintf("A%07d%c", n, 'A'+rune(n%26))
	phone := fmt.Sprintf("9%07d", rng.IntN(10_000_000))
	email := strings.ToLower(first+"."+last) + "@example.com"
	return model.NewStudent(id, first+" "+last, phone, email)
}
