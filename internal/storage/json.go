package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jask/clipboard/internal/model"
)

// JSONStore keeps the roster as one JSON document.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore { return &JSONStore{path: path} }

func (s *JSONStore) Path() string { return s.path }

// Load reads the document. A missing file is an empty roster.
func (s *JSONStore) Load(_ context.Context) (*model.Roster, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewRoster(), nil
		}
		return nil, &DataLoadError{Path: s.path, Err: err}
	}
	r, err := Unmarshal(data)
	if err != nil {
		return nil, &DataLoadError{Path: s.path, Err: err}
	}
	return r, nil
}

// Save writes through a temp file and renames it into place.
func (s *JSONStore) Save(_ context.Context, r *model.Roster) error {
	data, err := Marshal(r)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir data dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}
	return os.Rename(tmp, s.path)
}

type jsonRoster struct {
	Courses []jsonCourse `json:"courses"`
}

type jsonCourse struct {
	CourseCode string      `json:"courseCode"`
	Groups     []jsonGroup `json:"groups"`
}

type jsonGroup struct {
	GroupName string          `json:"groupName"`
	Students  []model.Student `json:"students"`
	Sessions  []jsonSession   `json:"sessions"`
}

type jsonSession struct {
	SessionName string          `json:"sessionName"`
	Attendance  map[string]bool `json:"attendance"`
}

// Marshal renders the roster as the persisted document.
func Marshal(r *model.Roster) ([]byte, error) {
	doc := jsonRoster{Courses: []jsonCourse{}}
	for _, c := range r.Courses() {
		jc := jsonCourse{CourseCode: c.Code, Groups: []jsonGroup{}}
		for _, g := range c.Groups() {
			jg := jsonGroup{GroupName: g.Name, Students: []model.Student{}, Sessions: []jsonSession{}}
			for _, s := range g.Students() {
				jg.Students = append(jg.Students, *s)
			}
			for _, se := range g.Sessions() {
				jg.Sessions = append(jg.Sessions, jsonSession{SessionName: se.Name, Attendance: se.Attendance()})
			}
			jc.Groups = append(jc.Groups, jg)
		}
		doc.Courses = append(doc.Courses, jc)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Unmarshal parses the persisted document, re-validating every record.
func Unmarshal(data []byte) (*model.Roster, error) {
	var doc jsonRoster
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	r := model.NewRoster()
	owners := map[string]string{}
	for _, jc := range doc.Courses {
		c, err := jc.toModel(owners)
		if err != nil {
			return nil, err
		}
		if err := r.AddCourse(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// owners maps each student id seen so far to its course and group, so a
// student listed in two groups is rejected.
func (jc jsonCourse) toModel(owners map[string]string) (*model.Course, error) {
	c, err := model.NewCourse(jc.CourseCode)
	if err != nil {
		return nil, err
	}
	for _, jg := range jc.Groups {
		g, err := jg.toModel(jc.CourseCode, owners)
		if err != nil {
			return nil, err
		}
		if err := c.AddGroup(g); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (jg jsonGroup) toModel(course string, owners map[string]string) (*model.Group, error) {
	g, err := model.NewGroup(jg.GroupName)
	if err != nil {
		return nil, err
	}
	for _, js := range jg.Students {
		s, err := model.NewStudent(js.ID, js.Name, js.Phone, js.Email)
		if err != nil {
			return nil, err
		}
		if err := g.AddStudent(s); err != nil {
			return nil, err
		}
		owner := course + "/" + jg.GroupName
		if prev, ok := owners[s.ID]; ok {
			return nil, fmt.Errorf("student %s is in both %s and %s", s.ID, prev, owner)
		}
		owners[s.ID] = owner
	}
	for _, jse := range jg.Sessions {
		se, err := model.NewSession(jse.SessionName)
		if err != nil {
			return nil, err
		}
		if err := g.AddSession(se); err != nil {
			return nil, err
		}
		for id, present := range jse.Attendance {
			if !g.HasStudent(id) {
				return nil, fmt.Errorf("session %s: attendance for unknown student %s", jse.SessionName, id)
			}
			se.SetPresent(id, present)
		}
	}
	return g, nil
}
