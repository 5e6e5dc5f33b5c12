package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/clipboard/internal/database"
	"github.com/jask/clipboard/internal/database/repository"
	"github.com/jask/clipboard/internal/model"
)

// SQLiteStore keeps the roster in normalized tables. Save replaces the whole
// snapshot in one transaction.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) Close() error { return s.db.Close() }

// rowID derives a stable id from an entity's natural key.
func rowID(kind string, parts ...string) string {
	key := kind
	for _, p := range parts {
		key += "/" + p
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}

func (s *SQLiteStore) Save(ctx context.Context, r *model.Roster) error {
	return database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		courses := repository.NewCourseRepo(tx)
		students := repository.NewStudentRepo(tx)
		sessions := repository.NewSessionRepo(tx)
		if err := courses.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear roster: %w", err)
		}
		for ci, c := range r.Courses() {
			courseID := rowID("course", c.Code)
			if err := courses.Insert(ctx, repository.Course{ID: courseID, Code: c.Code, Position: ci}); err != nil {
				return fmt.Errorf("insert course %s: %w", c.Code, err)
			}
			for gi, g := range c.Groups() {
				groupID := rowID("group", c.Code, g.Name)
				if err := courses.InsertGroup(ctx, repository.Group{ID: groupID, CourseID: courseID, Name: g.Name, Position: gi}); err != nil {
					return fmt.Errorf("insert group %s: %w", g.Name, err)
				}
				for si, st := range g.Students() {
					row := repository.Student{
						ID:        rowID("student", st.ID),
						GroupID:   groupID,
						StudentID: st.ID,
						Name:      st.Name,
						Phone:     st.Phone,
						Email:     st.Email,
						Position:  si,
					}
					if err := students.Insert(ctx, row); err != nil {
						return fmt.Errorf("insert student %s: %w", st.ID, err)
					}
				}
				for sei, se := range g.Sessions() {
					sessionID := rowID("session", c.Code, g.Name, se.Name)
					if err := sessions.Insert(ctx, repository.Session{ID: sessionID, GroupID: groupID, Name: se.Name, Position: sei}); err != nil {
						return fmt.Errorf("insert session %s: %w", se.Name, err)
					}
					for studentID, present := range se.Attendance() {
						if err := sessions.SetAttendance(ctx, repository.Attendance{SessionID: sessionID, StudentID: studentID, Present: present}); err != nil {
							return fmt.Errorf("insert attendance %s/%s: %w", se.Name, studentID, err)
						}
					}
				}
			}
		}
		return nil
	})
}

func (s *SQLiteStore) Load(ctx context.Context) (*model.Roster, error) {
	r, err := s.load(ctx)
	if err != nil {
		return nil, &DataLoadError{Path: s.path, Err: err}
	}
	return r, nil
}

func (s *SQLiteStore) load(ctx context.Context) (*model.Roster, error) {
	courseRepo := repository.NewCourseRepo(s.db)
	courseRows, err := courseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	groupRows, err := courseRepo.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	studentRows, err := repository.NewStudentRepo(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	sessionRepo := repository.NewSessionRepo(s.db)
	sessionRows, err := sessionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	attendanceRows, err := sessionRepo.ListAttendance(ctx)
	if err != nil {
		return nil, err
	}

	r := model.NewRoster()
	courses := map[string]*model.Course{}
	for _, row := range courseRows {
		c, err := model.NewCourse(row.Code)
		if err != nil {
			return nil, err
		}
		if err := r.AddCourse(c); err != nil {
			return nil, err
		}
		courses[row.ID] = c
	}
	groups := map[string]*model.Group{}
	for _, row := range groupRows {
		c, ok := courses[row.CourseID]
		if !ok {
			return nil, fmt.Errorf("group %s: unknown course %s", row.Name, row.CourseID)
		}
		g, err := model.NewGroup(row.Name)
		if err != nil {
			return nil, err
		}
		if err := c.AddGroup(g); err != nil {
			return nil, err
		}
		groups[row.ID] = g
	}
	for _, row := range studentRows {
		g, ok := groups[row.GroupID]
		if !ok {
			return nil, fmt.Errorf("student %s: unknown group %s", row.StudentID, row.GroupID)
		}
		st, err := model.NewStudent(row.StudentID, row.Name, row.Phone, row.Email)
		if err != nil {
			return nil, err
		}
		if err := g.AddStudent(st); err != nil {
			return nil, err
		}
	}
	type sessionOf struct {
		session *model.Session
		group   *model.Group
	}
	sessions := map[string]sessionOf{}
	for _, row := range sessionRows {
		g, ok := groups[row.GroupID]
		if !ok {
			return nil, fmt.Errorf("session %s: unknown group %s", row.Name, row.GroupID)
		}
		se, err := model.NewSession(row.Name)
		if err != nil {
			return nil, err
		}
		if err := g.AddSession(se); err != nil {
			return nil, err
		}
		sessions[row.ID] = sessionOf{session: se, group: g}
	}
	for _, row := range attendanceRows {
		so, ok := sessions[row.SessionID]
		if !ok {
			return nil, fmt.Errorf("attendance for unknown session %s", row.SessionID)
		}
		if !so.group.HasStudent(row.StudentID) {
			return nil, fmt.Errorf("session %s: attendance for unknown student %s", so.session.Name, row.StudentID)
		}
		so.session.SetPresent(row.StudentID, row.Present)
	}
	return r, nil
}
