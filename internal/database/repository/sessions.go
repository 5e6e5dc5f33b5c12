package repository

import "context"

// SessionRepo handles sessions and their attendance rows.
type SessionRepo struct {
	db DBTX
}

func NewSessionRepo(db DBTX) *SessionRepo { return &SessionRepo{db: db} }

func (r *SessionRepo) Insert(ctx context.Context, s Session) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO sessions(id, group_id, name, position)
	VALUES (?, ?, ?, ?)`, s.ID, s.GroupID, s.Name, s.Position)
	return err
}

func (r *SessionRepo) SetAttendance(ctx context.Context, a Attendance) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO attendance(session_id, student_id, present) VALUES (?, ?, ?)
	ON CONFLICT(session_id, student_id) DO UPDATE SET present=excluded.present;
	`, a.SessionID, a.StudentID, a.Present)
	return err
}

func (r *SessionRepo) List(ctx context.Context) ([]Session, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, group_id, name, position FROM sessions ORDER BY group_id, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.GroupID, &s.Name, &s.Position); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SessionRepo) ListAttendance(ctx context.Context) ([]Attendance, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT session_id, student_id, present FROM attendance`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Attendance
	for rows.Next() {
		var a Attendance
		if err := rows.Scan(&a.SessionID, &a.StudentID, &a.Present); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
