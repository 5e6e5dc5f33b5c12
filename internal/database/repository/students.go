package repository

import "context"

// StudentRepo handles students.
type StudentRepo struct {
	db DBTX
}

func NewStudentRepo(db DBTX) *StudentRepo { return &StudentRepo{db: db} }

func (r *StudentRepo) Insert(ctx context.Context, s Student) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO students(id, group_id, student_id, name, phone, email, position)
	VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.GroupID, s.StudentID, s.Name, s.Phone, s.Email, s.Position)
	return err
}

func (r *StudentRepo) List(ctx context.Context) ([]Student, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, group_id, student_id, name, phone, email, position
	FROM students ORDER BY group_id, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Student
	for rows.Next() {
		var s Student
		if err := rows.Scan(&s.ID, &s.GroupID, &s.StudentID, &s.Name, &s.Phone, &s.Email, &s.Position); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
