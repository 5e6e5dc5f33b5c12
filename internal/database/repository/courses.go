package repository

import "context"

// CourseRepo handles courses and course_groups.
type CourseRepo struct {
	db DBTX
}

func NewCourseRepo(db DBTX) *CourseRepo { return &CourseRepo{db: db} }

func (r *CourseRepo) Insert(ctx context.Context, c Course) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO courses(id, code, position) VALUES (?, ?, ?)`, c.ID, c.Code, c.Position)
	return err
}

func (r *CourseRepo) InsertGroup(ctx context.Context, g Group) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO course_groups(id, course_id, name, position)
	VALUES (?, ?, ?, ?)`, g.ID, g.CourseID, g.Name, g.Position)
	return err
}

func (r *CourseRepo) List(ctx context.Context) ([]Course, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, code, position FROM courses ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Course
	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.ID, &c.Code, &c.Position); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CourseRepo) ListGroups(ctx context.Context) ([]Group, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, course_id, name, position FROM course_groups ORDER BY course_id, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Group
	for rows.Next() {
		var g Group
		if err := rows.Scan(&g.ID, &g.CourseID, &g.Name, &g.Position); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// DeleteAll clears every roster table, children first.
func (r *CourseRepo) DeleteAll(ctx context.Context) error {
	for _, table := range []string{"attendance", "sessions", "students", "course_groups", "courses"} {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return err
		}
	}
	return nil
}
