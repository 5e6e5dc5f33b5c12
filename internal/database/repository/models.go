package repository

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Course represents a course row.
type Course struct {
	ID       string
	Code     string
	Position int
}

// Group represents a course_groups row.
type Group struct {
	ID       string
	CourseID string
	Name     string
	Position int
}

// Student represents a student row.
type Student struct {
	ID        string
	GroupID   string
	StudentID string
	Name      string
	Phone     string
	Email     string
	Position  int
}

// Session represents a session row.
type Session struct {
	ID       string
	GroupID  string
	Name     string
	Position int
}

// Attendance represents one student's record in one session.
type Attendance struct {
	SessionID string
	StudentID string
	Present   bool
}
