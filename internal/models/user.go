package models

import (
	"database/sql"
	"time"
)

// User is the database shape of a users row.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	Name         string         `db:"name"`
	Role         string         `db:"role"`
	AuthProvider string         `db:"auth_provider"`
	PasswordHash sql.NullString `db:"password_hash"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
