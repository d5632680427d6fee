package auth

import (
	"database/sql"
	"time"

	"github.com/bitswalk/uam/src/common/errors"
	"github.com/google/uuid"
)

// Repository handles user persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new auth repository.
// Note: The users table is created by db.Database.initSchema()
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// NewUser creates a new user with a generated UUID. Administrator accounts
// always reference themselves as their own admin; the id is generated in
// process, so the self-reference is written in the same insert. Other roles
// carry the supplied adminID as given.
func NewUser(name, email, passwordHash string, role Role, adminID *string) *User {
	now := time.Now().UTC()
	user := &User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if role == RoleAdmin {
		user.AdminID = &user.ID
	} else {
		user.AdminID = adminID
	}

	return user
}

// CreateUser creates a new user in the database using a transaction to ensure
// the duplicate-email check and the insert are atomic
func (r *Repository) CreateUser(user *User) error {
	tx, err := r.db.Begin()
	if err != nil {
		return errors.ErrDatabaseTransaction.WithCause(err)
	}
	defer tx.Rollback() // Will be no-op if commit succeeds

	// Check if email already exists
	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", user.Email).Scan(&count); err != nil {
		return errors.ErrDatabaseQuery.WithCause(err)
	}
	if count > 0 {
		return errors.ErrDuplicateEmail
	}

	// Insert the new user
	_, err = tx.Exec(`
		INSERT INTO users (id, name, email, password_hash, role, admin_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, user.ID, user.Name, user.Email, user.PasswordHash, string(user.Role), user.AdminID, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return errors.ErrDatabaseQuery.WithCause(err)
	}

	if err := tx.Commit(); err != nil {
		return errors.ErrDatabaseTransaction.WithCause(err)
	}

	return nil
}

// GetUserByEmail retrieves a user by email. Used on the login path, where an
// unknown email is a client error rather than a missing resource.
func (r *Repository) GetUserByEmail(email string) (*User, error) {
	user, err := r.scanUser(r.db.QueryRow(`
		SELECT id, name, email, password_hash, role, admin_id, created_at, updated_at
		FROM users WHERE email = ?
	`, email))

	if err == sql.ErrNoRows {
		return nil, errors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.ErrDatabaseQuery.WithCause(err)
	}

	return user, nil
}

// GetUserByID retrieves a user by ID
func (r *Repository) GetUserByID(id string) (*User, error) {
	user, err := r.scanUser(r.db.QueryRow(`
		SELECT id, name, email, password_hash, role, admin_id, created_at, updated_at
		FROM users WHERE id = ?
	`, id))

	if err == sql.ErrNoRows {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		return nil, errors.ErrDatabaseQuery.WithCause(err)
	}

	return user, nil
}

// GetUserInGroup retrieves a user by ID, restricted to the admin group of
// the given caller. A row outside the group is indistinguishable from a
// missing one.
func (r *Repository) GetUserInGroup(id, callerID string) (*User, error) {
	user, err := r.scanUser(r.db.QueryRow(`
		SELECT id, name, email, password_hash, role, admin_id, created_at, updated_at
		FROM users WHERE id = ? AND (admin_id = ? OR id = ?)
	`, id, callerID, callerID))

	if err == sql.ErrNoRows {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		return nil, errors.ErrDatabaseQuery.WithCause(err)
	}

	return user, nil
}

// UpdateUserInGroup updates a user's name and email within the caller's admin
// group and returns the updated row. Empty fields keep their current value.
func (r *Repository) UpdateUserInGroup(id, callerID, name, email string) (*User, error) {
	result, err := r.db.Exec(`
		UPDATE users
		SET name = COALESCE(NULLIF(?, ''), name),
		    email = COALESCE(NULLIF(?, ''), email),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND (admin_id = ? OR id = ?)
	`, name, email, id, callerID, callerID)
	if err != nil {
		return nil, errors.ErrDatabaseQuery.WithCause(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.ErrDatabaseQuery.WithCause(err)
	}
	if affected == 0 {
		return nil, errors.ErrNotFound
	}

	return r.GetUserInGroup(id, callerID)
}

// DeleteUserInGroup deletes a user by ID within the caller's admin group
func (r *Repository) DeleteUserInGroup(id, callerID string) error {
	result, err := r.db.Exec(`
		DELETE FROM users WHERE id = ? AND (admin_id = ? OR id = ?)
	`, id, callerID, callerID)
	if err != nil {
		return errors.ErrDatabaseQuery.WithCause(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseQuery.WithCause(err)
	}
	if affected == 0 {
		return errors.ErrNotFound
	}

	return nil
}

// ListUsersByAdmin retrieves all users whose admin_id references the given
// admin. Administrators reference themselves, so the admin appears in its
// own listing.
func (r *Repository) ListUsersByAdmin(adminID string) ([]*User, error) {
	rows, err := r.db.Query(`
		SELECT id, name, email, password_hash, role, admin_id, created_at, updated_at
		FROM users WHERE admin_id = ?
		ORDER BY created_at
	`, adminID)
	if err != nil {
		return nil, errors.ErrDatabaseQuery.WithCause(err)
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		user := &User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
			&user.Role, &user.AdminID, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, errors.ErrDatabaseQuery.WithCause(err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseQuery.WithCause(err)
	}

	return users, nil
}

// CountUsers returns the total number of users
func (r *Repository) CountUsers() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, errors.ErrDatabaseQuery.WithCause(err)
	}
	return count, nil
}

// scanUser scans a single user row
func (r *Repository) scanUser(row *sql.Row) (*User, error) {
	user := &User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.AdminID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}
