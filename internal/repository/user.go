package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/rewritely/rewritely-go/internal/model"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
)

const userColumns = `id, username, email, password_hash, created_at, last_login`

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and sets the generated ID on the user struct.
// A duplicate-key failure from the UNIQUE indexes is reported as
// ErrDuplicateUsername or ErrDuplicateEmail depending on which key collided.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, user.Username, user.Email, user.PasswordHash)
	if err != nil {
		if dup, dupErr := classifyDuplicateEntry(err); dup {
			return dupErr
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}

// GetByUsername retrieves a user by their exact username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ?`
	return r.getOne(ctx, query, username)
}

// GetByEmail retrieves a user by their email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return r.getOne(ctx, query, email)
}

// GetByUsernameOrEmail retrieves a user whose username or email matches the
// given identifier. Used for login, where either field is accepted.
func (r *UserRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ? OR email = ?`
	return r.getOne(ctx, query, identifier, identifier)
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.getOne(ctx, query, id)
}

// TouchLastLogin sets last_login to the current time. Safe under concurrent
// logins: last write wins.
func (r *UserRepository) TouchLastLogin(ctx context.Context, id int64) error {
	query := `UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// Count returns the total number of users.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

func (r *UserRepository) getOne(ctx context.Context, query string, args ...any) (*model.User, error) {
	user := &model.User{}
	var lastLogin sql.NullTime

	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &lastLogin,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}

	return user, nil
}

// classifyDuplicateEntry inspects a MySQL duplicate entry error (code 1062)
// and maps it to the sentinel for whichever unique key was violated. Only the
// key name is matched, never the full text: the duplicated value also appears
// in the message, and a username like "my_email_acct" must not be mistaken
// for an email collision.
func classifyDuplicateEntry(err error) (bool, error) {
	if err == nil || !strings.Contains(err.Error(), "Duplicate entry") {
		return false, nil
	}
	msg := err.Error()
	if strings.Contains(msg, "for key 'users.email'") || strings.Contains(msg, "for key 'email'") {
		return true, ErrDuplicateEmail
	}
	return true, ErrDuplicateUsername
}
