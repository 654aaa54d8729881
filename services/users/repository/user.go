package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/kshitijrv/mingle/internal/pkg/models"
	"github.com/kshitijrv/mingle/services/users"
)

const userColumns = `
	id, name, email, username, password, phone, picture, provider,
	is_verified, is_2fa_enabled, otp, otp_expiry, otp_attempts,
	security_answer, created_at, updated_at`

// GetUserByID retrieves a user by primary key
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE email = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE username = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

// GetUserByEmailOrUsername retrieves the first user matching either field.
// Email matches win when both exist so conflict reporting stays stable.
func (r *UserRepo) GetUserByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	query := `
		SELECT` + userColumns + `
		FROM users
		WHERE email = $1 OR username = $2
		ORDER BY (email = $1) DESC
		LIMIT 1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email or username: %w", err)
	}
	return &user, nil
}

// CreateUser inserts a new user. Unique violations on email or username map
// to the matching domain conflict error.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, name, email, username, password, phone, picture,
			provider, is_verified, is_2fa_enabled, otp, otp_expiry, otp_attempts,
			security_answer, created_at, updated_at
		) VALUES (:id, :name, :email, :username, :password, :phone, :picture,
			:provider, :is_verified, :is_2fa_enabled, :otp, :otp_expiry, :otp_attempts,
			:security_answer, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		if conflict := conflictError(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// SetOTP stores a fresh code with its expiry and zeroes the attempt counter
func (r *UserRepo) SetOTP(ctx context.Context, email, code string, expiry time.Time) error {
	query := `
		UPDATE users
		SET otp = $1, otp_expiry = $2, otp_attempts = 0, updated_at = NOW()
		WHERE email = $3`

	return r.execForEmail(ctx, query, "failed to set OTP", code, expiry, email)
}

// SetOTPAttempts records the number of failed verification attempts
func (r *UserRepo) SetOTPAttempts(ctx context.Context, email string, attempts int) error {
	query := `
		UPDATE users
		SET otp_attempts = $1, updated_at = NOW()
		WHERE email = $2`

	return r.execForEmail(ctx, query, "failed to set OTP attempts", attempts, email)
}

// ClearOTP removes the pending challenge, optionally flipping the account
// to verified in the same statement.
func (r *UserRepo) ClearOTP(ctx context.Context, email string, markVerified bool) error {
	query := `
		UPDATE users
		SET otp = NULL, otp_expiry = NULL, otp_attempts = 0,
			is_verified = (is_verified OR $1), updated_at = NOW()
		WHERE email = $2`

	return r.execForEmail(ctx, query, "failed to clear OTP", markVerified, email)
}

// UpdatePassword overwrites the stored password hash
func (r *UserRepo) UpdatePassword(ctx context.Context, email, hashedPassword string) error {
	query := `
		UPDATE users
		SET password = $1, updated_at = NOW()
		WHERE email = $2`

	return r.execForEmail(ctx, query, "failed to update password", hashedPassword, email)
}

// execForEmail runs an UPDATE keyed by email and turns a zero-row result
// into ErrUserNotFound.
func (r *UserRepo) execForEmail(ctx context.Context, query, failMsg string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", failMsg, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", failMsg, err)
	}
	if rows == 0 {
		return users.ErrUserNotFound
	}
	return nil
}

// conflictError maps a postgres unique violation to the domain conflict it
// represents, or returns nil for any other error.
func conflictError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch pgErr.ConstraintName {
	case "users_email_key":
		return users.ErrEmailTaken
	case "users_username_key":
		return users.ErrUsernameTaken
	default:
		return nil
	}
}
