package repositories

import (
	"context"
	"database/sql"
	"errors"

	"stayback/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	query := `
		INSERT INTO users (name, email, password, avatar_url, is_pro, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, NOW(), NOW())
	`
	result, err := r.DB.ExecContext(ctx, query, u.Name, u.Email, u.Password, u.AvatarURL, u.IsPro)
	if err != nil {
		if isDuplicateEntryError(err) {
			return models.User{}, models.ErrDuplicateEmail
		}
		return models.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	u.ID = int(id)
	return u, nil
}

// GetUserByEmail returns the zero user when no row matches, so callers
// can do a duplicate-email lookup without error juggling.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	query := `
		SELECT id, name, email, password, avatar_url, is_pro, created_at, updated_at
		FROM users WHERE email = ?
	`
	u, err := r.scanUser(r.DB.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, nil
	}
	return u, err
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	query := `
		SELECT id, name, email, password, avatar_url, is_pro, created_at, updated_at
		FROM users WHERE id = ?
	`
	u, err := r.scanUser(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	return u, err
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, userID int, avatarURL string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE users SET avatar_url = ?, updated_at = NOW() WHERE id = ?`,
		avatarURL, userID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// SaveDeviceToken registers or replaces the user's push token.
func (r *UserRepository) SaveDeviceToken(ctx context.Context, userID int, token string) error {
	query := `
		INSERT INTO device_tokens (user_id, token, created_at)
		VALUES (?, ?, NOW())
		ON DUPLICATE KEY UPDATE token = VALUES(token)
	`
	_, err := r.DB.ExecContext(ctx, query, userID, token)
	return err
}

func (r *UserRepository) GetDeviceToken(ctx context.Context, userID int) (string, error) {
	var token string
	err := r.DB.QueryRowContext(ctx,
		`SELECT token FROM device_tokens WHERE user_id = ?`, userID,
	).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return token, err
}

func (r *UserRepository) scanUser(row *sql.Row) (models.User, error) {
	var (
		u         models.User
		avatar    sql.NullString
		updatedAt sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &avatar, &u.IsPro, &u.CreatedAt, &updatedAt)
	if err != nil {
		return models.User{}, err
	}
	if avatar.Valid && avatar.String != "" {
		u.AvatarURL = &avatar.String
	}
	if updatedAt.Valid {
		u.UpdatedAt = &updatedAt.Time
	}
	return u, nil
}
