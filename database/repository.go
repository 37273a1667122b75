package database

import (
	"database/sql"
	"time"

	"property-manager/models"
)

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// ==================== USERS ====================

func (r *Repository) GetUser(userID string) (*models.User, error) {
	var user models.User

	err := r.db.QueryRow(`
		SELECT id, email, name, picture, created_at, last_login_at
		FROM users WHERE id = ?
	`, userID).Scan(
		&user.ID, &user.Email, &user.Name, &user.Picture,
		&user.CreatedAt, &user.LastLoginAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) UpsertUser(user *models.User) error {
	_, err := r.db.Exec(`
		INSERT INTO users (id, email, name, picture, created_at, last_login_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			email = excluded.email,
			name = excluded.name,
			picture = excluded.picture,
			last_login_at = excluded.last_login_at,
			updated_at = excluded.updated_at
	`,
		user.ID, user.Email, user.Name, user.Picture,
		user.CreatedAt, user.LastLoginAt, time.Now(),
	)
	return err
}
