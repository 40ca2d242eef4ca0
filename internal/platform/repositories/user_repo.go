package repositories

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/davidmokos/coolify/internal/platform/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = "user_" + uuid.New().String()
	}
	user.CreatedAt = time.Now().Unix()

	_, err := r.db.Exec(`
		INSERT INTO users (id, team_id, email, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, user.ID, user.TeamID, user.Email, user.PasswordHash, user.CreatedAt)
	return err
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(`
		SELECT id, team_id, email, password_hash, created_at FROM users WHERE email = ?
	`, email).Scan(&user.ID, &user.TeamID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
