package repositories

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/davidmokos/coolify/internal/platform/models"
)

type TeamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(team *models.Team) error {
	if team.ID == "" {
		team.ID = "team_" + uuid.New().String()
	}
	team.CreatedAt = time.Now().Unix()
	team.UpdatedAt = team.CreatedAt

	_, err := r.db.Exec(`
		INSERT INTO teams (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, team.ID, team.Name, team.CreatedAt, team.UpdatedAt)
	return err
}

func (r *TeamRepository) GetByID(id string) (*models.Team, error) {
	team := &models.Team{}
	err := r.db.QueryRow(`
		SELECT id, name, created_at, updated_at FROM teams WHERE id = ?
	`, id).Scan(&team.ID, &team.Name, &team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return team, nil
}

func (r *TeamRepository) List() ([]*models.Team, error) {
	rows, err := r.db.Query(`SELECT id, name, created_at, updated_at FROM teams ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []*models.Team
	for rows.Next() {
		team := &models.Team{}
		if err := rows.Scan(&team.ID, &team.Name, &team.CreatedAt, &team.UpdatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

// Delete removes the team; settings, users and deployments cascade.
func (r *TeamRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM teams WHERE id = ?`, id)
	return err
}
