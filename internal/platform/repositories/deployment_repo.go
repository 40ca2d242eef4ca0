package repositories

import (
	"database/sql"
	"time"

	"github.com/davidmokos/coolify/internal/platform/models"
)

type DeploymentRepository struct {
	db *sql.DB
}

func NewDeploymentRepository(db *sql.DB) *DeploymentRepository {
	return &DeploymentRepository{db: db}
}

func (r *DeploymentRepository) Create(d *models.Deployment) error {
	d.CreatedAt = time.Now().Unix()

	_, err := r.db.Exec(`
		INSERT INTO deployments (uuid, team_id, application_uuid, commit_sha, commit_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, d.UUID, d.TeamID, d.ApplicationUUID, d.CommitSHA, d.CommitMessage, d.CreatedAt)
	return err
}

// FindByUUID returns (nil, nil) when the deployment record is unknown; a miss
// only means the webhook payload goes out without commit enrichment.
func (r *DeploymentRepository) FindByUUID(uuid string) (*models.Deployment, error) {
	d := &models.Deployment{}
	var commitSHA, commitMessage sql.NullString

	err := r.db.QueryRow(`
		SELECT uuid, team_id, application_uuid, commit_sha, commit_message, created_at
		FROM deployments WHERE uuid = ?
	`, uuid).Scan(&d.UUID, &d.TeamID, &d.ApplicationUUID, &commitSHA, &commitMessage, &d.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if commitSHA.Valid {
		d.CommitSHA = commitSHA.String
	}
	if commitMessage.Valid {
		d.CommitMessage = commitMessage.String
	}

	return d, nil
}
