package models

type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

type User struct {
	ID           string `json:"id"`
	TeamID       string `json:"team_id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	CreatedAt    int64  `json:"created_at"`

	Team *Team `json:"team,omitempty"`
}

// Deployment is the record consulted by renderers to enrich webhook payloads
// with commit information. Rows are written by the deployment pipeline.
type Deployment struct {
	UUID            string `json:"uuid"`
	TeamID          string `json:"team_id"`
	ApplicationUUID string `json:"application_uuid"`
	CommitSHA       string `json:"commit_sha"`
	CommitMessage   string `json:"commit_message"`
	CreatedAt       int64  `json:"created_at"`
}
