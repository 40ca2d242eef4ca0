package repositories

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/davidmokos/coolify/internal/platform/database"
	"github.com/davidmokos/coolify/internal/platform/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func createTestTeam(t *testing.T, db *sql.DB) *models.Team {
	team := &models.Team{Name: "acme"}
	if err := NewTeamRepository(db).Create(team); err != nil {
		t.Fatalf("Failed to create team: %v", err)
	}
	return team
}

func TestSettingsEnsureDefaults(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewSettingsRepository(db)
	team := createTestTeam(t, db)

	if err := repo.EnsureDefaults(team.ID); err != nil {
		t.Fatalf("EnsureDefaults failed: %v", err)
	}
	// Idempotent.
	if err := repo.EnsureDefaults(team.ID); err != nil {
		t.Fatalf("second EnsureDefaults failed: %v", err)
	}

	webhook, err := repo.GetWebhook(team.ID)
	if err != nil {
		t.Fatalf("GetWebhook failed: %v", err)
	}
	if webhook == nil {
		t.Fatal("expected a default webhook row")
	}
	if webhook.Enabled {
		t.Error("defaults must leave the channel disabled")
	}
	if !webhook.DeploymentSuccess || !webhook.DeploymentFailure {
		t.Error("defaults must enable deployment success and failure overrides")
	}
	if webhook.URL != "" || webhook.APIKey != "" {
		t.Errorf("defaults must leave url/api_key empty, got %q/%q", webhook.URL, webhook.APIKey)
	}

	for _, channel := range []string{"webhook", "discord", "slack", "telegram", "pushover", "email"} {
		settings, err := repo.Channel(team.ID, channel)
		if err != nil {
			t.Fatalf("Channel(%s) failed: %v", channel, err)
		}
		if settings == nil {
			t.Errorf("expected default row for %s", channel)
		}
	}
}

func TestSettingsAbsentRow(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewSettingsRepository(db)
	team := createTestTeam(t, db)

	webhook, err := repo.GetWebhook(team.ID)
	if err != nil {
		t.Fatalf("GetWebhook failed: %v", err)
	}
	if webhook != nil {
		t.Fatal("expected nil for a team without a settings row")
	}

	settings, err := repo.Channel(team.ID, "webhook")
	if err != nil {
		t.Fatalf("Channel failed: %v", err)
	}
	if settings != nil {
		t.Fatal("expected untyped nil from Channel on a missing row")
	}
}

func TestSettingsUnknownChannel(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewSettingsRepository(db)
	if _, err := repo.Channel("team_x", "pager"); err == nil {
		t.Fatal("expected error for unknown channel name")
	}
}

func TestSettingsUpdateWebhook(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewSettingsRepository(db)
	team := createTestTeam(t, db)
	if err := repo.EnsureDefaults(team.ID); err != nil {
		t.Fatalf("EnsureDefaults failed: %v", err)
	}

	err := repo.UpdateWebhook(&models.WebhookSettings{
		TeamID:            team.ID,
		Enabled:           true,
		URL:               "https://hooks.example.com/deploys",
		APIKey:            "k123",
		DeploymentSuccess: true,
		DeploymentFailure: false,
	})
	if err != nil {
		t.Fatalf("UpdateWebhook failed: %v", err)
	}

	got, err := repo.GetWebhook(team.ID)
	if err != nil {
		t.Fatalf("GetWebhook failed: %v", err)
	}
	if !got.Enabled || got.URL != "https://hooks.example.com/deploys" || got.APIKey != "k123" {
		t.Errorf("unexpected settings after update: %+v", got)
	}
	if !got.DeploymentSuccess || got.DeploymentFailure {
		t.Errorf("unexpected override flags after update: %+v", got)
	}
}

func TestSettingsUpdateTelegram(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewSettingsRepository(db)
	team := createTestTeam(t, db)
	if err := repo.EnsureDefaults(team.ID); err != nil {
		t.Fatalf("EnsureDefaults failed: %v", err)
	}

	err := repo.UpdateTelegram(&models.TelegramSettings{
		TeamID:  team.ID,
		Enabled: true,
		Token:   "bot-token",
		ChatID:  "-100123",
	})
	if err != nil {
		t.Fatalf("UpdateTelegram failed: %v", err)
	}

	got, err := repo.GetTelegram(team.ID)
	if err != nil {
		t.Fatalf("GetTelegram failed: %v", err)
	}
	if !got.Enabled || got.Token != "bot-token" || got.ChatID != "-100123" {
		t.Errorf("unexpected settings after update: %+v", got)
	}
}

func TestSettingsCascadeOnTeamDelete(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	teams := NewTeamRepository(db)
	repo := NewSettingsRepository(db)
	team := createTestTeam(t, db)
	if err := repo.EnsureDefaults(team.ID); err != nil {
		t.Fatalf("EnsureDefaults failed: %v", err)
	}

	if err := teams.Delete(team.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	webhook, err := repo.GetWebhook(team.ID)
	if err != nil {
		t.Fatalf("GetWebhook failed: %v", err)
	}
	if webhook != nil {
		t.Fatal("expected settings rows to cascade with the team")
	}
}
