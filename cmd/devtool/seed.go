package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dagwood-games/hotdog-tycoon/internal/domain"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Seed database with a starter snapshot (fresh, midgame)"
}

func (c *SeedCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: fresh, midgame")
	}
	subcmd := args[0]

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		dbUser := getEnv("DB_USER", "postgres")
		dbPass := getEnv("DB_PASSWORD", "postgres")
		dbHost := getEnv("DB_HOST", "localhost")
		dbPort := getEnv("DB_PORT", "5432")
		dbName := getEnv("DB_NAME", "hotdogtycoon")

		dbURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPass, dbHost, dbPort, dbName)
	}

	PrintInfo("Connecting to database: %s", redactPassword(dbURL))

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	var snap *domain.StandSnapshot
	switch subcmd {
	case "fresh":
		snap = freshSnapshot()
	case "midgame":
		snap = midgameSnapshot()
	default:
		return fmt.Errorf("unknown seed subcommand: %s", subcmd)
	}

	state, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = db.Exec(
		`INSERT INTO stand_snapshots (schema_version, taken_at, state) VALUES ($1, $2, $3)`,
		snap.SchemaVersion, snap.TakenAt, state,
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	PrintSuccess("Seeded %s snapshot (balance %.0f)", subcmd, snap.Balance)
	return nil
}

func freshSnapshot() *domain.StandSnapshot {
	return &domain.StandSnapshot{
		SchemaVersion: domain.SnapshotSchemaVersion,
		TakenAt:       time.Now().UTC(),
		UpgradeLevels: map[string]int{},
	}
}

func midgameSnapshot() *domain.StandSnapshot {
	return &domain.StandSnapshot{
		SchemaVersion:    domain.SnapshotSchemaVersion,
		TakenAt:          time.Now().UTC(),
		QueueSize:        5,
		TotalProduced:    400,
		Balance:          350,
		TotalEarned:      900,
		TotalSpent:       550,
		TransactionCount: 430,
		UpgradeLevels: map[string]int{
			"faster_grill":    3,
			"premium_mustard": 1,
		},
		Prestige: domain.PrestigeState{
			LifetimeEarned: 900,
			MilestoneIndex: 2,
		},
	}
}

// redactPassword hides the credential portion of a connection string for logs
func redactPassword(connStr string) string {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return connStr
	}
	if _, has := u.User.Password(); has {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}
