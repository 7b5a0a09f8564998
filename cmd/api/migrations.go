// cmd/api/migrations.go
// Database schema setup, run at startup

package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/jmoiron/sqlx"
)

// runMigrations creates the schema if it does not exist. Statements are
// idempotent so restarts against an existing database are safe.
func runMigrations(db *sqlx.DB) error {
	migrations := []string{
		// Users with embedded golf profile. Discovery reads these columns
		// directly rather than joining a separate profile table.
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(100) UNIQUE NOT NULL,
			display_name VARCHAR(100) NOT NULL DEFAULT '',
			email VARCHAR(255) UNIQUE,
			password_hash VARCHAR(255),
			location_lat DOUBLE PRECISION NOT NULL DEFAULT 0,
			location_lng DOUBLE PRECISION NOT NULL DEFAULT 0,
			city VARCHAR(100) NOT NULL DEFAULT '',
			handicap INTEGER NOT NULL DEFAULT 54 CHECK (handicap BETWEEN -10 AND 54),
			preferred_times TEXT[] NOT NULL DEFAULT '{}',
			playing_style VARCHAR(30) NOT NULL DEFAULT 'casual',
			pace_of_play VARCHAR(20) NOT NULL DEFAULT 'moderate',
			preferred_group_size VARCHAR(20) NOT NULL DEFAULT 'flexible',
			is_verified BOOLEAN NOT NULL DEFAULT FALSE,
			is_discoverable BOOLEAN NOT NULL DEFAULT TRUE,
			avg_rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_rounds INTEGER NOT NULL DEFAULT 0,
			subscription_tier VARCHAR(20) NOT NULL DEFAULT 'free',
			last_active TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// Append-only swipe log. Repeat swipes on the same target insert a
		// new row; readers take the latest by created_at.
		`CREATE TABLE IF NOT EXISTS swipes (
			id SERIAL PRIMARY KEY,
			actor_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			target_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			direction VARCHAR(10) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// Matches store the pair normalized (user1_id < user2_id) so the
		// unique constraint makes match creation idempotent.
		`CREATE TABLE IF NOT EXISTS matches (
			id SERIAL PRIMARY KEY,
			user1_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			user2_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT matches_pair_unique UNIQUE (user1_id, user2_id),
			CONSTRAINT matches_pair_ordered CHECK (user1_id < user2_id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_users_location ON users(location_lat, location_lng)`,
		`CREATE INDEX IF NOT EXISTS idx_users_last_active ON users(last_active DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_swipes_actor_target ON swipes(actor_id, target_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_swipes_target ON swipes(target_id)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_user1 ON matches(user1_id)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_user2 ON matches(user2_id)`,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			if strings.Contains(err.Error(), "already exists") {
				log.Printf("Migration %d/%d skipped (already exists)", i+1, len(migrations))
				continue
			}
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
