package matching

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var ErrProfileNotFound = errors.New("golf profile not found")

type Repository interface {
	GetGolfProfile(ctx context.Context, userID int64) (*GolfProfile, error)
	FindCandidates(ctx context.Context, seeker *GolfProfile, radiusMiles float64, limit int) ([]*GolfProfile, error)
	GetSubscriptionTier(ctx context.Context, userID int64) (Tier, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

const profileColumns = `
	u.id, u.username, u.display_name, u.location_lat, u.location_lng, u.city,
	u.handicap, u.preferred_times, u.playing_style, u.pace_of_play,
	u.preferred_group_size, u.is_verified, u.avg_rating, u.total_rounds,
	u.last_active, u.subscription_tier, u.created_at, u.updated_at
`

func (r *postgresRepository) GetGolfProfile(ctx context.Context, userID int64) (*GolfProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM users u WHERE u.id = $1`

	profile, err := scanProfile(r.db.QueryRowxContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load golf profile: %w", err)
	}
	return profile, nil
}

// FindCandidates fetches a bounded candidate pool around the seeker. The
// bounding box is a coarse SQL-side prefilter only; exact haversine admission
// happens in FilterCandidates. Users the seeker has already swiped on are
// excluded at the source.
func (r *postgresRepository) FindCandidates(ctx context.Context, seeker *GolfProfile, radiusMiles float64, limit int) ([]*GolfProfile, error) {
	// The box errs wide and the in-memory filter trims it: the latitude span
	// uses the fixed ~69 miles per degree, the longitude span widens with the
	// seeker's latitude.
	latSpan := radiusMiles / milesPerDegreeLat
	lngSpan := longitudeSpan(seeker.Latitude, radiusMiles)

	query := `
		SELECT ` + profileColumns + `
		FROM users u
		WHERE u.id != $1
		  AND u.is_discoverable = TRUE
		  AND u.location_lat BETWEEN $2 - $4 AND $2 + $4
		  AND u.location_lng BETWEEN $3 - $5 AND $3 + $5
		  AND NOT EXISTS (
		      SELECT 1 FROM swipes s
		      WHERE s.actor_id = $1 AND s.target_id = u.id
		  )
		ORDER BY u.last_active DESC
		LIMIT $6
	`

	rows, err := r.db.QueryxContext(ctx, query,
		seeker.ID, seeker.Latitude, seeker.Longitude, latSpan, lngSpan, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	var candidates []*GolfProfile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, profile)
	}

	return candidates, rows.Err()
}

func (r *postgresRepository) GetSubscriptionTier(ctx context.Context, userID int64) (Tier, error) {
	var tier Tier
	err := r.db.GetContext(ctx, &tier, `SELECT subscription_tier FROM users WHERE id = $1`, userID)
	if err == sql.ErrNoRows {
		return "", ErrProfileNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load subscription tier: %w", err)
	}
	return tier, nil
}

// rowScanner covers both *sqlx.Row and *sqlx.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (*GolfProfile, error) {
	var p GolfProfile
	var times pq.StringArray

	err := row.Scan(
		&p.ID, &p.Username, &p.DisplayName, &p.Latitude, &p.Longitude, &p.City,
		&p.Handicap, &times, &p.PlayingStyle, &p.PaceOfPlay,
		&p.PreferredGroupSize, &p.IsVerified, &p.AvgRating, &p.TotalRounds,
		&p.LastActive, &p.SubscriptionTier, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.PreferredTimes = make([]TimeSlot, len(times))
	for i, slot := range times {
		p.PreferredTimes[i] = TimeSlot(slot)
	}
	return &p, nil
}
