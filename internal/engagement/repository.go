package engagement

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var ErrMatchNotFound = errors.New("match not found")

type Repository interface {
	CreateSwipe(ctx context.Context, swipe *Swipe) error
	HasLike(ctx context.Context, actorID, targetID int64) (bool, error)

	CreateMatch(ctx context.Context, match *Match) error
	MatchExists(ctx context.Context, user1ID, user2ID int64) (bool, error)
	GetMatchForPair(ctx context.Context, user1ID, user2ID int64) (*Match, error)
	GetUserMatches(ctx context.Context, userID int64) ([]*Match, error)

	CountSwipes(ctx context.Context, direction Direction) (int64, error)
	CountMatches(ctx context.Context) (int64, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateSwipe(ctx context.Context, swipe *Swipe) error {
	query := `
		INSERT INTO swipes (actor_id, target_id, direction)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query, swipe.ActorID, swipe.TargetID, swipe.Direction).
		Scan(&swipe.ID, &swipe.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record swipe: %w", err)
	}
	return nil
}

// HasLike reports whether the actor's most recent swipe on the target was a
// like. Swipes are append-only, so the latest row decides.
func (r *postgresRepository) HasLike(ctx context.Context, actorID, targetID int64) (bool, error) {
	var direction Direction
	query := `
		SELECT direction FROM swipes
		WHERE actor_id = $1 AND target_id = $2
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	err := r.db.GetContext(ctx, &direction, query, actorID, targetID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up reciprocal like: %w", err)
	}
	return direction == DirectionLike, nil
}

func (r *postgresRepository) CreateMatch(ctx context.Context, match *Match) error {
	normalizePair(&match.User1ID, &match.User2ID)

	// The unique (user1_id, user2_id) constraint is the backstop; the
	// service checks existence first, so a conflict here means a concurrent
	// reciprocal swipe, and the existing row wins.
	query := `
		INSERT INTO matches (user1_id, user2_id)
		VALUES ($1, $2)
		ON CONFLICT (user1_id, user2_id) DO NOTHING
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query, match.User1ID, match.User2ID).
		Scan(&match.ID, &match.CreatedAt)
	if err == sql.ErrNoRows {
		existing, lookupErr := r.GetMatchForPair(ctx, match.User1ID, match.User2ID)
		if lookupErr != nil {
			return lookupErr
		}
		*match = *existing
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

func (r *postgresRepository) MatchExists(ctx context.Context, user1ID, user2ID int64) (bool, error) {
	normalizePair(&user1ID, &user2ID)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM matches WHERE user1_id = $1 AND user2_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, user1ID, user2ID); err != nil {
		return false, fmt.Errorf("failed to check match existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) GetMatchForPair(ctx context.Context, user1ID, user2ID int64) (*Match, error) {
	normalizePair(&user1ID, &user2ID)

	var match Match
	query := `SELECT id, user1_id, user2_id, created_at FROM matches WHERE user1_id = $1 AND user2_id = $2`
	err := r.db.GetContext(ctx, &match, query, user1ID, user2ID)
	if err == sql.ErrNoRows {
		return nil, ErrMatchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load match: %w", err)
	}
	return &match, nil
}

func (r *postgresRepository) GetUserMatches(ctx context.Context, userID int64) ([]*Match, error) {
	query := `
		SELECT m.id, m.user1_id, m.user2_id, m.created_at,
		       u.id as "partner.id", u.username as "partner.username",
		       u.display_name as "partner.display_name", u.handicap as "partner.handicap",
		       u.avg_rating as "partner.avg_rating", u.is_verified as "partner.is_verified"
		FROM matches m
		JOIN users u ON u.id = CASE WHEN m.user1_id = $1 THEN m.user2_id ELSE m.user1_id END
		WHERE m.user1_id = $1 OR m.user2_id = $1
		ORDER BY m.created_at DESC
	`

	rows, err := r.db.QueryxContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []*Match
	for rows.Next() {
		var match Match
		var partner PartnerInfo

		err := rows.Scan(
			&match.ID, &match.User1ID, &match.User2ID, &match.CreatedAt,
			&partner.ID, &partner.Username, &partner.DisplayName,
			&partner.Handicap, &partner.AvgRating, &partner.IsVerified,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}

		match.Partner = &partner
		matches = append(matches, &match)
	}

	return matches, rows.Err()
}

func (r *postgresRepository) CountSwipes(ctx context.Context, direction Direction) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM swipes WHERE direction = $1`, direction)
	return count, err
}

func (r *postgresRepository) CountMatches(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM matches`)
	return count, err
}

// normalizePair orders a user-id pair so (a,b) and (b,a) address the same row
func normalizePair(a, b *int64) {
	if *a > *b {
		*a, *b = *b, *a
	}
}
