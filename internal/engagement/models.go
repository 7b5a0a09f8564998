// internal/engagement/models.go
package engagement

import "time"

// Direction of a swipe
type Direction string

const (
	DirectionLike Direction = "like"
	DirectionPass Direction = "pass"
)

// Swipe is an append-only decision fact; once written it is never mutated
type Swipe struct {
	ID        int64     `json:"id" db:"id"`
	ActorID   int64     `json:"actor_id" db:"actor_id"`
	TargetID  int64     `json:"target_id" db:"target_id"`
	Direction Direction `json:"direction" db:"direction"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Match is created exactly once per pair, on the second of two reciprocal
// likes. User IDs are stored in normalized order (User1ID < User2ID).
type Match struct {
	ID        int64     `json:"id" db:"id"`
	User1ID   int64     `json:"user1_id" db:"user1_id"`
	User2ID   int64     `json:"user2_id" db:"user2_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Joined for list endpoints
	Partner *PartnerInfo `json:"partner,omitempty"`
}

// PartnerInfo is the minimal profile card shown in a match list
type PartnerInfo struct {
	ID          int64   `json:"id" db:"id"`
	Username    string  `json:"username" db:"username"`
	DisplayName string  `json:"display_name" db:"display_name"`
	Handicap    int     `json:"handicap" db:"handicap"`
	AvgRating   float64 `json:"avg_rating" db:"avg_rating"`
	IsVerified  bool    `json:"is_verified" db:"is_verified"`
}

// SwipeResult is the outcome reported back to the caller
type SwipeResult struct {
	Accepted       bool   `json:"accepted"`
	IsMatch        bool   `json:"is_match"`
	Match          *Match `json:"match,omitempty"`
	RemainingLikes int    `json:"remaining_likes"` // -1 when unlimited
}
