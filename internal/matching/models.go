// internal/matching/models.go
package matching

import "time"

// Tier is the subscription level controlling quota size, search radius and
// placement priority
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// PlayingStyle describes how seriously a golfer takes their rounds
type PlayingStyle string

const (
	StyleCompetitive      PlayingStyle = "competitive"
	StyleCasual           PlayingStyle = "casual"
	StyleBeginnerFriendly PlayingStyle = "beginner_friendly"
)

// PaceOfPlay is the speed a golfer likes to move through a round
type PaceOfPlay string

const (
	PaceFast     PaceOfPlay = "fast"
	PaceModerate PaceOfPlay = "moderate"
	PaceRelaxed  PaceOfPlay = "relaxed"
)

// GroupSize is the preferred group composition
type GroupSize string

const (
	GroupTwosome  GroupSize = "twosome"
	GroupFoursome GroupSize = "foursome"
	GroupFlexible GroupSize = "flexible"
)

// TimeSlot is a preferred tee-time window
type TimeSlot string

const (
	TimeEarlyMorning TimeSlot = "early_morning"
	TimeMorning      TimeSlot = "morning"
	TimeAfternoon    TimeSlot = "afternoon"
	TimeEvening      TimeSlot = "evening"
	TimeWeekendsOnly TimeSlot = "weekends_only"
)

// GolfProfile is the matching view of a user. Owned and mutated by the
// profile service; treated as an immutable snapshot for the duration of a
// single discovery request.
type GolfProfile struct {
	ID          int64  `json:"id" db:"id"`
	Username    string `json:"username" db:"username"`
	DisplayName string `json:"display_name" db:"display_name"`

	// Location
	Latitude  float64 `json:"latitude" db:"location_lat"`
	Longitude float64 `json:"longitude" db:"location_lng"`
	City      *string `json:"city,omitempty" db:"city"`

	// Golf
	Handicap           int          `json:"handicap" db:"handicap"` // -10..54 per WHS
	PreferredTimes     []TimeSlot   `json:"preferred_times"`
	PlayingStyle       PlayingStyle `json:"playing_style" db:"playing_style"`
	PaceOfPlay         PaceOfPlay   `json:"pace_of_play" db:"pace_of_play"`
	PreferredGroupSize GroupSize    `json:"preferred_group_size" db:"preferred_group_size"`

	// Reputation & activity
	IsVerified  bool      `json:"is_verified" db:"is_verified"`
	AvgRating   float64   `json:"avg_rating" db:"avg_rating"` // 0..5
	TotalRounds int       `json:"total_rounds" db:"total_rounds"`
	LastActive  time.Time `json:"last_active" db:"last_active"`

	SubscriptionTier Tier `json:"subscription_tier" db:"subscription_tier"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HandicapRange is an inclusive handicap window
type HandicapRange struct {
	Min int `json:"min" validate:"gte=-10,lte=54"`
	Max int `json:"max" validate:"gte=-10,lte=54"`
}

// MatchingPreferences are the seeker's hard constraints for a single
// discovery request. Supplied fresh per request and never persisted here.
type MatchingPreferences struct {
	MaxDistance    float64       `json:"max_distance" validate:"required,gt=0"`
	HandicapRange  HandicapRange `json:"handicap_range"`
	PreferredTimes []TimeSlot    `json:"preferred_times,omitempty"`

	// Optional exact-match filters; nil means "don't filter"
	PlayingStyle *PlayingStyle `json:"playing_style,omitempty" validate:"omitempty,oneof=competitive casual beginner_friendly"`
	PaceOfPlay   *PaceOfPlay   `json:"pace_of_play,omitempty" validate:"omitempty,oneof=fast moderate relaxed"`
	GroupSize    *GroupSize    `json:"group_size,omitempty" validate:"omitempty,oneof=twosome foursome flexible"`

	OnlyVerified bool    `json:"only_verified"`
	MinRating    float64 `json:"min_rating" validate:"gte=0,lte=5"`
}

// ScoreBreakdown itemizes the weighted compatibility score
type ScoreBreakdown struct {
	Distance    float64 `json:"distance"`
	Handicap    float64 `json:"handicap"`
	Style       float64 `json:"style"`
	Pace        float64 `json:"pace"`
	GroupSize   float64 `json:"group_size"`
	TimeOverlap float64 `json:"time_overlap"`
	Rating      float64 `json:"rating"`
}

// ScoredCandidate pairs a candidate profile with its compatibility score for
// one seeker. Derived and ephemeral; recomputed on every request.
type ScoredCandidate struct {
	Profile       *GolfProfile    `json:"profile"`
	Score         int             `json:"score"` // 0..100
	DistanceMiles float64         `json:"distance_miles"`
	Breakdown     *ScoreBreakdown `json:"breakdown,omitempty"`
}
