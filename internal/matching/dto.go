// internal/matching/dto.go
package matching

// DTOs for API requests/responses

type DiscoverRequestDTO struct {
	MaxDistance    float64    `json:"max_distance" validate:"required,gt=0"`
	HandicapMin    int        `json:"handicap_min" validate:"gte=-10,lte=54"`
	HandicapMax    int        `json:"handicap_max" validate:"gte=-10,lte=54"`
	PreferredTimes []TimeSlot `json:"preferred_times,omitempty"`
	PlayingStyle   string     `json:"playing_style,omitempty" validate:"omitempty,oneof=competitive casual beginner_friendly"`
	PaceOfPlay     string     `json:"pace_of_play,omitempty" validate:"omitempty,oneof=fast moderate relaxed"`
	GroupSize      string     `json:"group_size,omitempty" validate:"omitempty,oneof=twosome foursome flexible"`
	OnlyVerified   bool       `json:"only_verified"`
	MinRating      float64    `json:"min_rating" validate:"gte=0,lte=5"`
}

// ToPreferences converts the wire DTO into domain preferences
func (d *DiscoverRequestDTO) ToPreferences() *MatchingPreferences {
	prefs := &MatchingPreferences{
		MaxDistance:    d.MaxDistance,
		HandicapRange:  HandicapRange{Min: d.HandicapMin, Max: d.HandicapMax},
		PreferredTimes: d.PreferredTimes,
		OnlyVerified:   d.OnlyVerified,
		MinRating:      d.MinRating,
	}

	if d.PlayingStyle != "" {
		style := PlayingStyle(d.PlayingStyle)
		prefs.PlayingStyle = &style
	}
	if d.PaceOfPlay != "" {
		pace := PaceOfPlay(d.PaceOfPlay)
		prefs.PaceOfPlay = &pace
	}
	if d.GroupSize != "" {
		size := GroupSize(d.GroupSize)
		prefs.GroupSize = &size
	}

	return prefs
}

type CandidateDTO struct {
	UserID         int64        `json:"user_id"`
	Username       string       `json:"username"`
	DisplayName    string       `json:"display_name"`
	City           *string      `json:"city,omitempty"`
	Handicap       int          `json:"handicap"`
	PreferredTimes []TimeSlot   `json:"preferred_times"`
	PlayingStyle   PlayingStyle `json:"playing_style"`
	PaceOfPlay     PaceOfPlay   `json:"pace_of_play"`
	GroupSize      GroupSize    `json:"preferred_group_size"`
	IsVerified     bool         `json:"is_verified"`
	AvgRating      float64      `json:"avg_rating"`
	TotalRounds    int          `json:"total_rounds"`
	Tier           Tier         `json:"subscription_tier"`
	Score          int          `json:"score"`
	DistanceMiles  float64      `json:"distance_miles"`
}

// NewCandidateDTO flattens a scored candidate for rendering. Exact
// coordinates are deliberately not exposed, only the computed distance.
func NewCandidateDTO(c ScoredCandidate) CandidateDTO {
	return CandidateDTO{
		UserID:         c.Profile.ID,
		Username:       c.Profile.Username,
		DisplayName:    c.Profile.DisplayName,
		City:           c.Profile.City,
		Handicap:       c.Profile.Handicap,
		PreferredTimes: c.Profile.PreferredTimes,
		PlayingStyle:   c.Profile.PlayingStyle,
		PaceOfPlay:     c.Profile.PaceOfPlay,
		GroupSize:      c.Profile.PreferredGroupSize,
		IsVerified:     c.Profile.IsVerified,
		AvgRating:      c.Profile.AvgRating,
		TotalRounds:    c.Profile.TotalRounds,
		Tier:           c.Profile.SubscriptionTier,
		Score:          c.Score,
		DistanceMiles:  c.DistanceMiles,
	}
}
