// internal/engagement/dto.go
package engagement

// DTOs for API requests/responses

type SwipeRequestDTO struct {
	TargetID  int64  `json:"target_id" validate:"required"`
	Direction string `json:"direction" validate:"required,oneof=like pass"`
}
