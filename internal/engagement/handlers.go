package engagement

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fairwaylink/fairwaylink-backend/internal/auth"
	"github.com/fairwaylink/fairwaylink-backend/internal/common/utils"
	"github.com/fairwaylink/fairwaylink-backend/internal/matching"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Swipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var dto SwipeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := utils.ValidateStruct(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Swipe(r.Context(), userID, dto.TargetID, Direction(dto.Direction))
	if err != nil {
		var quotaErr *QuotaExceededError
		var blockedErr *RateLimitBlockedError
		switch {
		case errors.As(err, &quotaErr):
			utils.RespondWithJSON(w, http.StatusTooManyRequests, map[string]interface{}{
				"error":       quotaErr.Error(),
				"retry_after": int(time.Until(quotaErr.ResetAt).Seconds()),
				"reset_at":    quotaErr.ResetAt,
			})
		case errors.As(err, &blockedErr):
			utils.RespondWithJSON(w, http.StatusTooManyRequests, map[string]interface{}{
				"error":       blockedErr.Error(),
				"retry_after": int(blockedErr.RetryAfter.Seconds()),
			})
		case errors.Is(err, ErrCannotSwipeSelf), errors.Is(err, ErrInvalidDirection):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, matching.ErrProfileNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record swipe")
		}
		return
	}

	utils.RespondWithData(w, http.StatusCreated, result)
}

func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	matches, err := h.service.GetMatches(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get matches")
		return
	}

	utils.RespondWithData(w, http.StatusOK, matches)
}

// GetQuota lets the UI show "likes left today" without spending one
func (h *Handler) GetQuota(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	decision, err := h.service.LikeQuota(r.Context(), userID)
	if err != nil {
		if errors.Is(err, matching.ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get quota")
		return
	}

	utils.RespondWithData(w, http.StatusOK, decision)
}
