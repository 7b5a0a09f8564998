package matching

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fairwaylink/fairwaylink-backend/internal/auth"
	"github.com/fairwaylink/fairwaylink-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Discover returns the ranked partner feed for the authenticated user.
// Preferences arrive in the request body so the UI can send them fresh on
// every pull.
func (h *Handler) Discover(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var dto DiscoverRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	candidates, err := h.service.Discover(r.Context(), userID, dto.ToPreferences())
	if err != nil {
		if errors.Is(err, ErrInvalidPreferences) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to discover partners")
		return
	}

	result := make([]CandidateDTO, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, NewCandidateDTO(c))
	}

	utils.RespondWithData(w, http.StatusOK, result)
}

// GetCompatibility returns the score breakdown between the authenticated
// user and another golfer.
func (h *Handler) GetCompatibility(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	otherID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	scored, err := h.service.Compatibility(r.Context(), userID, otherID)
	if err != nil {
		switch {
		case errors.Is(err, ErrCompareSelf):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrProfileNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute compatibility")
		}
		return
	}

	utils.RespondWithData(w, http.StatusOK, map[string]interface{}{
		"user_id":        scored.Profile.ID,
		"score":          scored.Score,
		"distance_miles": scored.DistanceMiles,
		"breakdown":      scored.Breakdown,
	})
}
