// internal/engagement/admin.go

package engagement

import (
	"context"
	"net/http"
	"time"

	"github.com/fairwaylink/fairwaylink-backend/internal/common/utils"
)

type EngagementStats struct {
	TotalLikes   int64     `json:"total_likes"`
	TotalPasses  int64     `json:"total_passes"`
	TotalMatches int64     `json:"total_matches"`
	LikeRate     float64   `json:"like_rate"` // likes / all swipes
	LastUpdated  time.Time `json:"last_updated"`
}

type AdminService struct {
	repo Repository
}

func NewAdminService(repo Repository) *AdminService {
	return &AdminService{repo: repo}
}

func (a *AdminService) GetStats(ctx context.Context) (*EngagementStats, error) {
	stats := &EngagementStats{LastUpdated: time.Now()}

	likes, err := a.repo.CountSwipes(ctx, DirectionLike)
	if err != nil {
		return nil, err
	}
	passes, err := a.repo.CountSwipes(ctx, DirectionPass)
	if err != nil {
		return nil, err
	}
	matches, err := a.repo.CountMatches(ctx)
	if err != nil {
		return nil, err
	}

	stats.TotalLikes = likes
	stats.TotalPasses = passes
	stats.TotalMatches = matches
	if total := likes + passes; total > 0 {
		stats.LikeRate = float64(likes) / float64(total)
	}

	return stats, nil
}

type AdminHandler struct {
	service *AdminService
}

func NewAdminHandler(service *AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to collect stats")
		return
	}

	utils.RespondWithData(w, http.StatusOK, stats)
}
