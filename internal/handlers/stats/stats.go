package stats

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/internal/dto"
	"github.com/GlebRadaev/donations/internal/service/statsservice"
	"github.com/GlebRadaev/donations/pkg/utils"
)

//go:generate mockgen -source=stats.go -destination=mock_stats.go -package=stats
type Service interface {
	FundStats(ctx context.Context, limit int) (*domain.FundStats, error)
}

type StatsHandler struct {
	statsService Service
}

func New(statsService Service) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// FundStats godoc
//
//	@Summary		Fund statistics
//	@Description	Total raised, number and average of completed donations and the most recent ones.
//	@Tags			Stats
//	@Produce		json
//	@Param			limit	query		int	false	"Number of recent donations (1-50)"	default(5)
//	@Success		200		{object}	dto.FundStatsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/fund-stats [get]
func (h *StatsHandler) FundStats(w http.ResponseWriter, r *http.Request) {
	limit := statsservice.DefaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	stats, err := h.statsService.FundStats(r.Context(), limit)
	if err != nil {
		utils.RespondWithInternalError(w, err)
		return
	}

	recent := make([]dto.RecentDonationDTO, 0, len(stats.RecentDonations))
	for _, d := range stats.RecentDonations {
		recent = append(recent, dto.RecentDonationDTO{
			Name:   d.Name,
			Amount: d.Amount.InexactFloat64(),
			Date:   d.Date.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FundStatsResponseDTO{
		Success:         true,
		TotalRaised:     stats.TotalRaised.InexactFloat64(),
		TotalDonations:  stats.TotalDonations,
		AverageDonation: stats.AverageDonation.InexactFloat64(),
		RecentDonations: recent,
	})
}
