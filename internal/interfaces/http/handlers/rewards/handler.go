package rewards

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	rewardsapp "civicpulse/internal/application/rewards"
	"civicpulse/internal/shared/utils"
)

type SummaryProvider interface {
	Summary(ctx context.Context) (*rewardsapp.SummaryDTO, error)
}

type Handler struct {
	ledger SummaryProvider
}

func NewHandler(ledger SummaryProvider) *Handler {
	return &Handler{ledger: ledger}
}

// GetSummary handles GET /api/rewards
func (h *Handler) GetSummary(c *gin.Context) {
	result, err := h.ledger.Summary(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
