package admin

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	authusecases "civicpulse/internal/application/auth/usecases"
	complaintusecases "civicpulse/internal/application/complaint/usecases"
	"civicpulse/internal/infrastructure/export"
	"civicpulse/internal/shared/logger"
	"civicpulse/internal/shared/utils"
)

type LoginRequest struct {
	WorkID string `json:"work_id" binding:"required"`
}

type Handler struct {
	loginUC  authusecases.AdminLoginExecutor
	statsUC  complaintusecases.GetStatsExecutor
	exportUC complaintusecases.ExportComplaintsExecutor
	logger   logger.Interface
}

func NewHandler(
	loginUC authusecases.AdminLoginExecutor,
	statsUC complaintusecases.GetStatsExecutor,
	exportUC complaintusecases.ExportComplaintsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		loginUC:  loginUC,
		statsUC:  statsUC,
		exportUC: exportUC,
		logger:   logger,
	}
}

// Login handles POST /api/admin/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), authusecases.AdminLoginCommand{WorkID: req.WorkID})
	if err != nil {
		h.logger.Warnw("admin login failed", "client_ip", c.ClientIP())
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// Stats handles GET /api/admin/stats
func (h *Handler) Stats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ExportComplaints handles GET /api/admin/complaints/export
// It accepts the same status, department and q filters as the list endpoint.
func (h *Handler) ExportComplaints(c *gin.Context) {
	query := complaintusecases.ListComplaintsQuery{
		Status:     c.Query("status"),
		Department: c.Query("department"),
		Query:      c.Query("q"),
	}

	result, err := h.exportUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, export.XLSXContentType, result.Data)
}
