package complaint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"civicpulse/internal/application/complaint/usecases"
	"civicpulse/internal/shared/logger"
	"civicpulse/internal/shared/utils"
)

type Handler struct {
	fileComplaintUC  usecases.FileComplaintExecutor
	listComplaintsUC usecases.ListComplaintsExecutor
	getComplaintUC   usecases.GetComplaintExecutor
	updateStatusUC   usecases.UpdateStatusExecutor
	classifyUC       usecases.ClassifyTextExecutor
	logger           logger.Interface
}

func NewHandler(
	fileComplaintUC usecases.FileComplaintExecutor,
	listComplaintsUC usecases.ListComplaintsExecutor,
	getComplaintUC usecases.GetComplaintExecutor,
	updateStatusUC usecases.UpdateStatusExecutor,
	classifyUC usecases.ClassifyTextExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		fileComplaintUC:  fileComplaintUC,
		listComplaintsUC: listComplaintsUC,
		getComplaintUC:   getComplaintUC,
		updateStatusUC:   updateStatusUC,
		classifyUC:       classifyUC,
		logger:           logger,
	}
}

// FileComplaint handles POST /api/complaints
func (h *Handler) FileComplaint(c *gin.Context) {
	var req FileComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for file complaint", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.fileComplaintUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Complaint filed successfully")
}

// ListComplaints handles GET /api/complaints
func (h *Handler) ListComplaints(c *gin.Context) {
	query := usecases.ListComplaintsQuery{
		Status:     c.Query("status"),
		Department: c.Query("department"),
		Query:      c.Query("q"),
	}

	result, err := h.listComplaintsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Complaints, result.Total)
}

// GetComplaint handles GET /api/complaints/:id
func (h *Handler) GetComplaint(c *gin.Context) {
	complaintID := c.Param("id")
	if err := utils.ValidateID(complaintID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getComplaintUC.Execute(c.Request.Context(), usecases.GetComplaintQuery{ComplaintID: complaintID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateStatus handles PATCH /api/admin/complaints/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	complaintID := c.Param("id")
	if err := utils.ValidateID(complaintID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateStatusCommand{
		ComplaintID:     complaintID,
		Status:          req.Status,
		CompletionPhoto: req.CompletionPhoto,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint status updated", result)
}

// Classify handles POST /api/classify
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.classifyUC.Execute(c.Request.Context(), usecases.ClassifyTextCommand{Text: req.Text})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
