package complaint

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicpulse/internal/application/complaint/dto"
	"civicpulse/internal/application/complaint/usecases"
	"civicpulse/internal/interfaces/http/handlers/testutil"
	"civicpulse/internal/shared/errors"
	"civicpulse/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockFileComplaintUC struct {
	got    usecases.FileComplaintCommand
	result *usecases.FileComplaintResult
	err    error
}

func (m *mockFileComplaintUC) Execute(_ context.Context, cmd usecases.FileComplaintCommand) (*usecases.FileComplaintResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockListComplaintsUC struct {
	got    usecases.ListComplaintsQuery
	result *usecases.ListComplaintsResult
	err    error
}

func (m *mockListComplaintsUC) Execute(_ context.Context, q usecases.ListComplaintsQuery) (*usecases.ListComplaintsResult, error) {
	m.got = q
	return m.result, m.err
}

type mockGetComplaintUC struct {
	result *dto.ComplaintDTO
	err    error
}

func (m *mockGetComplaintUC) Execute(_ context.Context, _ usecases.GetComplaintQuery) (*dto.ComplaintDTO, error) {
	return m.result, m.err
}

type mockUpdateStatusUC struct {
	got    usecases.UpdateStatusCommand
	result *usecases.UpdateStatusResult
	err    error
}

func (m *mockUpdateStatusUC) Execute(_ context.Context, cmd usecases.UpdateStatusCommand) (*usecases.UpdateStatusResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockClassifyUC struct {
	result *usecases.ClassifyTextResult
	err    error
}

func (m *mockClassifyUC) Execute(_ context.Context, _ usecases.ClassifyTextCommand) (*usecases.ClassifyTextResult, error) {
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	fileComplaintUC  usecases.FileComplaintExecutor
	listComplaintsUC usecases.ListComplaintsExecutor
	getComplaintUC   usecases.GetComplaintExecutor
	updateStatusUC   usecases.UpdateStatusExecutor
	classifyUC       usecases.ClassifyTextExecutor
}

func newTestHandler(deps testDeps) *Handler {
	return NewHandler(
		deps.fileComplaintUC,
		deps.listComplaintsUC,
		deps.getComplaintUC,
		deps.updateStatusUC,
		deps.classifyUC,
		logger.NewNopLogger(),
	)
}

func sampleDTO() *dto.ComplaintDTO {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return &dto.ComplaintDTO{
		ID:          "abc123xyz",
		Title:       "Big pothole",
		Description: "pothole on Main St",
		Location:    "Main St",
		Department:  "Road & Transport",
		Status:      "pending",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// =====================================================================
// FileComplaint
// =====================================================================

func TestHandler_FileComplaint_Success(t *testing.T) {
	mockUC := &mockFileComplaintUC{
		result: &usecases.FileComplaintResult{
			Complaint:     sampleDTO(),
			PointsAwarded: 20,
			TotalPoints:   20,
			NewBadges:     []string{},
		},
	}
	handler := newTestHandler(testDeps{fileComplaintUC: mockUC})

	lat, lng := 12.97, 77.59
	reqBody := FileComplaintRequest{
		Title:       "Big pothole",
		Description: "pothole on Main St",
		Location:    "Main St",
		GPSLocation: &GPSLocationRequest{Lat: &lat, Lng: &lng},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/complaints", reqBody)

	handler.FileComplaint(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var data usecases.FileComplaintResult
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "abc123xyz", data.Complaint.ID)
	assert.Equal(t, 20, data.PointsAwarded)

	require.NotNil(t, mockUC.got.Latitude)
	assert.Equal(t, 12.97, *mockUC.got.Latitude)
	assert.Equal(t, 77.59, *mockUC.got.Longitude)
}

func TestHandler_FileComplaint_BindError(t *testing.T) {
	handler := newTestHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/complaints", map[string]string{"title": "only title"})

	handler.FileComplaint(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "validation_error", resp.Error.Type)
}

func TestHandler_FileComplaint_MalformedJSON(t *testing.T) {
	handler := newTestHandler(testDeps{})

	c, w := testutil.NewRawTestContext(http.MethodPost, "/api/complaints", `{"title":`)

	handler.FileComplaint(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_FileComplaint_UseCaseError(t *testing.T) {
	mockUC := &mockFileComplaintUC{err: errors.NewValidationError("Validation failed", "email must be a valid email address")}
	handler := newTestHandler(testDeps{fileComplaintUC: mockUC})

	reqBody := FileComplaintRequest{Title: "t", Description: "d", Location: "l", Email: "bad"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/complaints", reqBody)

	handler.FileComplaint(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "email must be a valid email address", resp.Error.Details)
}

// =====================================================================
// ListComplaints / GetComplaint
// =====================================================================

func TestHandler_ListComplaints_PassesFilters(t *testing.T) {
	mockUC := &mockListComplaintsUC{
		result: &usecases.ListComplaintsResult{Complaints: []*dto.ComplaintDTO{sampleDTO()}, Total: 1},
	}
	handler := newTestHandler(testDeps{listComplaintsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/complaints", nil)
	testutil.SetQueryParams(c, map[string]string{
		"status":     "pending",
		"department": "Road & Transport",
		"q":          "pothole",
	})

	handler.ListComplaints(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ListComplaintsQuery{Status: "pending", Department: "Road & Transport", Query: "pothole"}, mockUC.got)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var list struct {
		Items []dto.ComplaintDTO `json:"items"`
		Total int                `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, "abc123xyz", list.Items[0].ID)
}

func TestHandler_GetComplaint(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		handler := newTestHandler(testDeps{getComplaintUC: &mockGetComplaintUC{result: sampleDTO()}})

		c, w := testutil.NewTestContext(http.MethodGet, "/api/complaints/abc123xyz", nil)
		testutil.SetURLParam(c, "id", "abc123xyz")

		handler.GetComplaint(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		handler := newTestHandler(testDeps{getComplaintUC: &mockGetComplaintUC{err: errors.NewNotFoundError("complaint nope not found")}})

		c, w := testutil.NewTestContext(http.MethodGet, "/api/complaints/nope", nil)
		testutil.SetURLParam(c, "id", "nope")

		handler.GetComplaint(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("blank id", func(t *testing.T) {
		handler := newTestHandler(testDeps{})

		c, w := testutil.NewTestContext(http.MethodGet, "/api/complaints/", nil)
		testutil.SetURLParam(c, "id", " ")

		handler.GetComplaint(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =====================================================================
// UpdateStatus
// =====================================================================

func TestHandler_UpdateStatus_Success(t *testing.T) {
	resolved := sampleDTO()
	resolved.Status = "resolved"
	mockUC := &mockUpdateStatusUC{
		result: &usecases.UpdateStatusResult{Complaint: resolved, OldStatus: "pending", NewStatus: "resolved"},
	}
	handler := newTestHandler(testDeps{updateStatusUC: mockUC})

	photo := "data:image/png;base64,AAAA"
	c, w := testutil.NewTestContext(http.MethodPatch, "/api/admin/complaints/abc123xyz/status",
		UpdateStatusRequest{Status: "resolved", CompletionPhoto: &photo})
	testutil.SetAdminContext(c, "admin123")
	testutil.SetURLParam(c, "id", "abc123xyz")

	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc123xyz", mockUC.got.ComplaintID)
	assert.Equal(t, "resolved", mockUC.got.Status)
	require.NotNil(t, mockUC.got.CompletionPhoto)
	assert.Equal(t, photo, *mockUC.got.CompletionPhoto)
}

func TestHandler_UpdateStatus_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     interface{}
		ucErr    error
		wantCode int
		wantType string
	}{
		{"missing status", map[string]string{}, nil, http.StatusBadRequest, "validation_error"},
		{"backward transition", UpdateStatusRequest{Status: "pending"}, errors.NewInvalidTransitionError("cannot move complaint from resolved to pending"), http.StatusConflict, "invalid_transition"},
		{"unknown complaint", UpdateStatusRequest{Status: "resolved"}, errors.NewNotFoundError("complaint x not found"), http.StatusNotFound, "not_found"},
		{"storage failure", UpdateStatusRequest{Status: "resolved"}, errors.NewInternalError("failed to update complaint status"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(testDeps{updateStatusUC: &mockUpdateStatusUC{err: tt.ucErr}})

			c, w := testutil.NewTestContext(http.MethodPatch, "/api/admin/complaints/abc123xyz/status", tt.body)
			testutil.SetURLParam(c, "id", "abc123xyz")

			handler.UpdateStatus(c)

			assert.Equal(t, tt.wantCode, w.Code)

			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantType, resp.Error.Type)
		})
	}
}

// =====================================================================
// Classify
// =====================================================================

func TestHandler_Classify(t *testing.T) {
	handler := newTestHandler(testDeps{classifyUC: &mockClassifyUC{result: &usecases.ClassifyTextResult{Department: "Sanitation & Drainage"}}})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/classify", ClassifyRequest{Text: "overflowing drain"})

	handler.Classify(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data usecases.ClassifyTextResult
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "Sanitation & Drainage", data.Department)
}
