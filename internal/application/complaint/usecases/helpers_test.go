package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"civicpulse/internal/domain/complaint"
	vo "civicpulse/internal/domain/complaint/valueobjects"
	"civicpulse/internal/infrastructure/kvstore"
	"civicpulse/internal/infrastructure/repository"
	"civicpulse/internal/shared/logger"
)

var testNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func newMemoryRepo() *repository.ComplaintRepository {
	return repository.NewComplaintRepository(kvstore.NewMemoryStore(), logger.NewNopLogger())
}

func seedComplaint(t *testing.T, repo complaint.Repository, id, description string, dept vo.Department) *complaint.Complaint {
	t.Helper()

	c, err := complaint.NewComplaint(id, complaint.Submission{
		Title:       "Issue " + id,
		Description: description,
		Location:    "Ward 5",
		Email:       "citizen@example.com",
	}, dept, 20, testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), c))
	return c
}

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}
