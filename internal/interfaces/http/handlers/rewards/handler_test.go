package rewards

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rewardsapp "civicpulse/internal/application/rewards"
	"civicpulse/internal/interfaces/http/handlers/testutil"
	"civicpulse/internal/shared/errors"
)

type mockSummaryProvider struct {
	result *rewardsapp.SummaryDTO
	err    error
}

func (m *mockSummaryProvider) Summary(_ context.Context) (*rewardsapp.SummaryDTO, error) {
	return m.result, m.err
}

func TestHandler_GetSummary(t *testing.T) {
	handler := NewHandler(&mockSummaryProvider{result: &rewardsapp.SummaryDTO{
		Points:       120,
		Badges:       []string{"Community Helper"},
		NextBadge:    "Civic Champion",
		PointsToNext: 80,
	}})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/rewards", nil)

	handler.GetSummary(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data rewardsapp.SummaryDTO
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, 120, data.Points)
	assert.Equal(t, "Civic Champion", data.NextBadge)
}

func TestHandler_GetSummary_Error(t *testing.T) {
	handler := NewHandler(&mockSummaryProvider{err: errors.NewInternalError("failed to read rewards")})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/rewards", nil)

	handler.GetSummary(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
