package rewards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewlyEarned(t *testing.T) {
	tests := []struct {
		name   string
		points int
		earned []string
		want   []string
	}{
		{name: "below first threshold", points: 99, want: nil},
		{name: "exactly first threshold", points: 100, want: []string{"Community Helper"}},
		{name: "already earned", points: 100, earned: []string{"Community Helper"}, want: nil},
		{name: "jump past several", points: 320, earned: []string{"Community Helper"}, want: []string{"Civic Champion", "City Guardian"}},
		{name: "all", points: 1000, want: []string{"Community Helper", "Civic Champion", "City Guardian", "Urban Hero"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewlyEarned(tt.points, tt.earned))
		})
	}
}

func TestNewSummary(t *testing.T) {
	s := NewSummary(140, []string{"Community Helper"})
	assert.Equal(t, "Civic Champion", s.NextBadge)
	assert.Equal(t, 60, s.PointsToNext)
	assert.False(t, s.AllBadgesEarned)

	s = NewSummary(0, nil)
	assert.Equal(t, []string{}, s.Badges)
	assert.Equal(t, "Community Helper", s.NextBadge)
	assert.Equal(t, 100, s.PointsToNext)

	s = NewSummary(500, nil)
	assert.True(t, s.AllBadgesEarned)
	assert.Empty(t, s.NextBadge)
}
