// Package rewards maintains the citizen point total and badge set.
package rewards

import (
	"context"
	"sync"

	"civicpulse/internal/domain/rewards"
	"civicpulse/internal/shared/errors"
	"civicpulse/internal/shared/logger"
)

// CreditResult reports a submission credit.
type CreditResult struct {
	PointsAwarded int
	TotalPoints   int
	NewBadges     []string
}

// SummaryDTO is the rewards view returned over HTTP.
type SummaryDTO struct {
	Points          int      `json:"points"`
	Badges          []string `json:"badges"`
	NextBadge       string   `json:"next_badge,omitempty"`
	PointsToNext    int      `json:"points_to_next,omitempty"`
	AllBadgesEarned bool     `json:"all_badges_earned"`
}

// LedgerService serializes every read-modify-write of the ledger.
type LedgerService struct {
	repo   rewards.Repository
	logger logger.Interface
	mu     sync.Mutex
}

func NewLedgerService(repo rewards.Repository, logger logger.Interface) *LedgerService {
	return &LedgerService{repo: repo, logger: logger}
}

// AddPoints adds n to the total. Any integer is accepted; zero leaves the
// stored total untouched.
func (s *LedgerService) AddPoints(ctx context.Context, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.addLocked(ctx, n)
	return err
}

func (s *LedgerService) GetPoints(ctx context.Context) (int, error) {
	points, err := s.repo.GetPoints(ctx)
	if err != nil {
		s.logger.Errorw("failed to read points", "error", err)
		return 0, errors.NewInternalError("failed to read points")
	}
	return points, nil
}

// CheckAndAwardBadges persists and returns the badges the current total has
// newly reached. A second call with no new points returns nothing.
func (s *LedgerService) CheckAndAwardBadges(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.awardLocked(ctx)
}

// CreditSubmission adds n points and awards badges as one step.
func (s *LedgerService) CreditSubmission(ctx context.Context, n int) (*CreditResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total, err := s.addLocked(ctx, n)
	if err != nil {
		return nil, err
	}
	badges, err := s.awardLocked(ctx)
	if err != nil {
		return nil, err
	}

	return &CreditResult{PointsAwarded: n, TotalPoints: total, NewBadges: badges}, nil
}

func (s *LedgerService) Summary(ctx context.Context) (*SummaryDTO, error) {
	points, err := s.repo.GetPoints(ctx)
	if err != nil {
		s.logger.Errorw("failed to read points", "error", err)
		return nil, errors.NewInternalError("failed to read rewards")
	}
	badges, err := s.repo.GetBadges(ctx)
	if err != nil {
		s.logger.Errorw("failed to read badges", "error", err)
		return nil, errors.NewInternalError("failed to read rewards")
	}

	sum := rewards.NewSummary(points, badges)
	return &SummaryDTO{
		Points:          sum.Points,
		Badges:          sum.Badges,
		NextBadge:       sum.NextBadge,
		PointsToNext:    sum.PointsToNext,
		AllBadgesEarned: sum.AllBadgesEarned,
	}, nil
}

func (s *LedgerService) addLocked(ctx context.Context, n int) (int, error) {
	current, err := s.repo.GetPoints(ctx)
	if err != nil {
		s.logger.Errorw("failed to read points", "error", err)
		return 0, errors.NewInternalError("failed to read points")
	}
	if n == 0 {
		return current, nil
	}

	total := current + n
	if err := s.repo.SetPoints(ctx, total); err != nil {
		s.logger.Errorw("failed to save points", "total", total, "error", err)
		return 0, errors.NewInternalError("failed to save points")
	}

	s.logger.Infow("points added", "added", n, "total", total)
	return total, nil
}

func (s *LedgerService) awardLocked(ctx context.Context) ([]string, error) {
	points, err := s.repo.GetPoints(ctx)
	if err != nil {
		s.logger.Errorw("failed to read points", "error", err)
		return nil, errors.NewInternalError("failed to read points")
	}
	earned, err := s.repo.GetBadges(ctx)
	if err != nil {
		s.logger.Errorw("failed to read badges", "error", err)
		return nil, errors.NewInternalError("failed to read badges")
	}

	newBadges := rewards.NewlyEarned(points, earned)
	if len(newBadges) == 0 {
		return []string{}, nil
	}

	if err := s.repo.SetBadges(ctx, append(earned, newBadges...)); err != nil {
		s.logger.Errorw("failed to save badges", "error", err)
		return nil, errors.NewInternalError("failed to save badges")
	}

	s.logger.Infow("badges awarded", "badges", newBadges, "points", points)
	return newBadges, nil
}
