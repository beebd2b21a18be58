package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"civicpulse/internal/infrastructure/kvstore"
	"civicpulse/internal/shared/logger"
)

const (
	PointsKey = "user-points"
	BadgesKey = "user-badges"
)

// RewardsRepository keeps the point total as decimal text and the badge set
// as a JSON array of names.
type RewardsRepository struct {
	store  kvstore.Store
	logger logger.Interface
}

func NewRewardsRepository(store kvstore.Store, logger logger.Interface) *RewardsRepository {
	return &RewardsRepository{store: store, logger: logger}
}

func (r *RewardsRepository) GetPoints(ctx context.Context) (int, error) {
	raw, found, err := r.store.Get(ctx, PointsKey)
	if err != nil {
		return 0, fmt.Errorf("failed to load points: %w", err)
	}
	if !found {
		return 0, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		r.logger.Warnw("stored points are not a number, treating as zero", "value", raw)
		return 0, nil
	}
	return n, nil
}

func (r *RewardsRepository) SetPoints(ctx context.Context, points int) error {
	if err := r.store.Set(ctx, PointsKey, strconv.Itoa(points)); err != nil {
		return fmt.Errorf("failed to save points: %w", err)
	}
	return nil
}

func (r *RewardsRepository) GetBadges(ctx context.Context) ([]string, error) {
	raw, found, err := r.store.Get(ctx, BadgesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load badges: %w", err)
	}
	if !found || raw == "" {
		return []string{}, nil
	}

	var badges []string
	if err := json.Unmarshal([]byte(raw), &badges); err != nil {
		r.logger.Warnw("stored badges are not valid JSON, treating as empty", "error", err)
		return []string{}, nil
	}
	if badges == nil {
		badges = []string{}
	}
	return badges, nil
}

func (r *RewardsRepository) SetBadges(ctx context.Context, badges []string) error {
	if badges == nil {
		badges = []string{}
	}
	data, err := json.Marshal(badges)
	if err != nil {
		return fmt.Errorf("failed to encode badges: %w", err)
	}
	if err := r.store.Set(ctx, BadgesKey, string(data)); err != nil {
		return fmt.Errorf("failed to save badges: %w", err)
	}
	return nil
}
