package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"civicpulse/internal/domain/complaint"
	"civicpulse/internal/infrastructure/kvstore"
	"civicpulse/internal/infrastructure/persistence/mappers"
	"civicpulse/internal/infrastructure/persistence/models"
	"civicpulse/internal/shared/logger"
)

// ComplaintsKey holds the whole complaint collection as one JSON array.
const ComplaintsKey = "citizen-complaints"

// ComplaintRepository stores complaints as a JSON array under ComplaintsKey.
// Every write rewrites the full collection, so writes are serialized.
type ComplaintRepository struct {
	store  kvstore.Store
	mapper mappers.ComplaintMapper
	logger logger.Interface
	mu     sync.Mutex
}

func NewComplaintRepository(store kvstore.Store, logger logger.Interface) *ComplaintRepository {
	return &ComplaintRepository{
		store:  store,
		mapper: mappers.NewComplaintMapper(),
		logger: logger,
	}
}

func (r *ComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	records = append(records, r.mapper.ToRecord(c))
	return r.write(ctx, records)
}

func (r *ComplaintRepository) List(ctx context.Context) ([]*complaint.Complaint, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*complaint.Complaint, 0, len(records))
	for _, rec := range records {
		c, err := r.mapper.ToDomain(rec)
		if err != nil {
			r.logger.Warnw("skipping unreadable complaint record", "complaint_id", rec.ID, "error", err)
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *ComplaintRepository) FindByID(ctx context.Context, id string) (*complaint.Complaint, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if rec.ID != id {
			continue
		}
		c, err := r.mapper.ToDomain(rec)
		if err != nil {
			return nil, fmt.Errorf("failed to read complaint %s: %w", id, err)
		}
		return c, nil
	}
	return nil, nil
}

// UpdateStatus rewrites only the record with id; all other records are
// written back exactly as they were read.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id string, mutate func(*complaint.Complaint) error) (*complaint.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i, rec := range records {
		if rec.ID != id {
			continue
		}

		c, err := r.mapper.ToDomain(rec)
		if err != nil {
			return nil, fmt.Errorf("failed to read complaint %s: %w", id, err)
		}
		if err := mutate(c); err != nil {
			return nil, err
		}

		records[i] = r.mapper.ToRecord(c)
		if err := r.write(ctx, records); err != nil {
			return nil, err
		}
		return c, nil
	}

	return nil, nil
}

// load returns the stored records. A missing key or malformed JSON yields an
// empty collection; only storage failures are errors.
func (r *ComplaintRepository) load(ctx context.Context) ([]models.ComplaintRecord, error) {
	raw, found, err := r.store.Get(ctx, ComplaintsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load complaints: %w", err)
	}
	if !found || raw == "" {
		return []models.ComplaintRecord{}, nil
	}

	var records []models.ComplaintRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		r.logger.Warnw("stored complaints are not valid JSON, treating as empty", "error", err)
		return []models.ComplaintRecord{}, nil
	}
	if records == nil {
		records = []models.ComplaintRecord{}
	}
	return records, nil
}

func (r *ComplaintRepository) write(ctx context.Context, records []models.ComplaintRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode complaints: %w", err)
	}
	if err := r.store.Set(ctx, ComplaintsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save complaints: %w", err)
	}
	return nil
}
