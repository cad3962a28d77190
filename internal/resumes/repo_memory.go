package resumes

import (
	"context"
	"sort"
	"sync"
	"time"

	"ats-backend/internal/ats"
	"ats-backend/internal/flaws"
)

// MemoryRepo is an in-memory implementation of ResumesRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Resume // userId -> resumes
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Resume),
	}
}

// Create stores a resume for a user.
func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[resume.UserID] = append(r.data[resume.UserID], resume)
	return nil
}

// GetByID returns a resume by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userId, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := r.data[userId]
	for i := range items {
		if items[i].ID == resumeID {
			return items[i], nil
		}
	}
	return Resume{}, ErrNotFound
}

// ListByUser returns resumes for a user, newest first, honoring limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userId string, limit, offset int) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	userItems := r.data[userId]
	r.mu.RUnlock()

	if len(userItems) == 0 || offset >= len(userItems) {
		return []Resume{}, nil
	}

	// Copy and sort newest-first by CreatedAt.
	items := make([]Resume, len(userItems))
	copy(items, userItems)
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return items[offset:end], nil
}

// CountByUser returns the total number of resumes for a user.
func (r *MemoryRepo) CountByUser(ctx context.Context, userId string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data[userId]), nil
}

// SaveAnalysis stores analysis results for a resume.
func (r *MemoryRepo) SaveAnalysis(ctx context.Context, userId, resumeID string, score int, analysis ats.AnalysisResult, enhanced flaws.EnhancedAnalysis, analyzedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.data[userId]
	for i := range items {
		if items[i].ID == resumeID {
			s := score
			a := analysis
			e := enhanced
			at := analyzedAt
			items[i].ATSScore = &s
			items[i].Analysis = &a
			items[i].Enhanced = &e
			items[i].AnalyzedAt = &at
			r.data[userId] = items
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes a resume for a user.
func (r *MemoryRepo) Delete(ctx context.Context, userId, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.data[userId]
	for i := range items {
		if items[i].ID == resumeID {
			r.data[userId] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

var _ ResumesRepo = (*MemoryRepo)(nil)
