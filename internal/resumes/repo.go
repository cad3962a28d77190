package resumes

import (
	"context"
	"time"

	"ats-backend/internal/ats"
	"ats-backend/internal/flaws"
)

// ResumesRepo defines persistence operations for resumes.
type ResumesRepo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, userId, resumeID string) (Resume, error)
	ListByUser(ctx context.Context, userId string, limit, offset int) ([]Resume, error)
	CountByUser(ctx context.Context, userId string) (int, error)
	SaveAnalysis(ctx context.Context, userId, resumeID string, score int, analysis ats.AnalysisResult, enhanced flaws.EnhancedAnalysis, analyzedAt time.Time) error
	Delete(ctx context.Context, userId, resumeID string) error
}
