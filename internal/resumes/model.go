package resumes

import (
	"time"

	"ats-backend/internal/ats"
	"ats-backend/internal/flaws"
)

// Resume represents an uploaded resume owned by a user.
type Resume struct {
	ID               string
	UserID           string
	FileName         string
	MimeType         string
	SizeBytes        int64
	StorageProvider  string
	StorageKey       string
	ExtractedTextKey string
	TextPreview      string
	ATSScore         *int
	Analysis         *ats.AnalysisResult
	Enhanced         *flaws.EnhancedAnalysis
	AnalyzedAt       *time.Time
	CreatedAt        time.Time
}
