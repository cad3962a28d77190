package resumes

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"ats-backend/internal/ats"
	"ats-backend/internal/extract"
	"ats-backend/internal/flaws"
	"ats-backend/internal/jobmatch"
	"ats-backend/internal/parser"
	"ats-backend/internal/shared/storage/object"
	"ats-backend/internal/shared/telemetry"
	"ats-backend/internal/usage"
)

const previewLength = 500

// Service contains business logic for resumes.
type Service struct {
	Store     object.ObjectStore
	Repo      ResumesRepo
	Extractor *extract.Extractor
	Usage     *usage.Service
}

// UploadResult bundles the stored resume with the sections parsed at upload time.
type UploadResult struct {
	Resume   Resume
	Sections parser.ParsedSections
	Usage    usage.Usage
}

// Upload saves the file to object storage, extracts its text and records the resume.
func (s *Service) Upload(ctx context.Context, userId, fileName string, r io.Reader) (UploadResult, error) {
	if fileName == "" {
		return UploadResult{}, ErrInvalidInput
	}

	ok, u, err := s.Usage.CanConsume(ctx, userId, 1)
	if err != nil {
		return UploadResult{}, err
	}
	if !ok {
		return UploadResult{}, fmt.Errorf("%w: all %d uploads used", usage.ErrLimitReached, u.Limit)
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userId, fileName, r)
	if err != nil {
		return UploadResult{}, err
	}

	text, err := s.Extractor.FromStore(ctx, s.Store, storageKey, mimeType, fileName)
	if err != nil {
		return UploadResult{}, err
	}
	clean := parser.CleanText(text)
	sections := parser.ExtractSections(clean)

	resume := Resume{
		ID:               uuid.NewString(),
		UserID:           userId,
		FileName:         fileName,
		MimeType:         mimeType,
		SizeBytes:        size,
		StorageKey:       storageKey,
		ExtractedTextKey: extract.ExtractedKey(storageKey),
		TextPreview:      preview(clean),
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, resume); err != nil {
		return UploadResult{}, err
	}

	u, err = s.Usage.Consume(ctx, userId, 1)
	if err != nil {
		return UploadResult{}, err
	}

	return UploadResult{Resume: resume, Sections: sections, Usage: u}, nil
}

// AnalyzeResult bundles a fresh analysis with the resume it belongs to.
type AnalyzeResult struct {
	Resume   Resume
	Analysis ats.AnalysisResult
	Enhanced flaws.EnhancedAnalysis
}

// Analyze runs the scoring pipeline over a stored resume and persists the result.
func (s *Service) Analyze(ctx context.Context, userId, resumeID string) (AnalyzeResult, error) {
	resume, err := s.Repo.GetByID(ctx, userId, resumeID)
	if err != nil {
		return AnalyzeResult{}, err
	}

	clean, sections, err := s.resumeSections(ctx, resume)
	if err != nil {
		return AnalyzeResult{}, err
	}

	analysis := ats.CalculateScore(clean, sections)
	enhanced := flaws.Analyze(clean, sections, analysis)

	analyzedAt := time.Now().UTC()
	if err := s.Repo.SaveAnalysis(ctx, userId, resumeID, analysis.OverallScore, analysis, enhanced, analyzedAt); err != nil {
		return AnalyzeResult{}, err
	}

	score := analysis.OverallScore
	resume.ATSScore = &score
	resume.Analysis = &analysis
	resume.Enhanced = &enhanced
	resume.AnalyzedAt = &analyzedAt

	return AnalyzeResult{Resume: resume, Analysis: analysis, Enhanced: enhanced}, nil
}

// MatchJob compares a stored resume against a job description.
func (s *Service) MatchJob(ctx context.Context, userId, resumeID, jobDescription string) (Resume, jobmatch.Result, error) {
	if jobDescription == "" {
		return Resume{}, jobmatch.Result{}, ErrInvalidInput
	}

	resume, err := s.Repo.GetByID(ctx, userId, resumeID)
	if err != nil {
		return Resume{}, jobmatch.Result{}, err
	}

	clean, sections, err := s.resumeSections(ctx, resume)
	if err != nil {
		return Resume{}, jobmatch.Result{}, err
	}

	return resume, jobmatch.Match(clean, sections, jobDescription), nil
}

// Get returns a resume by ID for a user.
func (s *Service) Get(ctx context.Context, userId, resumeID string) (Resume, error) {
	if resumeID == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userId, resumeID)
}

// List returns a page of resumes with the total count for pagination.
func (s *Service) List(ctx context.Context, userId string, limit, offset int) ([]Resume, int, error) {
	items, err := s.Repo.ListByUser(ctx, userId, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Repo.CountByUser(ctx, userId)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Delete removes a resume record, then deletes its stored objects best-effort.
// A failed object delete is logged but does not fail the request.
func (s *Service) Delete(ctx context.Context, userId, resumeID string) error {
	if resumeID == "" {
		return ErrInvalidInput
	}

	resume, err := s.Repo.GetByID(ctx, userId, resumeID)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, userId, resumeID); err != nil {
		return err
	}

	// Stored files go best-effort; the record is already gone.
	for _, key := range []string{resume.StorageKey, resume.ExtractedTextKey} {
		if key == "" {
			continue
		}
		if err := s.Store.Delete(ctx, key); err != nil {
			telemetry.Warn("stored object delete failed", map[string]any{
				"resumeId": resumeID,
				"key":      key,
				"error":    err.Error(),
			})
		}
	}
	return nil
}

// resumeSections loads the extracted text for a resume and parses it.
func (s *Service) resumeSections(ctx context.Context, resume Resume) (string, parser.ParsedSections, error) {
	var text string
	var err error
	if resume.ExtractedTextKey != "" {
		text, err = s.readText(ctx, resume.ExtractedTextKey)
	} else {
		// Older records may predate extraction at upload time.
		text, err = s.Extractor.FromStore(ctx, s.Store, resume.StorageKey, resume.MimeType, resume.FileName)
	}
	if err != nil {
		return "", parser.ParsedSections{}, fmt.Errorf("%w: %v", ErrNotExtracted, err)
	}

	clean := parser.CleanText(text)
	return clean, parser.ExtractSections(clean), nil
}

func (s *Service) readText(ctx context.Context, key string) (string, error) {
	rc, err := s.Store.Open(ctx, key)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength])
}
