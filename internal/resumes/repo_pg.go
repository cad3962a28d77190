package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"ats-backend/internal/ats"
	"ats-backend/internal/flaws"
)

// PGRepo implements ResumesRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (
    id,
    user_id,
    file_name,
    mime_type,
    size_bytes,
    storage_provider,
    storage_key,
    extracted_text_key,
    text_preview,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	storageProvider := resume.StorageProvider
	if storageProvider == "" {
		storageProvider = "local"
	}

	var storageKey sql.NullString
	if resume.StorageKey != "" {
		storageKey = sql.NullString{String: resume.StorageKey, Valid: true}
	}
	var extractedKey sql.NullString
	if resume.ExtractedTextKey != "" {
		extractedKey = sql.NullString{String: resume.ExtractedTextKey, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.UserID,
		resume.FileName,
		resume.MimeType,
		resume.SizeBytes,
		storageProvider,
		storageKey,
		extractedKey,
		resume.TextPreview,
		resume.CreatedAt,
	)
	return err
}

const resumeColumns = `id, user_id, file_name, mime_type, size_bytes, storage_provider, storage_key, extracted_text_key, text_preview, ats_score, analysis, enhanced_analysis, analyzed_at, created_at`

// GetByID fetches a resume by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userId, resumeID string) (Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL
LIMIT 1`
	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, userId, resumeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// ListByUser lists resumes ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userId string, limit, offset int) ([]Resume, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userId, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// CountByUser returns the total number of resumes for a user.
func (r *PGRepo) CountByUser(ctx context.Context, userId string) (int, error) {
	const query = `
SELECT COUNT(*)
FROM resumes
WHERE user_id = $1 AND deleted_at IS NULL`
	var total int
	if err := r.DB.QueryRowContext(ctx, query, userId).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// SaveAnalysis stores analysis results for a resume.
func (r *PGRepo) SaveAnalysis(ctx context.Context, userId, resumeID string, score int, analysis ats.AnalysisResult, enhanced flaws.EnhancedAnalysis, analyzedAt time.Time) error {
	const query = `
UPDATE resumes
SET ats_score = $1, analysis = $2, enhanced_analysis = $3, analyzed_at = $4
WHERE user_id = $5 AND id = $6 AND deleted_at IS NULL`

	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	enhancedJSON, err := json.Marshal(enhanced)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, query, score, analysisJSON, enhancedJSON, analyzedAt, userId, resumeID)
	if err != nil {
		return err
	}
	if updated, err := res.RowsAffected(); err == nil && updated == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete soft-deletes a resume for a user.
func (r *PGRepo) Delete(ctx context.Context, userId, resumeID string) error {
	const query = `
UPDATE resumes
SET deleted_at = NOW()
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL`
	res, err := r.DB.ExecContext(ctx, query, userId, resumeID)
	if err != nil {
		return err
	}
	if updated, err := res.RowsAffected(); err == nil && updated == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var resume Resume
	var storageProvider sql.NullString
	var storageKey sql.NullString
	var extractedKey sql.NullString
	var preview sql.NullString
	var score sql.NullInt64
	var analysisJSON []byte
	var enhancedJSON []byte
	var analyzedAt sql.NullTime
	if err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.FileName,
		&resume.MimeType,
		&resume.SizeBytes,
		&storageProvider,
		&storageKey,
		&extractedKey,
		&preview,
		&score,
		&analysisJSON,
		&enhancedJSON,
		&analyzedAt,
		&resume.CreatedAt,
	); err != nil {
		return Resume{}, err
	}
	if storageProvider.Valid {
		resume.StorageProvider = storageProvider.String
	}
	if storageKey.Valid {
		resume.StorageKey = storageKey.String
	}
	if extractedKey.Valid {
		resume.ExtractedTextKey = extractedKey.String
	}
	if preview.Valid {
		resume.TextPreview = preview.String
	}
	if score.Valid {
		v := int(score.Int64)
		resume.ATSScore = &v
	}
	if len(analysisJSON) > 0 {
		var analysis ats.AnalysisResult
		if err := json.Unmarshal(analysisJSON, &analysis); err != nil {
			return Resume{}, err
		}
		resume.Analysis = &analysis
	}
	if len(enhancedJSON) > 0 {
		var enhanced flaws.EnhancedAnalysis
		if err := json.Unmarshal(enhancedJSON, &enhanced); err != nil {
			return Resume{}, err
		}
		resume.Enhanced = &enhanced
	}
	if analyzedAt.Valid {
		resume.AnalyzedAt = &analyzedAt.Time
	}
	return resume, nil
}

var _ ResumesRepo = (*PGRepo)(nil)
