package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"ats-backend/internal/ats"
	"ats-backend/internal/flaws"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	resume := Resume{
		ID:               "resume-1",
		UserID:           "guest:abc",
		FileName:         "resume.docx",
		MimeType:         "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		SizeBytes:        2048,
		StorageKey:       "hashed/resume.docx",
		ExtractedTextKey: "hashed/resume.docx.extracted.txt",
		TextPreview:      "John Doe",
		CreatedAt:        time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			resume.ID,
			resume.UserID,
			resume.FileName,
			resume.MimeType,
			resume.SizeBytes,
			"local",
			sqlmock.AnyArg(), // storage_key
			sqlmock.AnyArg(), // extracted_text_key
			resume.TextPreview,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDDecodesAnalysis(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	columns := []string{
		"id", "user_id", "file_name", "mime_type", "size_bytes",
		"storage_provider", "storage_key", "extracted_text_key", "text_preview",
		"ats_score", "analysis", "enhanced_analysis", "analyzed_at", "created_at",
	}
	analysisJSON := []byte(`{"overallScore":72,"scores":{"keywordRelevance":60,"sectionStructure":85,"formatting":90,"experienceQuality":70,"skillsMatch":60,"fileStructure":80}}`)
	enhancedJSON := []byte(`{"flaws":[],"approvalTips":[],"overallReadiness":"needs_work","readinessScore":65,"summary":"ok"}`)

	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("guest:abc", "resume-1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			"resume-1", "guest:abc", "resume.docx", "application/pdf", int64(2048),
			"local", "key", "key.extracted.txt", "John Doe",
			72, analysisJSON, enhancedJSON, now, now,
		))

	resume, err := repo.GetByID(context.Background(), "guest:abc", "resume-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if resume.ATSScore == nil || *resume.ATSScore != 72 {
		t.Fatalf("expected ats score 72, got %v", resume.ATSScore)
	}
	if resume.Analysis == nil || resume.Analysis.OverallScore != 72 {
		t.Fatalf("expected decoded analysis, got %+v", resume.Analysis)
	}
	if resume.Enhanced == nil || resume.Enhanced.ReadinessScore != 65 {
		t.Fatalf("expected decoded enhanced analysis, got %+v", resume.Enhanced)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("guest:abc", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), "guest:abc", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoSaveAnalysis(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	analysis := ats.AnalysisResult{OverallScore: 80}
	enhanced := flaws.EnhancedAnalysis{ReadinessScore: 75, OverallReadiness: "needs_work"}

	mock.ExpectExec("UPDATE resumes").
		WithArgs(
			80,
			sqlmock.AnyArg(), // analysis json
			sqlmock.AnyArg(), // enhanced json
			sqlmock.AnyArg(), // analyzed_at
			"guest:abc",
			"resume-1",
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveAnalysis(context.Background(), "guest:abc", "resume-1", 80, analysis, enhanced, time.Now().UTC()); err != nil {
		t.Fatalf("SaveAnalysis: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("UPDATE resumes").
		WithArgs("guest:abc", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "guest:abc", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
