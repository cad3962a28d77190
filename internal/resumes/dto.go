package resumes

import (
	"time"

	"ats-backend/internal/ats"
	"ats-backend/internal/flaws"
	"ats-backend/internal/parser"
)

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ResumeID    string     `json:"resumeId"`
	FileName    string     `json:"fileName"`
	MimeType    string     `json:"mimeType"`
	SizeBytes   int64      `json:"sizeBytes"`
	ATSScore    *int       `json:"atsScore,omitempty"`
	AnalyzedAt  *time.Time `json:"analyzedAt,omitempty"`
	UploadedAt  time.Time  `json:"uploadedAt"`
	TextPreview string     `json:"textPreview,omitempty"`
}

func toResponse(resume Resume) ResumeResponse {
	return ResumeResponse{
		ResumeID:    resume.ID,
		FileName:    resume.FileName,
		MimeType:    resume.MimeType,
		SizeBytes:   resume.SizeBytes,
		ATSScore:    resume.ATSScore,
		AnalyzedAt:  resume.AnalyzedAt,
		UploadedAt:  resume.CreatedAt,
		TextPreview: resume.TextPreview,
	}
}

// ResumeDetailResponse includes stored analysis results.
type ResumeDetailResponse struct {
	ResumeResponse
	Analysis *ats.AnalysisResult     `json:"analysis,omitempty"`
	Enhanced *flaws.EnhancedAnalysis `json:"enhancedAnalysis,omitempty"`
}

func toDetailResponse(resume Resume) ResumeDetailResponse {
	return ResumeDetailResponse{
		ResumeResponse: toResponse(resume),
		Analysis:       resume.Analysis,
		Enhanced:       resume.Enhanced,
	}
}

type uploadInfo struct {
	UploadsUsed      int `json:"uploadsUsed"`
	UploadsRemaining int `json:"uploadsRemaining"`
}

// UploadResponse is returned after a successful upload.
type UploadResponse struct {
	ResumeID    string                `json:"resumeId"`
	FileName    string                `json:"fileName"`
	Sections    parser.ParsedSections `json:"sections"`
	TextPreview string                `json:"parsedTextPreview"`
	UploadInfo  uploadInfo            `json:"uploadInfo"`
}

// AnalyzeResponse is returned after running the scoring pipeline.
type AnalyzeResponse struct {
	ResumeID string                 `json:"resumeId"`
	FileName string                 `json:"fileName"`
	ATSScore int                    `json:"atsScore"`
	Analysis ats.AnalysisResult     `json:"analysis"`
	Enhanced flaws.EnhancedAnalysis `json:"enhancedAnalysis"`
}
