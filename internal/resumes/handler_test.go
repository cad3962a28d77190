package resumes_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/bootstrap"
	"ats-backend/internal/shared/config"
)

func newTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

// resumeDocx builds a minimal DOCX archive with one paragraph per line.
func resumeDocx(t *testing.T, lines []string) []byte {
	t.Helper()

	var paragraphs strings.Builder
	for _, line := range lines {
		paragraphs.WriteString("<w:p><w:r><w:t>")
		if err := xmlEscape(&paragraphs, line); err != nil {
			t.Fatalf("escape line: %v", err)
		}
		paragraphs.WriteString("</w:t></w:r></w:p>")
	}

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + paragraphs.String() + `</w:body></w:document>`

	entries := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
			`</Types>`,
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
			`</Relationships>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml": document,
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

func xmlEscape(sb *strings.Builder, s string) error {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	_, err := replacer.WriteString(sb, s)
	return err
}

func sampleResumeLines() []string {
	return []string{
		"John Doe",
		"john.doe@email.com | (555) 123-4567 | linkedin.com/in/johndoe",
		"Summary",
		"Experienced software engineer with eight years building scalable backend platforms and leading small teams through delivery.",
		"Experience",
		"Senior Software Engineer",
		"Acme Corp",
		"January 2020 - Present",
		"- Led team of 8 engineers and increased deployment frequency by 40%",
		"- Developed microservices in Go and Python serving 2 million users",
		"- Improved API latency by 30% through caching and query tuning",
		"Education",
		"Bachelor of Science in Computer Science",
		"State University",
		"2016",
		"Skills",
		"Python, JavaScript, React, SQL, AWS, Docker, Kubernetes, Leadership, Communication",
	}
}

func uploadResume(t *testing.T, router *gin.Engine, guestID string) string {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", "resume.docx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write(resumeDocx(t, sampleResumeLines())); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Guest-Id", guestID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		ResumeID   string `json:"resumeId"`
		FileName   string `json:"fileName"`
		UploadInfo struct {
			UploadsUsed      int `json:"uploadsUsed"`
			UploadsRemaining int `json:"uploadsRemaining"`
		} `json:"uploadInfo"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ResumeID == "" {
		t.Fatalf("expected resumeId, got empty")
	}
	if created.FileName != "resume.docx" {
		t.Fatalf("expected fileName resume.docx, got %s", created.FileName)
	}
	return created.ResumeID
}

func TestResumeUploadAnalyzeAndMatch(t *testing.T) {
	app := newTestApp(t)
	router := app.Router

	resumeID := uploadResume(t, router, "test-guest")

	// Analyze the uploaded resume.
	reqAnalyze := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/"+resumeID+"/analyze", nil)
	reqAnalyze.Header.Set("X-Guest-Id", "test-guest")
	respAnalyze := httptest.NewRecorder()
	router.ServeHTTP(respAnalyze, reqAnalyze)

	if respAnalyze.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", respAnalyze.Code, respAnalyze.Body.String())
	}

	var analyzed struct {
		ResumeID string `json:"resumeId"`
		ATSScore int    `json:"atsScore"`
		Analysis struct {
			OverallScore int `json:"overallScore"`
			Feedback     []struct {
				Section string `json:"section"`
			} `json:"feedback"`
		} `json:"analysis"`
		Enhanced struct {
			ApprovalTips     []struct{} `json:"approvalTips"`
			OverallReadiness string     `json:"overallReadiness"`
		} `json:"enhancedAnalysis"`
	}
	if err := json.NewDecoder(respAnalyze.Body).Decode(&analyzed); err != nil {
		t.Fatalf("decode analyze response: %v", err)
	}
	if analyzed.ATSScore < 0 || analyzed.ATSScore > 100 {
		t.Fatalf("atsScore out of range: %d", analyzed.ATSScore)
	}
	if analyzed.ATSScore != analyzed.Analysis.OverallScore {
		t.Fatalf("atsScore %d does not match overallScore %d", analyzed.ATSScore, analyzed.Analysis.OverallScore)
	}
	if len(analyzed.Analysis.Feedback) != 5 {
		t.Fatalf("expected 5 feedback sections, got %d", len(analyzed.Analysis.Feedback))
	}
	if len(analyzed.Enhanced.ApprovalTips) != 14 {
		t.Fatalf("expected 14 approval tips, got %d", len(analyzed.Enhanced.ApprovalTips))
	}

	// Match against a job description.
	matchBody, _ := json.Marshal(map[string]string{
		"jobDescription": "We are hiring a Software Engineer with experience in Python, React and AWS. Requirements: 3+ years of experience.",
	})
	reqMatch := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/"+resumeID+"/match-job", bytes.NewReader(matchBody))
	reqMatch.Header.Set("Content-Type", "application/json")
	reqMatch.Header.Set("X-Guest-Id", "test-guest")
	respMatch := httptest.NewRecorder()
	router.ServeHTTP(respMatch, reqMatch)

	if respMatch.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", respMatch.Code, respMatch.Body.String())
	}

	var matched struct {
		ResumeID    string `json:"resumeId"`
		MatchResult struct {
			MatchScore           int `json:"matchScore"`
			ImprovementPotential int `json:"improvementPotential"`
		} `json:"matchResult"`
	}
	if err := json.NewDecoder(respMatch.Body).Decode(&matched); err != nil {
		t.Fatalf("decode match response: %v", err)
	}
	if matched.MatchResult.MatchScore < 0 || matched.MatchResult.MatchScore > 100 {
		t.Fatalf("matchScore out of range: %d", matched.MatchResult.MatchScore)
	}
	if matched.MatchResult.MatchScore+matched.MatchResult.ImprovementPotential > 100 {
		t.Fatalf("matchScore %d + improvementPotential %d exceeds 100",
			matched.MatchResult.MatchScore, matched.MatchResult.ImprovementPotential)
	}

	// Fetch the resume; stored analysis should be present.
	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+resumeID, nil)
	reqGet.Header.Set("X-Guest-Id", "test-guest")
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}
	var detail struct {
		ResumeID string          `json:"resumeId"`
		ATSScore *int            `json:"atsScore"`
		Analysis json.RawMessage `json:"analysis"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&detail); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if detail.ATSScore == nil {
		t.Fatalf("expected stored atsScore after analyze")
	}
	if len(detail.Analysis) == 0 {
		t.Fatalf("expected stored analysis after analyze")
	}

	// Delete and verify it is gone.
	reqDel := httptest.NewRequest(http.MethodDelete, "/api/v1/resumes/"+resumeID, nil)
	reqDel.Header.Set("X-Guest-Id", "test-guest")
	respDel := httptest.NewRecorder()
	router.ServeHTTP(respDel, reqDel)
	if respDel.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respDel.Code)
	}

	reqGone := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+resumeID, nil)
	reqGone.Header.Set("X-Guest-Id", "test-guest")
	respGone := httptest.NewRecorder()
	router.ServeHTTP(respGone, reqGone)
	if respGone.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 after delete, got %d", respGone.Code)
	}
}

func TestResumeDeleteRemovesStoredFiles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	storeDir := t.TempDir()

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   storeDir,
		Env:             "dev",
		ObjectStoreType: "local",
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	router := app.Router

	resumeID := uploadResume(t, router, "test-guest")
	if countStoredFiles(t, storeDir) == 0 {
		t.Fatalf("expected stored files after upload")
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/resumes/"+resumeID, nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	if n := countStoredFiles(t, storeDir); n != 0 {
		t.Fatalf("expected no stored files after delete, found %d", n)
	}
}

func countStoredFiles(t *testing.T, dir string) int {
	t.Helper()
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk store dir: %v", err)
	}
	return count
}

func TestResumeListRequiresLogin(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for guest list, got %d", resp.Code)
	}
}

func TestResumeUploadLimit(t *testing.T) {
	app := newTestApp(t)
	router := app.Router

	for i := 0; i < 5; i++ {
		uploadResume(t, router, "limited-guest")
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", "resume.docx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write(resumeDocx(t, sampleResumeLines())); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Guest-Id", "limited-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 after limit, got %d: %s", resp.Code, resp.Body.String())
	}

	// Usage endpoint reflects the consumed quota.
	reqUsage := httptest.NewRequest(http.MethodGet, "/api/v1/usage", nil)
	reqUsage.Header.Set("X-Guest-Id", "limited-guest")
	respUsage := httptest.NewRecorder()
	router.ServeHTTP(respUsage, reqUsage)

	if respUsage.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respUsage.Code)
	}
	var u struct {
		Plan  string `json:"plan"`
		Limit int    `json:"limit"`
		Used  int    `json:"used"`
	}
	if err := json.NewDecoder(respUsage.Body).Decode(&u); err != nil {
		t.Fatalf("decode usage response: %v", err)
	}
	if u.Plan != "Free" || u.Limit != 5 || u.Used != 5 {
		t.Fatalf("unexpected usage: %+v", u)
	}
}

func TestResumeUploadRejectsUnsupportedFile(t *testing.T) {
	app := newTestApp(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", "resume.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fmt.Fprint(fileWriter, "plain text resume")
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unsupported file, got %d", resp.Code)
	}

	var payload struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if payload.Error.Code != "unsupported_format" {
		t.Fatalf("expected code unsupported_format, got %q", payload.Error.Code)
	}
	// The message should list every accepted format, images included.
	for _, format := range []string{"PDF", "DOCX", "JPG", "JPEG", "PNG"} {
		if !strings.Contains(payload.Error.Message, format) {
			t.Errorf("error message %q does not mention %s", payload.Error.Message, format)
		}
	}
}
