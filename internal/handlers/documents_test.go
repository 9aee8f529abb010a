package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kwameadu/doc-studio-api/internal/models"
	"github.com/kwameadu/doc-studio-api/internal/utils"
)

type fakeDocumentService struct {
	resp *models.UploadResponse
	err  error

	gotFilename  string
	gotSessionID string
	gotBytes     int
}

func (f *fakeDocumentService) Upload(_ context.Context, data []byte, filename, sessionID string) (*models.UploadResponse, error) {
	f.gotFilename = filename
	f.gotSessionID = sessionID
	f.gotBytes = len(data)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func multipartUpload(t *testing.T, filename, content string, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadSuccess(t *testing.T) {
	svc := &fakeDocumentService{resp: &models.UploadResponse{
		SessionID: "s1",
		Filename:  "notes.txt",
		Chars:     11,
		Chunks:    1,
		Summary:   "a summary",
	}}
	h := NewDocumentHandler(svc, utils.NewLogger("error"), 1<<20)

	req := multipartUpload(t, "notes.txt", "hello world", map[string]string{"session_id": "s1"})
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if svc.gotFilename != "notes.txt" || svc.gotSessionID != "s1" || svc.gotBytes != 11 {
		t.Errorf("service saw (%q, %q, %d bytes)", svc.gotFilename, svc.gotSessionID, svc.gotBytes)
	}

	var resp models.UploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Summary != "a summary" {
		t.Errorf("summary = %q", resp.Summary)
	}
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	svc := &fakeDocumentService{}
	h := NewDocumentHandler(svc, utils.NewLogger("error"), 1<<20)

	req := multipartUpload(t, "report.xlsx", "data", nil)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if svc.gotBytes != 0 {
		t.Error("service should not be called for unsupported extensions")
	}
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	h := NewDocumentHandler(&fakeDocumentService{}, utils.NewLogger("error"), 1<<20)

	req := multipartUpload(t, "empty.txt", "", nil)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUploadRejectsMissingFile(t *testing.T) {
	h := NewDocumentHandler(&fakeDocumentService{}, utils.NewLogger("error"), 1<<20)

	req := multipartUpload(t, "", "", map[string]string{"session_id": "s1"})
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	h := NewDocumentHandler(&fakeDocumentService{}, utils.NewLogger("error"), 64)

	req := multipartUpload(t, "big.txt", strings.Repeat("x", 4096), nil)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUploadMapsServiceError(t *testing.T) {
	svc := &fakeDocumentService{err: utils.NewBadGatewayError("Provider request failed: mistral", nil)}
	h := NewDocumentHandler(svc, utils.NewLogger("error"), 1<<20)

	req := multipartUpload(t, "notes.txt", "hello world", nil)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}
