package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"study-outline-tracker/internal/middleware"
	outlineHTTP "study-outline-tracker/internal/outline/delivery/http"
	"study-outline-tracker/internal/outline/parser"
	"study-outline-tracker/internal/outline/usecase"
	"study-outline-tracker/pkg/response"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}

func newTestRouter(t *testing.T, policy outlineHTTP.UploadPolicy) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uc, err := usecase.New(mockLogger{}, parser.New(), 0)
	if err != nil {
		t.Fatalf("usecase.New: %v", err)
	}

	h := outlineHTTP.New(mockLogger{}, uc, policy)
	mw := middleware.New(mockLogger{}, middleware.Config{})

	r := gin.New()
	outlineHTTP.RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func defaultPolicy() outlineHTTP.UploadPolicy {
	return outlineHTTP.UploadPolicy{
		MaxSizeBytes:      1 << 20,
		AllowedExtensions: []string{".txt", ".md", ".markdown"},
	}
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestUpload(t *testing.T) {
	t.Run("Parses Outline Document", func(t *testing.T) {
		r := newTestRouter(t, defaultPolicy())

		body, contentType := multipartBody(t, "outline.md", "## Math\n- [x] algebra\n- [ ] geometry\n")
		req := httptest.NewRequest(http.MethodPost, "/api/v1/outline/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !resp.Success {
			t.Errorf("expected success envelope, got %s", w.Body.String())
		}

		data, ok := resp.Data.(map[string]interface{})
		if !ok {
			t.Fatalf("unexpected data shape: %v", resp.Data)
		}
		if data["total_subjects"] != float64(1) {
			t.Errorf("expected 1 subject, got %v", data["total_subjects"])
		}
		if data["completed_tasks"] != float64(1) || data["total_tasks"] != float64(2) {
			t.Errorf("expected 1/2 tasks completed, got %v/%v", data["completed_tasks"], data["total_tasks"])
		}

		subjects, ok := data["subjects"].([]interface{})
		if !ok || len(subjects) != 1 {
			t.Fatalf("expected one subject entry, got %v", data["subjects"])
		}
		subject := subjects[0].(map[string]interface{})
		if subject["name"] != "Math" {
			t.Errorf("expected subject Math, got %v", subject["name"])
		}
	})

	t.Run("Rejects Unsupported Extension", func(t *testing.T) {
		r := newTestRouter(t, defaultPolicy())

		body, contentType := multipartBody(t, "outline.pdf", "## Math\n")
		req := httptest.NewRequest(http.MethodPost, "/api/v1/outline/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}

		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Success {
			t.Errorf("expected error envelope")
		}
	})

	t.Run("Rejects Oversized File", func(t *testing.T) {
		policy := defaultPolicy()
		policy.MaxSizeBytes = 64
		r := newTestRouter(t, policy)

		body, contentType := multipartBody(t, "outline.txt", strings.Repeat("- [ ] task\n", 100))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/outline/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("expected 413, got %d", w.Code)
		}
	})

	t.Run("Rejects Empty File", func(t *testing.T) {
		r := newTestRouter(t, defaultPolicy())

		body, contentType := multipartBody(t, "outline.txt", "")
		req := httptest.NewRequest(http.MethodPost, "/api/v1/outline/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Rejects Missing File Field", func(t *testing.T) {
		r := newTestRouter(t, defaultPolicy())

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		writer.WriteField("not_a_file", "value")
		writer.Close()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/outline/upload", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestProgress(t *testing.T) {
	t.Run("Acknowledges Payload", func(t *testing.T) {
		r := newTestRouter(t, defaultPolicy())

		payload := `{"subject":"Math","completed":3,"total":5}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/progress", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		data, ok := resp.Data.(map[string]interface{})
		if !ok {
			t.Fatalf("unexpected data shape: %v", resp.Data)
		}
		if data["status"] != "accepted" {
			t.Errorf("expected accepted status, got %v", data["status"])
		}
		if data["receipt_id"] == "" || data["receipt_id"] == nil {
			t.Errorf("expected a receipt id")
		}
	})

	t.Run("Rejects Malformed JSON", func(t *testing.T) {
		r := newTestRouter(t, defaultPolicy())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/progress", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
