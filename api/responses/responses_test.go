package responses

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	pkgerrors "github.com/xomware/xomware-backend/pkg/errors"
	"github.com/xomware/xomware-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{
		ServiceName: "test",
		Level:       zerolog.Disabled,
		Output:      io.Discard,
	})
}

func decodeBody(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode body: %v (%s)", err, body)
	}
	return out
}

func TestWriteSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteSuccess(rec, map[string]any{"id": "usr_1"})

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	body := decodeBody(t, rec.Body.Bytes())
	if body["success"] != true {
		t.Fatalf("expected success=true, got %v", body["success"])
	}
	data, ok := body["data"].(map[string]any)
	if !ok || data["id"] != "usr_1" {
		t.Fatalf("unexpected data %v", body["data"])
	}
	if _, ok := body["error"]; ok {
		t.Fatal("error key must be absent on success")
	}
}

func TestWriteSuccessNilDataOmitsKey(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteSuccessStatus(rec, 201, nil)

	if rec.Code != 201 {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	body := decodeBody(t, rec.Body.Bytes())
	if len(body) != 1 || body["success"] != true {
		t.Fatalf("expected bare success envelope, got %v", body)
	}
}

func TestWriteErrorTrustedMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeValidation, "Email is required")

	WriteError(context.Background(), testLogger(), rec, err)

	if rec.Code != 400 {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeBody(t, rec.Body.Bytes())
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body["success"])
	}
	if body["error"] != "Email is required" {
		t.Fatalf("unexpected error message %v", body["error"])
	}
	if _, ok := body["data"]; ok {
		t.Fatal("data key must be absent on failure")
	}
}

func TestWriteErrorMasksInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeInternal, "pq: connection refused on 10.0.0.3")

	WriteError(context.Background(), testLogger(), rec, err)

	if rec.Code != 500 {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decodeBody(t, rec.Body.Bytes())
	if body["error"] != "internal server error" {
		t.Fatalf("internal message leaked: %v", body["error"])
	}
}

func TestWriteErrorUntypedDefaultsToInternal(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(context.Background(), nil, rec, io.ErrUnexpectedEOF)

	if rec.Code != 500 {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decodeBody(t, rec.Body.Bytes())
	if body["error"] != "internal server error" {
		t.Fatalf("unexpected error message %v", body["error"])
	}
}

func TestWriteErrorNilError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(context.Background(), nil, rec, nil)

	if rec.Code != 500 {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decodeBody(t, rec.Body.Bytes())
	if body["success"] != false {
		t.Fatalf("expected failure envelope, got %v", body)
	}
}
