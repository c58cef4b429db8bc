package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/xomware/xomware-backend/pkg/errors"
)

type samplePayload struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=2"`
}

func TestDecodeJSONBodyValid(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"dom@xomware.com","name":"Dom"}`))

	var dest samplePayload
	if err := DecodeJSONBody(r, &dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dest.Email != "dom@xomware.com" || dest.Name != "Dom" {
		t.Fatalf("unexpected payload %+v", dest)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"dom@xomware.com","name":"Dom","rogue":1}`))

	var dest samplePayload
	err := DecodeJSONBody(r, &dest)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyValidationDetailsUseJSONNames(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Dom"}`))

	var dest samplePayload
	err := DecodeJSONBody(r, &dest)
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}

	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if details["email"] != "is required" {
		t.Fatalf("expected json tag field name, got %v", details)
	}
}

func TestParseQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/?limit=10", nil)
	got, err := ParseQueryInt(r, "limit", 25, 1, 100)
	if err != nil || got != 10 {
		t.Fatalf("got %d, %v", got, err)
	}

	r = httptest.NewRequest("GET", "/", nil)
	got, err = ParseQueryInt(r, "limit", 25, 1, 100)
	if err != nil || got != 25 {
		t.Fatalf("expected default, got %d, %v", got, err)
	}

	r = httptest.NewRequest("GET", "/?limit=abc", nil)
	if _, err = ParseQueryInt(r, "limit", 25, 1, 100); err == nil {
		t.Fatal("expected error for non-numeric value")
	}

	r = httptest.NewRequest("GET", "/?limit=999", nil)
	if _, err = ParseQueryInt(r, "limit", 25, 1, 100); err == nil {
		t.Fatal("expected error for out-of-range value")
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello  ", 0); got != "hello" {
		t.Fatalf("got %q", got)
	}
	if got := SanitizeString("abcdef", 3); got != "abc" {
		t.Fatalf("got %q", got)
	}
}
