package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("db down")
	err := Wrap(CodeDependency, cause, "query users")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to survive errors.Is")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("unexpected code %s", err.Code())
	}
}

func TestAsFindsTypedErrorInChain(t *testing.T) {
	inner := New(CodeNotFound, "user missing")
	outer := fmt.Errorf("handler: %w", inner)

	typed := As(outer)
	if typed == nil {
		t.Fatal("expected typed error in chain")
	}
	if typed.Code() != CodeNotFound {
		t.Fatalf("unexpected code %s", typed.Code())
	}
}

func TestAsReturnsNilForUntypedError(t *testing.T) {
	if As(stdErrors.New("boom")) != nil {
		t.Fatal("expected nil for untyped error")
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	meta := MetadataFor(Code("NOPE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestPublicMessageForTrustedCode(t *testing.T) {
	code, msg := PublicMessageFor(New(CodeValidation, "Email is required"))
	if code != CodeValidation {
		t.Fatalf("unexpected code %s", code)
	}
	if msg != "Email is required" {
		t.Fatalf("expected trusted message to pass through, got %q", msg)
	}
}

func TestPublicMessageForUntrustedCodeMasksMessage(t *testing.T) {
	code, msg := PublicMessageFor(Wrap(CodeInternal, stdErrors.New("stack details"), "stack details"))
	if code != CodeInternal {
		t.Fatalf("unexpected code %s", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal messages must be masked, got %q", msg)
	}
}

func TestPublicMessageForUntypedError(t *testing.T) {
	code, msg := PublicMessageFor(stdErrors.New("boom"))
	if code != CodeInternal || msg != "internal server error" {
		t.Fatalf("untyped errors map to internal, got %s %q", code, msg)
	}
}

func TestDumpCollectsChain(t *testing.T) {
	err := Wrap(CodeConflict, stdErrors.New("duplicate key value"), "create user")
	d := Dump(err)

	if d.Code != CodeConflict {
		t.Fatalf("unexpected code %s", d.Code)
	}
	if len(d.Chain) != 2 {
		t.Fatalf("expected two chain entries, got %v", d.Chain)
	}
}

func TestNilErrorAccessors(t *testing.T) {
	var e *Error
	if e.Code() != CodeInternal {
		t.Fatal("nil error should report internal code")
	}
	if e.Message() != "" || e.Details() != nil {
		t.Fatal("nil error should report empty message and details")
	}
}
