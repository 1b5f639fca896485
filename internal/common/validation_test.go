package common

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestValidatorCollectsFieldErrors(t *testing.T) {
	v := NewValidator().
		Field("venture_id", "not-a-uuid", UUID).
		Field("source_path", "   ", Required)

	if !v.HasErrors() {
		t.Fatal("expected validation errors for bad UUID and blank path")
	}
	msg := v.ErrorMessage()
	if !strings.Contains(msg, "venture_id") || !strings.Contains(msg, "source_path") {
		t.Errorf("combined message should name both failing fields: %q", msg)
	}

	err := ValidateAndReturnError(v)
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestValidatorPassesValidInput(t *testing.T) {
	v := NewValidator().
		Field("venture_id", uuid.NewString(), UUID).
		Field("source_path", "/data/deck.pdf", Required)

	if v.HasErrors() {
		t.Fatalf("unexpected errors: %s", v.ErrorMessage())
	}
	if err := ValidateAndReturnError(v); err != nil {
		t.Errorf("ValidateAndReturnError = %v, want nil", err)
	}
}

func TestSupportedMIMEType(t *testing.T) {
	if err := SupportedMIMEType("file_type", "application/pdf"); err != nil {
		t.Errorf("application/pdf should pass: %v", err)
	}
	if err := SupportedMIMEType("file_type", "text/plain"); err == nil {
		t.Error("text/plain has no extractor and should fail")
	}
	if err := SupportedMIMEType("file_type", ""); err == nil {
		t.Error("empty MIME type should fail")
	}
}

func TestMaxLength(t *testing.T) {
	if err := MaxLength("name", "short", 10); err != nil {
		t.Errorf("five runes within a limit of ten should pass: %v", err)
	}
	if err := MaxLength("name", strings.Repeat("x", 11), 10); err == nil {
		t.Error("eleven runes over a limit of ten should fail")
	}
}
