package validation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kbukum/propkit/errors"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("pattern", "yyyy-MM-dd")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("pattern", "")
	if !v2.HasErrors() {
		t.Error("expected error for empty required field")
	}

	v3 := New()
	v3.Required("pattern", "   ")
	if !v3.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorRange(t *testing.T) {
	tests := []struct {
		value   int
		wantErr bool
	}{
		{1, false},
		{12, false},
		{4096, false},
		{0, true},
		{4097, true},
	}
	for _, tc := range tests {
		v := New().Range("length", tc.value, 1, 4096)
		if v.HasErrors() != tc.wantErr {
			t.Errorf("Range(%d) errors = %v, wantErr %v", tc.value, v.Errors(), tc.wantErr)
		}
	}
}

func TestValidatorOneOf(t *testing.T) {
	allowed := []string{"json", "console"}
	if New().OneOf("format", "json", allowed).HasErrors() {
		t.Error("expected json to be allowed")
	}
	if New().OneOf("format", "", allowed).HasErrors() {
		t.Error("expected empty value to be skipped")
	}
	v := New().OneOf("format", "xml", allowed)
	if !v.HasErrors() {
		t.Fatal("expected error for disallowed value")
	}
	if !strings.Contains(v.Errors()[0].Message, "json, console") {
		t.Errorf("expected allowed values in message, got %q", v.Errors()[0].Message)
	}
}

func TestValidatorCustom(t *testing.T) {
	v := New()
	v.Custom(true, "zone", "unused")
	v.Custom(false, "zone", "unknown time zone")
	if len(v.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d", len(v.Errors()))
	}
	if v.Errors()[0].Field != "zone" {
		t.Errorf("expected field zone, got %q", v.Errors()[0].Field)
	}
}

func TestValidatorValidate(t *testing.T) {
	if New().Validate() != nil {
		t.Error("expected nil AppError without errors")
	}

	v := New()
	v.AddError("length", "must be positive")
	v.AddError("alphabet", "is required")
	appErr := v.Validate()
	if appErr == nil {
		t.Fatal("expected AppError")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "length: must be positive") || !strings.Contains(appErr.Message, "alphabet: is required") {
		t.Errorf("expected all field messages, got %q", appErr.Message)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Errorf("expected 2 field errors in details, got %v", appErr.Details["fields"])
	}
}

func TestValidatorMerge(t *testing.T) {
	type Inner struct {
		Length int `json:"length" validate:"gte=1"`
	}

	v := New()
	v.Merge("random", Validate(Inner{Length: 0}))
	v.Merge("datetime", fmt.Errorf("unknown zone"))
	v.Merge("logging", nil)

	errs := v.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 merged errors, got %v", errs)
	}
	if errs[0].Field != "random.length" {
		t.Errorf("expected prefixed field random.length, got %q", errs[0].Field)
	}
	if errs[1].Field != "datetime" || errs[1].Message != "unknown zone" {
		t.Errorf("expected plain error recorded against datetime, got %+v", errs[1])
	}
}

func TestValidatorChaining(t *testing.T) {
	v := New().
		Required("pattern", "yyyy").
		Range("length", 12, 1, 64).
		OneOf("format", "json", []string{"json"})
	if v.HasErrors() {
		t.Error("expected no errors for valid chained validation")
	}
}

func TestStructValidateValid(t *testing.T) {
	type Settings struct {
		Pattern string `json:"pattern" validate:"required"`
		Length  int    `json:"length" validate:"gte=1,lte=4096"`
	}

	if err := Validate(Settings{Pattern: "yyyy", Length: 12}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestStructValidateInvalid(t *testing.T) {
	type Settings struct {
		Pattern string `json:"pattern" validate:"required"`
		Length  int    `json:"length" validate:"gte=1,lte=4096"`
	}

	err := Validate(Settings{Pattern: "", Length: 0})
	if err == nil {
		t.Fatal("expected validation error")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "pattern: is required") {
		t.Errorf("expected error to mention 'pattern', got %q", errStr)
	}
	if !strings.Contains(errStr, "length: must be greater than or equal to 1") {
		t.Errorf("expected error to mention 'length', got %q", errStr)
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT AppError, got %T", err)
	}
}

func TestStructValidateMaxMin(t *testing.T) {
	type Input struct {
		Alphabet string `json:"alphabet" validate:"required,min=2,max=10"`
	}

	if err := Validate(Input{Alphabet: "abc"}); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
	if err := Validate(Input{Alphabet: "a"}); err == nil {
		t.Error("expected error for alphabet too short")
	} else if !strings.Contains(err.Error(), "characters") {
		t.Errorf("expected string length message, got %q", err.Error())
	}
}

func TestStructValidateFieldNameFallback(t *testing.T) {
	type Input struct {
		TimeZone string `validate:"required"`
	}

	err := Validate(Input{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "time_zone") {
		t.Errorf("expected snake_case field name, got %q", err.Error())
	}
}
