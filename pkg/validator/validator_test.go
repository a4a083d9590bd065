package validator

import "testing"

type sampleRequest struct {
	Username string `validate:"required,min=3,max=50"`
	Email    string `validate:"required,email"`
	Age      int    `validate:"gte=0,lte=150"`
}

func TestValidatePasses(t *testing.T) {
	v := NewValidator()
	req := sampleRequest{Username: "drhouse", Email: "house@clinic.example", Age: 48}
	if err := v.Validate(req); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidateFails(t *testing.T) {
	v := NewValidator()
	req := sampleRequest{Username: "ab", Email: "not-an-email", Age: 200}
	err := v.Validate(req)
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	fields := v.FormatValidationErrors(err)
	if len(fields) != 3 {
		t.Errorf("expected 3 field errors, got %d: %v", len(fields), fields)
	}
	if msg, ok := fields["Username"]; !ok || msg != "Username must be at least 3" {
		t.Errorf("Username error = %q", msg)
	}
	if msg, ok := fields["Email"]; !ok || msg != "Email must be a valid email address" {
		t.Errorf("Email error = %q", msg)
	}
	if msg, ok := fields["Age"]; !ok || msg != "Age must be less than or equal to 150" {
		t.Errorf("Age error = %q", msg)
	}
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	v := NewValidator()
	err := v.Validate(sampleRequest{})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	fields := v.FormatValidationErrors(err)
	if msg := fields["Username"]; msg != "Username is required" {
		t.Errorf("Username error = %q", msg)
	}
}
