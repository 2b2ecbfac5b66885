package validation_test

import (
	"strings"
	"testing"

	"github.com/autopress-api/internal/validation"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last+tag@sub.example.co"}
	for _, e := range valid {
		if err := validation.ValidateEmail(e); err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", e, err)
		}
	}

	invalid := []string{"", "no-at-sign", "user@", "@example.com", "user@example", strings.Repeat("a", 250) + "@example.com"}
	for _, e := range invalid {
		if err := validation.ValidateEmail(e); err == nil {
			t.Errorf("ValidateEmail(%q) = nil, want error", e)
		}
	}
}

func TestValidateUsername(t *testing.T) {
	if err := validation.ValidateUsername("jane_doe-42"); err != nil {
		t.Errorf("expected valid username, got %v", err)
	}

	invalid := []string{"", "ab", "has space", "admin", "Root", strings.Repeat("x", 31)}
	for _, u := range invalid {
		if err := validation.ValidateUsername(u); err == nil {
			t.Errorf("ValidateUsername(%q) = nil, want error", u)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := validation.ValidatePassword("Str0ng!Pass"); err != nil {
		t.Errorf("expected valid password, got %v", err)
	}

	cases := []struct {
		password string
		wantPart string
	}{
		{"Sh0r!t", "at least 8"},
		{"alllower1!", "uppercase"},
		{"ALLUPPER1!", "lowercase"},
		{"NoDigits!!", "digit"},
		{"NoSpecial11", "special"},
		{"Aaaaa999!!!!", "repeated"},
		{"Abcd5678!x", "sequential"},
	}
	for _, c := range cases {
		err := validation.ValidatePassword(c.password)
		if err == nil {
			t.Errorf("ValidatePassword(%q) = nil, want error", c.password)
			continue
		}
		if !strings.Contains(err.Error(), c.wantPart) {
			t.Errorf("ValidatePassword(%q) = %v, want mention of %q", c.password, err, c.wantPart)
		}
	}
}

func TestValidateSiteRequest(t *testing.T) {
	if err := validation.ValidateSiteRequest("Blog", "https://example.com", "admin", "pw"); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}
	if err := validation.ValidateSiteRequest("", "https://example.com", "admin", "pw"); err == nil {
		t.Error("expected error for missing name")
	}
	if err := validation.ValidateSiteRequest("Blog", "https://example.com", "admin", ""); err == nil {
		t.Error("expected error for missing password")
	}
}
