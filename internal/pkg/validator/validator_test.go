package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-01-31", "2024-02-29"}
	invalid := []string{"2025-02-30", "31-01-2025", "2025/01/31", "", "yesterday"}
	for _, d := range valid {
		if !IsValidDate(d) {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if IsValidDate(d) {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestCoordinateBounds(t *testing.T) {
	if !IsValidLatitude(40.0) || !IsValidLongitude(-74.0) {
		t.Error("expected valid office coordinates to pass")
	}
	if IsValidLatitude(91) || IsValidLatitude(-91) {
		t.Error("latitude outside [-90,90] must fail")
	}
	if IsValidLongitude(181) || IsValidLongitude(-181) {
		t.Error("longitude outside [-180,180] must fail")
	}
}
