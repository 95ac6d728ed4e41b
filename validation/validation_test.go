package validation

import "testing"

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("email", "  ", v)
	if v["email"] != "required" {
		t.Fatalf("expected required violation, got %v", v)
	}

	v = Violations{}
	Required("email", "a@b.com", v)
	if !v.Empty() {
		t.Fatalf("expected no violation, got %v", v)
	}
}

func TestEmail(t *testing.T) {
	bad := []string{"", "nope", "@x.com", "a@", "a@nodot"}
	for _, s := range bad {
		v := Violations{}
		Email("email", s, v)
		if v["email"] != "invalid_email" {
			t.Errorf("expected invalid_email for %q, got %v", s, v)
		}
	}
	v := Violations{}
	Email("email", "user@storm.com.br", v)
	if !v.Empty() {
		t.Fatalf("expected valid email, got %v", v)
	}
}

func TestPasswordPolicy(t *testing.T) {
	cases := []struct {
		password string
		want     string
	}{
		{"short1A", "password_too_short"},
		{"alllowercase1", "password_needs_upper"},
		{"ALLUPPER1", "password_needs_lower"},
		{"NoDigitsHere", "password_needs_digit"},
		{"Valid123", ""},
	}
	for _, c := range cases {
		v := Violations{}
		Password("newPassword", c.password, v)
		if c.want == "" {
			if !v.Empty() {
				t.Errorf("%q: expected acceptance, got %v", c.password, v)
			}
			continue
		}
		if v["newPassword"] != c.want {
			t.Errorf("%q: expected %q, got %v", c.password, c.want, v)
		}
	}
}

func TestPasswordConfirmation(t *testing.T) {
	v := Violations{}
	PasswordConfirmation("confirmPassword", "Valid123", "Valid124", v)
	if v["confirmPassword"] != "password_mismatch" {
		t.Fatalf("expected mismatch, got %v", v)
	}

	v = Violations{}
	PasswordConfirmation("confirmPassword", "Valid123", "Valid123", v)
	if !v.Empty() {
		t.Fatalf("expected match, got %v", v)
	}
}
