package validation

import "strings"

// Violations maps a field name to a translation code describing what is
// wrong with it.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators

func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func Email(field, value string, v Violations) {
	value = strings.TrimSpace(value)
	at := strings.Index(value, "@")
	if at <= 0 || at == len(value)-1 || !strings.Contains(value[at+1:], ".") {
		v[field] = "invalid_email"
	}
}

// Password policy. These rules mirror the backend's; the backend remains
// authoritative and the two must be kept in lockstep.
//
// Password records the first violated rule for field, checking in order:
// minimum length 8, lowercase letter, uppercase letter, digit.
func Password(field, value string, v Violations) {
	if len(value) < 8 {
		v[field] = "password_too_short"
		return
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		v[field] = "password_needs_lower"
		return
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		v[field] = "password_needs_upper"
		return
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= '0' && r <= '9' }) {
		v[field] = "password_needs_digit"
		return
	}
}

// PasswordConfirmation checks the new/confirm pair as entered in the
// password forms.
func PasswordConfirmation(field, password, confirm string, v Violations) {
	if password != confirm {
		v[field] = "password_mismatch"
	}
}
