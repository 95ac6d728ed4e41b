package models

import "strings"

// List filters for the admin screens. Each one is a pure, case-insensitive
// substring match over a fixed field subset of the freshly fetched slice,
// re-evaluated per request. An empty term returns the input unchanged.

func matches(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// FilterCoupons matches term against code and description.
func FilterCoupons(term string, items []Coupon) []Coupon {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	out := make([]Coupon, 0, len(items))
	for _, c := range items {
		if matches(term, c.Code, c.Description) {
			out = append(out, c)
		}
	}
	return out
}

// FilterUsers matches term against name and email.
func FilterUsers(term string, items []User) []User {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	out := make([]User, 0, len(items))
	for _, u := range items {
		if matches(term, u.Name, u.Email) {
			out = append(out, u)
		}
	}
	return out
}

// FilterSharedCoupons matches term against code and description.
func FilterSharedCoupons(term string, items []SharedCoupon) []SharedCoupon {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	out := make([]SharedCoupon, 0, len(items))
	for _, c := range items {
		if matches(term, c.Code, c.Description) {
			out = append(out, c)
		}
	}
	return out
}
