package models

import (
	"reflect"
	"testing"
)

func sampleCoupons() []Coupon {
	return []Coupon{
		{ID: "1", Code: "PROMO10", Description: "Desconto de outono"},
		{ID: "2", Code: "WELCOME", Description: "Primeira compra"},
		{ID: "3", Code: "BF2026", Description: "promoção black friday"},
	}
}

func TestFilterCouponsCaseInsensitive(t *testing.T) {
	items := sampleCoupons()

	upper := FilterCoupons("PROMO", items)
	lower := FilterCoupons("promo", items)
	if !reflect.DeepEqual(upper, lower) {
		t.Fatalf("filter must be case-insensitive: %v vs %v", upper, lower)
	}
	// "PROMO10" by code, "BF2026" by description ("promoção").
	if len(upper) != 2 || upper[0].ID != "1" || upper[1].ID != "3" {
		t.Fatalf("unexpected result: %v", upper)
	}
}

func TestFilterCouponsIdempotent(t *testing.T) {
	items := sampleCoupons()
	once := FilterCoupons("promo", items)
	twice := FilterCoupons("promo", once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filter must be idempotent: %v vs %v", once, twice)
	}
}

func TestFilterCouponsEmptyTerm(t *testing.T) {
	items := sampleCoupons()
	if got := FilterCoupons("", items); !reflect.DeepEqual(got, items) {
		t.Fatalf("empty term must return input unchanged, got %v", got)
	}
	if got := FilterCoupons("   ", items); !reflect.DeepEqual(got, items) {
		t.Fatalf("blank term must return input unchanged, got %v", got)
	}
}

func TestFilterCouponsNoMatch(t *testing.T) {
	if got := FilterCoupons("zzz", sampleCoupons()); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestFilterUsers(t *testing.T) {
	items := []User{
		{ID: "u1", Name: "Ana Souza", Email: "ana@storm.com"},
		{ID: "u2", Name: "Bruno Lima", Email: "bruno@storm.com"},
		{ID: "u3", Name: "", Email: "carla.ana@other.com"},
	}

	got := FilterUsers("ANA", items)
	if len(got) != 2 || got[0].ID != "u1" || got[1].ID != "u3" {
		t.Fatalf("unexpected result: %v", got)
	}

	byEmail := FilterUsers("bruno@", items)
	if len(byEmail) != 1 || byEmail[0].ID != "u2" {
		t.Fatalf("expected email match, got %v", byEmail)
	}
}

func TestFilterSharedCoupons(t *testing.T) {
	items := []SharedCoupon{
		{Coupon: Coupon{ID: "1", Code: "PROMO10"}},
		{Coupon: Coupon{ID: "2", Code: "OTHER"}},
	}
	got := FilterSharedCoupons("promo", items)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("unexpected result: %v", got)
	}
}
