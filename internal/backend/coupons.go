package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/stormhq/storm-admin/internal/models"
)

// CouponInput is the create/update payload for a coupon. Pointer fields
// are omitted entirely when unset so the backend keeps its own defaults.
type CouponInput struct {
	Code              string     `json:"code"`
	Description       string     `json:"description,omitempty"`
	DiscountType      string     `json:"discountType"`
	DiscountValue     float64    `json:"discountValue"`
	IsActive          bool       `json:"isActive"`
	ValidFrom         *time.Time `json:"validFrom,omitempty"`
	ValidUntil        *time.Time `json:"validUntil,omitempty"`
	MaxUses           *int       `json:"maxUses,omitempty"`
	MinPurchaseAmount *float64   `json:"minPurchaseAmount,omitempty"`
}

// ShareInput is the grant payload of /admin/coupons/share. Both
// capability flags default to false and are always sent explicitly.
// Duplicate grants are the backend's call; no client-side deduplication.
type ShareInput struct {
	CouponID         string `json:"couponId"`
	SharedWithUserID string `json:"sharedWithUserId"`
	CanViewStats     bool   `json:"canViewStats"`
	CanDeactivate    bool   `json:"canDeactivate"`
}

// ListCoupons fetches all coupons. Filtering happens client-side on the
// returned slice.
func (c *Client) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	var out struct {
		Coupons []models.Coupon `json:"coupons"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/coupons", nil, &out); err != nil {
		return nil, err
	}
	return out.Coupons, nil
}

func (c *Client) CreateCoupon(ctx context.Context, in CouponInput) (*models.Coupon, error) {
	var out struct {
		Coupon models.Coupon `json:"coupon"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/coupons", in, &out); err != nil {
		return nil, err
	}
	return &out.Coupon, nil
}

func (c *Client) UpdateCoupon(ctx context.Context, id string, in CouponInput) (*models.Coupon, error) {
	var out struct {
		Coupon models.Coupon `json:"coupon"`
	}
	if err := c.do(ctx, http.MethodPut, "/admin/coupons/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out.Coupon, nil
}

func (c *Client) DeleteCoupon(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/coupons/"+id, nil, nil)
}

// ShareCoupon grants a user access to a coupon.
func (c *Client) ShareCoupon(ctx context.Context, in ShareInput) error {
	return c.do(ctx, http.MethodPost, "/admin/coupons/share", in, nil)
}

// PartnerCoupons lists the coupons shared with the caller. Statistics
// come along only where the share grants canViewStats.
func (c *Client) PartnerCoupons(ctx context.Context) ([]models.SharedCoupon, error) {
	var out struct {
		Coupons []models.SharedCoupon `json:"coupons"`
	}
	if err := c.do(ctx, http.MethodGet, "/partner/coupons", nil, &out); err != nil {
		return nil, err
	}
	return out.Coupons, nil
}
