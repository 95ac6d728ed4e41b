// Package models holds the wire types exchanged with the Storm backend.
// All of them are transient: fetched per request, rendered, discarded.
// The backend owns and persists every entity.
package models

import "time"

// RoleID is one of the fixed access levels. The set is closed; the
// backend never mints other values.
type RoleID string

const (
	RoleSuperAdmin      RoleID = "super_admin"
	RoleAdmin           RoleID = "admin"
	RoleContractManager RoleID = "contract_manager"
	RolePartner         RoleID = "partner"
	RoleUser            RoleID = "user"
)

// Roles lists the closed role set in display order.
var Roles = []RoleID{RoleSuperAdmin, RoleAdmin, RoleContractManager, RolePartner, RoleUser}

// Identity is the authenticated user's profile as returned by /auth/me.
// It is re-fetched on every protected page and never cached across
// requests; the session cookie carries no claims the client can read.
type Identity struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name,omitempty"`
	RoleID     RoleID `json:"roleId"`
	ContractID string `json:"contractId,omitempty"`
}

// User is an account as managed on the admin screens.
type User struct {
	ID                  string    `json:"id"`
	Email               string    `json:"email"`
	Name                string    `json:"name,omitempty"`
	RoleID              RoleID    `json:"roleId"`
	ContractID          string    `json:"contractId,omitempty"`
	IsActive            bool      `json:"isActive"`
	NeedsPasswordChange bool      `json:"needsPasswordChange"`
	CreatedAt           time.Time `json:"createdAt"`
}

// Contract is a billing contract users can be assigned to.
type Contract struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Discount types accepted by the backend.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Coupon is a discount coupon as consumed by the admin screens.
type Coupon struct {
	ID                string     `json:"id"`
	Code              string     `json:"code"`
	Description       string     `json:"description,omitempty"`
	DiscountType      string     `json:"discountType"`
	DiscountValue     float64    `json:"discountValue"`
	IsActive          bool       `json:"isActive"`
	ValidFrom         *time.Time `json:"validFrom,omitempty"`
	ValidUntil        *time.Time `json:"validUntil,omitempty"`
	MaxUses           *int       `json:"maxUses,omitempty"`
	CurrentUses       *int       `json:"currentUses,omitempty"`
	MinPurchaseAmount *float64   `json:"minPurchaseAmount,omitempty"`
	OwnerID           string     `json:"ownerId,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// Share is the grant attached to a coupon shared with a user. It is a
// many-to-many relation owned by the backend.
type Share struct {
	ID            string    `json:"id"`
	CanViewStats  bool      `json:"canViewStats"`
	CanDeactivate bool      `json:"canDeactivate"`
	SharedAt      time.Time `json:"sharedAt"`
	SharedByUser  struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"sharedByUser"`
}

// CouponStatistics is usage data, present only when the share grants
// canViewStats.
type CouponStatistics struct {
	TotalUses     int  `json:"totalUses"`
	CurrentUses   int  `json:"currentUses"`
	RemainingUses *int `json:"remainingUses,omitempty"`
}

// SharedCoupon is a coupon as seen by the user it was shared with.
type SharedCoupon struct {
	Coupon
	Share      Share             `json:"share"`
	Statistics *CouponStatistics `json:"statistics,omitempty"`
}
