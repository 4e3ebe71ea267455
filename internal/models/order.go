package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is one persisted marketplace sale line. UnitCost is edited by the
// seller after import.
type Order struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	OwnerID          uuid.UUID       `json:"owner_id" db:"owner_id"`
	SettingsID       *uuid.UUID      `json:"settings_id" db:"settings_id"`
	OrderID          string          `json:"order_id" db:"order_id"`
	SKU              string          `json:"sku" db:"sku"`
	ProductName      string          `json:"product_name" db:"product_name"`
	Variation        string          `json:"variation" db:"variation"`
	Quantity         int             `json:"quantity" db:"quantity"`
	GrossAmount      decimal.Decimal `json:"gross_amount" db:"gross_amount"`
	PlatformDiscount decimal.Decimal `json:"platform_discount" db:"platform_discount"`
	SellerDiscount   decimal.Decimal `json:"seller_discount" db:"seller_discount"`
	UnitCost         decimal.Decimal `json:"unit_cost" db:"unit_cost"`
	OrderDate        time.Time       `json:"order_date" db:"order_date"`
	Status           string          `json:"status" db:"status"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

// OrderFilter holds the optional predicates of an order listing
type OrderFilter struct {
	From       *time.Time `json:"from,omitempty"`
	To         *time.Time `json:"to,omitempty"`
	Status     *string    `json:"status,omitempty"`
	SettingsID *uuid.UUID `json:"settings_id,omitempty"`
}

// UnitCostUpdate sets the unit cost of every order sharing a SKU.
type UnitCostUpdate struct {
	SKU      string          `json:"sku"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}
