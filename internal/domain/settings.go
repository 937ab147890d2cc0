package domain

import "time"

const DefaultCommissionPercentage = 15.0

// PlatformSettings is a single-row table (ID always 1). The commission
// percentage is read at the moment a booking completes, never cached.
type PlatformSettings struct {
	ID                   int64     `json:"-"`
	CommissionPercentage float64   `json:"commission_percentage" validate:"gte=0,lte=100"`
	UpdatedAt            time.Time `json:"updated_at"`
}
