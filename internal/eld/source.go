package eld

import (
	"context"
	"time"

	"fleetflow/internal/ifta"
)

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks fleetflow/internal/eld MileageSource

// MileageSource supplies per-jurisdiction mileage recorded by an electronic logging device vendor.
// Records are returned as submitted and must be validated before they are stored.
type MileageSource interface {
	FetchMileage(ctx context.Context, tenantID string, from, to time.Time) ([]ifta.MileageInput, error)
}
