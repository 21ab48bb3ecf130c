package builder

import (
	"context"

	"github.com/MKhiriev/buildmcp/internal/document"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/target_mock.go -package=mock

// Target is a resolved output destination for one built profile.
type Target interface {
	// Describe returns a short human-readable identifier for logs and
	// dry-run output.
	Describe() string

	// Read fetches the target's prior state for preview purposes only.
	// A nil result with nil error means no prior state is available.
	// Failures are reported as [TargetReadError] and are never fatal.
	Read(ctx context.Context) ([]byte, error)

	// Write delivers the built profile to the target.
	Write(ctx context.Context, built document.Mapping) error
}

// TargetResolver turns a target specification from the configuration
// document into a dispatchable Target.
type TargetResolver interface {
	Resolve(spec document.Value) (Target, error)
}
