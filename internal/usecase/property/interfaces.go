package property

import (
	"context"

	"github.com/device-management-toolkit/redfish-sync/internal/entity"
)

// LocalStore is the local configuration store the bridge reads and writes.
type LocalStore interface {
	GetValue(ctx context.Context, schema, version, configureLang string) (entity.Value, error)
	SetValue(ctx context.Context, schema, version, configureLang string, value entity.Value) error
	Matches(ctx context.Context, schema, version, pattern string) ([]string, error)
}
