package platformconfig

import (
	"context"

	"github.com/device-management-toolkit/redfish-sync/internal/entity"
)

// Repository -.
type Repository interface {
	Get(ctx context.Context, schema, version, configureLang string) (*entity.ConfigItem, error)
	Upsert(ctx context.Context, item *entity.ConfigItem) error
	ListConfigureLangs(ctx context.Context, schema, version string) ([]string, error)
}
