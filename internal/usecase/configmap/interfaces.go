package configmap

import (
	"context"

	"github.com/device-management-toolkit/redfish-sync/internal/entity"
)

// Repository is the durable side of the map.
type Repository interface {
	GetURI(ctx context.Context, configureLang string) (string, bool, error)
	GetConfigureLang(ctx context.Context, uri string) (string, bool, error)
	Upsert(ctx context.Context, mappings []entity.ConfigLangMapping) error
}
