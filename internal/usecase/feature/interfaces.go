package feature

import (
	"context"

	"github.com/device-management-toolkit/redfish-sync/internal/usecase/reconcile"
	"github.com/device-management-toolkit/redfish-sync/pkg/redfishclient"
)

type (
	// Engine is the per-schema reconciliation engine.
	Engine interface {
		Schema() *reconcile.Schema
		Process(ctx context.Context, t reconcile.Target) (*reconcile.Result, error)
		ProvisionNew(ctx context.Context, collectionURI, instance string) (*reconcile.Result, error)
		UnmappedInstances(ctx context.Context) ([]string, error)
	}

	// Client reads collections.
	Client interface {
		Get(ctx context.Context, uri string) (*redfishclient.Response, error)
	}
)
