package task

import (
	"context"

	"github.com/device-management-toolkit/redfish-sync/internal/entity"
	"github.com/device-management-toolkit/redfish-sync/pkg/redfishclient"
)

type (
	// Handler is implemented by every feature that serves tasks.
	Handler interface {
		HandleTask(ctx context.Context, req *entity.TaskRequest) entity.TaskResult
	}

	// Client -.
	Client interface {
		Get(ctx context.Context, uri string) (*redfishclient.Response, error)
		Patch(ctx context.Context, uri string, body []byte) (*redfishclient.Response, error)
	}
)
