package reconcile

import (
	"context"

	"github.com/device-management-toolkit/redfish-sync/internal/entity"
	"github.com/device-management-toolkit/redfish-sync/pkg/redfishclient"
)

type (
	// Client is the Redfish resource access the engine drives.
	Client interface {
		Get(ctx context.Context, uri string) (*redfishclient.Response, error)
		Post(ctx context.Context, uri string, body []byte) (*redfishclient.Response, error)
		Put(ctx context.Context, uri string, body []byte) (*redfishclient.Response, error)
		Patch(ctx context.Context, uri string, body []byte) (*redfishclient.Response, error)
		Delete(ctx context.Context, uri string) (*redfishclient.Response, error)
	}

	// ETagStore -.
	ETagStore interface {
		ShouldSkip(ctx context.Context, uri, headerEtag, jsonEtag string) bool
		Set(uri, etag string)
		Flush(ctx context.Context) error
	}

	// ConfigMap -.
	ConfigMap interface {
		Set(configureLang, uri string)
		GetURI(ctx context.Context, configureLang string) (string, bool, error)
		GetConfigureLang(ctx context.Context, uri string) (string, bool, error)
		Flush(ctx context.Context) error
	}

	// Addendum merges platform specific (OEM) content into an outgoing body.
	Addendum interface {
		Apply(ctx context.Context, uri string, body *entity.Resource) error
	}
)
