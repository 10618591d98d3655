// Package feature runs the reconciliation engine over the resources of one
// configured schema: every member of a collection, or a single resource.
package feature

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/tidwall/gjson"

	"github.com/device-management-toolkit/redfish-sync/internal/usecase/reconcile"
	"github.com/device-management-toolkit/redfish-sync/pkg/logger"
)

const (
	membersPath  = `Members.#.@odata\.id`
	nextLinkPath = `Members@odata\.nextLink`
)

// Summary aggregates the results of one Run.
type Summary struct {
	Schema         string
	Processed      int
	Provisioned    int
	Updated        int
	NoChange       int
	Skipped        int
	RebootRequired bool
	Unimplemented  []string
}

func (s *Summary) add(res *reconcile.Result) {
	s.Processed++

	switch res.Action {
	case reconcile.Provisioned:
		s.Provisioned++
	case reconcile.Updated:
		s.Updated++
	case reconcile.NoChange:
		s.NoChange++
	case reconcile.NotOwned, reconcile.NothingToHandle:
		s.Skipped++
	}

	s.RebootRequired = s.RebootRequired || res.RebootRequired
	s.Unimplemented = append(s.Unimplemented, res.Unimplemented...)
}

// Driver -.
type Driver struct {
	engine Engine
	client Client
	uri    string
	log    logger.Interface
}

// New binds engine to the resource, or collection, at uri.
func New(engine Engine, client Client, uri string, log logger.Interface) *Driver {
	return &Driver{engine: engine, client: client, uri: uri, log: log}
}

// Name -.
func (d *Driver) Name() string {
	return d.engine.Schema().Name
}

// Run performs one pass. Member failures are collected and returned after
// every member was tried.
func (d *Driver) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{Schema: d.Name()}

	if !d.engine.Schema().Collection {
		res, err := d.engine.Process(ctx, reconcile.Target{URI: d.uri})
		if err != nil {
			return summary, err
		}

		summary.add(res)

		return summary, nil
	}

	members, err := d.members(ctx)
	if err != nil {
		return summary, err
	}

	var result *multierror.Error

	for i, uri := range members {
		res, err := d.engine.Process(ctx, reconcile.Target{URI: uri, Index: i + 1})
		if err != nil {
			d.log.Warn("feature - Run - %s member %s: %v", summary.Schema, uri, err)
			result = multierror.Append(result, err)

			continue
		}

		summary.add(res)
	}

	instances, err := d.engine.UnmappedInstances(ctx)
	if err != nil {
		return summary, multierror.Append(result, err).ErrorOrNil()
	}

	for _, instance := range instances {
		res, err := d.engine.ProvisionNew(ctx, d.uri, instance)
		if err != nil {
			d.log.Warn("feature - Run - %s provision %s: %v", summary.Schema, instance, err)
			result = multierror.Append(result, err)

			continue
		}

		summary.add(res)
	}

	d.log.Info("feature - Run - %s: %d processed, %d provisioned, %d updated, %d unchanged, %d skipped",
		summary.Schema, summary.Processed, summary.Provisioned, summary.Updated, summary.NoChange, summary.Skipped)

	return summary, result.ErrorOrNil()
}

// members lists the collection member URIs, following next links.
func (d *Driver) members(ctx context.Context) ([]string, error) {
	var out []string

	seen := make(map[string]bool)

	for page := d.uri; page != "" && !seen[page]; {
		seen[page] = true

		resp, err := d.client.Get(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("feature - members - %s: %w", page, err)
		}

		if !gjson.ValidBytes(resp.Body) {
			return nil, fmt.Errorf("feature - members - %s: invalid collection payload", page)
		}

		for _, m := range gjson.GetBytes(resp.Body, membersPath).Array() {
			if m.String() != "" {
				out = append(out, m.String())
			}
		}

		page = gjson.GetBytes(resp.Body, nextLinkPath).String()
	}

	return out, nil
}
