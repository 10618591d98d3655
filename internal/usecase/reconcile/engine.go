// Package reconcile keeps one Redfish resource and the local configuration
// store in agreement. Every schema runs the same sequence:
//
//	Identify -> Check -> Consume (known resources only) -> Provision | Update
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/device-management-toolkit/redfish-sync/internal/configlang"
	"github.com/device-management-toolkit/redfish-sync/internal/entity"
	"github.com/device-management-toolkit/redfish-sync/internal/usecase/property"
	"github.com/device-management-toolkit/redfish-sync/pkg/logger"
	"github.com/device-management-toolkit/redfish-sync/pkg/redfishclient"
)

// ErrNoLocation is returned when a POST response does not say where the
// new resource lives.
var ErrNoLocation = errors.New("reconcile - created resource has no location")

// Engine reconciles the resources of one schema.
type Engine struct {
	schema  *Schema
	client  Client
	etags   ETagStore
	cmap    ConfigMap
	local   property.LocalStore
	bridge  *property.Bridge
	addenda []Addendum
	log     logger.Interface
}

// Option -.
type Option func(*Engine)

// WithAddendum appends a hook run on every outgoing provision or update body.
func WithAddendum(a Addendum) Option {
	return func(e *Engine) {
		e.addenda = append(e.addenda, a)
	}
}

// New -.
func New(schema *Schema, client Client, etags ETagStore, cmap ConfigMap, local property.LocalStore, log logger.Interface, opts ...Option) (*Engine, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		schema: schema,
		client: client,
		etags:  etags,
		cmap:   cmap,
		local:  local,
		bridge: property.New(local, log),
		log:    log,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Schema -.
func (e *Engine) Schema() *Schema {
	return e.schema
}

// Process runs a full pass over the resource at t.URI.
func (e *Engine) Process(ctx context.Context, t Target) (*Result, error) {
	start := time.Now()

	res, err := e.process(ctx, t)
	if err != nil {
		return nil, err
	}

	recordResult(res, start)

	return res, nil
}

func (e *Engine) process(ctx context.Context, t Target) (*Result, error) {
	res := &Result{URI: t.URI, Schema: e.schema.Name}

	resp, err := e.client.Get(ctx, t.URI)
	if err != nil {
		return nil, fmt.Errorf("reconcile - Process - %s: %w", t.URI, err)
	}

	remote, err := entity.ToStructure(t.URI, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reconcile - Process: %w", err)
	}

	if !e.schema.Owns(remote.ODataType) {
		res.Action = NotOwned
		e.log.Debug("reconcile - Process - %s: %q is not %s", t.URI, remote.ODataType, e.schema.Name)

		return res, nil
	}

	lang, known, err := e.identify(ctx, remote, t)
	if err != nil {
		return nil, err
	}

	res.ConfigureLang = lang

	langs, err := e.localLangs(ctx, lang)
	if err != nil {
		return nil, err
	}

	res.Check = e.check(remote, lang, langs)
	if res.Check == Unsupported {
		res.Action = NothingToHandle
		e.log.Debug("reconcile - Process - %s: no local configuration under %s", t.URI, lang)

		return res, nil
	}

	if known {
		e.consume(ctx, remote, resp.ETag(), lang, langs, res)
	} else {
		e.log.Debug("reconcile - Process - %s: first seen as %s, pending remote values not consumed", t.URI, lang)
	}

	if res.Check == NotFound {
		err = e.provision(ctx, remote.URI, lang, langs, res)
	} else {
		err = e.update(ctx, remote, lang, langs, res)
	}

	if err != nil {
		return nil, err
	}

	return res, nil
}

// identify resolves the configure language of remote, creating the mapping
// when the URI was never seen. known reports whether the mapping existed.
func (e *Engine) identify(ctx context.Context, remote *entity.Resource, t Target) (lang string, known bool, err error) {
	lang, known, err = e.cmap.GetConfigureLang(ctx, remote.URI)
	if err != nil {
		return "", false, fmt.Errorf("reconcile - identify: %w", err)
	}

	if known {
		return lang, true, nil
	}

	lang, err = e.schema.InstanceLang(t.Index)
	if err != nil {
		return "", false, err
	}

	e.cmap.Set(lang, remote.URI)
	e.log.Info("reconcile - identify - %s mapped to %s", remote.URI, lang)

	return lang, false, nil
}

// localLangs returns every configure language stored below instance.
func (e *Engine) localLangs(ctx context.Context, instance string) (map[string]bool, error) {
	matches, err := e.local.Matches(ctx, e.schema.Name, e.schema.Version, instance+"/*")
	if err != nil {
		return nil, fmt.Errorf("reconcile - localLangs - %s: %w", instance, err)
	}

	langs := make(map[string]bool, len(matches))
	for _, m := range matches {
		langs[m] = true
	}

	return langs, nil
}

// check reports NotFound as soon as one locally configured property is
// missing from remote, Unsupported when none is configured.
func (e *Engine) check(remote *entity.Resource, instance string, langs map[string]bool) CheckResult {
	sorted := make([]string, 0, len(langs))
	for l := range langs {
		sorted = append(sorted, l)
	}

	sort.Strings(sorted)

	checked := 0

	for _, lang := range sorted {
		rel, err := configlang.PropertyName(instance, lang)
		if err != nil {
			continue
		}

		p, key := e.schema.resolve(rel)
		if p == nil || p.Kind == entity.KindUnimplemented {
			continue
		}

		checked++

		path := p.Path
		if key != "" {
			path = append(append([]string{}, p.Path...), key)
		}

		if !remote.Has(path...) {
			e.log.Debug("reconcile - check - %s: %s missing remotely", remote.URI, lang)

			return NotFound
		}
	}

	if checked == 0 {
		return Unsupported
	}

	return Found
}

// ProvisionNew creates a collection member for a local instance that has no
// remote counterpart yet.
func (e *Engine) ProvisionNew(ctx context.Context, collectionURI, instance string) (*Result, error) {
	start := time.Now()
	res := &Result{URI: collectionURI, Schema: e.schema.Name, ConfigureLang: instance, Check: NotFound}

	langs, err := e.localLangs(ctx, instance)
	if err != nil {
		return nil, err
	}

	body, err := e.buildBody(ctx, collectionURI, instance, langs)
	if err != nil {
		return nil, err
	}

	payload, err := body.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("reconcile - ProvisionNew: %w", err)
	}

	resp, err := e.client.Post(ctx, collectionURI, payload)
	if err != nil {
		return nil, fmt.Errorf("reconcile - ProvisionNew - %s: %w", collectionURI, err)
	}

	uri := resp.Location()
	if uri == "" && len(resp.Body) > 0 {
		if created, err := entity.ToStructure(collectionURI, resp.Body); err == nil {
			uri = created.ODataID
		}
	}

	if uri == "" {
		return nil, fmt.Errorf("%w: POST %s", ErrNoLocation, collectionURI)
	}

	res.URI = uri
	res.Action = Provisioned

	e.cmap.Set(instance, uri)
	e.syncETag(ctx, uri, resp)
	e.log.Info("reconcile - ProvisionNew - %s created at %s", instance, uri)

	recordResult(res, start)

	return res, nil
}

// UnmappedInstances returns the local collection members with no URI mapping.
func (e *Engine) UnmappedInstances(ctx context.Context) ([]string, error) {
	if !e.schema.Collection {
		return nil, nil
	}

	matches, err := e.local.Matches(ctx, e.schema.Name, e.schema.Version, e.schema.Root+"/*")
	if err != nil {
		return nil, fmt.Errorf("reconcile - UnmappedInstances: %w", err)
	}

	seen := make(map[string]bool)
	out := make([]string, 0)

	for _, m := range matches {
		instance, _, ok := configlang.InstanceOf(e.schema.Root, m)
		if !ok || seen[instance] {
			continue
		}

		seen[instance] = true

		_, mapped, err := e.cmap.GetURI(ctx, instance)
		if err != nil {
			return nil, fmt.Errorf("reconcile - UnmappedInstances: %w", err)
		}

		if !mapped {
			out = append(out, instance)
		}
	}

	return out, nil
}

// Flush persists the ETag store and the configure language map.
func (e *Engine) Flush(ctx context.Context) error {
	var result *multierror.Error

	if err := e.etags.Flush(ctx); err != nil {
		result = multierror.Append(result, err)
	}

	if err := e.cmap.Flush(ctx); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// syncETag records the ETag of uri after a mutating call, reading the
// resource back when the response carries no ETag header.
func (e *Engine) syncETag(ctx context.Context, uri string, resp *redfishclient.Response) {
	if etag := resp.ETag(); etag != "" {
		e.etags.Set(uri, etag)

		return
	}

	get, err := e.client.Get(ctx, uri)
	if err != nil {
		e.log.Warn("reconcile - syncETag - %s: %v", uri, err)

		return
	}

	etag := get.ETag()
	if etag == "" {
		if r, err := entity.ToStructure(uri, get.Body); err == nil {
			etag = r.ODataEtag
		}
	}

	if etag != "" {
		e.etags.Set(uri, etag)
	}
}
