package reconcile

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/device-management-toolkit/redfish-sync/internal/configlang"
	"github.com/device-management-toolkit/redfish-sync/internal/entity"
)

// consume pulls remote values into the local store. It is skipped when the
// stored ETag shows the resource unchanged. Property failures are logged and
// do not stop the pass.
func (e *Engine) consume(ctx context.Context, remote *entity.Resource, headerEtag, instance string, langs map[string]bool, res *Result) {
	if e.etags.ShouldSkip(ctx, remote.URI, headerEtag, remote.ODataEtag) {
		res.Consume = SkippedUnchanged
		e.log.Debug("reconcile - consume - %s: etag unchanged", remote.URI)

		return
	}

	var result *multierror.Error

	for i := range e.schema.Properties {
		p := &e.schema.Properties[i]

		node := remote.Lookup(p.Path...)
		if !node.Present() {
			continue
		}

		lang := configlang.Join(instance, p.Lang())

		if p.Kind == entity.KindUnimplemented {
			res.Unimplemented = append(res.Unimplemented, lang)
			e.log.Warn("reconcile - consume - %s: %s is not synchronized", remote.URI, lang)

			continue
		}

		changed, err := e.consumeProperty(ctx, p, lang, node, langs)
		if err != nil {
			result = multierror.Append(result, err)
		}

		if changed {
			res.RebootRequired = true

			consumedChanges.WithLabelValues(e.schema.Name).Inc()
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		e.log.Warn("reconcile - consume - %s: %v", remote.URI, err)
	}

	res.Consume = Applied

	etag := headerEtag
	if etag == "" {
		etag = remote.ODataEtag
	}

	if etag != "" {
		e.etags.Set(remote.URI, etag)
	}
}

func (e *Engine) consumeProperty(ctx context.Context, p *Property, lang string, node entity.Node, langs map[string]bool) (bool, error) {
	name, version := e.schema.Name, e.schema.Version

	if p.Kind == entity.KindVague {
		entries, ok := entity.VagueEntries(node.Raw())
		if !ok {
			return false, fmt.Errorf("%s: %w: not an object", lang, entity.ErrKindMismatch)
		}

		known := make([]entity.KeyValue, 0, len(entries))

		for _, kv := range entries {
			if langs[configlang.Join(lang, kv.Key)] {
				known = append(known, kv)
			}
		}

		return e.bridge.ApplyRemoteVague(ctx, name, version, lang, known)
	}

	if !langs[lang] {
		return false, nil
	}

	v, err := entity.ValueFromInterface(p.Kind, node.Raw())
	if err != nil {
		return false, fmt.Errorf("%s: %w", lang, err)
	}

	if p.Kind.IsArray() {
		return e.bridge.ApplyRemoteArray(ctx, name, version, lang, v)
	}

	return e.bridge.ApplyRemoteScalar(ctx, name, version, lang, v)
}
