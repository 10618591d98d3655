package reconcile

import (
	"context"
	"fmt"

	"github.com/device-management-toolkit/redfish-sync/internal/configlang"
	"github.com/device-management-toolkit/redfish-sync/internal/entity"
	"github.com/device-management-toolkit/redfish-sync/internal/usecase/property"
)

// provision PUTs every locally configured property to an existing resource
// that lacks some of them.
func (e *Engine) provision(ctx context.Context, uri, instance string, langs map[string]bool, res *Result) error {
	body, err := e.buildBody(ctx, uri, instance, langs)
	if err != nil {
		return err
	}

	payload, err := body.ToJSON()
	if err != nil {
		return fmt.Errorf("reconcile - provision: %w", err)
	}

	resp, err := e.client.Put(ctx, uri, payload)
	if err != nil {
		return fmt.Errorf("reconcile - provision - %s: %w", uri, err)
	}

	res.Action = Provisioned

	e.syncETag(ctx, uri, resp)
	e.log.Info("reconcile - provision - %s provisioned from %s", uri, instance)

	return nil
}

// update PATCHes the properties whose local value differs from remote. No
// request is sent when nothing differs.
func (e *Engine) update(ctx context.Context, remote *entity.Resource, instance string, langs map[string]bool, res *Result) error {
	patch, err := entity.NewSkeleton(remote.URI, "", "")
	if err != nil {
		return fmt.Errorf("reconcile - update: %w", err)
	}

	changed := false

	for i := range e.schema.Properties {
		p := &e.schema.Properties[i]
		if p.ReadOnly || p.Kind == entity.KindUnimplemented {
			continue
		}

		staged, err := e.stageChange(ctx, p, configlang.Join(instance, p.Lang()), remote, patch, langs)
		if err != nil {
			return err
		}

		changed = changed || staged
	}

	if !changed {
		res.Action = NoChange
		e.log.Debug("reconcile - update - %s: no change", remote.URI)

		return nil
	}

	e.applyAddenda(ctx, remote.URI, patch)

	payload, err := patch.ToJSON()
	if err != nil {
		return fmt.Errorf("reconcile - update: %w", err)
	}

	resp, err := e.client.Patch(ctx, remote.URI, payload)
	if err != nil {
		return fmt.Errorf("reconcile - update - %s: %w", remote.URI, err)
	}

	res.Action = Updated

	e.syncETag(ctx, remote.URI, resp)
	e.log.Info("reconcile - update - %s patched", remote.URI)

	return nil
}

func (e *Engine) stageChange(ctx context.Context, p *Property, lang string, remote, patch *entity.Resource, langs map[string]bool) (bool, error) {
	name, version := e.schema.Name, e.schema.Version
	node := remote.Lookup(p.Path...)

	if p.Kind == entity.KindVague {
		local, err := e.bridge.GetLocalVague(ctx, name, version, lang)
		if err != nil {
			return false, fmt.Errorf("reconcile - stageChange: %w", err)
		}

		if len(local) == 0 {
			return false, nil
		}

		if remoteEntries, ok := entity.VagueEntries(node.Raw()); ok &&
			property.CompareVagueSets(local, restrict(remoteEntries, local)) {
			return false, nil
		}

		if err = patch.Set(entity.VagueValue(local...).Interface(), p.Path...); err != nil {
			return false, fmt.Errorf("reconcile - stageChange - %s: %w", lang, err)
		}

		return true, nil
	}

	if !langs[lang] {
		return false, nil
	}

	local, err := e.bridge.GetLocal(ctx, name, version, lang)
	if err != nil {
		return false, fmt.Errorf("reconcile - stageChange: %w", err)
	}

	if rv, err := entity.ValueFromInterface(p.Kind, node.Raw()); err == nil && rv.Equal(local) {
		return false, nil
	}

	if err = patch.Set(local.Interface(), p.Path...); err != nil {
		return false, fmt.Errorf("reconcile - stageChange - %s: %w", lang, err)
	}

	return true, nil
}

// buildBody fills a skeleton of the schema with every locally configured,
// writable property.
func (e *Engine) buildBody(ctx context.Context, uri, instance string, langs map[string]bool) (*entity.Resource, error) {
	name, version := e.schema.Name, e.schema.Version

	body, err := entity.NewSkeleton(uri, e.schema.ODataType, e.schema.Template)
	if err != nil {
		return nil, fmt.Errorf("reconcile - buildBody - %s: %w", name, err)
	}

	for i := range e.schema.Properties {
		p := &e.schema.Properties[i]
		if p.ReadOnly || p.Kind == entity.KindUnimplemented {
			continue
		}

		lang := configlang.Join(instance, p.Lang())

		var v entity.Value

		if p.Kind == entity.KindVague {
			local, err := e.bridge.GetLocalVague(ctx, name, version, lang)
			if err != nil {
				return nil, fmt.Errorf("reconcile - buildBody: %w", err)
			}

			if len(local) == 0 {
				continue
			}

			v = entity.VagueValue(local...)
		} else {
			if !langs[lang] {
				continue
			}

			if v, err = e.bridge.GetLocal(ctx, name, version, lang); err != nil {
				return nil, fmt.Errorf("reconcile - buildBody: %w", err)
			}
		}

		if err = body.Set(v.Interface(), p.Path...); err != nil {
			return nil, fmt.Errorf("reconcile - buildBody - %s: %w", lang, err)
		}
	}

	e.applyAddenda(ctx, uri, body)

	return body, nil
}

func (e *Engine) applyAddenda(ctx context.Context, uri string, body *entity.Resource) {
	for _, a := range e.addenda {
		if err := a.Apply(ctx, uri, body); err != nil {
			e.log.Warn("reconcile - addendum - %s: %v", uri, err)
		}
	}
}

// restrict keeps the entries of remote whose key is present in local.
func restrict(remote, local []entity.KeyValue) []entity.KeyValue {
	keys := make(map[string]bool, len(local))
	for _, kv := range local {
		keys[kv.Key] = true
	}

	out := make([]entity.KeyValue, 0, len(local))

	for _, kv := range remote {
		if keys[kv.Key] {
			out = append(out, kv)
		}
	}

	return out
}
