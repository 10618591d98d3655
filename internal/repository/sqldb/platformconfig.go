package sqldb

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/device-management-toolkit/redfish-sync/internal/entity"
	"github.com/device-management-toolkit/redfish-sync/pkg/db"
)

// PlatformConfigRepo is the durable backing of the local configuration store.
type PlatformConfigRepo struct {
	*db.SQL
}

// NewPlatformConfigRepo -.
func NewPlatformConfigRepo(database *db.SQL) *PlatformConfigRepo {
	return &PlatformConfigRepo{database}
}

// Get returns the item at configureLang, or nil when there is none.
func (r *PlatformConfigRepo) Get(ctx context.Context, schema, version, configureLang string) (*entity.ConfigItem, error) {
	query, args, err := r.Builder.
		Select("kind", "value").
		From("platform_config").
		Where(sq.Eq{"schema_name": schema, "schema_version": version, "configure_lang": configureLang}).
		ToSql()
	if err != nil {
		return nil, dbError("PlatformConfigRepo").Wrap("Get", "r.Builder", err)
	}

	var kindText, valueText string

	err = r.Pool.QueryRowContext(ctx, query, args...).Scan(&kindText, &valueText)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, dbError("PlatformConfigRepo").Wrap("Get", "r.Pool.QueryRowContext", err)
	}

	kind, err := entity.ParseKind(kindText)
	if err != nil {
		return nil, dbError("PlatformConfigRepo").Wrap("Get", "entity.ParseKind", err)
	}

	value, err := entity.DecodeValue(kind, valueText)
	if err != nil {
		return nil, dbError("PlatformConfigRepo").Wrap("Get", "entity.DecodeValue", err)
	}

	return &entity.ConfigItem{
		Schema:        schema,
		Version:       version,
		ConfigureLang: configureLang,
		Value:         value,
	}, nil
}

// Upsert writes item.
func (r *PlatformConfigRepo) Upsert(ctx context.Context, item *entity.ConfigItem) error {
	valueText, err := item.Value.Encode()
	if err != nil {
		return dbError("PlatformConfigRepo").Wrap("Upsert", "item.Value.Encode", err)
	}

	query, args, err := r.Builder.
		Insert("platform_config").
		Columns("schema_name", "schema_version", "configure_lang", "kind", "value").
		Values(item.Schema, item.Version, item.ConfigureLang, item.Value.Kind.String(), valueText).
		Suffix("ON CONFLICT (schema_name, schema_version, configure_lang) DO UPDATE SET kind = excluded.kind, value = excluded.value").
		ToSql()
	if err != nil {
		return dbError("PlatformConfigRepo").Wrap("Upsert", "r.Builder", err)
	}

	if _, err = r.Pool.ExecContext(ctx, query, args...); err != nil {
		return dbError("PlatformConfigRepo").Wrap("Upsert", "r.Pool.ExecContext", err)
	}

	return nil
}

// ListConfigureLangs returns every configure language stored for schema/version, sorted.
func (r *PlatformConfigRepo) ListConfigureLangs(ctx context.Context, schema, version string) ([]string, error) {
	query, args, err := r.Builder.
		Select("configure_lang").
		From("platform_config").
		Where(sq.Eq{"schema_name": schema, "schema_version": version}).
		OrderBy("configure_lang").
		ToSql()
	if err != nil {
		return nil, dbError("PlatformConfigRepo").Wrap("ListConfigureLangs", "r.Builder", err)
	}

	rows, err := r.Pool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError("PlatformConfigRepo").Wrap("ListConfigureLangs", "r.Pool.QueryContext", err)
	}

	defer rows.Close()

	langs := make([]string, 0)

	for rows.Next() {
		var lang string

		if err = rows.Scan(&lang); err != nil {
			return nil, dbError("PlatformConfigRepo").Wrap("ListConfigureLangs", "rows.Scan", err)
		}

		langs = append(langs, lang)
	}

	if err = rows.Err(); err != nil {
		return nil, dbError("PlatformConfigRepo").Wrap("ListConfigureLangs", "rows.Err", err)
	}

	return langs, nil
}
