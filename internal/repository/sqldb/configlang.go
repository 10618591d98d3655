package sqldb

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/device-management-toolkit/redfish-sync/internal/entity"
	"github.com/device-management-toolkit/redfish-sync/pkg/db"
)

// ConfigLangMapRepo persists the URI to configure-language associations.
type ConfigLangMapRepo struct {
	*db.SQL
}

// NewConfigLangMapRepo -.
func NewConfigLangMapRepo(database *db.SQL) *ConfigLangMapRepo {
	return &ConfigLangMapRepo{database}
}

// GetURI returns the URI mapped to configureLang.
func (r *ConfigLangMapRepo) GetURI(ctx context.Context, configureLang string) (string, bool, error) {
	return r.lookup(ctx, "uri", "configure_lang", configureLang)
}

// GetConfigureLang returns the configure language mapped to uri.
func (r *ConfigLangMapRepo) GetConfigureLang(ctx context.Context, uri string) (string, bool, error) {
	return r.lookup(ctx, "configure_lang", "uri", uri)
}

func (r *ConfigLangMapRepo) lookup(ctx context.Context, column, key, value string) (string, bool, error) {
	query, args, err := r.Builder.Select(column).From("configure_lang_map").Where(sq.Eq{key: value}).ToSql()
	if err != nil {
		return "", false, dbError("ConfigLangMapRepo").Wrap("lookup", "r.Builder", err)
	}

	var out string

	err = r.Pool.QueryRowContext(ctx, query, args...).Scan(&out)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}

	if err != nil {
		return "", false, dbError("ConfigLangMapRepo").Wrap("lookup", "r.Pool.QueryRowContext", err)
	}

	return out, true, nil
}

// Upsert stores each mapping, replacing any row that shares either side.
func (r *ConfigLangMapRepo) Upsert(ctx context.Context, mappings []entity.ConfigLangMapping) error {
	if len(mappings) == 0 {
		return nil
	}

	tx, err := r.Pool.BeginTx(ctx, nil)
	if err != nil {
		return dbError("ConfigLangMapRepo").Wrap("Upsert", "r.Pool.BeginTx", err)
	}

	for _, m := range mappings {
		if err = r.replace(ctx, tx, m); err != nil {
			_ = tx.Rollback()

			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return dbError("ConfigLangMapRepo").Wrap("Upsert", "tx.Commit", err)
	}

	return nil
}

func (r *ConfigLangMapRepo) replace(ctx context.Context, tx *sql.Tx, m entity.ConfigLangMapping) error {
	query, args, err := r.Builder.
		Delete("configure_lang_map").
		Where(sq.Or{sq.Eq{"configure_lang": m.ConfigureLang}, sq.Eq{"uri": m.URI}}).
		ToSql()
	if err != nil {
		return dbError("ConfigLangMapRepo").Wrap("replace", "r.Builder.Delete", err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return dbError("ConfigLangMapRepo").Wrap("replace", "tx.ExecContext delete", err)
	}

	query, args, err = r.Builder.
		Insert("configure_lang_map").
		Columns("configure_lang", "uri").
		Values(m.ConfigureLang, m.URI).
		ToSql()
	if err != nil {
		return dbError("ConfigLangMapRepo").Wrap("replace", "r.Builder.Insert", err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return dbError("ConfigLangMapRepo").Wrap("replace", "tx.ExecContext insert", err)
	}

	return nil
}
