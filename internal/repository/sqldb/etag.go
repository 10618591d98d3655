// Package sqldb persists the synchronization state in sqlite or postgres.
package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/device-management-toolkit/redfish-sync/pkg/db"
)

// ETagRepo stores the last seen ETag per resource URI.
type ETagRepo struct {
	*db.SQL
}

// NewETagRepo -.
func NewETagRepo(database *db.SQL) *ETagRepo {
	return &ETagRepo{database}
}

// Get returns the stored ETag of uri and whether one exists.
func (r *ETagRepo) Get(ctx context.Context, uri string) (string, bool, error) {
	query, args, err := r.Builder.Select("etag").From("etags").Where("uri = ?", uri).ToSql()
	if err != nil {
		return "", false, dbError("ETagRepo").Wrap("Get", "r.Builder", err)
	}

	var etag string

	err = r.Pool.QueryRowContext(ctx, query, args...).Scan(&etag)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}

	if err != nil {
		return "", false, dbError("ETagRepo").Wrap("Get", "r.Pool.QueryRowContext", err)
	}

	return etag, true, nil
}

// Upsert writes every uri/etag pair in one transaction.
func (r *ETagRepo) Upsert(ctx context.Context, etags map[string]string) error {
	if len(etags) == 0 {
		return nil
	}

	tx, err := r.Pool.BeginTx(ctx, nil)
	if err != nil {
		return dbError("ETagRepo").Wrap("Upsert", "r.Pool.BeginTx", err)
	}

	for uri, etag := range etags {
		query, args, err := r.Builder.
			Insert("etags").
			Columns("uri", "etag").
			Values(uri, etag).
			Suffix("ON CONFLICT (uri) DO UPDATE SET etag = excluded.etag").
			ToSql()
		if err != nil {
			_ = tx.Rollback()

			return dbError("ETagRepo").Wrap("Upsert", "r.Builder", err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			_ = tx.Rollback()

			return dbError("ETagRepo").Wrap("Upsert", "tx.ExecContext", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return dbError("ETagRepo").Wrap("Upsert", "tx.Commit", err)
	}

	return nil
}

// Delete removes the ETag of uri.
func (r *ETagRepo) Delete(ctx context.Context, uri string) error {
	query, args, err := r.Builder.Delete("etags").Where("uri = ?", uri).ToSql()
	if err != nil {
		return dbError("ETagRepo").Wrap("Delete", "r.Builder", err)
	}

	if _, err = r.Pool.ExecContext(ctx, query, args...); err != nil {
		return dbError("ETagRepo").Wrap("Delete", "r.Pool.ExecContext", err)
	}

	return nil
}
