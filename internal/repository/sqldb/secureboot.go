package sqldb

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/device-management-toolkit/redfish-sync/internal/entity"
	"github.com/device-management-toolkit/redfish-sync/pkg/db"
)

// SecureBootRepo stores enrolled secure boot database entries.
type SecureBootRepo struct {
	*db.SQL
}

// NewSecureBootRepo -.
func NewSecureBootRepo(database *db.SQL) *SecureBootRepo {
	return &SecureBootRepo{database}
}

// Insert enrolls entry, replacing an entry with the same id.
func (r *SecureBootRepo) Insert(ctx context.Context, entry *entity.SecureBootEntry) error {
	query, args, err := r.Builder.
		Insert("secureboot_entries").
		Columns("database_name", "entry_id", "kind", "signature_type", "owner", "data", "enrolled_at").
		Values(entry.Database, entry.ID, string(entry.Kind), entry.SignatureType, entry.Owner, entry.Data, entry.EnrolledAt.Unix()).
		Suffix("ON CONFLICT (database_name, entry_id) DO UPDATE SET kind = excluded.kind, signature_type = excluded.signature_type, owner = excluded.owner, data = excluded.data, enrolled_at = excluded.enrolled_at").
		ToSql()
	if err != nil {
		return dbError("SecureBootRepo").Wrap("Insert", "r.Builder", err)
	}

	if _, err = r.Pool.ExecContext(ctx, query, args...); err != nil {
		return dbError("SecureBootRepo").Wrap("Insert", "r.Pool.ExecContext", err)
	}

	return nil
}

// Delete removes an entry and reports whether it existed.
func (r *SecureBootRepo) Delete(ctx context.Context, database, id string) (bool, error) {
	query, args, err := r.Builder.
		Delete("secureboot_entries").
		Where(sq.Eq{"database_name": database, "entry_id": id}).
		ToSql()
	if err != nil {
		return false, dbError("SecureBootRepo").Wrap("Delete", "r.Builder", err)
	}

	res, err := r.Pool.ExecContext(ctx, query, args...)
	if err != nil {
		return false, dbError("SecureBootRepo").Wrap("Delete", "r.Pool.ExecContext", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, dbError("SecureBootRepo").Wrap("Delete", "res.RowsAffected", err)
	}

	return n > 0, nil
}

// List returns the entries of database ordered by id.
func (r *SecureBootRepo) List(ctx context.Context, database string) ([]entity.SecureBootEntry, error) {
	query, args, err := r.Builder.
		Select("entry_id", "kind", "signature_type", "owner", "data", "enrolled_at").
		From("secureboot_entries").
		Where(sq.Eq{"database_name": database}).
		OrderBy("entry_id").
		ToSql()
	if err != nil {
		return nil, dbError("SecureBootRepo").Wrap("List", "r.Builder", err)
	}

	rows, err := r.Pool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError("SecureBootRepo").Wrap("List", "r.Pool.QueryContext", err)
	}

	defer rows.Close()

	entries := make([]entity.SecureBootEntry, 0)

	for rows.Next() {
		var (
			e        entity.SecureBootEntry
			kind     string
			enrolled int64
		)

		if err = rows.Scan(&e.ID, &kind, &e.SignatureType, &e.Owner, &e.Data, &enrolled); err != nil {
			return nil, dbError("SecureBootRepo").Wrap("List", "rows.Scan", err)
		}

		e.Database = database
		e.Kind = entity.SecureBootEntryKind(kind)
		e.EnrolledAt = time.Unix(enrolled, 0).UTC()
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, dbError("SecureBootRepo").Wrap("List", "rows.Err", err)
	}

	return entries, nil
}
