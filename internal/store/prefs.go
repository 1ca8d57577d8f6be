package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const prefsTable = "preferences"

// PrefsRepo is a durable name → integer map. Booleans are stored as 0/1.
type PrefsRepo interface {
	// GetInt returns the stored value, or def when name is unset.
	GetInt(ctx context.Context, name string, def int) (int, error)

	// SetInt stores v under name.
	SetInt(ctx context.Context, name string, v int) error

	// AddInt adds delta to the stored value (unset counts as 0) and
	// returns the new value.
	AddInt(ctx context.Context, name string, delta int) (int, error)

	// MaxInt stores v only if it is strictly greater than the current value
	// (unset counts as 0). It reports whether the value changed.
	MaxInt(ctx context.Context, name string, v int) (bool, error)

	// GetBool returns the stored flag, or def when name is unset.
	GetBool(ctx context.Context, name string, def bool) (bool, error)

	// SetBool stores v under name.
	SetBool(ctx context.Context, name string, v bool) error

	// Clear removes every stored value.
	Clear(ctx context.Context) error
}

// prefsRepo implements PrefsRepo on the preferences table.
type prefsRepo struct {
	db *sql.DB
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func sqlite() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *prefsRepo) GetInt(ctx context.Context, name string, def int) (int, error) {
	v, ok, err := lookup(ctx, r.db, name)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return int(v), nil
}

func (r *prefsRepo) SetInt(ctx context.Context, name string, v int) error {
	return upsert(ctx, r.db, name, int64(v))
}

func (r *prefsRepo) AddInt(ctx context.Context, name string, delta int) (int, error) {
	var next int64
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		cur, _, err := lookup(ctx, tx, name)
		if err != nil {
			return err
		}
		next = cur + int64(delta)
		return upsert(ctx, tx, name, next)
	})
	if err != nil {
		return 0, fmt.Errorf("add %s: %w", name, err)
	}
	return int(next), nil
}

func (r *prefsRepo) MaxInt(ctx context.Context, name string, v int) (bool, error) {
	changed := false
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		cur, _, err := lookup(ctx, tx, name)
		if err != nil {
			return err
		}
		if int64(v) <= cur {
			return nil
		}
		changed = true
		return upsert(ctx, tx, name, int64(v))
	})
	if err != nil {
		return false, fmt.Errorf("max %s: %w", name, err)
	}
	return changed, nil
}

func (r *prefsRepo) GetBool(ctx context.Context, name string, def bool) (bool, error) {
	v, ok, err := lookup(ctx, r.db, name)
	if err != nil {
		return false, err
	}
	if !ok {
		return def, nil
	}
	return v != 0, nil
}

func (r *prefsRepo) SetBool(ctx context.Context, name string, v bool) error {
	var n int64
	if v {
		n = 1
	}
	return upsert(ctx, r.db, name, n)
}

func (r *prefsRepo) Clear(ctx context.Context) error {
	query, args := sqlite().Delete(prefsTable).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear preferences: %w", err)
	}
	return nil
}

func (r *prefsRepo) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func lookup(ctx context.Context, q querier, name string) (int64, bool, error) {
	query, args := sqlite().
		Select("value").
		From(entsql.Table(prefsTable)).
		Where(entsql.EQ("name", name)).
		Query()

	var v int64
	err := q.QueryRowContext(ctx, query, args...).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query %s: %w", name, err)
	}
	return v, true, nil
}

func upsert(ctx context.Context, q querier, name string, v int64) error {
	query, args := sqlite().
		Insert(prefsTable).
		Columns("name", "value").
		Values(name, v).
		OnConflict(
			entsql.ConflictColumns("name"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}
