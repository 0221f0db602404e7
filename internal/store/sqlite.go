package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/meheralimeer/shelfwatch/internal/dbx"
	"github.com/meheralimeer/shelfwatch/internal/item"
	"github.com/meheralimeer/shelfwatch/internal/store/migrations"

	_ "modernc.org/sqlite"
)

func init() {
	// The modernc driver registers as "sqlite", which sqlx does not know
	// out of the box. It uses ? placeholders like sqlite3.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// SQLiteStore is the embedded-database backend. It mirrors the observable
// semantics of FileStore: insertion order on reads, max+1 id assignment,
// and an Update that never inserts.
type SQLiteStore struct {
	db *sqlx.DB
}

// itemRow is the table representation. Timestamps are stored as TEXT in the
// same layouts the file backend uses, so a row unreadable as an Item is a
// parse failure in both backends.
type itemRow struct {
	ID         int    `db:"id"`
	Name       string `db:"name"`
	CreatedAt  string `db:"created_at"`
	UpdatedAt  string `db:"updated_at"`
	ExpiryDate string `db:"expiry_date"`
}

// OpenSQLite opens (creating if needed) the database at dsn and applies
// pending migrations.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}

	// Single-writer assumption; also keeps :memory: databases on one
	// connection so every query sees the same schema.
	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite %s: %w", dsn, err)
	}

	return &SQLiteStore{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) NextID(ctx context.Context) (int, error) {
	var next int
	if err := s.db.GetContext(ctx, &next, `SELECT COALESCE(MAX(id), 0) + 1 FROM items`); err != nil {
		return 0, fmt.Errorf("next id: %w", err)
	}
	return next, nil
}

func (s *SQLiteStore) Save(ctx context.Context, it item.Item) error {
	row := toRow(it)
	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO items (id, name, created_at, updated_at, expiry_date)
		VALUES (:id, :name, :created_at, :updated_at, :expiry_date)
	`, row)
	if err != nil {
		return fmt.Errorf("save item %d: %w", it.ID, err)
	}
	return nil
}

func (s *SQLiteStore) LoadAll(ctx context.Context) ([]item.Item, error) {
	var rows []itemRow
	if err := s.db.SelectContext(ctx, &rows, `
		SELECT id, name, created_at, updated_at, expiry_date
		FROM items ORDER BY rowid
	`); err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	items := make([]item.Item, 0, len(rows))
	for _, r := range rows {
		it, err := fromRow(r)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (s *SQLiteStore) Update(ctx context.Context, it item.Item) error {
	row := toRow(it)
	// Zero affected rows is the documented no-op: a missing id never turns
	// the update into an insert.
	err := dbx.WithTx(ctx, s.db.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `
			UPDATE items SET name = ?, created_at = ?, updated_at = ?, expiry_date = ?
			WHERE id = ?
		`, row.Name, row.CreatedAt, row.UpdatedAt, row.ExpiryDate, row.ID)
		return err
	})
	if err != nil {
		return fmt.Errorf("update item %d: %w", it.ID, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id int) error {
	err := dbx.WithTx(ctx, s.db.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	return nil
}

func toRow(it item.Item) itemRow {
	return itemRow{
		ID:         it.ID,
		Name:       it.Name,
		CreatedAt:  it.CreatedAt.Format(item.TimeLayout),
		UpdatedAt:  it.UpdatedAt.Format(item.TimeLayout),
		ExpiryDate: it.ExpiryDate.Format(item.DateLayout),
	}
}

func fromRow(r itemRow) (item.Item, error) {
	// Reuse the record codec so malformed rows surface as the same parse
	// failure the file backend reports.
	return item.ParseRecord(fmt.Sprintf("%d,%s,%s,%s,%s",
		r.ID, r.Name, r.CreatedAt, r.UpdatedAt, r.ExpiryDate))
}
