package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/five82/memoix/internal/model"
)

var (
	// ErrNotFound is returned when no record has the requested uuid.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a record with the same uuid already exists.
	ErrDuplicate = errors.New("record already exists")
	// ErrRating is returned for ratings outside 0..MaxRating.
	ErrRating = errors.New("rating out of range")
)

// MaxRating is the highest star rating a record can carry.
const MaxRating = 5

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	uuid           TEXT    NOT NULL UNIQUE,
	kind           TEXT    NOT NULL,
	name           TEXT    NOT NULL,
	source         TEXT    NOT NULL DEFAULT 'personal',
	favorite       INTEGER NOT NULL DEFAULT 0,
	cook_count     INTEGER NOT NULL DEFAULT 0,
	rating         INTEGER NOT NULL DEFAULT 0,
	image_path     TEXT    NOT NULL DEFAULT '',
	body           TEXT    NOT NULL,
	created_at     INTEGER NOT NULL,
	updated_at     INTEGER NOT NULL,
	last_cooked_at INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_records_kind ON records(kind);
CREATE INDEX IF NOT EXISTS idx_records_name ON records(name COLLATE NOCASE);
`

var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA synchronous = NORMAL",
}

// Store persists records in a single SQLite table. The shareable projection
// is kept as the row body; local metadata lives in its own columns.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("database path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection keeps pragmas in effect and serialises writers.
	db.SetMaxOpenConns(1)

	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Filter narrows List. The zero value lists everything.
type Filter struct {
	Kind          model.Kind // empty matches every kind
	FavoritesOnly bool
	Source        model.Source // empty matches every source
	Query         string       // case-insensitive name substring
}

// Create inserts a new record. A blank uuid is replaced with a fresh one and
// an unset source becomes personal. The record's metadata is updated with
// its row id and timestamps.
func (s *Store) Create(ctx context.Context, r model.Record) error {
	if strings.TrimSpace(r.Ref().UUID) == "" {
		model.SetUUID(r, model.NewUUID())
	}
	meta := r.Local()
	if meta.Source == "" {
		meta.Source = model.SourcePersonal
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := getRecord(ctx, tx, r.Ref().UUID); err == nil {
			return fmt.Errorf("%w: %s", ErrDuplicate, r.Ref().UUID)
		} else if !errors.Is(err, ErrNotFound) {
			return err
		}
		return s.insert(ctx, tx, r)
	})
}

// Get returns the record with the given uuid.
func (s *Store) Get(ctx context.Context, uuid string) (model.Record, error) {
	return getRecord(ctx, s.db, uuid)
}

// List returns records matching f ordered by name.
func (s *Store) List(ctx context.Context, f Filter) ([]model.Record, error) {
	var (
		where []string
		args  []any
	)
	if f.Kind != "" {
		where = append(where, "kind = ?")
		args = append(args, string(f.Kind))
	}
	if f.FavoritesOnly {
		where = append(where, "favorite = 1")
	}
	if f.Source != "" {
		where = append(where, "source = ?")
		args = append(args, string(f.Source))
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		where = append(where, "instr(lower(name), lower(?)) > 0")
		args = append(args, q)
	}

	query := "SELECT " + columns + " FROM records"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY name COLLATE NOCASE, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var out []model.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return out, nil
}

// Update replaces the shareable content of an existing record. Local
// metadata columns are left alone; use the dedicated setters for those.
func (s *Store) Update(ctx context.Context, r model.Record) error {
	body, err := model.ShareableJSON(r)
	if err != nil {
		return err
	}
	now := s.now()
	ref := r.Ref()
	res, err := s.db.ExecContext(ctx,
		`UPDATE records SET kind = ?, name = ?, body = ?, updated_at = ? WHERE uuid = ?`,
		string(ref.Kind), ref.Name, string(body), unixMilli(now), ref.UUID)
	if err != nil {
		return fmt.Errorf("update %s: %w", ref.UUID, err)
	}
	if err := expectRow(res, ref.UUID); err != nil {
		return err
	}
	r.Local().UpdatedAt = now
	return nil
}

// Delete removes a record.
func (s *Store) Delete(ctx context.Context, uuid string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE uuid = ?`, uuid)
	if err != nil {
		return fmt.Errorf("delete %s: %w", uuid, err)
	}
	return expectRow(res, uuid)
}

// SetFavorite marks or unmarks a record as a favourite.
func (s *Store) SetFavorite(ctx context.Context, uuid string, favorite bool) error {
	return s.execMeta(ctx, uuid, `UPDATE records SET favorite = ?, updated_at = ? WHERE uuid = ?`,
		boolInt(favorite), unixMilli(s.now()), uuid)
}

// RecordCook bumps the cook count and stamps the last-cooked time.
func (s *Store) RecordCook(ctx context.Context, uuid string) error {
	now := unixMilli(s.now())
	return s.execMeta(ctx, uuid,
		`UPDATE records SET cook_count = cook_count + 1, last_cooked_at = ?, updated_at = ? WHERE uuid = ?`,
		now, now, uuid)
}

// SetRating sets a 0..MaxRating star rating; zero clears it.
func (s *Store) SetRating(ctx context.Context, uuid string, rating int) error {
	if rating < 0 || rating > MaxRating {
		return fmt.Errorf("%w: %d", ErrRating, rating)
	}
	return s.execMeta(ctx, uuid, `UPDATE records SET rating = ?, updated_at = ? WHERE uuid = ?`,
		rating, unixMilli(s.now()), uuid)
}

// SetImagePath records where the local copy of a record's photo lives.
func (s *Store) SetImagePath(ctx context.Context, uuid, path string) error {
	return s.execMeta(ctx, uuid, `UPDATE records SET image_path = ?, updated_at = ? WHERE uuid = ?`,
		path, unixMilli(s.now()), uuid)
}

func (s *Store) execMeta(ctx context.Context, uuid, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", uuid, err)
	}
	return expectRow(res, uuid)
}

func (s *Store) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
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

// insert writes r as a new row and fills in its row id and timestamps.
func (s *Store) insert(ctx context.Context, tx *sql.Tx, r model.Record) error {
	body, err := model.ShareableJSON(r)
	if err != nil {
		return err
	}
	ref := r.Ref()
	meta := r.Local()
	now := s.now()
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = now
	}
	meta.UpdatedAt = now

	res, err := tx.ExecContext(ctx, `INSERT INTO records
		(uuid, kind, name, source, favorite, cook_count, rating, image_path, body, created_at, updated_at, last_cooked_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ref.UUID, string(ref.Kind), ref.Name, string(meta.Source),
		boolInt(meta.Favorite), meta.CookCount, meta.Rating, meta.ImagePath, string(body),
		unixMilli(meta.CreatedAt), unixMilli(meta.UpdatedAt), unixMilli(meta.LastCookedAt))
	if err != nil {
		return fmt.Errorf("insert %s: %w", ref.UUID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert %s: %w", ref.UUID, err)
	}
	meta.RowID = id
	return nil
}

const columns = `id, uuid, kind, source, favorite, cook_count, rating, image_path, body, created_at, updated_at, last_cooked_at`

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

func getRecord(ctx context.Context, q queryer, uuid string) (model.Record, error) {
	row := q.QueryRowContext(ctx, "SELECT "+columns+" FROM records WHERE uuid = ?", uuid)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, uuid)
	}
	return rec, err
}

func scanRecord(sc scanner) (model.Record, error) {
	var (
		id                           int64
		uuid, kind, source, img      string
		favorite, cookCount, rating  int
		body                         string
		created, updated, lastCooked int64
	)
	if err := sc.Scan(&id, &uuid, &kind, &source, &favorite, &cookCount, &rating, &img, &body,
		&created, &updated, &lastCooked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan record: %w", err)
	}
	rec, err := model.FromShareable(model.Kind(kind), []byte(body))
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", uuid, err)
	}
	*rec.Local() = model.Meta{
		RowID:        id,
		Source:       model.ParseSource(source),
		Favorite:     favorite != 0,
		CookCount:    cookCount,
		Rating:       rating,
		CreatedAt:    fromMilli(created),
		UpdatedAt:    fromMilli(updated),
		LastCookedAt: fromMilli(lastCooked),
		ImagePath:    img,
	}
	return rec, nil
}

func expectRow(res sql.Result, uuid string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, uuid)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func unixMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMilli(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
