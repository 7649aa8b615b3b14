// Snapshot persistence for nanotube parameter sets. A snapshot captures
// everything needed to rebuild the domain model: symmetry, target ratio,
// direction mode and the per-domain rows of one subunit.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wolfbio/natube/pkg/model"
	"github.com/wolfbio/natube/pkg/table"

	_ "modernc.org/sqlite"
)

// Defining possible error
var ErrSnapshotNotFound = errors.New("snapshot does not exist")

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	uuid            TEXT PRIMARY KEY,
	name            TEXT NOT NULL UNIQUE,
	created_at      TEXT NOT NULL,
	symmetry        INTEGER NOT NULL,
	target_ratio    REAL NOT NULL,
	auto_directions INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS snapshot_domains (
	snapshot_uuid TEXT NOT NULL REFERENCES snapshots(uuid) ON DELETE CASCADE,
	idx           INTEGER NOT NULL,
	m             INTEGER NOT NULL,
	direction     TEXT NOT NULL,
	phase_offset  INTEGER NOT NULL,
	PRIMARY KEY (snapshot_uuid, idx)
);`

// Snapshot is one saved parameter set.
type Snapshot struct {
	UUID        string
	Name        string
	CreatedAt   time.Time
	Symmetry    int
	TargetRatio float64
	Auto        bool
	Rows        []table.Row
}

// Store wraps the sqlite database holding snapshots.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the snapshot database at path.
func Open(path string) (*Store, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := sqldb.Exec(schema); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("snapshot schema init failed: %w", err)
	}
	return &Store{db: sqldb}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a snapshot under name, replacing any previous snapshot of
// the same name, and returns its uuid.
func (s *Store) Save(ctx context.Context, snap Snapshot) (string, error) {
	if snap.Name == "" {
		return "", &model.ParameterError{Field: "name", Msg: "snapshot name must not be empty"}
	}
	if len(snap.Rows) == 0 {
		return "", &model.ParameterError{Field: "rows", Msg: "snapshot has no domain rows"}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM snapshot_domains WHERE snapshot_uuid IN (SELECT uuid FROM snapshots WHERE name = ?)`,
		snap.Name); err != nil {
		return "", err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots WHERE name = ?`, snap.Name); err != nil {
		return "", err
	}

	id := uuid.NewString()
	created := time.Now().UTC().Format(time.RFC3339)
	auto := 0
	if snap.Auto {
		auto = 1
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (uuid, name, created_at, symmetry, target_ratio, auto_directions) VALUES (?, ?, ?, ?, ?, ?)`,
		id, snap.Name, created, snap.Symmetry, snap.TargetRatio, auto); err != nil {
		return "", err
	}

	stm, err := tx.PrepareContext(ctx,
		`INSERT INTO snapshot_domains (snapshot_uuid, idx, m, direction, phase_offset) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stm.Close()

	for _, row := range snap.Rows {
		if _, err := stm.ExecContext(ctx, id, row.Index, row.Multiplier, row.Direction.String(), row.Offset); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// Load fetches a snapshot by name.
func (s *Store) Load(ctx context.Context, name string) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT uuid, name, created_at, symmetry, target_ratio, auto_directions FROM snapshots WHERE name = ?`,
		name)
	return s.scanSnapshot(ctx, row)
}

// LoadLatest fetches the most recently saved snapshot, or
// ErrSnapshotNotFound when the store is empty.
func (s *Store) LoadLatest(ctx context.Context) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT uuid, name, created_at, symmetry, target_ratio, auto_directions FROM snapshots ORDER BY created_at DESC, uuid LIMIT 1`)
	return s.scanSnapshot(ctx, row)
}

func (s *Store) scanSnapshot(ctx context.Context, row *sql.Row) (*Snapshot, error) {
	var snap Snapshot
	var created string
	var auto int
	err := row.Scan(&snap.UUID, &snap.Name, &created, &snap.Symmetry, &snap.TargetRatio, &auto)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}
	snap.Auto = auto != 0
	if snap.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
		return nil, fmt.Errorf("snapshot %s carries a bad timestamp: %w", snap.UUID, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT idx, m, direction, phase_offset FROM snapshot_domains WHERE snapshot_uuid = ? ORDER BY idx`,
		snap.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r table.Row
		var dir string
		if err := rows.Scan(&r.Index, &r.Multiplier, &dir, &r.Offset); err != nil {
			return nil, err
		}
		if r.Direction, err = model.ParseDirection(dir); err != nil {
			return nil, err
		}
		snap.Rows = append(snap.Rows, r)
	}
	return &snap, rows.Err()
}

// List returns the names of all snapshots, newest first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM snapshots ORDER BY created_at DESC, uuid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes a snapshot by name.
func (s *Store) Delete(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM snapshot_domains WHERE snapshot_uuid IN (SELECT uuid FROM snapshots WHERE name = ?)`,
		name); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE name = ?`, name)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSnapshotNotFound
	}
	return nil
}
