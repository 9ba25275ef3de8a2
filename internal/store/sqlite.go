// Package store keeps a local history of parsed exports in SQLite so
// consecutive uploads can be diffed (who unfollowed since last time).
// The database is consumed as an opaque snapshot table through
// database/sql; nothing here is a storage engine of our own design.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	_ "modernc.org/sqlite"

	"instagram_audit/internal/parser"
)

// Store wraps *sql.DB over the pure-Go sqlite driver.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the snapshot database and migrates it.
func Open(path string) (*Store, error) {
	db, openErr := sql.Open("sqlite", path)
	if openErr != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, openErr)
	}
	db.SetMaxOpenConns(1)
	s := &Store{db: db}
	if migrateErr := s.migrate(); migrateErr != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", migrateErr)
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

// migrate creates the snapshot table, idempotently.
func (s *Store) migrate() error {
	_, execErr := s.db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        taken_at TIMESTAMP NOT NULL,
        digest TEXT NOT NULL,
        following_count INTEGER NOT NULL,
        followers_count INTEGER NOT NULL,
        data BLOB NOT NULL
    );`)
	return execErr
}

// Snapshot is one recorded parse: when it was taken, which archive it
// came from and the relationship sets as sorted username lists.
type Snapshot struct {
	ID        int64
	TakenAt   time.Time
	Digest    string
	Following []string
	Followers []string
}

type snapshotBlob struct {
	Following []string `json:"following"`
	Followers []string `json:"followers"`
}

// FromParsed builds a snapshot from a parsed dataset.
func FromParsed(data parser.ParsedAll, digest string, takenAt time.Time) Snapshot {
	return Snapshot{
		TakenAt:   takenAt,
		Digest:    digest,
		Following: sortedKeys(data.Following),
		Followers: sortedKeys(data.Followers),
	}
}

// Save appends a snapshot to the history and returns its id.
func (s *Store) Save(ctx context.Context, snapshot Snapshot) (int64, error) {
	blob, marshalErr := json.Marshal(snapshotBlob{Following: snapshot.Following, Followers: snapshot.Followers})
	if marshalErr != nil {
		return 0, fmt.Errorf("marshal snapshot: %w", marshalErr)
	}
	insertResult, execErr := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (taken_at, digest, following_count, followers_count, data) VALUES (?, ?, ?, ?, ?)`,
		snapshot.TakenAt.UTC(), snapshot.Digest, len(snapshot.Following), len(snapshot.Followers), blob)
	if execErr != nil {
		return 0, fmt.Errorf("insert snapshot: %w", execErr)
	}
	id, idErr := insertResult.LastInsertId()
	if idErr != nil {
		return 0, fmt.Errorf("snapshot id: %w", idErr)
	}
	return id, nil
}

// Latest returns the most recent snapshot, or found=false on an empty
// history.
func (s *Store) Latest(ctx context.Context) (Snapshot, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, taken_at, digest, data FROM snapshots ORDER BY id DESC LIMIT 1`)
	snapshot, scanErr := scanSnapshot(row)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return Snapshot{}, false, nil
	}
	if scanErr != nil {
		return Snapshot{}, false, scanErr
	}
	return snapshot, true, nil
}

// LatestOtherDigest returns the most recent snapshot whose digest
// differs, so re-uploading the same archive still diffs against the
// previous distinct export.
func (s *Store) LatestOtherDigest(ctx context.Context, digest string) (Snapshot, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, taken_at, digest, data FROM snapshots WHERE digest != ? ORDER BY id DESC LIMIT 1`, digest)
	snapshot, scanErr := scanSnapshot(row)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return Snapshot{}, false, nil
	}
	if scanErr != nil {
		return Snapshot{}, false, scanErr
	}
	return snapshot, true, nil
}

func scanSnapshot(row *sql.Row) (Snapshot, error) {
	var snapshot Snapshot
	var blob []byte
	if scanErr := row.Scan(&snapshot.ID, &snapshot.TakenAt, &snapshot.Digest, &blob); scanErr != nil {
		return Snapshot{}, scanErr
	}
	var decoded snapshotBlob
	if unmarshalErr := json.Unmarshal(blob, &decoded); unmarshalErr != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot %d: %w", snapshot.ID, unmarshalErr)
	}
	snapshot.Following = decoded.Following
	snapshot.Followers = decoded.Followers
	return snapshot, nil
}

// DiffResult lists the relationship changes between two snapshots, each
// slice sorted.
type DiffResult struct {
	LostFollowers    []string `json:"lostFollowers"`
	GainedFollowers  []string `json:"gainedFollowers"`
	StoppedFollowing []string `json:"stoppedFollowing"`
	StartedFollowing []string `json:"startedFollowing"`
}

// Diff compares a previous snapshot to the current one.
func Diff(previous, current Snapshot) DiffResult {
	return DiffResult{
		LostFollowers:    missingFrom(previous.Followers, current.Followers),
		GainedFollowers:  missingFrom(current.Followers, previous.Followers),
		StoppedFollowing: missingFrom(previous.Following, current.Following),
		StartedFollowing: missingFrom(current.Following, previous.Following),
	}
}

// missingFrom returns the members of base absent from other, sorted.
func missingFrom(base, other []string) []string {
	otherSet := make(map[string]struct{}, len(other))
	for _, username := range other {
		otherSet[username] = struct{}{}
	}
	var missing []string
	for _, username := range base {
		if _, present := otherSet[username]; !present {
			missing = append(missing, username)
		}
	}
	sort.Strings(missing)
	return missing
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
