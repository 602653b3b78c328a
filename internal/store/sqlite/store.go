// Package sqlite provides SQLite-backed store implementations using the
// pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"babysteps/internal/domain"
)

// Ensure Store implements both store interfaces.
var (
	_ domain.ChildStore   = (*Store)(nil)
	_ domain.MessageStore = (*Store)(nil)
)

// Store is a SQLite-backed implementation of the child and message stores.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS children (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	birthday TEXT NOT NULL DEFAULT '',
	gender TEXT NOT NULL DEFAULT '',
	photo_url TEXT NOT NULL DEFAULT '',
	last_milestone_check TEXT NOT NULL DEFAULT '',
	achieved_milestones TEXT NOT NULL DEFAULT '[]',
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS chat_messages (
	id TEXT PRIMARY KEY,
	child_id TEXT NOT NULL,
	sender TEXT NOT NULL,
	kind TEXT NOT NULL,
	content TEXT NOT NULL,
	sources TEXT NOT NULL DEFAULT '[]',
	timestamp TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_messages_child ON chat_messages(child_id, timestamp);
`

// Open opens (creating if necessary) the database at path and ensures the
// schema exists. Parent directories are created as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// modernc.org/sqlite serializes writes itself; a single connection
	// avoids SQLITE_BUSY under concurrent sessions.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func encodeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func decodeTime(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Create stores a new child, assigning an ID and creation time when absent.
func (s *Store) Create(ctx context.Context, child *domain.Child) error {
	if child.ID == "" {
		child.ID = uuid.NewString()
	}
	if child.CreatedAt.IsZero() {
		child.CreatedAt = time.Now()
	}
	achieved, err := json.Marshal(child.AchievedMilestones)
	if err != nil {
		return fmt.Errorf("encode achieved milestones: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO children (id, name, birthday, gender, photo_url, last_milestone_check, achieved_milestones, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		child.ID, child.Name, encodeTime(child.Birthday), child.Gender, child.PhotoURL,
		encodeTime(child.LastMilestoneCheck), string(achieved), encodeTime(child.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert child: %w", err)
	}
	return nil
}

func scanChild(row interface{ Scan(...any) error }) (*domain.Child, error) {
	var c domain.Child
	var birthday, lastCheck, achieved, createdAt string
	if err := row.Scan(&c.ID, &c.Name, &birthday, &c.Gender, &c.PhotoURL, &lastCheck, &achieved, &createdAt); err != nil {
		return nil, err
	}
	c.Birthday = decodeTime(birthday)
	c.LastMilestoneCheck = decodeTime(lastCheck)
	c.CreatedAt = decodeTime(createdAt)
	if err := json.Unmarshal([]byte(achieved), &c.AchievedMilestones); err != nil {
		return nil, fmt.Errorf("decode achieved milestones: %w", err)
	}
	return &c, nil
}

// Get retrieves a child by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Child, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, birthday, gender, photo_url, last_milestone_check, achieved_milestones, created_at
		 FROM children WHERE id = ?`, id)
	child, err := scanChild(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select child: %w", err)
	}
	return child, nil
}

// List returns all children, newest first.
func (s *Store) List(ctx context.Context) ([]domain.Child, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, birthday, gender, photo_url, last_milestone_check, achieved_milestones, created_at
		 FROM children ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("select children: %w", err)
	}
	defer rows.Close()

	var out []domain.Child
	for rows.Next() {
		child, err := scanChild(rows)
		if err != nil {
			return nil, fmt.Errorf("scan child: %w", err)
		}
		out = append(out, *child)
	}
	return out, rows.Err()
}

// Update overwrites an existing child.
func (s *Store) Update(ctx context.Context, child *domain.Child) error {
	achieved, err := json.Marshal(child.AchievedMilestones)
	if err != nil {
		return fmt.Errorf("encode achieved milestones: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE children SET name = ?, birthday = ?, gender = ?, photo_url = ?, last_milestone_check = ?, achieved_milestones = ?
		 WHERE id = ?`,
		child.Name, encodeTime(child.Birthday), child.Gender, child.PhotoURL,
		encodeTime(child.LastMilestoneCheck), string(achieved), child.ID)
	if err != nil {
		return fmt.Errorf("update child: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a child by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM children WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete child: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Append adds a message to the history, assigning an ID and timestamp when
// absent.
func (s *Store) Append(ctx context.Context, msg *domain.ChatMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	sources, err := json.Marshal(msg.Sources)
	if err != nil {
		return fmt.Errorf("encode sources: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO chat_messages (id, child_id, sender, kind, content, sources, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.ChildID, string(msg.Sender), string(msg.Kind), msg.Content,
		string(sources), encodeTime(msg.Timestamp))
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (s *Store) listMessages(ctx context.Context, query string, args ...any) ([]domain.ChatMessage, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select messages: %w", err)
	}
	defer rows.Close()

	var out []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		var sender, kind, sources, timestamp string
		if err := rows.Scan(&m.ID, &m.ChildID, &sender, &kind, &m.Content, &sources, &timestamp); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.Sender = domain.SenderRole(sender)
		m.Kind = domain.MessageKind(kind)
		m.Timestamp = decodeTime(timestamp)
		if err := json.Unmarshal([]byte(sources), &m.Sources); err != nil {
			return nil, fmt.Errorf("decode sources: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ListByChild returns a child's messages ordered by timestamp.
func (s *Store) ListByChild(ctx context.Context, childID string) ([]domain.ChatMessage, error) {
	return s.listMessages(ctx,
		`SELECT id, child_id, sender, kind, content, sources, timestamp
		 FROM chat_messages WHERE child_id = ? ORDER BY timestamp, id`, childID)
}

// ListByKind returns a child's messages of one kind ordered by timestamp.
func (s *Store) ListByKind(ctx context.Context, childID string, kind domain.MessageKind) ([]domain.ChatMessage, error) {
	return s.listMessages(ctx,
		`SELECT id, child_id, sender, kind, content, sources, timestamp
		 FROM chat_messages WHERE child_id = ? AND kind = ? ORDER BY timestamp, id`, childID, string(kind))
}
