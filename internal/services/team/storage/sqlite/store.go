// Package sqlite provides a SQLite-backed team member store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/teamdocs/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/teamdocs/internal/platform/timeouts"
	"github.com/louisbranch/teamdocs/internal/services/team/storage"
	"github.com/louisbranch/teamdocs/internal/services/team/storage/sqlite/migrations"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const dsnPragmas = "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

// Store persists team members in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ storage.MemberStore = (*Store)(nil)

// Option configures Open.
type Option func(*openOptions)

type openOptions struct {
	logger *zap.Logger
	now    func() time.Time
}

// WithLogger reports applied migrations to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *openOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(o *openOptions) {
		if now != nil {
			o.now = now
		}
	}
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite team store and applies embedded migrations.
func Open(path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	options := openOptions{logger: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(&options)
	}

	sqlDB, err := sql.Open("sqlite", filepath.Clean(path)+dsnPragmas)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.StoreOpen)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	applied, err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, "")
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	for _, name := range applied {
		options.logger.Info("applied migration", zap.String("name", name), zap.String("path", path))
	}
	return &Store{sqlDB: sqlDB, now: options.now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// PutMember upserts one member and rewrites its translations.
func (s *Store) PutMember(ctx context.Context, member storage.Member) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.withTx(ctx, "put member", func(tx *sql.Tx) error {
		return s.putMember(ctx, tx, member)
	})
}

func (s *Store) putMember(ctx context.Context, tx *sql.Tx, member storage.Member) error {
	slug := strings.TrimSpace(member.Slug)
	if slug == "" {
		return storage.ErrSlugRequired
	}
	now := s.now()
	createdAt := member.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := member.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO members (
		   slug, position, name, title, photo, biography,
		   twitter, threads, github, personal, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET
		   position = excluded.position,
		   name = excluded.name,
		   title = excluded.title,
		   photo = excluded.photo,
		   biography = excluded.biography,
		   twitter = excluded.twitter,
		   threads = excluded.threads,
		   github = excluded.github,
		   personal = excluded.personal,
		   updated_at = excluded.updated_at`,
		slug,
		member.Position,
		member.Name,
		member.Title,
		member.Photo,
		member.Biography,
		member.Twitter,
		member.Threads,
		member.GitHub,
		member.Personal,
		toMillis(createdAt),
		toMillis(updatedAt),
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM member_translations WHERE member_slug = ?`, slug); err != nil {
		return err
	}
	for i, tr := range member.Translations {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO member_translations (member_slug, position, title, translated_title, url)
			 VALUES (?, ?, ?, ?, ?)`,
			slug,
			i,
			tr.Title,
			tr.TranslatedTitle,
			tr.URL,
		); err != nil {
			return err
		}
	}
	return nil
}

const memberColumns = `slug, position, name, title, photo, biography,
		 twitter, threads, github, personal, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (storage.Member, error) {
	var member storage.Member
	var createdAt int64
	var updatedAt int64
	if err := row.Scan(
		&member.Slug,
		&member.Position,
		&member.Name,
		&member.Title,
		&member.Photo,
		&member.Biography,
		&member.Twitter,
		&member.Threads,
		&member.GitHub,
		&member.Personal,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.Member{}, err
	}
	member.CreatedAt = fromMillis(createdAt)
	member.UpdatedAt = fromMillis(updatedAt)
	return member, nil
}

// GetMember returns one member with its translations.
func (s *Store) GetMember(ctx context.Context, slug string) (storage.Member, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Member{}, err
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return storage.Member{}, storage.ErrSlugRequired
	}

	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+memberColumns+` FROM members WHERE slug = ?`, slug)
	member, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Member{}, storage.ErrNotFound
		}
		return storage.Member{}, fmt.Errorf("get member: %w", err)
	}
	translations, err := s.loadTranslations(ctx, `WHERE member_slug = ?`, slug)
	if err != nil {
		return storage.Member{}, fmt.Errorf("get member translations: %w", err)
	}
	member.Translations = translations[slug]
	return member, nil
}

// ListMembers returns all members ordered by position, then slug.
func (s *Store) ListMembers(ctx context.Context) ([]storage.Member, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT `+memberColumns+` FROM members ORDER BY position, slug`)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var members []storage.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	translations, err := s.loadTranslations(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list member translations: %w", err)
	}
	for i := range members {
		members[i].Translations = translations[members[i].Slug]
	}
	return members, nil
}

func (s *Store) loadTranslations(ctx context.Context, where string, args ...any) (map[string][]storage.Translation, error) {
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT member_slug, title, translated_title, url
		 FROM member_translations `+where+`
		 ORDER BY member_slug, position`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]storage.Translation)
	for rows.Next() {
		var slug string
		var tr storage.Translation
		if err := rows.Scan(&slug, &tr.Title, &tr.TranslatedTitle, &tr.URL); err != nil {
			return nil, err
		}
		out[slug] = append(out[slug], tr)
	}
	return out, rows.Err()
}

// DeleteMember removes one member. Deleting a missing member returns
// storage.ErrNotFound.
func (s *Store) DeleteMember(ctx context.Context, slug string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return storage.ErrSlugRequired
	}
	return s.withTx(ctx, "delete member", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM member_translations WHERE member_slug = ?`, slug); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, `DELETE FROM members WHERE slug = ?`, slug)
		if err != nil {
			return err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return storage.ErrNotFound
		}
		return nil
	})
}

// ReplaceMembers upserts every member and deletes stored members missing
// from the set, in one transaction.
func (s *Store) ReplaceMembers(ctx context.Context, members []storage.Member) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.withTx(ctx, "replace members", func(tx *sql.Tx) error {
		keep := make(map[string]struct{}, len(members))
		for _, member := range members {
			if err := s.putMember(ctx, tx, member); err != nil {
				return fmt.Errorf("%s: %w", member.Slug, err)
			}
			keep[strings.TrimSpace(member.Slug)] = struct{}{}
		}

		rows, err := tx.QueryContext(ctx, `SELECT slug FROM members`)
		if err != nil {
			return err
		}
		var stale []string
		for rows.Next() {
			var slug string
			if err := rows.Scan(&slug); err != nil {
				_ = rows.Close()
				return err
			}
			if _, ok := keep[slug]; !ok {
				stale = append(stale, slug)
			}
		}
		if err := rows.Close(); err != nil {
			return err
		}
		for _, slug := range stale {
			if _, err := tx.ExecContext(ctx, `DELETE FROM member_translations WHERE member_slug = ?`, slug); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM members WHERE slug = ?`, slug); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) withTx(ctx context.Context, op string, fn func(*sql.Tx) error) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrSlugRequired) {
			return err
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}
	return nil
}
