// Package storage defines persistence contracts for published team members.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested member is missing.
var ErrNotFound = errors.New("record not found")

// ErrSlugRequired is returned when a member is addressed without a slug.
var ErrSlugRequired = errors.New("member slug is required")

// Translation is one documentation page a member translated, in display order.
type Translation struct {
	Title           string
	TranslatedTitle string
	URL             string
}

// Member is one published team member.
type Member struct {
	Slug string
	// Position orders members on the team page, ascending.
	Position  int
	Name      string
	Title     string
	Photo     string
	Biography string

	Twitter  string
	Threads  string
	GitHub   string
	Personal string

	Translations []Translation

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MemberStore persists team members.
type MemberStore interface {
	// PutMember inserts or replaces one member including its translations.
	// CreatedAt of an existing member is preserved.
	PutMember(ctx context.Context, member Member) error
	GetMember(ctx context.Context, slug string) (Member, error)
	// ListMembers returns all members ordered by position, then slug.
	ListMembers(ctx context.Context) ([]Member, error)
	DeleteMember(ctx context.Context, slug string) error
	// ReplaceMembers makes members the complete set of stored members.
	ReplaceMembers(ctx context.Context, members []Member) error
}
