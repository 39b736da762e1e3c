// Package store is the persistence layer behind the blog and user handlers.
// It owns schema-style validation, identifier parsing and duplicate
// detection, surfacing each as a typed error so the HTTP boundary can map
// them to fixed responses. Implementations are dependency-injected so tests
// can run against Memory instead of a live database.
package store

import (
	"context"
	"errors"
	"fmt"

	"bloglist-backend/models"
)

var (
	// ErrMalformedID is returned when an identifier fails to parse.
	ErrMalformedID = errors.New("malformed id")
	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("expected `username` to be unique")
)

// ValidationError reports a record that failed schema validation.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Store is the persistence contract shared by the Postgres-backed and
// in-memory implementations. Lookup methods return (nil, nil) when the
// record does not exist.
type Store interface {
	// ListBlogs returns all blogs with the owner loaded.
	ListBlogs(ctx context.Context) ([]models.Blog, error)
	// BlogByID returns the blog or (nil, nil); ErrMalformedID on a bad id.
	BlogByID(ctx context.Context, id string) (*models.Blog, error)
	// CreateBlog persists the blog and appends its id to the owner's
	// reverse collection in a single unit.
	CreateBlog(ctx context.Context, blog *models.Blog, owner *models.User) error
	// UpdateBlog replaces title/author/url/likes (and the owner reference
	// when supplied) and returns the updated blog with the owner loaded,
	// or (nil, nil) when the id does not resolve.
	UpdateBlog(ctx context.Context, id string, blog *models.Blog) (*models.Blog, error)
	// DeleteBlog removes the blog and its id from the owner's reverse
	// collection in a single unit.
	DeleteBlog(ctx context.Context, blog *models.Blog, owner *models.User) error

	// CreateUser validates and persists a new user.
	CreateUser(ctx context.Context, user *models.User) error
	// ListUsers returns all users with their owned blogs loaded.
	ListUsers(ctx context.Context) ([]models.User, error)
	UserByID(ctx context.Context, id string) (*models.User, error)
	UserByUsername(ctx context.Context, username string) (*models.User, error)

	// Reset wipes both collections. Test environments only.
	Reset(ctx context.Context) error
}

// validateBlog enforces the blog schema: title, author and url are required.
func validateBlog(b *models.Blog) error {
	switch {
	case b.Title == "":
		return validationErrorf("blog validation failed: title is required")
	case b.Author == "":
		return validationErrorf("blog validation failed: author is required")
	case b.URL == "":
		return validationErrorf("blog validation failed: url is required")
	}
	return nil
}

// validateUser enforces the user schema: username is required with a
// minimum length of 3. Password policy is checked at the handler, before
// hashing, so it never reaches the store.
func validateUser(u *models.User) error {
	if u.Username == "" {
		return validationErrorf("user validation failed: username is required")
	}
	if len(u.Username) < 3 {
		return validationErrorf("user validation failed: username must be at least 3 characters long")
	}
	return nil
}
