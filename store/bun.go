package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"bloglist-backend/models"
)

// Bun is the PostgreSQL-backed Store.
type Bun struct {
	db *bun.DB
}

// NewBun wraps an open bun connection.
func NewBun(db *bun.DB) *Bun {
	return &Bun{db: db}
}

func (s *Bun) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	blogs := make([]models.Blog, 0)
	err := s.db.NewSelect().
		Model(&blogs).
		Relation("User").
		OrderExpr("b.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

func (s *Bun) BlogByID(ctx context.Context, id string) (*models.Blog, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMalformedID
	}

	blog := &models.Blog{}
	err := s.db.NewSelect().Model(blog).
		Relation("User").
		Where("b.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return blog, nil
}

// CreateBlog inserts the blog and appends its id to the owner's reverse
// collection. Both writes run in one transaction so a failure on the second
// cannot leave the two sides inconsistent.
func (s *Bun) CreateBlog(ctx context.Context, blog *models.Blog, owner *models.User) error {
	if err := validateBlog(blog); err != nil {
		return err
	}
	blog.ID = uuid.New().String()

	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(blog).Exec(ctx); err != nil {
			return err
		}
		owner.BlogIDs = append(owner.BlogIDs, blog.ID)
		_, err := tx.NewUpdate().Model(owner).
			Column("blog_ids").
			WherePK().
			Exec(ctx)
		return err
	})
}

func (s *Bun) UpdateBlog(ctx context.Context, id string, blog *models.Blog) (*models.Blog, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMalformedID
	}
	if err := validateBlog(blog); err != nil {
		return nil, err
	}

	blog.ID = id
	columns := []string{"title", "author", "url", "likes"}
	// The owner reference is replaced only when the caller supplies one.
	if blog.UserID != "" {
		columns = append(columns, "user_id")
	}

	res, err := s.db.NewUpdate().Model(blog).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, nil
	}

	return s.BlogByID(ctx, id)
}

// DeleteBlog removes the blog and drops its id from the owner's reverse
// collection in one transaction.
func (s *Bun) DeleteBlog(ctx context.Context, blog *models.Blog, owner *models.User) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model(blog).WherePK().Exec(ctx); err != nil {
			return err
		}
		kept := owner.BlogIDs[:0]
		for _, ref := range owner.BlogIDs {
			if ref != blog.ID {
				kept = append(kept, ref)
			}
		}
		owner.BlogIDs = kept
		_, err := tx.NewUpdate().Model(owner).
			Column("blog_ids").
			WherePK().
			Exec(ctx)
		return err
	})
}

func (s *Bun) CreateUser(ctx context.Context, user *models.User) error {
	if err := validateUser(user); err != nil {
		return err
	}
	user.ID = uuid.New().String()
	if user.BlogIDs == nil {
		user.BlogIDs = []string{}
	}

	if _, err := s.db.NewInsert().Model(user).Exec(ctx); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func (s *Bun) ListUsers(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	err := s.db.NewSelect().
		Model(&users).
		Relation("Blogs").
		OrderExpr("u.username ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Bun) UserByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMalformedID
	}

	user := &models.User{}
	err := s.db.NewSelect().Model(user).
		Where("u.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Bun) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := s.db.NewSelect().Model(user).
		Where("username = ?", username).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Bun) Reset(ctx context.Context) error {
	if _, err := s.db.NewTruncateTable().Model((*models.Blog)(nil)).Exec(ctx); err != nil {
		return err
	}
	_, err := s.db.NewTruncateTable().Model((*models.User)(nil)).Exec(ctx)
	return err
}
