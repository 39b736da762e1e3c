package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"bloglist-backend/models"
)

// Memory is an in-memory Store used by tests and local experiments. It
// mirrors the Bun implementation's behavior, including malformed-id and
// duplicate-username detection. A single mutex guards every operation, so
// the blog/reverse-collection dual-write is atomic here as well.
type Memory struct {
	mu    sync.Mutex
	users map[string]*models.User
	blogs map[string]*models.Blog
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users: make(map[string]*models.User),
		blogs: make(map[string]*models.Blog),
	}
}

func copyUser(u *models.User) *models.User {
	cp := *u
	cp.BlogIDs = append([]string(nil), u.BlogIDs...)
	cp.Blogs = nil
	return &cp
}

func copyBlog(b *models.Blog) *models.Blog {
	cp := *b
	cp.User = nil
	return &cp
}

func (s *Memory) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blogs := make([]models.Blog, 0, len(s.blogs))
	for _, b := range s.blogs {
		cp := copyBlog(b)
		if owner, ok := s.users[b.UserID]; ok {
			cp.User = copyUser(owner)
		}
		blogs = append(blogs, *cp)
	}
	sort.Slice(blogs, func(i, j int) bool { return blogs[i].ID < blogs[j].ID })
	return blogs, nil
}

func (s *Memory) BlogByID(ctx context.Context, id string) (*models.Blog, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMalformedID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.blogs[id]
	if !ok {
		return nil, nil
	}
	cp := copyBlog(b)
	if owner, ok := s.users[b.UserID]; ok {
		cp.User = copyUser(owner)
	}
	return cp, nil
}

func (s *Memory) CreateBlog(ctx context.Context, blog *models.Blog, owner *models.User) error {
	if err := validateBlog(blog); err != nil {
		return err
	}
	blog.ID = uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.blogs[blog.ID] = copyBlog(blog)
	if u, ok := s.users[owner.ID]; ok {
		u.BlogIDs = append(u.BlogIDs, blog.ID)
	}
	owner.BlogIDs = append(owner.BlogIDs, blog.ID)
	return nil
}

func (s *Memory) UpdateBlog(ctx context.Context, id string, blog *models.Blog) (*models.Blog, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMalformedID
	}
	if err := validateBlog(blog); err != nil {
		return nil, err
	}

	s.mu.Lock()
	existing, ok := s.blogs[id]
	if !ok {
		s.mu.Unlock()
		return nil, nil
	}
	existing.Title = blog.Title
	existing.Author = blog.Author
	existing.URL = blog.URL
	existing.Likes = blog.Likes
	if blog.UserID != "" {
		existing.UserID = blog.UserID
	}
	s.mu.Unlock()

	return s.BlogByID(ctx, id)
}

func (s *Memory) DeleteBlog(ctx context.Context, blog *models.Blog, owner *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blogs, blog.ID)

	drop := func(ids []string) []string {
		kept := ids[:0]
		for _, ref := range ids {
			if ref != blog.ID {
				kept = append(kept, ref)
			}
		}
		return kept
	}
	if u, ok := s.users[owner.ID]; ok {
		u.BlogIDs = drop(u.BlogIDs)
	}
	owner.BlogIDs = drop(owner.BlogIDs)
	return nil
}

func (s *Memory) CreateUser(ctx context.Context, user *models.User) error {
	if err := validateUser(user); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return ErrDuplicateUsername
		}
	}

	user.ID = uuid.New().String()
	if user.BlogIDs == nil {
		user.BlogIDs = []string{}
	}
	s.users[user.ID] = copyUser(user)
	return nil
}

func (s *Memory) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		cp := copyUser(u)
		for _, id := range u.BlogIDs {
			if b, ok := s.blogs[id]; ok {
				cp.Blogs = append(cp.Blogs, copyBlog(b))
			}
		}
		users = append(users, *cp)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (s *Memory) UserByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMalformedID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return copyUser(u), nil
}

func (s *Memory) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (s *Memory) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make(map[string]*models.User)
	s.blogs = make(map[string]*models.Blog)
	return nil
}
