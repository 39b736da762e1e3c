package models

import "github.com/uptrace/bun"

// User is an account that can own blogs. The password hash is never
// serialized outward; BlogIDs is the reverse collection of owned blog ids,
// kept in sync with Blog.UserID on every create and delete.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           string   `bun:"id,pk" json:"id"`
	Username     string   `bun:"username,notnull,unique" json:"username"`
	Name         string   `bun:"name" json:"name"`
	PasswordHash string   `bun:"password_hash,notnull" json:"-"`
	BlogIDs      []string `bun:"blog_ids,array" json:"-"`

	Blogs []*Blog `bun:"rel:has-many,join:id=user_id" json:"-"`
}
