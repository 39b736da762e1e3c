package models

import "github.com/uptrace/bun"

// Blog is a listed blog entry. UserID is the owner reference.
type Blog struct {
	bun.BaseModel `bun:"table:blogs,alias:b"`

	ID     string `bun:"id,pk" json:"id"`
	Title  string `bun:"title,notnull" json:"title"`
	Author string `bun:"author,notnull" json:"author"`
	URL    string `bun:"url,notnull" json:"url"`
	Likes  int    `bun:"likes,notnull,default:0" json:"likes"`
	UserID string `bun:"user_id,notnull" json:"-"`

	User *User `bun:"rel:belongs-to,join:user_id=id" json:"-"`
}
