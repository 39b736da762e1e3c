// Package stats provides pure aggregation over blog lists. No I/O; the
// input slice is never modified.
package stats

import "bloglist-backend/models"

// BlogSummary is the reduced projection returned by FavoriteBlog.
type BlogSummary struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// AuthorBlogs pairs an author with how many blogs they wrote.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes pairs an author with their cumulative like count.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes sums likes across all blogs. Zero for an empty list.
func TotalLikes(blogs []models.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, first encountered
// winning ties. Nil for an empty list.
func FavoriteBlog(blogs []models.Blog) *BlogSummary {
	if len(blogs) == 0 {
		return nil
	}

	favorite := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > favorite.Likes {
			favorite = b
		}
	}
	return &BlogSummary{
		Title:  favorite.Title,
		Author: favorite.Author,
		Likes:  favorite.Likes,
	}
}

// MostBlogs returns the author with the largest number of blogs. Ties are
// broken by map iteration order, so any maximal author may win. Nil for an
// empty list.
func MostBlogs(blogs []models.Blog) *AuthorBlogs {
	if len(blogs) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, b := range blogs {
		counts[b.Author]++
	}

	top := &AuthorBlogs{Blogs: -1}
	for author, n := range counts {
		if n > top.Blogs {
			top.Author = author
			top.Blogs = n
		}
	}
	return top
}

// MostLikes returns the author with the largest cumulative like count, with
// the same tie-break caveat as MostBlogs. Nil for an empty list.
func MostLikes(blogs []models.Blog) *AuthorLikes {
	if len(blogs) == 0 {
		return nil
	}

	sums := make(map[string]int)
	for _, b := range blogs {
		sums[b.Author] += b.Likes
	}

	top := &AuthorLikes{Likes: -1}
	for author, likes := range sums {
		if likes > top.Likes {
			top.Author = author
			top.Likes = likes
		}
	}
	return top
}
