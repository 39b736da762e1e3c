package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloglist-backend/models"
)

var sixBlogs = []models.Blog{
	{ID: "5a422a851b54a676234d17f7", Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
	{ID: "5a422aa71b54a676234d17f8", Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", Likes: 5},
	{ID: "5a422b3a1b54a676234d17f9", Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html", Likes: 12},
	{ID: "5a422b891b54a676234d17fa", Title: "First class tests", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017-05-05-TestDefinitions.html", Likes: 10},
	{ID: "5a422ba71b54a676234d17fb", Title: "TDD harms architecture", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017-03-03-TDD-Harms-Architecture.html", Likes: 0},
	{ID: "5a422bc61b54a676234d17fc", Title: "Type wars", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2016-05-01-TypeWars.html", Likes: 2},
}

func TestTotalLikes(t *testing.T) {
	t.Run("of empty list is zero", func(t *testing.T) {
		assert.Equal(t, 0, TotalLikes(nil))
		assert.Equal(t, 0, TotalLikes([]models.Blog{}))
	})

	t.Run("of a single blog equals its likes", func(t *testing.T) {
		assert.Equal(t, 5, TotalLikes(sixBlogs[1:2]))
	})

	t.Run("of a bigger list is calculated right", func(t *testing.T) {
		assert.Equal(t, 36, TotalLikes(sixBlogs))
	})

	t.Run("of n identical blogs is n times likes", func(t *testing.T) {
		blogs := make([]models.Blog, 4)
		for i := range blogs {
			blogs[i] = models.Blog{Title: "t", Author: "a", URL: "u", Likes: 9}
		}
		assert.Equal(t, 36, TotalLikes(blogs))
	})
}

func TestFavoriteBlog(t *testing.T) {
	t.Run("of empty list is nil", func(t *testing.T) {
		assert.Nil(t, FavoriteBlog(nil))
	})

	t.Run("of a single blog is that blog reduced", func(t *testing.T) {
		fav := FavoriteBlog(sixBlogs[:1])
		require.NotNil(t, fav)
		assert.Equal(t, &BlogSummary{Title: "React patterns", Author: "Michael Chan", Likes: 7}, fav)
	})

	t.Run("of a bigger list is the most liked", func(t *testing.T) {
		fav := FavoriteBlog(sixBlogs)
		require.NotNil(t, fav)
		assert.Equal(t, &BlogSummary{Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", Likes: 12}, fav)
	})

	t.Run("first encountered wins ties", func(t *testing.T) {
		blogs := []models.Blog{
			{Title: "first", Author: "a", URL: "u", Likes: 3},
			{Title: "second", Author: "b", URL: "u", Likes: 3},
		}
		fav := FavoriteBlog(blogs)
		require.NotNil(t, fav)
		assert.Equal(t, "first", fav.Title)
	})
}

func TestMostBlogs(t *testing.T) {
	t.Run("of empty list is nil", func(t *testing.T) {
		assert.Nil(t, MostBlogs(nil))
	})

	t.Run("of a bigger list is the most prolific author", func(t *testing.T) {
		top := MostBlogs(sixBlogs)
		require.NotNil(t, top)
		assert.Equal(t, &AuthorBlogs{Author: "Robert C. Martin", Blogs: 3}, top)
	})

	t.Run("a tie returns one of the tied authors", func(t *testing.T) {
		blogs := []models.Blog{
			{Title: "a1", Author: "alice", URL: "u", Likes: 1},
			{Title: "a2", Author: "alice", URL: "u", Likes: 1},
			{Title: "b1", Author: "bob", URL: "u", Likes: 1},
			{Title: "b2", Author: "bob", URL: "u", Likes: 1},
		}
		top := MostBlogs(blogs)
		require.NotNil(t, top)
		assert.Equal(t, 2, top.Blogs)
		assert.Contains(t, []string{"alice", "bob"}, top.Author)
	})
}

func TestMostLikes(t *testing.T) {
	t.Run("of empty list is nil", func(t *testing.T) {
		assert.Nil(t, MostLikes(nil))
	})

	t.Run("of a bigger list is the most liked author", func(t *testing.T) {
		top := MostLikes(sixBlogs)
		require.NotNil(t, top)
		assert.Equal(t, &AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 17}, top)
	})

	t.Run("a tie returns one of the tied authors", func(t *testing.T) {
		blogs := []models.Blog{
			{Title: "a1", Author: "alice", URL: "u", Likes: 6},
			{Title: "b1", Author: "bob", URL: "u", Likes: 4},
			{Title: "b2", Author: "bob", URL: "u", Likes: 2},
		}
		top := MostLikes(blogs)
		require.NotNil(t, top)
		assert.Equal(t, 6, top.Likes)
		assert.Contains(t, []string{"alice", "bob"}, top.Author)
	})
}
