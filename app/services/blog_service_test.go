package services

import (
	"testing"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBlogService(t *testing.T) (*BlogService, *mock.PostRepository, *mock.UserRepository) {
	postRepo := mock.NewPostRepository()
	userRepo := mock.NewUserRepository()
	svc := NewBlogService(postRepo, userRepo)
	return svc, postRepo, userRepo
}

func seedUser(t *testing.T, repo *mock.UserRepository, username string) *models.User {
	user := &models.User{Username: username, Name: username}
	require.NoError(t, repo.Create(user))
	return user
}

func TestCreatePost(t *testing.T) {
	svc, _, userRepo := newTestBlogService(t)
	author := seedUser(t, userRepo, "alice")

	t.Run("valid post", func(t *testing.T) {
		post := &models.Post{Title: "Hello", Content: "World", Author: author.ID}
		err := svc.CreatePost(post)
		assert.NoError(t, err)
		assert.NotEmpty(t, post.ID)
		assert.False(t, post.CreatedAt.IsZero())
		assert.NotNil(t, post.Comments)
	})

	t.Run("missing title", func(t *testing.T) {
		err := svc.CreatePost(&models.Post{Content: "World", Author: author.ID})
		assert.Error(t, err)
	})

	t.Run("missing content", func(t *testing.T) {
		err := svc.CreatePost(&models.Post{Title: "Hello", Author: author.ID})
		assert.Error(t, err)
	})

	t.Run("unknown author", func(t *testing.T) {
		err := svc.CreatePost(&models.Post{Title: "Hello", Content: "World", Author: "nobody"})
		assert.Error(t, err)
	})
}

func TestLikePost(t *testing.T) {
	svc, _, userRepo := newTestBlogService(t)
	author := seedUser(t, userRepo, "alice")

	post := &models.Post{Title: "Hello", Content: "World", Author: author.ID}
	require.NoError(t, svc.CreatePost(post))

	other := &models.Post{Title: "Other", Content: "Post", Author: author.ID}
	require.NoError(t, svc.CreatePost(other))

	require.NoError(t, svc.LikePost(post.ID))

	got, err := svc.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Likes)

	// no other post's count changes
	gotOther, err := svc.GetPost(other.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, gotOther.Likes)

	t.Run("missing post", func(t *testing.T) {
		assert.ErrorIs(t, svc.LikePost("no-such-id"), repositories.ErrNotFound)
	})
}

func TestAddComment(t *testing.T) {
	svc, _, userRepo := newTestBlogService(t)
	author := seedUser(t, userRepo, "alice")
	commenter := seedUser(t, userRepo, "bob")

	post := &models.Post{Title: "Hello", Content: "World", Author: author.ID}
	require.NoError(t, svc.CreatePost(post))

	t.Run("valid comment", func(t *testing.T) {
		updated, err := svc.AddComment(post.ID, commenter.ID, "nice post")
		require.NoError(t, err)
		require.Len(t, updated.Comments, 1)
		assert.Equal(t, commenter.ID, updated.Comments[0].User)
		assert.Equal(t, "nice post", updated.Comments[0].Content)
		assert.Equal(t, 0, updated.Comments[0].Likes)
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := svc.AddComment(post.ID, commenter.ID, "   ")
		assert.Error(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.AddComment(post.ID, "nobody", "hi")
		assert.Error(t, err)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := svc.AddComment("no-such-id", commenter.ID, "hi")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestLikeComment(t *testing.T) {
	svc, _, userRepo := newTestBlogService(t)
	author := seedUser(t, userRepo, "alice")

	post := &models.Post{Title: "Hello", Content: "World", Author: author.ID}
	require.NoError(t, svc.CreatePost(post))

	_, err := svc.AddComment(post.ID, author.ID, "first")
	require.NoError(t, err)
	_, err = svc.AddComment(post.ID, author.ID, "second")
	require.NoError(t, err)

	require.NoError(t, svc.LikeComment(post.ID, 1))

	got, err := svc.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Comments[0].Likes)
	assert.Equal(t, 1, got.Comments[1].Likes)

	t.Run("index out of range", func(t *testing.T) {
		assert.Error(t, svc.LikeComment(post.ID, 5))
		assert.Error(t, svc.LikeComment(post.ID, -1))
	})
}
