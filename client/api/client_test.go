package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "GET", r.Method)
		require.Equal(t, "/blogs/", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Post{{ID: "p1", Title: "A"}})
	}))
	defer srv.Close()

	posts, err := New(srv.URL).ListPosts()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "A", posts[0].Title)
}

func TestGetUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/u1", r.URL.Path)
		json.NewEncoder(w).Encode(models.User{ID: "u1", Username: "alice", Name: "Alice"})
	}))
	defer srv.Close()

	user, err := New(srv.URL).GetUser("u1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/users/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "wonderland" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"id": "u1", "username": "alice", "name": "Alice", "token": "tok",
		})
	}))
	defer srv.Close()

	client := New(srv.URL)

	t.Run("success", func(t *testing.T) {
		result, err := client.Login("alice", "wonderland")
		require.NoError(t, err)
		assert.Equal(t, "u1", result.ID)
		assert.Equal(t, "tok", result.Token)
	})

	t.Run("rejected", func(t *testing.T) {
		_, err := client.Login("alice", "bad")
		assert.ErrorIs(t, err, ErrFailed)
	})
}

func TestMutationsCarryToken(t *testing.T) {
	var gotAuth, gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotMethod = r.Method
		if r.Method == "POST" {
			json.NewEncoder(w).Encode(models.Post{ID: "p1"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New(srv.URL)
	client.SetToken("tok")

	require.NoError(t, client.LikePost("p1"))
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "PUT", gotMethod)
	assert.Equal(t, "/blogs/like/p1", gotPath)

	require.NoError(t, client.LikeComment("p1", 2))
	assert.Equal(t, "/blogs/p1/comment/like/2", gotPath)

	_, err := client.AddComment("p1", "u1", "hi")
	require.NoError(t, err)
	assert.Equal(t, "/blogs/p1/comment", gotPath)

	_, err = client.CreatePost("T", "C", "u1")
	require.NoError(t, err)
	assert.Equal(t, "/blogs/", gotPath)
}

func TestConcurrentTokenUpdatesAndRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Post{})
	}))
	defer srv.Close()

	client := New(srv.URL)

	// Login/log-off rewrite the token while request goroutines read
	// it; run both sides concurrently so the race detector can see
	// any unsynchronized access.
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			client.SetToken("tok")
		}()
		go func() {
			defer wg.Done()
			_, err := client.ListPosts()
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, "tok", client.Token())
}

func TestServerErrorSurfacesAsErrFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL)

	_, err := client.ListPosts()
	assert.ErrorIs(t, err, ErrFailed)

	err = client.LikePost("p1")
	assert.ErrorIs(t, err, ErrFailed)
}
