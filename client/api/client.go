// Package api is the typed HTTP client for the content service. Every
// operation is a single request/response round trip; any non-2xx
// response or transport error collapses into ErrFailed.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"inkwell/app/models"
)

// ErrFailed is the generic operation-failed condition. Callers must
// not mutate local state when they see it.
var ErrFailed = errors.New("operation failed")

// Client talks to the content service. It is safe for concurrent use:
// the token is written on login/log-off while request goroutines read
// it.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// New creates a Client for the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// SetToken sets the bearer token attached to subsequent requests
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the currently attached bearer token
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// LoginResult carries the authenticated user and its bearer token
type LoginResult struct {
	models.User
	Token string `json:"token"`
}

func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encoding request: %v", ErrFailed, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailed, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrFailed, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s returned %d", ErrFailed, method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decoding response: %v", ErrFailed, err)
		}
	}
	return nil
}

// ListPosts fetches all blog posts
func (c *Client) ListPosts() ([]models.Post, error) {
	var posts []models.Post
	if err := c.do("GET", "/blogs/", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetUser fetches a single user by ID
func (c *Client) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := c.do("GET", "/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers fetches all users
func (c *Client) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := c.do("GET", "/users/", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser registers a new user
func (c *Client) CreateUser(username, name, password string) (*models.User, error) {
	body := map[string]string{"username": username, "name": name, "password": password}
	var user models.User
	if err := c.do("POST", "/users/", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and returns the user together with its token
func (c *Client) Login(username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var result LoginResult
	if err := c.do("POST", "/users/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreatePost publishes a new blog post
func (c *Client) CreatePost(title, content, author string) (*models.Post, error) {
	body := map[string]string{"title": title, "content": content, "author": author}
	var post models.Post
	if err := c.do("POST", "/blogs/", body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// LikePost increments a post's like count
func (c *Client) LikePost(id string) error {
	return c.do("PUT", "/blogs/like/"+id, nil, nil)
}

// LikeComment increments the like count of the comment at the given
// position within the post's comment sequence.
func (c *Client) LikeComment(postID string, index int) error {
	return c.do("PUT", "/blogs/"+postID+"/comment/like/"+strconv.Itoa(index), nil, nil)
}

// AddComment appends a comment to a post and returns the updated post
func (c *Client) AddComment(postID, userID, content string) (*models.Post, error) {
	body := map[string]string{"userID": userID, "content": content}
	var post models.Post
	if err := c.do("POST", "/blogs/"+postID+"/comment", body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}
