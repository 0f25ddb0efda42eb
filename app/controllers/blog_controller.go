package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"inkwell/app/middleware"
	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// BlogController handles HTTP requests for blog posts
type BlogController struct {
	blogService *services.BlogService
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService *services.BlogService) *BlogController {
	return &BlogController{blogService: blogService}
}

// Index handles GET /blogs/ and returns every post with its comments
func (bc *BlogController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := bc.blogService.ListPosts()
	if err != nil {
		sendError(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	sendJSON(w, http.StatusOK, posts)
}

// Create handles POST /blogs/
func (bc *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	// The author field defaults to the authenticated user
	if post.Author == "" {
		if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
			post.Author = userID
		}
	}

	if err := bc.blogService.CreatePost(&post); err != nil {
		sendError(w, "Failed to create post: "+err.Error(), http.StatusBadRequest)
		return
	}

	sendJSON(w, http.StatusCreated, post)
}

// Like handles PUT /blogs/like/{id}
func (bc *BlogController) Like(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := bc.blogService.LikePost(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, "Post not found", http.StatusNotFound)
			return
		}
		sendError(w, "Failed to like post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// LikeComment handles PUT /blogs/{id}/comment/like/{index}
func (bc *BlogController) LikeComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		sendError(w, "Invalid comment index", http.StatusBadRequest)
		return
	}

	if err := bc.blogService.LikeComment(id, index); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, "Post not found", http.StatusNotFound)
			return
		}
		sendError(w, "Failed to like comment: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddComment handles POST /blogs/{id}/comment and responds with the
// updated post
func (bc *BlogController) AddComment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		UserID  string `json:"userID"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if body.UserID == "" {
		if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
			body.UserID = userID
		}
	}

	post, err := bc.blogService.AddComment(id, body.UserID, body.Content)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, "Post not found", http.StatusNotFound)
			return
		}
		sendError(w, "Failed to add comment: "+err.Error(), http.StatusBadRequest)
		return
	}

	sendJSON(w, http.StatusOK, post)
}
