package services

import (
	"fmt"
	"strings"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// BlogService handles business logic for blog posts
type BlogService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
}

// NewBlogService creates a new BlogService
func NewBlogService(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *BlogService {
	return &BlogService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// ListPosts retrieves all posts with their comments
func (s *BlogService) ListPosts() ([]*models.Post, error) {
	return s.postRepo.List()
}

// GetPost retrieves a post by ID
func (s *BlogService) GetPost(id string) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// CreatePost creates a new blog post with validation
func (s *BlogService) CreatePost(post *models.Post) error {
	if err := validatePost(post); err != nil {
		return fmt.Errorf("invalid post: %v", err)
	}

	// Verify the author exists
	if _, err := s.userRepo.GetByID(post.Author); err != nil {
		return fmt.Errorf("unknown author %s: %v", post.Author, err)
	}

	post.CreatedAt = time.Now()
	post.Likes = 0
	post.Comments = []models.Comment{}

	return s.postRepo.Create(post)
}

// LikePost increments a post's like count
func (s *BlogService) LikePost(id string) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}

	post.Like()
	return s.postRepo.Update(post)
}

// LikeComment increments the like count of the comment at the given
// position within the post's comment sequence.
func (s *BlogService) LikeComment(postID string, index int) error {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return err
	}

	if err := post.LikeComment(index); err != nil {
		return err
	}
	return s.postRepo.Update(post)
}

// AddComment appends a comment to a post and returns the updated post
func (s *BlogService) AddComment(postID, userID, content string) (*models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("comment content is required")
	}

	// Verify the commenter exists
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, fmt.Errorf("unknown user %s: %v", userID, err)
	}

	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{User: userID, Content: content}
	if err := post.AddComment(comment); err != nil {
		return nil, fmt.Errorf("invalid comment: %v", err)
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// validatePost validates a post's fields
func validatePost(post *models.Post) error {
	if post.Title == "" {
		return fmt.Errorf("title is required")
	}
	if len(post.Title) > 200 {
		return fmt.Errorf("title is too long (maximum 200 characters)")
	}
	if post.Content == "" {
		return fmt.Errorf("content is required")
	}
	if post.Author == "" {
		return fmt.Errorf("author is required")
	}
	return nil
}
