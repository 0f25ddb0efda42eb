package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User is a registered account. Password carries the bcrypt hash;
// services blank it before a user leaves the API surface.
type User struct {
	ID       string `json:"id" validate:"required"`
	Username string `json:"username" validate:"required,min=3,max=30"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Password string `json:"password,omitempty" validate:"-"`
}

// Post represents a blog post. Comments are embedded in the post
// document and addressed by position within the slice.
type Post struct {
	ID        string    `json:"id" validate:"required"`
	Title     string    `json:"title" validate:"required,min=1,max=200"`
	Content   string    `json:"content" validate:"required"`
	Author    string    `json:"author" validate:"required"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
	Likes     int       `json:"likes" validate:"gte=0"`
	Comments  []Comment `json:"comments" validate:"dive"`
}

// Comment lives inside its parent post and has no independent
// lifecycle. User holds the commenter's user ID, not a display name.
type Comment struct {
	User    string `json:"user" validate:"required"`
	Content string `json:"content" validate:"required,max=500"`
	Likes   int    `json:"likes" validate:"gte=0"`
}
