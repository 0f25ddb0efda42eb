package models

import (
	"errors"
	"time"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
}

// AddComment appends a comment to the post
func (p *Post) AddComment(comment Comment) error {
	if err := comment.Validate(); err != nil {
		return err
	}

	p.Comments = append(p.Comments, comment)
	return nil
}

// Like increments the post's like count
func (p *Post) Like() {
	p.Likes++
}

// LikeComment increments the like count of the comment at the given
// position. Comments have no stable identifier, so position is the
// only address callers have.
func (p *Post) LikeComment(index int) error {
	if index < 0 || index >= len(p.Comments) {
		return errors.New("comment index out of range")
	}
	p.Comments[index].Likes++
	return nil
}
