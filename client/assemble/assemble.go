// Package assemble turns raw posts into renderable ones by resolving
// user IDs to display names against the content service.
package assemble

import (
	"fmt"
	"sync"

	"inkwell/app/models"
	"inkwell/logger"
)

// UserLookup resolves a user ID to a full user record
type UserLookup interface {
	GetUser(id string) (*models.User, error)
}

// Comment is a comment with its commenter's display name resolved
type Comment struct {
	models.Comment
	UserName string
}

// Post is a post with author and commenter names resolved. It is a
// transient view, rebuilt from scratch on every load.
type Post struct {
	models.Post
	AuthorName string
	Comments   []Comment
}

// Enrich resolves the author name of every post, then the commenter
// name of every comment. Both passes fan out across posts; within one
// post, comment lookups run sequentially in comment order. Any failed
// lookup fails the whole call: no partially enriched list is ever
// returned. Names are re-resolved on every call, duplicates included.
func Enrich(posts []models.Post, users UserLookup, log *logger.Logger) ([]*Post, error) {
	enriched := make([]*Post, len(posts))
	for i := range posts {
		p := &Post{Post: posts[i]}
		p.Comments = make([]Comment, len(posts[i].Comments))
		for j, c := range posts[i].Comments {
			p.Comments[j] = Comment{Comment: c}
		}
		enriched[i] = p
	}

	// Pass 1: author names, one lookup per post, all concurrent.
	if err := forEachPost(enriched, func(p *Post) error {
		user, err := users.GetUser(p.Author)
		if err != nil {
			return fmt.Errorf("author %s: %w", p.Author, err)
		}
		p.AuthorName = user.Name
		return nil
	}); err != nil {
		log.Error("assemble", "author enrichment failed", err)
		return nil, err
	}

	// Pass 2: commenter names, posts concurrent, comments in order.
	if err := forEachPost(enriched, func(p *Post) error {
		for j := range p.Comments {
			user, err := users.GetUser(p.Comments[j].User)
			if err != nil {
				return fmt.Errorf("commenter %s: %w", p.Comments[j].User, err)
			}
			p.Comments[j].UserName = user.Name
		}
		return nil
	}); err != nil {
		log.Error("assemble", "comment enrichment failed", err)
		return nil, err
	}

	return enriched, nil
}

// forEachPost runs fn for every post in its own goroutine and joins
// before returning. The first error wins; the remaining goroutines
// still run to completion.
func forEachPost(posts []*Post, fn func(*Post) error) error {
	var wg sync.WaitGroup
	errs := make([]error, len(posts))

	for i, p := range posts {
		wg.Add(1)
		go func(i int, p *Post) {
			defer wg.Done()
			errs[i] = fn(p)
		}(i, p)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
