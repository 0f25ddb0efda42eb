package web

import (
	"inkwell/client/assemble"
	"inkwell/client/session"
)

const createdLayout = "Jan 2, 2006 15:04"

// CommentView is one rendered comment line
type CommentView struct {
	PostID   string
	Index    int
	UserName string
	Content  string
	Likes    int
}

// PostView is one rendered post card
type PostView struct {
	ID         string
	Title      string
	AuthorName string
	Content    string
	Created    string
	Likes      int
	Comments   []CommentView
}

// PageData is everything the index template needs
type PageData struct {
	LoggedIn bool
	Username string
	Posts    []PostView
}

// BuildView is a pure function from enriched posts and session state
// to template data. The session only controls which mutation controls
// appear; it never filters posts or comments.
func BuildView(posts []*assemble.Post, sess *session.Session) PageData {
	data := PageData{}
	if sess != nil {
		data.LoggedIn = true
		data.Username = sess.User.Username
	}

	data.Posts = make([]PostView, 0, len(posts))
	for _, p := range posts {
		view := PostView{
			ID:         p.ID,
			Title:      p.Title,
			AuthorName: p.AuthorName,
			Content:    p.Content,
			Created:    p.CreatedAt.Format(createdLayout),
			Likes:      p.Likes,
		}
		for i, c := range p.Comments {
			view.Comments = append(view.Comments, CommentView{
				PostID:   p.ID,
				Index:    i,
				UserName: c.UserName,
				Content:  c.Content,
				Likes:    c.Likes,
			})
		}
		data.Posts = append(data.Posts, view)
	}
	return data
}
