// Package web is the browser-facing half of the system: it pulls
// posts from the content service, enriches them with display names
// and renders the result server-side. Likes update the in-memory
// view state after the backend call succeeds; adding a comment or a
// post re-fetches the whole list.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"inkwell/client/api"
	"inkwell/client/assemble"
	"inkwell/client/session"
	"inkwell/logger"

	"github.com/gorilla/mux"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server renders the blog UI and dispatches mutations
type Server struct {
	api      *api.Client
	sessions *session.Store
	log      *logger.Logger
	tmpl     *template.Template

	mu    sync.RWMutex
	posts []*assemble.Post
}

// NewServer creates a Server on top of an API client and session store
func NewServer(apiClient *api.Client, sessions *session.Store, log *logger.Logger) *Server {
	return &Server{
		api:      apiClient,
		sessions: sessions,
		log:      log,
		tmpl:     template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

// Refresh re-fetches and re-enriches the full post list. On failure
// the current view state is left untouched.
func (s *Server) Refresh() error {
	posts, err := s.api.ListPosts()
	if err != nil {
		s.log.Error("web", "failed to fetch posts", err)
		return err
	}

	enriched, err := assemble.Enrich(posts, s.api, s.log)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.posts = enriched
	s.mu.Unlock()
	return nil
}

// Router wires the UI routes
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(middlewareLogger(s.log))

	router.HandleFunc("/", s.handleIndex).Methods("GET")
	router.HandleFunc("/login", s.handleLogin).Methods("POST")
	router.HandleFunc("/logoff", s.handleLogoff).Methods("POST")
	router.HandleFunc("/posts", s.handleCreatePost).Methods("POST")
	router.HandleFunc("/posts/{id}/like", s.handleLikePost).Methods("POST")
	router.HandleFunc("/posts/{id}/comments", s.handleAddComment).Methods("POST")
	router.HandleFunc("/posts/{id}/comments/{index:[0-9]+}/like", s.handleLikeComment).Methods("POST")

	return router
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess, _ := s.sessions.Current()

	s.mu.RLock()
	data := BuildView(s.posts, sess)
	s.mu.RUnlock()

	if err := s.tmpl.ExecuteTemplate(w, "index", data); err != nil {
		s.log.Error("web", "template error", err)
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	result, err := s.api.Login(username, password)
	if err != nil {
		s.log.Error("web", "login failed", err)
		s.renderError(w, http.StatusUnauthorized, "Login failed. Please try again.")
		return
	}

	if err := s.sessions.Save(&result.User, result.Token); err != nil {
		s.renderError(w, http.StatusInternalServerError, "Could not persist login.")
		return
	}
	s.api.SetToken(result.Token)

	// Full resynchronization after a successful login.
	if err := s.Refresh(); err != nil {
		s.log.Error("web", "refresh after login failed", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLogoff(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Clear(); err != nil {
		s.renderError(w, http.StatusInternalServerError, "Could not clear session.")
		return
	}
	s.api.SetToken("")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w)
	if !ok {
		return
	}

	title := r.FormValue("title")
	content := r.FormValue("content")
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		s.renderError(w, http.StatusBadRequest, "Title and content are required.")
		return
	}

	if _, err := s.api.CreatePost(title, content, sess.User.ID); err != nil {
		s.log.Error("web", "create post failed", err)
		s.renderError(w, http.StatusBadGateway, "Failed to post blog. Please try again.")
		return
	}

	if err := s.Refresh(); err != nil {
		s.renderError(w, http.StatusBadGateway, "Post created but the list could not be reloaded.")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLikePost(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireSession(w); !ok {
		return
	}
	id := mux.Vars(r)["id"]

	if err := s.api.LikePost(id); err != nil {
		s.log.Error("web", "like post failed", err)
		s.renderError(w, http.StatusBadGateway, "Like failed. Please try again.")
		return
	}

	// Optimistic: bump the in-memory count, no re-fetch.
	s.mu.Lock()
	for _, p := range s.posts {
		if p.ID == id {
			p.Likes++
			break
		}
	}
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLikeComment(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireSession(w); !ok {
		return
	}
	vars := mux.Vars(r)
	id := vars["id"]
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		s.renderError(w, http.StatusBadRequest, "Invalid comment index.")
		return
	}

	if err := s.api.LikeComment(id, index); err != nil {
		s.log.Error("web", "like comment failed", err)
		s.renderError(w, http.StatusBadGateway, "Like failed. Please try again.")
		return
	}

	s.mu.Lock()
	for _, p := range s.posts {
		if p.ID == id && index < len(p.Comments) {
			p.Comments[index].Likes++
			break
		}
	}
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]

	content := r.FormValue("content")
	if strings.TrimSpace(content) == "" {
		s.renderError(w, http.StatusBadRequest, "Comment text is required.")
		return
	}

	if _, err := s.api.AddComment(id, sess.User.ID, content); err != nil {
		s.log.Error("web", "add comment failed", err)
		s.renderError(w, http.StatusBadGateway, "Failed to add comment. Please try again.")
		return
	}

	// Non-optimistic: full resynchronization from the service.
	if err := s.Refresh(); err != nil {
		s.renderError(w, http.StatusBadGateway, "Comment added but the list could not be reloaded.")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// requireSession renders an error page when no one is logged in
func (s *Server) requireSession(w http.ResponseWriter) (*session.Session, bool) {
	sess, ok := s.sessions.Current()
	if !ok {
		s.renderError(w, http.StatusUnauthorized, "You need to be logged in to do that.")
		return nil, false
	}
	return sess, true
}

func (s *Server) renderError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, "error", struct{ Message string }{message}); err != nil {
		s.log.Error("web", "template error", err)
	}
}

func middlewareLogger(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			log.Info("web", fmt.Sprintf("%s %s", r.Method, r.URL.Path))
		})
	}
}
