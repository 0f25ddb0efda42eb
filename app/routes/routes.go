package routes

import (
	"net/http"

	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"
	"inkwell/logger"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// Setup wires repositories, services and controllers onto a router
// serving the content API. Reads and login are open; mutations sit
// behind bearer-token auth.
func Setup(db *badger.DB, jwtSecret string, log *logger.Logger) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recoverer(log))
	router.Use(middleware.ContentTypeJSON)

	postRepo := repositories.NewBadgerPostRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)

	blogService := services.NewBlogService(postRepo, userRepo)
	userService := services.NewUserService(userRepo, jwtSecret)

	blogController := controllers.NewBlogController(blogService)
	userController := controllers.NewUserController(userService)

	authed := middleware.JWTAuth(jwtSecret)

	// Blog endpoints
	blogs := router.PathPrefix("/blogs").Subrouter()
	blogs.HandleFunc("/", blogController.Index).Methods("GET")
	blogs.Handle("/", authed(http.HandlerFunc(blogController.Create))).Methods("POST")
	blogs.Handle("/like/{id}", authed(http.HandlerFunc(blogController.Like))).Methods("PUT")
	blogs.Handle("/{id}/comment/like/{index:[0-9]+}", authed(http.HandlerFunc(blogController.LikeComment))).Methods("PUT")
	blogs.Handle("/{id}/comment", authed(http.HandlerFunc(blogController.AddComment))).Methods("POST")

	// User endpoints
	users := router.PathPrefix("/users").Subrouter()
	users.HandleFunc("/", userController.Index).Methods("GET")
	users.HandleFunc("/", userController.Create).Methods("POST")
	users.HandleFunc("/login", userController.Login).Methods("POST")
	users.HandleFunc("/{id}", userController.Show).Methods("GET")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
