package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// UserController handles HTTP requests for user management
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// LoginResponse is the login payload: the user plus a bearer token for
// subsequent mutations.
type LoginResponse struct {
	*models.User
	Token string `json:"token"`
}

// Index handles GET /users/
func (uc *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := uc.userService.ListUsers()
	if err != nil {
		sendError(w, "Failed to fetch users: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	sendJSON(w, http.StatusOK, users)
}

// Show handles GET /users/{id}
func (uc *UserController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	user, err := uc.userService.GetUser(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, "User not found", http.StatusNotFound)
			return
		}
		sendError(w, "Failed to fetch user: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusOK, user)
}

// Create handles POST /users/
func (uc *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := uc.userService.Register(body.Username, body.Name, body.Password)
	if err != nil {
		sendError(w, "Failed to create user: "+err.Error(), http.StatusBadRequest)
		return
	}

	sendJSON(w, http.StatusCreated, user)
}

// Login handles POST /users/login
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, token, err := uc.userService.Login(body.Username, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			sendError(w, "Invalid username or password", http.StatusUnauthorized)
			return
		}
		sendError(w, "Login failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusOK, LoginResponse{User: user, Token: token})
}
