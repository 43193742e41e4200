package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"

	"github.com/georgemunganga/users-api/internal/httpx"
	"github.com/go-chi/chi/v5"
)

const duplicateEmailMessage = "An account with this email already exists"

type ctxKey struct{}

type Handler struct {
	service      Service
	authenticate func(http.Handler) http.Handler
	errs         *httpx.ErrorHandler
}

// NewHandler builds the /users router. authenticate guards every route
// under /users/{user_id}.
func NewHandler(service Service, authenticate func(http.Handler) http.Handler, errs *httpx.ErrorHandler) *Handler {
	return &Handler{service: service, authenticate: authenticate, errs: errs}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.registerUser)

		r.Route("/{user_id}", func(r chi.Router) {
			r.Use(h.authenticate)
			r.Use(h.loadUser)
			r.Get("/", h.getUser)
			r.Delete("/", h.deleteUser)
			r.Patch("/", h.updateUser)
		})
	})
}

// userRequest uses pointers so an absent or null field can be told apart
// from an empty string.
type userRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"user_password"`
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.errs.ServerError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, serializeUsers(users))
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	required := []struct {
		key   string
		value *string
	}{
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"email", req.Email},
		{"user_password", req.Password},
	}
	for _, field := range required {
		if field.value == nil {
			httpx.WriteMessage(w, http.StatusBadRequest, fmt.Sprintf("Missing '%s' in request body", field.key))
			return
		}
	}

	user, err := h.service.RegisterUser(r.Context(), NewUser{
		FirstName: *req.FirstName,
		LastName:  *req.LastName,
		Email:     *req.Email,
		Password:  *req.Password,
	})
	if err != nil {
		h.writeMutationError(w, r, err)
		return
	}

	w.Header().Set("Location", path.Join(r.URL.Path, user.ID.String()))
	httpx.WriteJSON(w, http.StatusCreated, serializeUser(user))
}

// loadUser fetches the user named in the path and attaches it to the
// request context, or answers 404.
func (h *Handler) loadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := h.service.GetUser(r.Context(), chi.URLParam(r, "user_id"))
		if errors.Is(err, ErrUserNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, "User doesn't exist")
			return
		}
		if err != nil {
			h.errs.ServerError(w, r, err)
			return
		}
		ctx := context.WithValue(r.Context(), ctxKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userFromContext(ctx context.Context) *User {
	user, _ := ctx.Value(ctxKey{}).(*User)
	return user
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, serializeUser(userFromContext(r.Context())))
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteUser(r.Context(), userFromContext(r.Context()).ID.String()); err != nil {
		h.errs.ServerError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	patch := UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}
	if !patch.HasValues() {
		httpx.WriteMessage(w, http.StatusBadRequest,
			"Request body must contain either 'first_name', 'last_name', 'email', 'user_password'")
		return
	}

	if err := h.service.UpdateUser(r.Context(), userFromContext(r.Context()), patch); err != nil {
		h.writeMutationError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeMutationError maps the outcomes of a create or update to a response.
func (h *Handler) writeMutationError(w http.ResponseWriter, r *http.Request, err error) {
	var policyErr *PasswordPolicyError
	switch {
	case errors.As(err, &policyErr):
		httpx.WriteError(w, http.StatusBadRequest, policyErr.Rule)
	case errors.Is(err, ErrDuplicateEmail):
		httpx.WriteError(w, http.StatusBadRequest, duplicateEmailMessage)
	default:
		h.errs.ServerError(w, r, err)
	}
}
