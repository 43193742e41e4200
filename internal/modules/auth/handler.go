package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/georgemunganga/users-api/internal/httpx"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
	errs    *httpx.ErrorHandler
}

func NewHandler(service Service, errs *httpx.ErrorHandler) *Handler {
	return &Handler{service: service, errs: errs}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Post("/auth/login", h.login)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Email    *string `json:"email"`
		Password *string `json:"user_password"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if req.Email == nil {
		httpx.WriteMessage(w, http.StatusBadRequest, fmt.Sprintf("Missing '%s' in request body", "email"))
		return
	}
	if req.Password == nil {
		httpx.WriteMessage(w, http.StatusBadRequest, fmt.Sprintf("Missing '%s' in request body", "user_password"))
		return
	}

	token, err := h.service.Login(r.Context(), *req.Email, *req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		httpx.WriteError(w, http.StatusBadRequest, "Incorrect email or password")
		return
	}
	if err != nil {
		h.errs.ServerError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"authToken": token})
}
