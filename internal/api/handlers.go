// Package api maps HTTP requests onto the content store.
package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/patrickmn/go-cache"

	"github.com/aTrapDeer/portfolio-backend/internal/content"
)

const maxBodyBytes = 1 << 20

// ContentStore is the part of storage.Store the handlers use.
type ContentStore interface {
	CreateContactMessage(ctx context.Context, in content.NewContactMessage) (content.ContactMessage, error)
	GetContactMessages(ctx context.Context) ([]content.ContactMessage, error)
	GetProjects(ctx context.Context) ([]content.Project, error)
	GetFeaturedProjects(ctx context.Context) ([]content.Project, error)
	GetExperiences(ctx context.Context) ([]content.Experience, error)
	GetSkills(ctx context.Context) ([]content.Skill, error)
	GetSkillsByCategory(ctx context.Context, category string) ([]content.Skill, error)
}

// Handler serves the content endpoints. A nil cache disables caching.
type Handler struct {
	store ContentStore
	cache *cache.Cache
}

func NewHandler(store ContentStore, c *cache.Cache) *Handler {
	return &Handler{store: store, cache: c}
}

type contactResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Data    *content.ContactMessage `json:"data,omitempty"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (h *Handler) SubmitContactMessage(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		logger(r).Warn("contact form unreadable", "error", err)
		writeJSON(w, http.StatusBadRequest, contactResponse{Message: "Invalid form data"})
		return
	}

	in, err := content.ParseContactMessage(body)
	if err != nil {
		logger(r).Warn("contact form rejected", "error", err)
		writeJSON(w, http.StatusBadRequest, contactResponse{Message: "Invalid form data"})
		return
	}

	msg, err := h.store.CreateContactMessage(r.Context(), in)
	if err != nil {
		logger(r).Error("contact form error", "error", err)
		writeJSON(w, http.StatusInternalServerError, contactResponse{Message: "Failed to send message"})
		return
	}

	writeJSON(w, http.StatusOK, contactResponse{
		Success: true,
		Message: "Message sent successfully",
		Data:    &msg,
	})
}

// ListContactMessages is never cached so a submission shows up immediately.
func (h *Handler) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.store.GetContactMessages(r.Context())
	if err != nil {
		serverError(w, r, "get contact messages error", err, "Failed to retrieve messages")
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := cached(h, "projects", func() ([]content.Project, error) {
		return h.store.GetProjects(r.Context())
	})
	if err != nil {
		serverError(w, r, "get projects error", err, "Failed to retrieve projects")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *Handler) ListFeaturedProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := cached(h, "projects:featured", func() ([]content.Project, error) {
		return h.store.GetFeaturedProjects(r.Context())
	})
	if err != nil {
		serverError(w, r, "get featured projects error", err, "Failed to retrieve featured projects")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *Handler) ListExperiences(w http.ResponseWriter, r *http.Request) {
	experiences, err := cached(h, "experiences", func() ([]content.Experience, error) {
		return h.store.GetExperiences(r.Context())
	})
	if err != nil {
		serverError(w, r, "get experiences error", err, "Failed to retrieve experiences")
		return
	}
	writeJSON(w, http.StatusOK, experiences)
}

func (h *Handler) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := cached(h, "skills", func() ([]content.Skill, error) {
		return h.store.GetSkills(r.Context())
	})
	if err != nil {
		serverError(w, r, "get skills error", err, "Failed to retrieve skills")
		return
	}
	writeJSON(w, http.StatusOK, skills)
}

// ListSkillsByCategory answers an unknown category with an empty list. Only
// known categories are cached, which keeps the key space bounded.
func (h *Handler) ListSkillsByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	fetch := func() ([]content.Skill, error) {
		return h.store.GetSkillsByCategory(r.Context(), category)
	}

	var skills []content.Skill
	var err error
	if content.Category(category).Valid() {
		skills, err = cached(h, "skills:"+category, fetch)
	} else {
		skills, err = fetch()
	}
	if err != nil {
		serverError(w, r, "get skills by category error", err, "Failed to retrieve skills")
		return
	}
	writeJSON(w, http.StatusOK, skills)
}

func serverError(w http.ResponseWriter, r *http.Request, msg string, err error, public string) {
	logger(r).Error(msg, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Message: public})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}
