package api

import "net/http"

// NewRouter registers the content endpoints and the health check.
func NewRouter(h *Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /api/contact", h.SubmitContactMessage)
	mux.HandleFunc("GET /api/contact", h.ListContactMessages)

	mux.HandleFunc("GET /api/projects", h.ListProjects)
	mux.HandleFunc("GET /api/projects/featured", h.ListFeaturedProjects)
	mux.HandleFunc("GET /api/experiences", h.ListExperiences)
	mux.HandleFunc("GET /api/skills", h.ListSkills)
	mux.HandleFunc("GET /api/skills/{category}", h.ListSkillsByCategory)

	return WithLogging(mux)
}
