package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/discotech/discotech/serverset"
)

// Registry is the read-only membership view the API serves.
type Registry interface {
	Snapshot() map[string]serverset.Member
}

func CreateRouter(registry Registry) *chi.Mux {
	r := chi.NewRouter()

	newMembersAPI(registry).Bind(r)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}
