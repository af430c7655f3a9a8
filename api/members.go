package api

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/discotech/discotech/serverset"
)

type memberInfo struct {
	ID                  string                        `json:"id"`
	Host                string                        `json:"host"`
	Port                uint16                        `json:"port"`
	Status              string                        `json:"status"`
	AdditionalEndpoints map[string]serverset.Endpoint `json:"additionalEndpoints,omitempty"`
}

type membersAPI struct {
	registry Registry
}

func newMembersAPI(registry Registry) *membersAPI {
	return &membersAPI{
		registry: registry,
	}
}

func (api *membersAPI) Bind(r chi.Router) {
	r.Get("/serverset/members", api.handleGet)
}

func (api *membersAPI) handleGet(w http.ResponseWriter, r *http.Request) {
	snapshot := api.registry.Snapshot()
	resp := make([]memberInfo, 0, len(snapshot))

	for id, m := range snapshot {
		resp = append(resp, memberInfo{
			ID:                  id,
			Host:                m.ServiceEndpoint.Host,
			Port:                m.ServiceEndpoint.Port,
			Status:              string(m.Status),
			AdditionalEndpoints: m.AdditionalEndpoints,
		})
	}

	sort.Slice(resp, func(i, j int) bool {
		return resp[i].ID < resp[j].ID
	})

	render.JSON(w, r, resp)
}
