package deals

import (
	"net/http"
	"strconv"

	"dealpulse/internal/api"
	"dealpulse/internal/model"
)

const (
	defaultLimit = 12
	maxLimit     = 50
)

type listResponse struct {
	Success bool               `json:"success"`
	Count   int                `json:"count"`
	Source  string             `json:"source"`
	Deals   []model.DealRecord `json:"deals"`
}

// Handler serves GET /deals?category=&limit=. The resolver never errors,
// so this always answers 200 with a (possibly empty) list.
func Handler(resolver *Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := model.Category(r.URL.Query().Get("category"))
		if category == "" {
			category = model.CategoryAll
		}

		limit := defaultLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				limit = n
			}
		}
		if limit < 1 {
			limit = 1
		}
		if limit > maxLimit {
			limit = maxLimit
		}

		listed, source := resolver.Resolve(r.Context(), category, limit)
		if listed == nil {
			listed = []model.DealRecord{}
		}

		api.WriteJSON(w, http.StatusOK, listResponse{
			Success: true,
			Count:   len(listed),
			Source:  source,
			Deals:   listed,
		})
	}
}
