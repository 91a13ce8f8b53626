package outlink

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"dealpulse/internal/api"
	"dealpulse/internal/model"
	"dealpulse/internal/observability"
	"dealpulse/internal/repository"
	logx "dealpulse/pkg/logger"
)

// ProductURL builds the tagged Amazon product link for an ASIN.
func ProductURL(asin, tag string) string {
	return "https://www.amazon.com/dp/" + asin + "?tag=" + url.QueryEscape(tag)
}

// Handler serves GET /out/amazon/{asin}: a 302 to the tagged product page.
// Clicks are recorded off the request path; a recording failure never
// blocks or fails the redirect. A nil repository disables recording.
func Handler(tag string, clicks *repository.ClickRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asin := strings.ToUpper(r.PathValue("asin"))
		if !model.ValidASIN(asin) {
			api.WriteError(w, http.StatusNotFound, "unknown product")
			return
		}

		if clicks != nil {
			click := repository.Click{
				ID:        uuid.NewString(),
				ASIN:      asin,
				Tag:       tag,
				Referrer:  r.Referer(),
				UserAgent: r.UserAgent(),
				ClickedAt: time.Now().UTC(),
			}
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := clicks.Record(ctx, click); err != nil {
					logx.Warn().Err(err).Str("asin", asin).Msg("click not recorded")
				}
			}()
		}
		observability.OutboundClicks.Inc()

		http.Redirect(w, r, ProductURL(asin, tag), http.StatusFound)
	}
}
