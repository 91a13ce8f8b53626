package imgproxy

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"dealpulse/internal/api"
)

// allowedHosts limits the proxy to Amazon's image CDNs.
var allowedHosts = map[string]bool{
	"m.media-amazon.com":              true,
	"images-na.ssl-images-amazon.com": true,
	"images-amazon.com":               true,
	"images-eu.ssl-images-amazon.com": true,
}

const maxImageBytes = 5 << 20

var httpClient = &http.Client{
	Timeout: 15 * time.Second,
}

// Handler serves GET /img?url=, fetching the image and relaying it so the
// storefront can render product photos same-origin.
func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("url")
		if raw == "" {
			api.WriteError(w, http.StatusBadRequest, "missing url parameter")
			return
		}

		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || !allowedHosts[u.Hostname()] {
			api.WriteError(w, http.StatusBadRequest, "host not allowed")
			return
		}

		resp, err := httpClient.Get(u.String())
		if err != nil {
			api.WriteError(w, http.StatusBadGateway, "image fetch failed")
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			api.WriteError(w, http.StatusBadGateway, "image fetch failed")
			return
		}

		if ct := resp.Header.Get("Content-Type"); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		w.Header().Set("Cache-Control", "public, max-age=86400")
		io.Copy(w, io.LimitReader(resp.Body, maxImageBytes))
	}
}
