package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	DealsRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deals_requests_total",
			Help: "Deal listing resolutions by source (api or fallback)",
		},
		[]string{"source"},
	)
	UpstreamErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "deals_upstream_errors_total",
			Help: "Failed calls to the product search API",
		},
	)
	OutboundClicks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "outbound_clicks_total",
			Help: "Affiliate redirects served",
		},
	)
	ContactMessages = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_messages_total",
			Help: "Contact messages forwarded to the mail provider",
		},
	)
)

func Start(port string) {
	prometheus.MustRegister(DealsRequests, UpstreamErrors, OutboundClicks, ContactMessages)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
