package deals

import (
	"context"

	"dealpulse/internal/model"
	"dealpulse/internal/observability"
	logx "dealpulse/pkg/logger"
)

// Source labels where a resolution came from.
const (
	SourceAPI      = "api"
	SourceFallback = "fallback"
)

// Resolver resolves deal listings from the live search API with a curated
// fallback. It never returns an error: an upstream failure or an empty
// post-gate result selects the fallback, and the only caller-visible
// failure mode is an empty list for a category outside the fixed set.
type Resolver struct {
	client *SearchClient // nil when no API key is configured
	cache  *Cache        // nil disables caching
	tag    string
}

type ResolverOptions struct {
	APIKey       string
	APIHost      string
	BaseURL      string // test override for the search endpoint
	AffiliateTag string
	Cache        *Cache
}

func NewResolver(opts ResolverOptions) *Resolver {
	r := &Resolver{
		tag:   opts.AffiliateTag,
		cache: opts.Cache,
	}
	if r.tag == "" {
		r.tag = "dealpulse0a-20"
	}
	if opts.APIKey != "" {
		r.client = &SearchClient{
			APIKey:  opts.APIKey,
			Host:    opts.APIHost,
			BaseURL: opts.BaseURL,
		}
	}
	return r
}

// Resolve returns at most limit deals for the category. The primary fetch
// is an explicit error-valued step; the fallback decision is a visible
// branch on that error (or on an empty gated result), never an exception
// path. Cached entries only ever hold api-sourced results.
func (r *Resolver) Resolve(ctx context.Context, category model.Category, limit int) ([]model.DealRecord, string) {
	if limit < 1 {
		limit = 1
	}

	if r.cache != nil {
		if cached, ok := r.cache.Get(ctx, category, limit); ok {
			return cached, SourceAPI
		}
	}

	if r.client != nil {
		listed, err := r.fetchPrimary(ctx, category, limit)
		switch {
		case err != nil:
			observability.UpstreamErrors.Inc()
			logx.Warn().Err(err).Str("category", string(category)).Msg("search API unavailable, serving curated catalog")
		case len(listed) > 0:
			if r.cache != nil {
				r.cache.Set(ctx, category, limit, listed)
			}
			observability.DealsRequests.WithLabelValues(SourceAPI).Inc()
			return listed, SourceAPI
		}
	}

	observability.DealsRequests.WithLabelValues(SourceFallback).Inc()
	return CatalogDeals(category, limit, r.tag), SourceFallback
}

func searchTerm(category model.Category) string {
	if category == model.CategoryAll {
		return "best amazon deals"
	}
	return string(category)
}

func (r *Resolver) fetchPrimary(ctx context.Context, category model.Category, limit int) ([]model.DealRecord, error) {
	products, err := r.client.Search(ctx, searchTerm(category))
	if err != nil {
		return nil, err
	}

	out := make([]model.DealRecord, 0, limit)
	for _, p := range products {
		rec := normalizeProduct(p, category, r.tag)
		if !passesQualityGate(rec) {
			continue
		}
		out = append(out, rec)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
