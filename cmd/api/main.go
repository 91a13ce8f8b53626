package main

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"

	"dealpulse/internal/api"
	"dealpulse/internal/config"
	"dealpulse/internal/contact"
	"dealpulse/internal/db"
	"dealpulse/internal/deals"
	"dealpulse/internal/imgproxy"
	"dealpulse/internal/observability"
	"dealpulse/internal/outlink"
	"dealpulse/internal/repository"
	logx "dealpulse/pkg/logger"
)

func main() {
	cfg := config.Load()
	logx.Init(cfg.Env == "production")

	var cache *deals.Cache
	if cfg.RedisURL != "" {
		cache = &deals.Cache{
			Client: redis.NewClient(&redis.Options{Addr: cfg.RedisURL}),
			Tag:    cfg.AffiliateTag,
		}
	}

	resolver := deals.NewResolver(deals.ResolverOptions{
		APIKey:       cfg.SearchAPIKey,
		APIHost:      cfg.SearchAPIHost,
		AffiliateTag: cfg.AffiliateTag,
		Cache:        cache,
	})
	if cfg.SearchAPIKey == "" {
		logx.Info().Msg("no search API key configured, serving curated catalog only")
	}

	var clicks *repository.ClickRepository
	var subscribers *repository.SubscriberRepository
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logx.Fatal().Err(err).Msg("postgres pool")
		}
		defer pool.Close()
		clicks = &repository.ClickRepository{DB: pool}

		sqlDB, err := db.New(cfg.DatabaseURL)
		if err != nil {
			logx.Fatal().Err(err).Msg("postgres")
		}
		subscribers = &repository.SubscriberRepository{DB: sqlDB}
	}

	var mailer *contact.Mailer
	if cfg.ResendKey != "" {
		mailer = &contact.Mailer{
			APIKey: cfg.ResendKey,
			From:   "DealPulse <noreply@dealpulse.example>",
			To:     cfg.ContactTo,
		}
	}

	observability.Start(cfg.MetricsPort)

	mux := http.NewServeMux()
	mux.Handle("GET /deals", deals.Handler(resolver))
	mux.Handle("GET /out/amazon/{asin}", outlink.Handler(cfg.AffiliateTag, clicks))
	mux.Handle("GET /img", imgproxy.Handler())
	mux.Handle("POST /contact", contact.Handler(mailer))
	mux.Handle("POST /subscribe", contact.SubscribeHandler(subscribers))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		api.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	logx.Info().Str("port", cfg.Port).Msg("dealpulse api listening")
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		logx.Fatal().Err(err).Msg("server stopped")
	}
}
