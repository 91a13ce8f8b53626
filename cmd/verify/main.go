package main

import (
	"flag"
	"sync"
	"time"

	"dealpulse/internal/config"
	"dealpulse/internal/deals"
	"dealpulse/internal/model"
	"dealpulse/internal/verify"
	logx "dealpulse/pkg/logger"
)

// go run cmd/verify/main.go            # format check only
// go run cmd/verify/main.go -probe     # also hit the public product pages
func main() {
	probe := flag.Bool("probe", false, "fetch each product page to confirm the ASIN is still live")
	workers := flag.Int("workers", 4, "concurrent page checks")
	flag.Parse()

	cfg := config.Load()
	logx.Init(cfg.Env == "production")

	catalog := deals.CatalogDeals(model.CategoryAll, deals.CatalogSize(), cfg.AffiliateTag)
	logx.Info().Int("entries", len(catalog)).Bool("probe", *probe).Msg("verifying curated catalog")

	jobs := make(chan model.DealRecord, len(catalog))
	results := make(chan verify.Result, len(catalog))
	var wg sync.WaitGroup

	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for d := range jobs {
				// Pequeno delay para não sobrecarregar a página pública
				if *probe {
					time.Sleep(200 * time.Millisecond)
				}
				results <- verify.Check(d.ASIN, *probe)
			}
		}()
	}

	for _, d := range catalog {
		jobs <- d
	}
	close(jobs)

	wg.Wait()
	close(results)

	failed := 0
	for res := range results {
		if res.OK {
			logx.Debug().Str("asin", res.ASIN).Str("title", res.Title).Msg("ok")
			continue
		}
		failed++
		logx.Warn().Str("asin", res.ASIN).Str("reason", res.Err).Msg("catalog entry failed verification")
	}

	logx.Info().Int("checked", len(catalog)).Int("failed", failed).Msg("catalog verification finished")
}
