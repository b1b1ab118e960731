package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"pansiyon_cms/internal/adapters/observability"
	redisad "pansiyon_cms/internal/adapters/redis"
	"pansiyon_cms/internal/app"
	"pansiyon_cms/internal/domain"
	"pansiyon_cms/internal/shared"
	mysqlrepo "pansiyon_cms/internal/storage/mysql"
)

// The healer re-runs every stored document through the current normalizer
// so schema upgrades land in the database instead of on every read.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Int("workers", cfg.HealWorkers).
		Msg("healer starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	ed := app.NewEditorService(repo, cache)

	sem := semaphore.NewWeighted(int64(cfg.HealWorkers))
	var wg sync.WaitGroup

	for _, key := range domain.ContentKeys() {
		for _, locale := range domain.Locales() {
			key, locale := key, locale

			// acquire before launching the goroutine; release inside it
			if err := sem.Acquire(ctx, 1); err != nil {
				log.Fatal().Err(err).Msg("semaphore acquire failed")
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release(1)

				changed, err := ed.RenormalizeContent(ctx, key, locale)
				if err != nil {
					log.Warn().Str("key", key).Str("locale", string(locale)).Err(err).Msg("heal failed")
					return
				}
				if changed {
					log.Info().Str("key", key).Str("locale", string(locale)).Msg("document rewritten")
				}
			}()
		}
	}

	hotels, err := repo.ListHotels(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("list hotels failed")
	}
	for _, h := range hotels {
		slug := h.Slug

		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			changed, err := ed.RenormalizeHotel(ctx, slug)
			if err != nil {
				log.Warn().Str("slug", slug).Err(err).Msg("hotel heal failed")
				return
			}
			if changed {
				log.Info().Str("slug", slug).Msg("hotel rewritten")
			}
		}()
	}

	wg.Wait()
	log.Info().Msg("heal completed")
}
