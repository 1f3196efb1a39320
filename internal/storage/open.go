package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"btd_party/internal/app"
	"btd_party/internal/config"
	"btd_party/internal/sheets"
)

// Open builds the roster store selected by cfg.Store. The returned close
// function releases any connection the store holds.
func Open(ctx context.Context, cfg *app.Config) (RosterStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store {
	case app.StoreFile:
		log.Debug().Str("path", cfg.RosterFile).Msg("Using file roster store")
		return NewFileStore(cfg.RosterFile), noop, nil

	case app.StoreRedis:
		redisStore, err := NewRedisStore(ctx, cfg.RedisURL, cfg.RedisKey)
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Str("key", cfg.RedisKey).Msg("Using redis roster store")
		store := NewRetryingStore(redisStore, app.StoreRedis, config.DefaultResilienceConfig)
		return store, store.Close, nil

	case app.StoreSheets:
		client, err := sheets.NewClient(ctx, cfg.CredentialsFile)
		if err != nil {
			return nil, nil, err
		}
		sheetsStore, err := NewSheetsStore(client, cfg.SpreadsheetID, cfg.RosterRange)
		if err != nil {
			return nil, nil, err
		}
		log.Debug().
			Str("spreadsheet_id", cfg.SpreadsheetID).
			Str("range", cfg.RosterRange).
			Msg("Using sheets roster store")
		return NewRetryingStore(sheetsStore, app.StoreSheets, config.DefaultResilienceConfig), noop, nil
	}

	return nil, nil, fmt.Errorf("unknown roster store %q", cfg.Store)
}
