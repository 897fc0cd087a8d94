package redis

import (
	"context"
	"fmt"

	"insurance-gateway/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ClientName tags gateway connections in CLIENT LIST.
const ClientName = "insurance-gateway"

// NewClient connects the Redis shared by the request-path stores.
// It fails fast when the server does not answer PING.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:       cfg.Addr(),
		Password:   cfg.Password,
		DB:         cfg.DB,
		ClientName: ClientName,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Str("client_name", ClientName).
		Msg("Redis connection established")

	return client, nil
}
