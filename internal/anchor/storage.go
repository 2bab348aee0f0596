package anchor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

// Storage anchors the client-side type graphs of the storage stack: a
// redis client pinged against a non-routable loopback port, a postgres
// connection config that is parsed but never dialed, and one minted
// uuid.
type Storage struct {
	// RedisAddr defaults to a port nothing listens on; tests point it at
	// a live in-process server instead.
	RedisAddr string
}

// NewStorage returns the anchor with its default non-routable target.
func NewStorage() *Storage {
	return &Storage{RedisAddr: "127.0.0.1:1"}
}

func (s *Storage) Name() string { return "storage" }

func (s *Storage) Exercise(ctx context.Context) Result {
	res := Result{Name: s.Name()}

	call(&res, func() error {
		client := redis.NewClient(&redis.Options{
			Addr:        s.RedisAddr,
			DialTimeout: 500 * time.Millisecond,
			ReadTimeout: 500 * time.Millisecond,
			PoolSize:    1,
		})
		defer client.Close()
		pctx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		return client.Ping(pctx).Err()
	})

	call(&res, func() error {
		cfg, err := pgx.ParseConfig("postgres://ballast@127.0.0.1:1/ballast?connect_timeout=1")
		if err != nil {
			return err
		}
		keep(cfg.Host)
		keep(cfg.Database)
		return nil
	})

	call(&res, func() error {
		keep(uuid.New().String())
		return nil
	})

	return res
}
