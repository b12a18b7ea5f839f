package app

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"mockapi/internal/config"
	"mockapi/internal/redis"
	"mockapi/internal/repository"
	"mockapi/internal/repository/memory"
	"mockapi/internal/repository/postgres"
)

// ErrUnknownStore is returned for an unrecognized PAYMENT_STORE value.
var ErrUnknownStore = errors.New("unknown payment store")

// NewPaymentRepository builds the payment store named by kind. The redis and
// postgres stores need a live client.
func NewPaymentRepository(kind string, db *sql.DB, redisClient *goredis.Client, ttl time.Duration) (repository.PaymentRepository, error) {
	switch kind {
	case config.StoreMemory, "":
		return memory.NewPaymentRepository(), nil
	case config.StoreRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("payment store %q: redis is not enabled", kind)
		}
		return redis.NewPaymentStore(redisClient, ttl), nil
	case config.StorePostgres:
		if db == nil {
			return nil, fmt.Errorf("payment store %q: database is not connected", kind)
		}
		return postgres.NewPaymentRepository(db), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, kind)
	}
}
