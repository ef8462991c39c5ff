package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"
)

// consumeScript deletes the pending code only when it matches the submitted
// one. Read-compare-delete must be a single atomic step so that a concurrent
// consume or expiry can never validate the same code twice.
var consumeScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// VerificationRepositoryImpl implements domain.VerificationRepository using
// Redis. The store holds at most one pending code per phone; the TTL plays
// the role of the deferred deletion of stale codes.
type VerificationRepositoryImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewVerificationRepository creates a new verification code repository
func NewVerificationRepository(client *redis.Client, ttl time.Duration) domain.VerificationRepository {
	return &VerificationRepositoryImpl{
		client: client,
		prefix: "smscode:",
		ttl:    ttl,
	}
}

// Insert implements domain.VerificationRepository. A re-request before expiry
// overwrites the pending code and restarts its window.
func (r *VerificationRepositoryImpl) Insert(ctx context.Context, phone, code string) error {
	return r.client.Set(ctx, r.prefix+phone, code, r.ttl).Err()
}

// Consume implements domain.VerificationRepository. A miss does not reveal
// whether the code was wrong, expired, or already consumed.
func (r *VerificationRepositoryImpl) Consume(ctx context.Context, phone, code string) (bool, error) {
	deleted, err := consumeScript.Run(ctx, r.client, []string{r.prefix + phone}, code).Int()
	if err != nil {
		return false, err
	}
	return deleted == 1, nil
}
