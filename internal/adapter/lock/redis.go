package lock

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iho/buckpal/internal/domain"
)

// releaseScript deletes the key only if it still holds our token, so a lock that
// expired and was taken by someone else is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a distributed AccountLock. Each lock is a key holding a random
// owner token with a TTL, so a crashed holder cannot block an account forever.
// Holders within one process are serialized locally before they compete for
// the key, so at most one local token per account exists at any time.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger zerolog.Logger

	initialInterval time.Duration
	maxInterval     time.Duration
	maxWait         time.Duration
	newToken        func() string

	local  *InProcess
	mu     sync.Mutex
	tokens map[domain.AccountID]string
}

// NewRedis creates a Redis lock whose keys expire after ttl. Acquisition gives
// up after waiting ttl as well.
func NewRedis(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *Redis {
	logger = logger.With().Str("component", "account_lock").Str("kind", string(KindRedis)).Logger()

	return &Redis{
		client:          client,
		prefix:          "account-lock:",
		ttl:             ttl,
		logger:          logger,
		initialInterval: 10 * time.Millisecond,
		maxInterval:     250 * time.Millisecond,
		maxWait:         ttl,
		newToken:        newULIDToken,
		local:           newInProcess(ttl, logger),
		tokens:          make(map[domain.AccountID]string),
	}
}

func newULIDToken() string {
	return ulid.Make().String()
}

// LockAccount takes the local lock for the account, then polls SET NX with
// exponential backoff until the key is ours.
func (r *Redis) LockAccount(ctx context.Context, accountID domain.AccountID) error {
	if err := r.local.LockAccount(ctx, accountID); err != nil {
		return err
	}

	key := r.key(accountID)
	token := r.newToken()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.MaxElapsedTime = r.maxWait

	err := backoff.Retry(func() error {
		acquired, err := r.client.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil {
			return backoff.Permanent(err)
		}
		if !acquired {
			return ErrAccountLocked
		}
		return nil
	}, backoff.WithContext(b, ctx))
	if err != nil {
		r.local.ReleaseAccount(context.WithoutCancel(ctx), accountID)
		return fmt.Errorf("lock account %d: %w", accountID, err)
	}

	r.mu.Lock()
	r.tokens[accountID] = token
	r.mu.Unlock()

	r.logger.Debug().Int64("account_id", int64(accountID)).Str("token", token).Msg("account locked")

	return nil
}

// ReleaseAccount deletes the lock key if it still holds this holder's token and
// then lets the next local holder in.
func (r *Redis) ReleaseAccount(ctx context.Context, accountID domain.AccountID) {
	r.mu.Lock()
	token, ok := r.tokens[accountID]
	delete(r.tokens, accountID)
	r.mu.Unlock()

	if !ok {
		r.logger.Warn().Int64("account_id", int64(accountID)).Msg("release of an account that is not locked")
		return
	}

	defer r.local.ReleaseAccount(ctx, accountID)

	deleted, err := releaseScript.Run(ctx, r.client, []string{r.key(accountID)}, token).Int()
	if err != nil {
		r.logger.Error().Err(err).Int64("account_id", int64(accountID)).Msg("failed to release account lock")
		return
	}

	if deleted == 0 {
		r.logger.Warn().Int64("account_id", int64(accountID)).Msg("account lock expired before release")
	}
}

func (r *Redis) key(accountID domain.AccountID) string {
	return r.prefix + strconv.FormatInt(int64(accountID), 10)
}
