package lock

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisClient(t *testing.T) (*redislib.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

func newTestRedisLock(t *testing.T, ttl time.Duration) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	client, mr := newTestRedisClient(t)

	l := NewRedis(client, ttl, zerolog.Nop())
	l.initialInterval = time.Millisecond
	l.maxInterval = 5 * time.Millisecond

	return l, mr
}

func TestRedisLockSetsKeyWithTTL(t *testing.T) {
	l, mr := newTestRedisLock(t, 30*time.Second)
	l.newToken = func() string { return "token-1" }
	ctx := context.Background()

	require.NoError(t, l.LockAccount(ctx, 41))

	got, err := mr.Get("account-lock:41")
	require.NoError(t, err)
	assert.Equal(t, "token-1", got)
	assert.Equal(t, 30*time.Second, mr.TTL("account-lock:41"))

	l.ReleaseAccount(ctx, 41)
	assert.False(t, mr.Exists("account-lock:41"))
}

func TestRedisLockWaitsForRelease(t *testing.T) {
	l, _ := newTestRedisLock(t, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, l.LockAccount(ctx, 1))

	acquired := make(chan error, 1)
	go func() {
		acquired <- l.LockAccount(ctx, 1)
	}()

	select {
	case err := <-acquired:
		t.Fatalf("second lock returned while first is held: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	l.ReleaseAccount(ctx, 1)

	select {
	case err := <-acquired:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("second lock not acquired after release")
	}

	l.ReleaseAccount(ctx, 1)
}

func TestRedisLockHonoursContext(t *testing.T) {
	l, mr := newTestRedisLock(t, 30*time.Second)
	require.NoError(t, mr.Set("account-lock:5", "another-process"))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := l.LockAccount(ctx, 5)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRedisLockGivesUpAfterMaxWait(t *testing.T) {
	l, mr := newTestRedisLock(t, 30*time.Second)
	l.maxWait = 20 * time.Millisecond
	require.NoError(t, mr.Set("account-lock:5", "another-process"))

	err := l.LockAccount(context.Background(), 5)
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestRedisReleaseKeepsForeignLock(t *testing.T) {
	l, mr := newTestRedisLock(t, time.Second)
	ctx := context.Background()

	require.NoError(t, l.LockAccount(ctx, 9))

	// Our lock expired and another process took the account.
	mr.FastForward(2 * time.Second)
	require.False(t, mr.Exists("account-lock:9"))
	require.NoError(t, mr.Set("account-lock:9", "another-process"))

	l.ReleaseAccount(ctx, 9)

	got, err := mr.Get("account-lock:9")
	require.NoError(t, err)
	assert.Equal(t, "another-process", got)
}

func TestRedisLockRedisDown(t *testing.T) {
	l, mr := newTestRedisLock(t, time.Second)
	mr.Close()

	err := l.LockAccount(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAccountLocked)

	l.ReleaseAccount(context.Background(), 1)
}

func TestRedisTokensAreUnique(t *testing.T) {
	assert.NotEqual(t, newULIDToken(), newULIDToken())
}

func TestRedisExpiredHolderCannotReleaseNextLocalHolder(t *testing.T) {
	l, mr := newTestRedisLock(t, time.Second)
	ctx := context.Background()

	tokens := []string{"token-a", "token-b"}
	l.newToken = func() string {
		token := tokens[0]
		tokens = tokens[1:]
		return token
	}

	require.NoError(t, l.LockAccount(ctx, 41))

	// The first holder's key expires while it is still working.
	mr.FastForward(2 * time.Second)
	require.False(t, mr.Exists("account-lock:41"))

	acquired := make(chan error, 1)
	go func() {
		acquired <- l.LockAccount(ctx, 41)
	}()

	select {
	case err := <-acquired:
		t.Fatalf("second local holder acquired while the first has not released: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	l.ReleaseAccount(ctx, 41)

	select {
	case err := <-acquired:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("second holder not admitted after release")
	}

	got, err := mr.Get("account-lock:41")
	require.NoError(t, err)
	assert.Equal(t, "token-b", got)

	l.ReleaseAccount(ctx, 41)
	assert.False(t, mr.Exists("account-lock:41"))
}

func TestRedisLockFailureFreesLocalSlot(t *testing.T) {
	l, mr := newTestRedisLock(t, 30*time.Second)
	l.maxWait = 20 * time.Millisecond
	require.NoError(t, mr.Set("account-lock:6", "another-process"))

	err := l.LockAccount(context.Background(), 6)
	require.ErrorIs(t, err, ErrAccountLocked)

	mr.Del("account-lock:6")

	require.NoError(t, l.LockAccount(context.Background(), 6))
	l.ReleaseAccount(context.Background(), 6)
	assert.False(t, mr.Exists("account-lock:6"))
}
