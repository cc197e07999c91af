package main

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iho/buckpal/internal/adapter/lock"
	"github.com/iho/buckpal/internal/infrastructure/config"
)

func TestNewAccountLock(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	tests := []struct {
		name    string
		kind    lock.Kind
		client  *goredis.Client
		wantErr bool
	}{
		{name: "memory", kind: lock.KindMemory},
		{name: "noop", kind: lock.KindNoOp},
		{name: "redis", kind: lock.KindRedis, client: client},
		{name: "redis without client", kind: lock.KindRedis, wantErr: true},
		{name: "unknown", kind: lock.Kind("zookeeper"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := newAccountLock(tt.kind, tt.client, time.Second, zerolog.Nop())
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			ctx := context.Background()
			if err := l.LockAccount(ctx, 1); err != nil {
				t.Fatalf("lock failed: %v", err)
			}
			l.ReleaseAccount(ctx, 1)
		})
	}
}

func TestRunRejectsUnknownLock(t *testing.T) {
	cfg := &config.Config{AccountLock: "etcd"}

	if err := run(context.Background(), cfg, zerolog.Nop()); err == nil {
		t.Fatalf("expected error for unknown account lock")
	}
}

func TestRunFailsWithoutDatabase(t *testing.T) {
	cfg := &config.Config{
		AccountLock:     "memory",
		DatabaseURL:     "postgres://invalid:5432/db?connect_timeout=1",
		DatabaseTimeout: 2 * time.Second,
	}

	if err := run(context.Background(), cfg, zerolog.Nop()); err == nil {
		t.Fatalf("expected error when postgres is unreachable")
	}
}
