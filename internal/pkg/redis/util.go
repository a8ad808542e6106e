package redis

import (
	"StorySphere/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrLockTimeout = errors.New("lock acquisition timed out")

// SetWithExpiration 设置键值对并设置过期时间
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// Exists 判断键是否存在
func Exists(ctx context.Context, key string) (bool, error) {
	n, err := Rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// TryLock 以 SETNX 抢锁，retryTimes 为 -1 时一直重试直到 ctx 结束
func TryLock(ctx context.Context, key string, value interface{}, expiration time.Duration, retryTimes int) (bool, error) {
	for i := 0; i < retryTimes || retryTimes == -1; i++ {
		success, err := Rdb.SetNX(ctx, key, value, expiration).Result()
		if err != nil {
			return false, err
		}
		if success {
			return true, nil
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}
	return false, nil
}

// UnLock 仅当锁仍由 value 持有时释放
func UnLock(ctx context.Context, key string, value interface{}) {
	Rdb.Eval(ctx, "if redis.call('get', KEYS[1]) == ARGV[1] then return redis.call('del', KEYS[1]) else return 0 end", []string{key}, value)
}

// TokenBlacklist 登出令牌的吊销名单，以签名为 key，过期时间与令牌剩余有效期一致
type TokenBlacklist struct{}

func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{}
}

func (b *TokenBlacklist) Revoke(ctx context.Context, signature string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, 1, ttl)
}

func (b *TokenBlacklist) IsRevoked(ctx context.Context, signature string) (bool, error) {
	exists, err := Exists(ctx, consts.TokenBlacklistKey+signature)
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	return exists, err
}

// Locker 基于 Redis 的互斥锁
type Locker struct {
	TTL        time.Duration
	RetryTimes int
}

func NewLocker() *Locker {
	return &Locker{TTL: 10 * time.Second, RetryTimes: 100}
}

// Lock 抢占 key，返回的 unlock 需由调用方在临界区结束后调用
func (l *Locker) Lock(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	ok, err := TryLock(ctx, key, token, l.TTL, l.RetryTimes)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLockTimeout
	}
	return func() {
		UnLock(context.WithoutCancel(ctx), key, token)
	}, nil
}
