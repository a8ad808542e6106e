package testutil

import (
	"StorySphere/internal/pkg/mongo"
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoDB "go.mongodb.org/mongo-driver/mongo"
)

// NotificationRepo 内存版通知存储
type NotificationRepo struct {
	mu    sync.Mutex
	items []*mongo.Notification
	// FailCreate 非空时 Create 返回该错误
	FailCreate error
}

func NewNotificationRepo() *NotificationRepo {
	return &NotificationRepo{}
}

func (r *NotificationRepo) Create(_ context.Context, n *mongo.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailCreate != nil {
		return r.FailCreate
	}
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	cp := *n
	r.items = append(r.items, &cp)
	return nil
}

func (r *NotificationRepo) ListByUser(_ context.Context, userID uint64) ([]*mongo.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]*mongo.Notification, 0)
	for _, n := range r.items {
		if n.UserID == userID {
			cp := *n
			res = append(res, &cp)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].ID.Hex() > res[j].ID.Hex()
		}
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

func (r *NotificationRepo) GetByID(_ context.Context, id primitive.ObjectID) (*mongo.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.items {
		if n.ID == id {
			cp := *n
			return &cp, nil
		}
	}
	return nil, mongoDB.ErrNoDocuments
}

func (r *NotificationRepo) MarkAsRead(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.items {
		if n.ID == id {
			n.IsRead = true
			return nil
		}
	}
	return mongoDB.ErrNoDocuments
}

// All 返回全部通知的副本，按写入顺序
func (r *NotificationRepo) All() []mongo.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]mongo.Notification, 0, len(r.items))
	for _, n := range r.items {
		res = append(res, *n)
	}
	return res
}

// ObjectStore 记录上传内容，返回固定前缀的 URL
type ObjectStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
}

func NewObjectStore() *ObjectStore {
	return &ObjectStore{Objects: make(map[string][]byte)}
}

func (s *ObjectStore) Put(_ context.Context, prefix, ext string, reader io.Reader, _ int64, _ string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	name := prefix + primitive.NewObjectID().Hex() + ext
	s.Objects[name] = data
	return "http://objects.test/" + name, nil
}

// TokenBlacklist 内存版吊销名单
type TokenBlacklist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{revoked: make(map[string]time.Time)}
}

func (b *TokenBlacklist) Revoke(_ context.Context, signature string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[signature] = time.Now().Add(ttl)
	return nil
}

func (b *TokenBlacklist) IsRevoked(_ context.Context, signature string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	exp, ok := b.revoked[signature]
	return ok && time.Now().Before(exp), nil
}
