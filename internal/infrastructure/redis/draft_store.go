// Package redis guarda rascunhos de formulários no Redis com expiração.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/FinancePro-api/internal/application/draft"
	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/pkg/config"
)

var _ draft.Store = (*DraftStore)(nil)

// DefaultDraftTTL validade de um rascunho quando a configuração não indica outra.
const DefaultDraftTTL = 72 * time.Hour

// NewClient cria o cliente a partir da configuração.
func NewClient(cfg config.RedisConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// DraftStore implementação de draft.Store; cada gravação renova a expiração.
type DraftStore struct {
	rdb goredis.Cmdable
	ttl time.Duration
}

// NewDraftStore constrói o store. ttl <= 0 usa DefaultDraftTTL.
func NewDraftStore(rdb goredis.Cmdable, ttl time.Duration) *DraftStore {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &DraftStore{rdb: rdb, ttl: ttl}
}

// Save grava o estado com expiração.
func (s *DraftStore) Save(ctx context.Context, key string, state []byte) error {
	if err := s.rdb.Set(ctx, key, state, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Load devolve o estado; domain.ErrNotFound quando não existe ou expirou.
func (s *DraftStore) Load(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, fmt.Errorf("%w: rascunho", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("load draft: %w", err)
	}
	return b, nil
}

// Delete apaga o rascunho; apagar um inexistente não é erro.
func (s *DraftStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}
