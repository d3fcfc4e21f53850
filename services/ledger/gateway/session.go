package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/ledger/internal/pkg/constants"
	"github.com/piresc/ledger/internal/pkg/database"
)

// SessionStore removes refresh sessions kept by the identity service in Redis
type SessionStore struct {
	redis *database.RedisClient
}

func NewSessionStore(redis *database.RedisClient) *SessionStore {
	return &SessionStore{redis: redis}
}

func (s *SessionStore) RevokeSessions(ctx context.Context, accountID uuid.UUID) error {
	if _, err := s.redis.Delete(ctx, fmt.Sprintf(constants.KeyRefreshToken, accountID)); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}
	return nil
}
