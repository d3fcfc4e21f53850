package gateway

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/services/ledger"
)

// LedgerGW composes the webhook, NATS and Redis gateways. The NATS and
// Redis parts are optional and become no-ops when nil.
type LedgerGW struct {
	webhook  *WebhookNotifier
	events   *NATSPublisher
	sessions *SessionStore
}

func NewLedgerGW(webhook *WebhookNotifier, events *NATSPublisher, sessions *SessionStore) ledger.LedgerGW {
	return &LedgerGW{webhook: webhook, events: events, sessions: sessions}
}

func (g *LedgerGW) Notify(ctx context.Context, view *models.TransactionView) error {
	return g.webhook.Notify(ctx, view)
}

func (g *LedgerGW) PublishTransactionEvent(ctx context.Context, view *models.TransactionView) error {
	if g.events == nil {
		return nil
	}
	return g.events.PublishTransactionEvent(ctx, view)
}

func (g *LedgerGW) RevokeSessions(ctx context.Context, accountID uuid.UUID) error {
	if g.sessions == nil {
		return nil
	}
	return g.sessions.RevokeSessions(ctx, accountID)
}
