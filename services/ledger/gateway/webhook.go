package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	httppkg "github.com/piresc/ledger/internal/pkg/http"
	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/models"
)

const webhookUserAgent = "ledger-webhook/1.0"

// WebhookNotifier posts transaction views to the configured endpoint
type WebhookNotifier struct {
	client *httppkg.EnhancedClient
	url    string
}

func NewWebhookNotifier(client *httppkg.EnhancedClient, url string) *WebhookNotifier {
	return &WebhookNotifier{client: client, url: url}
}

// Notify succeeds only on a 2xx answer
func (w *WebhookNotifier) Notify(ctx context.Context, view *models.TransactionView) error {
	if w.url == "" {
		return errors.New("webhook url is not configured")
	}

	resp, err := w.client.PostJSON(ctx, w.url, view, map[string]string{
		"User-Agent":       webhookUserAgent,
		"X-Transaction-ID": view.ID.String(),
	})
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	logger.Debug("Webhook delivered",
		logger.String("transaction_id", view.ID.String()),
		logger.String("status", string(view.Status)),
		logger.Int("http_status", resp.StatusCode))
	return nil
}
