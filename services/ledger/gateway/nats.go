package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/ledger/internal/pkg/constants"
	"github.com/piresc/ledger/internal/pkg/models"
	natspkg "github.com/piresc/ledger/internal/pkg/nats"
)

// NATSPublisher announces committed transaction changes
type NATSPublisher struct {
	client *natspkg.Client
}

func NewNATSPublisher(client *natspkg.Client) *NATSPublisher {
	return &NATSPublisher{client: client}
}

func (p *NATSPublisher) PublishTransactionEvent(ctx context.Context, view *models.TransactionView) error {
	subject, err := subjectFor(view.Status)
	if err != nil {
		return err
	}
	return p.client.PublishJSON(subject, &models.TransactionEvent{
		Event:       subject,
		Transaction: view,
		OccurredAt:  time.Now().UTC(),
	})
}

func subjectFor(status models.TransactionStatus) (string, error) {
	switch status {
	case models.StatusPending:
		return constants.SubjectTransactionPending, nil
	case models.StatusSuccess:
		return constants.SubjectTransactionSuccess, nil
	case models.StatusCancelled:
		return constants.SubjectTransactionCancelled, nil
	case models.StatusFailed:
		return constants.SubjectTransactionFailed, nil
	}
	return "", fmt.Errorf("no subject for status %q", status)
}
