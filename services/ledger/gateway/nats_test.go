package gateway

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/piresc/ledger/internal/pkg/constants"
	"github.com/piresc/ledger/internal/pkg/models"
	natspkg "github.com/piresc/ledger/internal/pkg/nats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNatsPort = 8369

var testNatsURL = "nats://127.0.0.1:8369"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = testNatsPort
	srv := natsserver.RunServer(&opts)
	code := m.Run()
	srv.Shutdown()
	os.Exit(code)
}

func TestNATSPublisher_PublishTransactionEvent(t *testing.T) {
	nc, err := natspkg.NewClient(testNatsURL, "ledger-gateway-test")
	require.NoError(t, err)
	defer nc.Close()

	msgCh := make(chan *nats.Msg, 1)
	sub, err := nc.Subscribe("ledger.transaction.>", func(msg *nats.Msg) { msgCh <- msg })
	require.NoError(t, err)
	defer sub.Unsubscribe()
	require.NoError(t, nc.Ping())

	view := depositView()
	gw := NewLedgerGW(nil, NewNATSPublisher(nc), nil)
	require.NoError(t, gw.PublishTransactionEvent(context.Background(), view))

	select {
	case msg := <-msgCh:
		assert.Equal(t, constants.SubjectTransactionSuccess, msg.Subject)
		var event models.TransactionEvent
		require.NoError(t, json.Unmarshal(msg.Data, &event))
		assert.Equal(t, constants.SubjectTransactionSuccess, event.Event)
		assert.Equal(t, view.ID, event.Transaction.ID)
		assert.False(t, event.OccurredAt.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("event not received")
	}
}

func TestSubjectFor(t *testing.T) {
	for status, want := range map[models.TransactionStatus]string{
		models.StatusPending:   constants.SubjectTransactionPending,
		models.StatusSuccess:   constants.SubjectTransactionSuccess,
		models.StatusCancelled: constants.SubjectTransactionCancelled,
		models.StatusFailed:    constants.SubjectTransactionFailed,
	} {
		got, err := subjectFor(status)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := subjectFor("UNKNOWN")
	assert.Error(t, err)
}
