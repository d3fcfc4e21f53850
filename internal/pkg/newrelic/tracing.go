package newrelic

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromContext extracts the New Relic transaction started by the echo middleware
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// WithSegment runs fn inside a named segment of the request's transaction, if any
func WithSegment(ctx context.Context, name string, fn func() error) error {
	if txn := FromContext(ctx); txn != nil {
		defer txn.StartSegment(name).End()
	}
	return fn()
}

// NoticeError reports err on the request's transaction, if any
func NoticeError(ctx context.Context, err error) {
	if txn := FromContext(ctx); txn != nil && err != nil {
		txn.NoticeError(err)
	}
}
