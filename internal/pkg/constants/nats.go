package constants

// NATS subjects, one per resulting transaction status
const (
	SubjectTransactionPending   = "ledger.transaction.pending"
	SubjectTransactionSuccess   = "ledger.transaction.success"
	SubjectTransactionCancelled = "ledger.transaction.cancelled"
	SubjectTransactionFailed    = "ledger.transaction.failed"
)
