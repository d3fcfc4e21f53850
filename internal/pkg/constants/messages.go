package constants

// Stable user-visible ledger messages
const (
	MsgReceiverDeactivated      = "Receiver has been deactivated"
	MsgInsufficientBalance      = "amount: Insufficient balance"
	MsgSenderInsufficient       = "Sender has Insufficient balance"
	MsgForbiddenOperation       = "Forbidden to process operation"
	MsgNoRights                 = "User has not correct rights"
	MsgSameParticipants         = "receiver_id: Sender and receiver must be different"
	MsgTransactionNotFound      = "Transaction not found"
	MsgAccountNotFound          = "Account #%s not found"
	MsgPageNotFound             = "Page not found"
	MsgWebhookFailed            = "Failed to send to Webhook"
	MsgAccountDeactivated       = "User has been deactivated"
	MsgInternalError            = "Internal server error"
	MsgValidationFailed         = "Validation failed"
	MsgAmountPositive           = "amount: The amount must be a positive value"
	MsgAmountPrecision          = "amount: The amount must have at most 2 decimal places"
	MsgAmountRequired           = "amount: The amount is required"
	MsgReceiverIDInvalid        = "receiver_id: The receiver id must be a valid UUID"
	MsgInvalidPayload           = "Invalid request payload"
	MsgInvalidTransactionID     = "The transfer with the requested id does not exist"
	MsgInvalidAccountID         = "The user with the requested id does not exist"
	ReasonAdminCanceled         = "Admin has canceled"
	ReasonSenderCanceled        = "Sender has canceled"
	ReasonParticipantDeactivate = "Sender or receiver has been deactivated"
)
