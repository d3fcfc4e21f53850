package constants

// Redis key formats
const (
	KeyRefreshToken = "user-%s" // Format: user-{account_id}
)
