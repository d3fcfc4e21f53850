package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field keeps callers from importing zap directly
type Field = zap.Field

func String(key, val string) Field {
	return zap.String(key, val)
}

func Err(err error) Field {
	return zap.Error(err)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// Stringer logs values such as uuid.UUID and decimal.Decimal by their String form
func Stringer(key string, val interface{ String() string }) Field {
	return zap.Stringer(key, val)
}
