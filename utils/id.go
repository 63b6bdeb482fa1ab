package utils

import (
	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation ID of a request
const RequestIDHeader = "X-Request-ID"

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// RequestID keeps a client supplied correlation ID if it is a UUID, otherwise it mints one
func RequestID(supplied string) string {
	if _, err := uuid.Parse(supplied); err == nil {
		return supplied
	}
	return GenerateID()
}
