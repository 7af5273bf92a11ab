// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mrand "math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewClientID returns a fresh long-lived client identity token.
// UUID v4 when the system randomness source cooperates, otherwise a
// pseudo-random fallback in the same format browsers without crypto.randomUUID
// would produce.
func NewClientID() string {
	return newToken("client")
}

// NewSessionID returns a fresh short-lived session identity token.
func NewSessionID() string {
	return newToken("session")
}

func newToken(prefix string) string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}
	return fallbackToken(prefix)
}

// fallbackToken builds "<prefix>-<millis>-<hex>" without depending on the
// crypto source that just failed.
func fallbackToken(prefix string) string {
	return fmt.Sprintf("%s-%d-%x", prefix, time.Now().UnixMilli(), mrand.Uint64())
}
