package tokenstore

import (
	"context"
	"time"
)

// NoopRevocationStore is used when Redis is disabled: logout succeeds but tokens stay valid until expiry.
type NoopRevocationStore struct{}

func NewNoopRevocationStore() *NoopRevocationStore {
	return &NoopRevocationStore{}
}

func (NoopRevocationStore) Revoke(context.Context, string, time.Time) error {
	return nil
}

func (NoopRevocationStore) IsRevoked(context.Context, string) (bool, error) {
	return false, nil
}
