package commands

import (
	"context"

	"resto-booking/internal/domain/user"
)

// IdentityResolver is the OAuth boundary: it hands out the consent URL and
// turns an authorization code into a verified profile.
type IdentityResolver interface {
	ConsentURL(state string) string
	Exchange(ctx context.Context, code string) (*user.Profile, error)
}

// EventPublisher pushes booking events to the broker. Delivery is best
// effort; the outbox row is the durable record.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, key string, payload []byte) error
}

// Sync outcome for the user directory upsert.
const (
	SyncStatusInserted = "inserted"
	SyncStatusUpdated  = "updated"
	SyncStatusNoChange = "no_change"
)
