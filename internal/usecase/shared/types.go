package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key                 uuid.UUID
	PrincipalID         uuid.UUID
	Endpoint            string
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}

// OutboxEvent is stored in the same transaction as the state change it
// describes and published later by the relay.
type OutboxEvent struct {
	Topic   string
	Key     string
	Payload any
	RunAt   time.Time
}

type AuditEntry struct {
	ReservationID uuid.UUID
	ActorID       uuid.UUID
	Action        string
	FromStatus    string
	ToStatus      string
	Reason        string
	At            time.Time
}
