package request

import (
	"charter-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type RecordPaymentRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	AmountCents   int64     `json:"amount_cents" binding:"required"`
	Currency      string    `json:"currency" binding:"required,len=3"`
}

func (r RecordPaymentRequest) ToInput() commands.RecordAttemptInput {
	return commands.RecordAttemptInput{
		ReservationID: r.ReservationID,
		AmountCents:   r.AmountCents,
		Currency:      r.Currency,
	}
}

type SettlePaymentRequest struct {
	Outcome     string  `json:"outcome" binding:"required"`
	ExternalRef *string `json:"external_ref,omitempty" binding:"omitempty,max=255"`
}

type SweepRequest struct {
	Limit int `json:"limit" binding:"omitempty,min=1,max=1000"`
}
