package converter

import (
	"charter-booking/internal/domain/money"
	"charter-booking/internal/domain/payment"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/pkg/errs"
	"charter-booking/internal/pkg/pgconv"
)

func AttemptToInfra(a *payment.Attempt) pgsql.CreatePaymentAttemptParams {
	return pgsql.CreatePaymentAttemptParams{
		ID:            a.ID(),
		ReservationID: a.ReservationID(),
		AmountCents:   a.Amount().Cents(),
		Currency:      a.Currency().String(),
		Status:        string(a.Status()),
		CreatedAt:     pgconv.TimeToPgtype(a.CreatedAt()),
	}
}

func AttemptFromRow(row pgsql.PaymentAttempts) (*payment.Attempt, error) {
	status, err := payment.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "payment attempt %s", row.ID)
	}

	return payment.ReconstructAttempt(
		row.ID,
		row.ReservationID,
		money.FromCents(row.AmountCents),
		money.Currency(row.Currency),
		status,
		pgconv.StringPtrFromPgtype(row.ExternalRef),
		pgconv.TimePtrFromPgtype(row.SettledAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
