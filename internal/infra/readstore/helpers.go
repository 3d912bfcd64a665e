package readstore

import (
	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func formatDate(d pgtype.Date) string {
	return pgconv.DateFromPgtype(d).Format(calendar.DateLayout)
}
