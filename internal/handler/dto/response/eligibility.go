package response

import (
	"time"

	"charter-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type EligibilityResponse struct {
	PrincipalID    uuid.UUID  `json:"principal_id"`
	Action         string     `json:"action"`
	Eligible       bool       `json:"eligible"`
	Reason         string     `json:"reason"`
	NextEligibleAt *time.Time `json:"next_eligible_at,omitempty"`
}

func FromEligibilityView(v *queries.EligibilityView) *EligibilityResponse {
	return &EligibilityResponse{
		PrincipalID:    v.PrincipalID,
		Action:         v.Action,
		Eligible:       v.Eligible,
		Reason:         v.Reason,
		NextEligibleAt: v.NextEligibleAt,
	}
}
