package commission

import "github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"

// EntityType names commissions in audit rows and transition introspection
const EntityType = "commission"

// Status represents the lifecycle status of a commission
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusPaid      Status = "PAID"
	StatusCancelled Status = "CANCELLED"
)

// Transitions is the allowed-transition table for commissions.
// PAID and CANCELLED have no outgoing edges.
var Transitions = shared.NewTransitionTable(EntityType, map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPaid, StatusCancelled},
	StatusPaid:      nil,
	StatusCancelled: nil,
})

// IsValid checks if the status is known
func (s Status) IsValid() bool {
	return Transitions.IsKnown(s)
}

// IsTerminal returns true if no further transition is possible
func (s Status) IsTerminal() bool {
	return Transitions.IsTerminal(s)
}

// String returns the string representation
func (s Status) String() string {
	return string(s)
}

// BeneficiaryType identifies who receives the money
type BeneficiaryType string

const (
	BeneficiaryPartner  BeneficiaryType = "PARTNER"
	BeneficiarySeller   BeneficiaryType = "SELLER"
	BeneficiarySupplier BeneficiaryType = "SUPPLIER"
)

// IsValid checks if the beneficiary type is known
func (b BeneficiaryType) IsValid() bool {
	switch b {
	case BeneficiaryPartner, BeneficiarySeller, BeneficiarySupplier:
		return true
	}
	return false
}
