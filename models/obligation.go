package models

import (
	"time"

	"github.com/google/uuid"
)

// ObligationKind identifies which deadline scanner a record belongs to.
// Room and display spaces are scanned independently, so the kind carries
// both the record type and the space type.
type ObligationKind string

const (
	KindPayment         ObligationKind = "payment"
	KindContract        ObligationKind = "contract"
	KindDisplayPayment  ObligationKind = "display_payment"
	KindDisplayContract ObligationKind = "display_contract"
)

// SpaceType returns the space type a kind scans over.
func (k ObligationKind) SpaceType() string {
	if k == KindDisplayPayment || k == KindDisplayContract {
		return SpaceTypeDisplay
	}
	return SpaceTypeRoom
}

// IsContract reports whether the kind covers rental contracts rather than
// rent payments.
func (k ObligationKind) IsContract() bool {
	return k == KindContract || k == KindDisplayContract
}

// Valid reports whether k is one of the four scanner kinds.
func (k ObligationKind) Valid() bool {
	switch k {
	case KindPayment, KindContract, KindDisplayPayment, KindDisplayContract:
		return true
	}
	return false
}

// Obligation is the capability set shared by every record a deadline
// scanner can process. Payment and Contract both implement it, so the
// engine never touches kind-specific field names.
type Obligation interface {
	ObligationID() uuid.UUID
	DueDate() time.Time
	Amount() float64
	SpaceLabel() string
	CustomerKey() (uuid.UUID, string)
}
