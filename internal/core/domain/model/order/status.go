package order

import (
	"fmt"

	"ordertrack/internal/pkg/errs"
)

// Status represents the lifecycle stage of an order. It implements a linear
// state machine where each stage advances to the next one in a fixed
// sequence, with Delivered as the terminal stage.
//
// Stage progression:
//
//	Preparing ──> Shipped ──> Outside ──> Delivered
//
// Status is a value object persisted by its raw string value, so values
// stored before a stage set change (or corrupted values) survive the
// round-trip and are handled by the recovery policy in Next.
type Status string

const (
	// Preparing is the initial stage: the order is being prepared.
	Preparing Status = "preparing"

	// Shipped means the order left the warehouse and is on its way.
	Shipped Status = "shipped"

	// Outside means the courier is at the customer's door.
	Outside Status = "outside"

	// Delivered is the terminal stage. No further transitions happen.
	Delivered Status = "delivered"
)

// Stages returns the lifecycle stages in progress order. The slice is a
// fresh copy on every call so callers cannot mutate the sequence.
func Stages() []Status {
	return []Status{Preparing, Shipped, Outside, Delivered}
}

// statusLabels maps each stage to its customer-facing display label.
func statusLabels() map[Status]string {
	return map[Status]string{
		Preparing: "Preparando pedido",
		Shipped:   "En camino",
		Outside:   "Afuera",
		Delivered: "Entregado",
	}
}

// StatusFromString parses external input into a Status. Unlike the recovery
// path used for stored values, unknown input is rejected with an error so
// API callers cannot write arbitrary stages.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is a member of the known stage set.
// Returns an errs.ValueIsInvalidError otherwise.
func (s Status) Validate() error {
	if _, ok := statusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the raw stage value. Implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Label returns the human-readable display label for the stage. Unknown
// values fall back to the raw value itself so rendering never fails.
func (s Status) Label() string {
	if label, ok := statusLabels()[s]; ok {
		return label
	}
	return string(s)
}

// Index returns the position of the stage in the progress sequence and
// whether the stage is known. Unknown stages report position 0, which is
// the recovery policy: an unrecognized stored status is treated as the
// first stage, never as an error.
func (s Status) Index() (int, bool) {
	for i, stage := range Stages() {
		if stage == s {
			return i, true
		}
	}
	return 0, false
}

// Next returns the stage that follows s in the lifecycle.
//
// Rules:
//   - unknown value: the first stage (reset to start, not an error)
//   - terminal stage: the same value (idempotent no-op)
//   - otherwise: the stage at the next index
func (s Status) Next() Status {
	stages := Stages()
	idx, ok := s.Index()
	if !ok {
		return stages[0]
	}
	if idx < len(stages)-1 {
		return stages[idx+1]
	}
	return s
}

// IsFinal reports whether the stage is the terminal one.
func (s Status) IsFinal() bool {
	return s == Delivered
}
