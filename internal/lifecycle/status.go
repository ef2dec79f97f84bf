package lifecycle

import (
	"errors"
	"fmt"
)

// Status is an order's position in its lifecycle. Two strict linear chains
// share the enum: the kitchen flow (PENDING → ... → DELIVERED) driven by the
// restaurant, and the delivery flow (SEARCHING_FOR_RIDER → ... → DELIVERED)
// driven by riders. DELIVERED is terminal for both.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCooking   Status = "COOKING"
	StatusReady     Status = "READY"

	StatusSearchingForRider Status = "SEARCHING_FOR_RIDER"
	StatusRiderAssigned     Status = "RIDER_ASSIGNED"
	StatusOutForDelivery    Status = "OUT_FOR_DELIVERY"

	StatusDelivered Status = "DELIVERED"
)

// ErrTerminalStatus - the order has reached DELIVERED and cannot move again.
var ErrTerminalStatus = errors.New("order is already delivered")

// next holds the single legal successor for every non-terminal state.
// No skipping, no branching, no rollback.
var next = map[Status]Status{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusCooking,
	StatusCooking:   StatusReady,
	StatusReady:     StatusDelivered,

	StatusSearchingForRider: StatusRiderAssigned,
	StatusRiderAssigned:     StatusOutForDelivery,
	StatusOutForDelivery:    StatusDelivered,
}

// Next returns the single legal successor of s. ok is false for DELIVERED and
// for unrecognized values: "no next state" is a no-op signal, not an error.
func Next(s Status) (Status, bool) {
	n, ok := next[s]
	return n, ok
}

// CanTransition reports whether from → to is the one legal step.
// Any move out of DELIVERED is refused.
func CanTransition(from, to Status) error {
	if from == StatusDelivered {
		return ErrTerminalStatus
	}
	n, ok := next[from]
	if !ok {
		return fmt.Errorf("unknown order status %q", from)
	}
	if n != to {
		return fmt.Errorf("illegal transition %s -> %s (next is %s)", from, to, n)
	}
	return nil
}

// InKitchenFlow reports whether the restaurant drives this state.
func InKitchenFlow(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCooking, StatusReady:
		return true
	}
	return false
}

// InDeliveryFlow reports whether the assigned rider drives this state.
func InDeliveryFlow(s Status) bool {
	switch s {
	case StatusRiderAssigned, StatusOutForDelivery:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are permitted.
func IsTerminal(s Status) bool {
	return s == StatusDelivered
}

// Parse validates a raw status value at the store boundary.
func Parse(raw string) (Status, error) {
	s := Status(raw)
	if _, ok := next[s]; ok || s == StatusDelivered {
		return s, nil
	}
	return "", fmt.Errorf("invalid order status %q", raw)
}

// Display maps a raw status to something a dashboard can render. Unrecognized
// values fall back to PENDING so boards keep rendering on unexpected data;
// this is a rendering default only, never a validity check - use Parse for that.
func Display(raw string) Status {
	if s, err := Parse(raw); err == nil {
		return s
	}
	return StatusPending
}
