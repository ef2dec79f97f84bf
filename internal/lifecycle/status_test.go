package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_KitchenChain(t *testing.T) {
	chain := []Status{StatusPending, StatusConfirmed, StatusCooking, StatusReady, StatusDelivered}

	for i := 0; i < len(chain)-1; i++ {
		next, ok := Next(chain[i])
		require.True(t, ok, "expected %s to have a next state", chain[i])
		assert.Equal(t, chain[i+1], next)
	}
}

func TestNext_DeliveryChain(t *testing.T) {
	chain := []Status{StatusSearchingForRider, StatusRiderAssigned, StatusOutForDelivery, StatusDelivered}

	for i := 0; i < len(chain)-1; i++ {
		next, ok := Next(chain[i])
		require.True(t, ok, "expected %s to have a next state", chain[i])
		assert.Equal(t, chain[i+1], next)
	}
}

func TestNext_NoNextIsSignalNotError(t *testing.T) {
	_, ok := Next(StatusDelivered)
	assert.False(t, ok)

	_, ok = Next(Status("SHIPPED"))
	assert.False(t, ok)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		wantErr bool
	}{
		{"legal single step", StatusPending, StatusConfirmed, false},
		{"legal rider step", StatusRiderAssigned, StatusOutForDelivery, false},
		{"skipping a step", StatusPending, StatusCooking, true},
		{"rollback", StatusCooking, StatusConfirmed, true},
		{"out of terminal", StatusDelivered, StatusPending, true},
		{"unknown source", Status("SHIPPED"), StatusPending, true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := CanTransition(testCase.from, testCase.to)
			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanTransition_TerminalIsExplicit(t *testing.T) {
	err := CanTransition(StatusDelivered, StatusOutForDelivery)
	assert.ErrorIs(t, err, ErrTerminalStatus)
}

func TestParse(t *testing.T) {
	s, err := Parse("COOKING")
	require.NoError(t, err)
	assert.Equal(t, StatusCooking, s)

	s, err = Parse("DELIVERED")
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, s)

	_, err = Parse("cooking")
	assert.Error(t, err)

	_, err = Parse("")
	assert.Error(t, err)
}

func TestDisplay_DefaultsUnknownToPending(t *testing.T) {
	assert.Equal(t, StatusReady, Display("READY"))
	assert.Equal(t, StatusPending, Display("GARBAGE"))
	assert.Equal(t, StatusPending, Display(""))
}

func TestFlowOwnership(t *testing.T) {
	assert.True(t, InKitchenFlow(StatusPending))
	assert.True(t, InKitchenFlow(StatusReady))
	assert.False(t, InKitchenFlow(StatusRiderAssigned))
	assert.False(t, InKitchenFlow(StatusDelivered))

	assert.True(t, InDeliveryFlow(StatusRiderAssigned))
	assert.True(t, InDeliveryFlow(StatusOutForDelivery))
	assert.False(t, InDeliveryFlow(StatusSearchingForRider)) // unclaimed orders belong to nobody yet
	assert.False(t, InDeliveryFlow(StatusCooking))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusDelivered))
	assert.False(t, IsTerminal(StatusOutForDelivery))
	assert.False(t, IsTerminal(StatusPending))
}
