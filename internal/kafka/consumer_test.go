package kafka

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatch_ForwardsDecodedEvent(t *testing.T) {
	event := BookingEvent{
		Type:        "booking_cancelled",
		BookingID:   "bk-1",
		UserID:      "u1",
		Destination: "Mars",
		Status:      "cancelled",
		TotalPrice:  271000,
	}
	payload, _ := json.Marshal(event)

	var got BookingEvent
	err := dispatch(context.Background(), payload, func(ctx context.Context, e BookingEvent) error {
		got = e
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, event, got)
}

func TestDispatch_SkipsMalformedPayload(t *testing.T) {
	called := false
	err := dispatch(context.Background(), []byte("{not json"), func(ctx context.Context, e BookingEvent) error {
		called = true
		return nil
	})

	assert.NoError(t, err)
	assert.False(t, called)
}

func TestDispatch_PropagatesHandlerError(t *testing.T) {
	payload, _ := json.Marshal(BookingEvent{BookingID: "bk-1"})

	err := dispatch(context.Background(), payload, func(ctx context.Context, e BookingEvent) error {
		return assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
}
