package messaging

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudEvent_RoundTrip(t *testing.T) {
	ce, err := NewCloudEvent(ServiceName, BookingConfirmed, BookingEvent{BookingID: 7, Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "1.0", ce.SpecVersion)
	assert.NotEmpty(t, ce.ID)

	raw, err := json.Marshal(ce)
	require.NoError(t, err)

	parsed, err := ParseCloudEvent(raw)
	require.NoError(t, err)
	assert.Equal(t, BookingConfirmed, parsed.Type)

	var evt BookingEvent
	require.NoError(t, parsed.ParseData(&evt))
	assert.Equal(t, int64(7), evt.BookingID)
	assert.Equal(t, "confirmed", evt.Status)
}

func TestParseCloudEvent_Rejects(t *testing.T) {
	_, err := ParseCloudEvent([]byte("not json"))
	assert.Error(t, err)

	_, err = ParseCloudEvent([]byte(`{"id":"x","data":{}}`))
	assert.Error(t, err, "an envelope without a type is unusable")
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	assert.NoError(t, p.PublishEvent(context.Background(), TopicBookingEvents, "1", CloudEvent{}))
	assert.NoError(t, p.Close())
}
