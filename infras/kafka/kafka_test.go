package kafka_test

import (
	"context"
	"hotel/config"
	"hotel/infras/kafka"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingEvent struct {
	RoomNumber int    `json:"room_number"`
	Name       string `json:"name"`
}

func TestMessage_RoundTrip(t *testing.T) {
	msg := kafka.Message{Key: "101", Value: bookingEvent{RoomNumber: 101, Name: "Jane"}}

	raw, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("101"), raw.Key)
	assert.JSONEq(t, `{"room_number":101,"name":"Jane"}`, string(raw.Value))

	decoded, err := kafka.DecodeKafkaMessage[bookingEvent](raw)
	require.NoError(t, err)
	assert.Equal(t, "101", decoded.Key)
	assert.Equal(t, bookingEvent{RoomNumber: 101, Name: "Jane"}, decoded.Value)
}

func TestMessage_UnmarshalableValue(t *testing.T) {
	msg := kafka.Message{Key: "x", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()

	assert.Error(t, err)
}

func TestDecodeKafkaMessage_InvalidJSON(t *testing.T) {
	_, err := kafka.DecodeKafkaMessage[bookingEvent](kafkaGo.Message{Value: []byte("{")})

	assert.Error(t, err)
}

func TestNew_DisabledIsNoop(t *testing.T) {
	cfg := &config.Config{}

	client := kafka.New(cfg)

	assert.NoError(t, client.SendMessages(context.Background(), "booking.recorded", kafka.Message{Key: "1", Value: 1}))
	assert.NoError(t, client.Close())
}
