package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishRoutesByEventType(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewProducerConfig())
	defer producer.Close()

	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	p := NewPublisherWithProducer(producer)
	p.now = func() time.Time { return fixed }

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != TopicClientDeleted {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "client_7" {
			return errors.New("unexpected key " + string(key))
		}
		raw, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var got Event
		if err := json.Unmarshal(raw, &got); err != nil {
			return err
		}
		if got.EventID == "" || got.FavoritesRemoved != 3 || !got.Timestamp.Equal(fixed) {
			return errors.New("unexpected payload " + string(raw))
		}
		return nil
	})

	require.NoError(t, p.Publish(context.Background(), ClientDeleted(7, 3)))
}

func TestPublishFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewProducerConfig())
	defer producer.Close()
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := NewPublisherWithProducer(producer).Publish(context.Background(), FavoriteAdded(1, 2))
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
}

func TestPublishUnknownType(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewProducerConfig())
	defer producer.Close()

	err := NewPublisherWithProducer(producer).Publish(context.Background(), Event{EventType: "client.renamed"})
	assert.Error(t, err)
}

func TestTopicFor(t *testing.T) {
	for eventType, want := range map[string]string{
		EventTypeClientDeleted:   TopicClientDeleted,
		EventTypeProductDeleted:  TopicProductDeleted,
		EventTypeFavoriteAdded:   TopicFavoriteAdded,
		EventTypeFavoriteRemoved: TopicFavoriteRemoved,
	} {
		got, ok := TopicFor(eventType)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
}
