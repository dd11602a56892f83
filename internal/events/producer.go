package events

import (
	"context"

	"github.com/IBM/sarama"

	"github.com/readmio/bookshelf-service/internal/model"
	"github.com/readmio/bookshelf-service/pkg/kafka"
)

// KafkaProducer feeds library mutation events to a kafka topic.
type KafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaProducer(p sarama.SyncProducer, topic string) *KafkaProducer {
	return &KafkaProducer{producer: p, topic: topic}
}

func (k *KafkaProducer) Publish(_ context.Context, ev model.LibraryEvent) error {
	return kafka.PublishJSON(k.producer, k.topic, ev.ExternalBookID, ev)
}
