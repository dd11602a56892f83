package kafka

import (
	"encoding/json"

	"github.com/IBM/sarama"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_TOPIC" default:"library-events"`
}

func (c Config) Enabled() bool { return len(c.Addrs) > 0 }

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

// PublishJSON marshals v and sends it to topic with the given key.
func PublishJSON(p sarama.SyncProducer, topic, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, _, err = p.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	})
	return err
}
