package notify

import (
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type ConsumerConfig struct {
	Brokers []string
	Topic   string
	// GroupID пустой — уникальная группа на экземпляр: каждый подписчик
	// канала получает собственную копию каждого события (broadcast).
	// Общая группа делит события между членами (work-queue) и задаётся
	// только явно.
	GroupID        string
	StartOffset    string
	ProcessTimeout time.Duration
	RetryInitial   time.Duration
	RetryMax       time.Duration
}

func (c *ConsumerConfig) instanceGroupID() string {
	if c.GroupID != "" {
		return c.GroupID
	}
	return "shopfront-" + uuid.NewString()
}

func (c *ConsumerConfig) readerConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.instanceGroupID(),
		Topic:          c.Topic,
		CommitInterval: 0,
	}

	switch c.StartOffset {
	case "first":
		rc.StartOffset = kafka.FirstOffset
	default:
		rc.StartOffset = kafka.LastOffset
	}

	return rc
}
