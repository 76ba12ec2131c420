package events

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
	"github.com/IBM/sarama"
)

type KafkaSink struct {
	producer sarama.SyncProducer
}

func NewKafkaSink(config *models.Config) (*KafkaSink, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // Must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	if config.SessionTimeoutMs > 0 {
		saramaConfig.Consumer.Group.Session.Timeout = time.Duration(config.SessionTimeoutMs) * time.Millisecond
	}

	brokerList := strings.Split(config.KafkaBrokerList, ",")

	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}

	log.Printf("Sarama producer created successfully with brokers %v", brokerList)
	return &KafkaSink{producer: producer}, nil
}

func (k *KafkaSink) Write(event models.GuestEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, _, err = k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: Topic,
		Key:   sarama.StringEncoder(event.RestaurantID),
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		log.Printf("Failed to send event to topic %s: %v", Topic, err)
		return err
	}
	return nil
}

func (k *KafkaSink) Close() error {
	if k.producer != nil {
		return k.producer.Close()
	}
	return nil
}
