//go:build unit

package events_test

import "charter-booking/internal/pkg/config"

func configWithBroker(broker string) config.EventsConfig {
	return config.EventsConfig{
		Broker:       broker,
		KafkaBrokers: []string{"localhost:9092"},
		TopicPrefix:  "charter-test",
	}
}
