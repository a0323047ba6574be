package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Publisher publica eventos de ciclo de vida de órdenes para consumidores
// downstream (el dashboard admin se actualiza en tiempo real a partir de
// estos eventos). Un Publisher nil o sin brokers es un no-op seguro: la
// publicación nunca falla una operación de negocio ya confirmada.
type Publisher struct {
	writer *kafka.Writer
}

// EventEnvelope es el sobre estándar de todos los eventos publicados
type EventEnvelope struct {
	EventID       string      `json:"event_id"`
	EventType     string      `json:"event_type"`
	EventVersion  int         `json:"event_version"`
	AggregateType string      `json:"aggregate_type"`
	AggregateID   string      `json:"aggregate_id"`
	OccurredAt    string      `json:"occurred_at"`
	Payload       interface{} `json:"payload"`
}

// NewPublisher crea un publisher sobre los brokers indicados (CSV).
// Retorna nil si no hay brokers configurados: el servicio opera sin eventbus.
func NewPublisher(brokersCSV, topic string) *Publisher {
	var brokers []string
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Publish arma el envelope y lo escribe con el aggregate ID como key
// (garantiza orden por orden dentro de la partición).
func (p *Publisher) Publish(ctx context.Context, eventType, aggregateType, aggregateID string, payload interface{}) error {
	if p == nil {
		return nil
	}

	envelope := EventEnvelope{
		EventID:       uuid.New().String(),
		EventType:     eventType,
		EventVersion:  1,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
		Payload:       payload,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(aggregateID),
		Value: data,
		Time:  time.Now().UTC(),
	})
}

// Close cierra el writer subyacente.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
