package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

// MessageWriter запись сообщений в топик (*kafka.Writer)
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaDispatcher публикует событие подтверждения; доставку клиенту делает внешний консьюмер
type KafkaDispatcher struct {
	writer MessageWriter
	log    Logger
}

// NewKafkaDispatcher создает продюсера событий
func NewKafkaDispatcher(brokers []string, topic string, log Logger) (*KafkaDispatcher, error) {
	if len(brokers) == 0 || topic == "" {
		return nil, fmt.Errorf("%w: kafka brokers and topic are required", ErrInvalidConfig)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // события одной брони в одну партицию
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		Logger:       kafka.LoggerFunc(func(string, ...interface{}) {}),
		ErrorLogger:  kafka.LoggerFunc(log.Error),
	}

	return NewKafkaDispatcherWithWriter(writer, log), nil
}

// NewKafkaDispatcherWithWriter создает драйвер поверх произвольного writer
func NewKafkaDispatcherWithWriter(writer MessageWriter, log Logger) *KafkaDispatcher {
	return &KafkaDispatcher{writer: writer, log: log}
}

func (d *KafkaDispatcher) Name() string {
	return DriverKafka
}

func (d *KafkaDispatcher) Dispatch(ctx context.Context, batch *domain.ReservationBatch) error {
	value, err := json.Marshal(NewConfirmationEvent(batch))
	if err != nil {
		return fmt.Errorf("%w: failed to encode event: %v", ErrInternal, err)
	}

	msg := kafka.Message{
		Key:   []byte(batch.ID.String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(EventReservationConfirmed)},
		},
	}

	if err := d.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: kafka: %v", ErrDelivery, err)
	}

	d.log.Info("Notification: event published for batch=%s", batch.ID)
	return nil
}

func (d *KafkaDispatcher) Close() error {
	return d.writer.Close()
}
