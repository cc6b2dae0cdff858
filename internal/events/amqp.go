package events

import (
	"context"
	"fmt"

	"github.com/streadway/amqp"

	"uniadvisor_backend/internal/logger"
	"uniadvisor_backend/pkg/apperrors"
)

const exchangeKind = "fanout"

func declareExchange(ch *amqp.Channel, exchange string) error {
	return ch.ExchangeDeclare(
		exchange,
		exchangeKind,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
}

// AMQPPublisher публикует события в fanout-exchange RabbitMQ
type AMQPPublisher struct {
	conn     *amqp.Connection
	exchange string
}

func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error dialling rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("error opening rabbitmq channel: %w", err)
	}
	defer ch.Close()

	if err := declareExchange(ch, exchange); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &AMQPPublisher{conn: conn, exchange: exchange}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event CatalogEvent) error {
	body, err := event.Encode()
	if err != nil {
		return err
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return apperrors.ExternalServiceError(err, "amqp", "Failed to open rabbitmq channel")
	}
	defer ch.Close()

	err = ch.Publish(
		p.exchange,
		"", // routing key is ignored by fanout
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   event.ID,
			Body:        body,
		},
	)
	if err != nil {
		return apperrors.ExternalServiceError(err, "amqp", fmt.Sprintf("Failed to publish to exchange %s", p.exchange))
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	return p.conn.Close()
}

// AMQPConsumer получает события через собственную временную очередь,
// чтобы каждый экземпляр сервиса видел каждое событие
type AMQPConsumer struct {
	url      string
	exchange string
}

func NewAMQPConsumer(url, exchange string) *AMQPConsumer {
	return &AMQPConsumer{url: url, exchange: exchange}
}

// Run blocks until ctx is cancelled or the broker closes the delivery channel
func (c *AMQPConsumer) Run(ctx context.Context, handle Handler) error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return fmt.Errorf("error dialling rabbitmq: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("error opening rabbitmq channel: %w", err)
	}
	defer ch.Close()

	if err := declareExchange(ch, c.exchange); err != nil {
		return fmt.Errorf("declare exchange %s: %w", c.exchange, err)
	}

	q, err := ch.QueueDeclare(
		"",    // server-named
		false, // durable
		true,  // auto-delete when unused
		true,  // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, "", c.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	msgs, err := ch.Consume(
		q.Name,
		"",    // consumer tag
		true,  // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	logger.Info("Consuming catalog events", "exchange", c.exchange, "queue", q.Name)

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("rabbitmq delivery channel closed")
			}
			event, err := Decode(msg.Body)
			if err != nil {
				logger.Warn("Unreadable catalog event, reloading anyway", "error", err)
				event = CatalogEvent{ID: msg.MessageId}
			}
			if err := handle(ctx, event); err != nil {
				logger.Error("Catalog event handler failed", "event_id", event.ID, "error", err)
			}
		}
	}
}
