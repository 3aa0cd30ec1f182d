// Package queue_publisher publishes domain events to RabbitMQ.  Each
// publish dials its own connection; contact forms arrive a few times an
// hour, so there is no pooled channel to keep healthy.
package queue_publisher

import (
    "context"
    "encoding/json"
    "fmt"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/rs/zerolog"

    q "github.com/iliyamo/sanadimo/internal/queue"
    "github.com/iliyamo/sanadimo/internal/validation"
)

// Publisher sends contact forms to q.ContactQueue.  It satisfies
// contact.Submitter.
type Publisher struct {
    URL string
    Log zerolog.Logger
    Now func() time.Time
}

// New returns a Publisher for the broker at url.
func New(url string, log zerolog.Logger) *Publisher {
    return &Publisher{URL: url, Log: log, Now: time.Now}
}

// Submit publishes f as a persistent ContactSubmittedEvent.  Errors are
// logged and returned; the caller decides what the visitor sees.
func (p *Publisher) Submit(ctx context.Context, f validation.Form) error {
    ev := q.NewContactSubmitted(f, p.Now())
    if err := p.Publish(ctx, q.ContactQueue, ev); err != nil {
        return err
    }
    p.Log.Info().
        Str("submission_id", ev.SubmissionID).
        Str("type", ev.MessageType).
        Msg("contact form queued")
    return nil
}

// Publish marshals event as JSON and publishes it to the durable queue
// named queueName on the default exchange.
func (p *Publisher) Publish(ctx context.Context, queueName string, event any) error {
    body, err := json.Marshal(event)
    if err != nil {
        return fmt.Errorf("marshal event: %w", err)
    }

    conn, err := amqp.Dial(p.URL)
    if err != nil {
        p.Log.Error().Err(err).Msg("rabbitmq: dial failed")
        return fmt.Errorf("dial broker: %w", err)
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        p.Log.Error().Err(err).Msg("rabbitmq: channel open failed")
        return fmt.Errorf("open channel: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if _, err := ch.QueueDeclare(
        queueName,
        true,  // durable
        false, // autoDelete
        false, // exclusive
        false, // noWait
        nil,
    ); err != nil {
        p.Log.Error().Err(err).Str("queue", queueName).Msg("rabbitmq: queue declare failed")
        return fmt.Errorf("declare %s: %w", queueName, err)
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    p.Now().UTC(),
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
        p.Log.Error().Err(err).Str("queue", queueName).Msg("rabbitmq: publish failed")
        return fmt.Errorf("publish %s: %w", queueName, err)
    }
    return nil
}
