package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/rs/zerolog"

    "github.com/iliyamo/sanadimo/internal/model"
)

// MessageSaver persists one contact message.  *repository.MessageRepo
// satisfies it.
type MessageSaver interface {
    Create(ctx context.Context, m *model.ContactMessage) error
}

// errMalformed marks a delivery that can never be stored.
var errMalformed = errors.New("malformed event")

// Consumer reads ContactQueue and stores every event through Saver.
type Consumer struct {
    URL   string
    Saver MessageSaver
    Log   zerolog.Logger
    Now   func() time.Time

    // RequeueDelay is the pause before a delivery whose store failed is
    // handed back to the broker.  Zero means one second.
    RequeueDelay time.Duration
}

// Run connects to the broker and consumes until ctx is cancelled.  Dial
// failures and dropped connections are retried with exponential backoff
// capped at 30s.  A message that cannot be decoded is rejected without
// requeue; one that could not be stored is requeued after RequeueDelay.
func (c *Consumer) Run(ctx context.Context) error {
    backoff := time.Second
    for {
        conn, err := amqp.Dial(c.URL)
        if err != nil {
            c.Log.Warn().Err(err).Dur("retry_in", backoff).Msg("contact-consumer: dial failed")
            if !sleep(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second

        err = c.consumeLoop(ctx, conn)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        c.Log.Warn().Err(err).Msg("contact-consumer: consume loop ended, reconnecting")
        if !sleep(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(20, 0, false); err != nil {
        c.Log.Warn().Err(err).Msg("contact-consumer: set QoS failed")
    }
    if _, err := ch.QueueDeclare(ContactQueue, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }
    msgs, err := ch.Consume(ContactQueue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }
    c.Log.Info().Str("queue", ContactQueue).Msg("contact-consumer: consuming")

    for {
        select {
        case <-ctx.Done():
            return ctx.Err()
        case d, ok := <-msgs:
            if !ok {
                return errors.New("deliveries channel closed")
            }
            c.process(ctx, d)
        }
    }
}

// process stores one delivery and settles it with the broker.
func (c *Consumer) process(ctx context.Context, d amqp.Delivery) {
    err := c.handle(ctx, d.Body)
    switch {
    case err == nil:
        _ = d.Ack(false)
    case errors.Is(err, errMalformed):
        c.Log.Error().Err(err).Msg("contact-consumer: dropping message")
        _ = d.Nack(false, false)
    default:
        c.Log.Error().Err(err).Msg("contact-consumer: store failed, requeueing")
        delay := c.RequeueDelay
        if delay <= 0 {
            delay = time.Second
        }
        sleep(ctx, delay)
        _ = d.Nack(false, true)
    }
}

func (c *Consumer) handle(ctx context.Context, body []byte) error {
    var ev ContactSubmittedEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("%w: %v", errMalformed, err)
    }
    if ev.SubmissionID == "" {
        return fmt.Errorf("%w: no submission_id", errMalformed)
    }
    now := time.Now
    if c.Now != nil {
        now = c.Now
    }
    m := ev.ToMessage(now())

    ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()
    if err := c.Saver.Create(ctx, m); err != nil {
        return fmt.Errorf("store message: %w", err)
    }
    c.Log.Info().
        Uint64("message_id", m.ID).
        Str("submission_id", m.SubmissionID).
        Str("type", m.MessageType).
        Msg("contact message stored")
    return nil
}

// sleep waits for d or until ctx is done; it reports whether d elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return false
    case <-t.C:
        return true
    }
}
