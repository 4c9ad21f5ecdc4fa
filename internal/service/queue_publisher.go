// Package service provides publishers for store events.  Publishing is
// best effort: errors are logged and returned, and callers never fail a
// request because of them.
package service

import (
    "context"
    "encoding/json"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"

    "github.com/iliyamo/sakila-rental-api/internal/logging"
    q "github.com/iliyamo/sakila-rental-api/internal/queue"
)

// maxDialTimeout bounds the TCP connect plus AMQP handshake of one dial.
const maxDialTimeout = 2 * time.Second

// EventPublisher publishes StoreEvents to a durable RabbitMQ queue over a
// lazily dialed connection that is re-established after failures.  No
// call outlives the caller's context.
type EventPublisher struct {
    url   string
    queue string

    sem  chan struct{} // one-slot lock that can be abandoned on ctx.Done
    conn *amqp.Connection
    ch   *amqp.Channel
}

func NewEventPublisher(url, queue string) *EventPublisher {
    return &EventPublisher{url: url, queue: queue, sem: make(chan struct{}, 1)}
}

func (p *EventPublisher) lock(ctx context.Context) error {
    select {
    case p.sem <- struct{}{}:
        return nil
    case <-ctx.Done():
        return ctx.Err()
    }
}

func (p *EventPublisher) unlock() { <-p.sem }

// dialTimeout is the time left before the ctx deadline, capped at
// maxDialTimeout.
func dialTimeout(ctx context.Context) time.Duration {
    d := maxDialTimeout
    if deadline, ok := ctx.Deadline(); ok {
        if left := time.Until(deadline); left < d {
            d = left
        }
    }
    return d
}

// channel returns an open channel with the queue declared, dialing if
// needed.  Must be called with the lock held.
func (p *EventPublisher) channel(ctx context.Context) (*amqp.Channel, error) {
    if p.ch != nil && !p.ch.IsClosed() {
        return p.ch, nil
    }
    p.reset()

    d := dialTimeout(ctx)
    if d <= 0 {
        return nil, context.DeadlineExceeded
    }
    conn, err := amqp.DialConfig(p.url, amqp.Config{
        Heartbeat: 10 * time.Second,
        Locale:    "en_US",
        Dial:      amqp.DefaultDial(d),
    })
    if err != nil {
        return nil, err
    }
    ch, err := conn.Channel()
    if err != nil {
        _ = conn.Close()
        return nil, err
    }
    if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
        _ = ch.Close()
        _ = conn.Close()
        return nil, err
    }
    p.conn, p.ch = conn, ch
    return ch, nil
}

func (p *EventPublisher) reset() {
    if p.ch != nil {
        _ = p.ch.Close()
    }
    if p.conn != nil {
        _ = p.conn.Close()
    }
    p.conn, p.ch = nil, nil
}

// Publish sends the event as a persistent JSON message routed to the queue.
func (p *EventPublisher) Publish(ctx context.Context, ev q.StoreEvent) error {
    if ev.OccurredAt.IsZero() {
        ev.OccurredAt = time.Now().UTC()
    }
    body, err := json.Marshal(ev)
    if err != nil {
        logging.Error().Err(err).Str("event", ev.Type).Msg("rabbitmq: marshal event failed")
        return err
    }

    if err := p.lock(ctx); err != nil {
        logging.Warn().Err(err).Str("event", ev.Type).Msg("rabbitmq: publisher busy, event dropped")
        return err
    }
    defer p.unlock()

    ch, err := p.channel(ctx)
    if err != nil {
        logging.Warn().Err(err).Str("event", ev.Type).Msg("rabbitmq: connect failed")
        return err
    }
    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    ev.OccurredAt,
        Type:         ev.Type,
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
        logging.Warn().Err(err).Str("event", ev.Type).Msg("rabbitmq: publish failed")
        p.reset()
        return err
    }
    return nil
}

// Close releases the broker connection.
func (p *EventPublisher) Close() error {
    p.sem <- struct{}{}
    defer p.unlock()
    p.reset()
    return nil
}

// NopPublisher drops every event.  It is used when events are disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, q.StoreEvent) error { return nil }
