package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strings"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"

    "github.com/iliyamo/sakila-rental-api/internal/logging"
)

// AuditLogName is the file, under the configured directory, that receives
// one line per consumed event.
const AuditLogName = "store_events.log"

// StartAuditConsumer connects to RabbitMQ, declares the durable queue and
// appends every event to <logDir>/store_events.log.  It reconnects with
// backoff until ctx is cancelled, then returns ctx.Err().  Messages that
// cannot be handled are rejected without requeue so the loop keeps going.
func StartAuditConsumer(ctx context.Context, url, queueName, logDir string) error {
    backoff := time.Second
    for {
        if err := ctx.Err(); err != nil {
            return err
        }
        conn, err := amqp.Dial(url)
        if err != nil {
            logging.Warn().Err(err).Dur("retry_in", backoff).Msg("audit-consumer: dial failed")
            if !sleep(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second

        err = consumeLoop(ctx, conn, queueName, logDir)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        logging.Warn().Err(err).Msg("audit-consumer: consume loop ended; reconnecting")
        if !sleep(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

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

func consumeLoop(ctx context.Context, conn *amqp.Connection, queueName, logDir string) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        logging.Warn().Err(err).Msg("audit-consumer: set QoS failed")
    }
    if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }
    msgs, err := ch.ConsumeWithContext(ctx, queueName, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for d := range msgs {
        if err := HandleMessage(d.Body, logDir); err != nil {
            logging.Error().Err(err).Msg("audit-consumer: handle message failed")
            _ = d.Nack(false, false)
            continue
        }
        _ = d.Ack(false)
    }
    return errors.New("deliveries channel closed")
}

// HandleMessage decodes one event and appends its audit line.
func HandleMessage(body []byte, logDir string) error {
    var ev StoreEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    if ev.Type == "" {
        return errors.New("event without type")
    }
    if err := os.MkdirAll(logDir, 0o755); err != nil {
        return fmt.Errorf("mkdir %s: %w", logDir, err)
    }
    f, err := os.OpenFile(filepath.Join(logDir, AuditLogName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()

    if _, err := f.WriteString(FormatLine(ev)); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    return nil
}

// FormatLine renders an event as a single human-friendly log line.
func FormatLine(ev StoreEvent) string {
    parts := []string{fmt.Sprintf("[%s] %s", ev.OccurredAt.UTC().Format(time.RFC3339), ev.Type)}
    if ev.CustomerID != 0 {
        parts = append(parts, fmt.Sprintf("customer_id=%d", ev.CustomerID))
    }
    if ev.RentalID != 0 {
        parts = append(parts, fmt.Sprintf("rental_id=%d", ev.RentalID))
    }
    if ev.FirstName != nil || ev.LastName != nil {
        parts = append(parts, fmt.Sprintf("name=%q", strings.TrimSpace(deref(ev.FirstName)+" "+deref(ev.LastName))))
    }
    if ev.Email != nil {
        parts = append(parts, fmt.Sprintf("email=%q", *ev.Email))
    }
    return strings.Join(parts, " | ") + "\n"
}

func deref(s *string) string {
    if s == nil {
        return ""
    }
    return *s
}
