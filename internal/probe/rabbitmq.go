package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type BrokerChecker struct {
	kv KV
}

func NewBrokerChecker(kv KV) *BrokerChecker {
	return &BrokerChecker{kv: kv}
}

// Check publishes one message to a uniquely named queue and consumes it back
// over a fresh channel. Both phases must succeed; a failed publish is an
// explicit failure and consume is never attempted.
func (b *BrokerChecker) Check(ctx context.Context, prefix, key string) Result {
	params, err := b.kv.Get(ctx, prefix+"/"+key, map[string]string{})
	if err != nil {
		return fail(err)
	}

	host := param(params, "RABBITMQ_HOSTNAME", "localhost")
	port := param(params, "RABBITMQ_PORT", "5672")
	uri := fmt.Sprintf("amqp://%s@%s/",
		url.UserPassword(
			param(params, "RABBITMQ_USERNAME", "DEFAULT_USERNAME"),
			param(params, "RABBITMQ_PASSWORD", "DEFAULT_PASSWORD"),
		),
		net.JoinHostPort(host, port),
	)

	conn, err := amqp.Dial(uri)
	if err != nil {
		return fail(err)
	}
	defer conn.Close()

	queue := "health-check-queue-" + uuid.NewString()
	if err := publishMessage(ctx, conn, queue); err != nil {
		return fail(err)
	}
	if err := consumeMessage(ctx, conn, queue); err != nil {
		return fail(err)
	}

	return Result{Success: true, Message: fmt.Sprintf("host: %s on port: %s", host, port)}
}

func publishMessage(ctx context.Context, conn *amqp.Connection, queue string) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(queue, false, false, false, false, nil); err != nil {
		return err
	}
	return ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		Body: []byte("RabbitMQ Health Checking"),
	})
}

func consumeMessage(ctx context.Context, conn *amqp.Connection, queue string) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(queue, false, false, false, false, nil); err != nil {
		return err
	}
	deliveries, err := ch.ConsumeWithContext(ctx, queue, "", true, false, false, false, nil)
	if err != nil {
		return err
	}

	// Stop after the first delivery.
	select {
	case _, ok := <-deliveries:
		if !ok {
			return errors.New("consume stream closed before first delivery")
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	_, err = ch.QueueDelete(queue, false, false, false)
	return err
}
