// Package redis subscribes to order and worker events and triggers backlog
// assignment when one arrives. The events carry no payload the core needs;
// they only signal that an assignment attempt is worth making.
package redis

import (
	"context"
	"errors"
	"log/slog"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	// OrderCreatedChannel announces a freshly created order.
	OrderCreatedChannel = "new_order_arrived"

	// WorkerAvailableChannel announces that a worker regained capacity.
	WorkerAvailableChannel = "worker_available"
)

// EventListener drains the unassigned backlog whenever an event arrives on one
// of the subscribed channels.
type EventListener struct {
	client  *redis.Client
	handler commands.AssignOrderCommandHandler
	logger  *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewEventListener creates a listener over the given redis client.
func NewEventListener(client *redis.Client, handler commands.AssignOrderCommandHandler,
	logger *slog.Logger) (*EventListener, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &EventListener{
		client:  client,
		handler: handler,
		logger:  logger.With("component", "redis_listener"),
	}, nil
}

// Start subscribes to the event channels and processes messages until Stop is
// called. The subscription is confirmed before Start returns.
func (l *EventListener) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(context.Background())

	pubsub := l.client.Subscribe(ctx, OrderCreatedChannel, WorkerAvailableChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		cancel()
		_ = pubsub.Close()
		return err
	}

	l.cancel = cancel
	l.done = make(chan struct{})

	go l.run(runCtx, pubsub)

	l.logger.Info("listener started",
		"channels", []string{OrderCreatedChannel, WorkerAvailableChannel})
	return nil
}

// Stop closes the subscription and waits for in-flight processing to finish.
func (l *EventListener) Stop() {
	if l.cancel == nil {
		return
	}

	l.cancel()
	<-l.done
	l.logger.Info("listener stopped")
}

func (l *EventListener) run(ctx context.Context, pubsub *redis.PubSub) {
	defer close(l.done)
	defer func() {
		_ = pubsub.Close()
	}()

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case message, ok := <-messages:
			if !ok {
				return
			}

			l.logger.Info("event received", "channel", message.Channel,
				"payload", message.Payload)
			l.drainBacklog(ctx)
		}
	}
}

// drainBacklog assigns unassigned orders one by one until the backlog is empty
// or nobody can take the next order. An empty backlog and a missing candidate
// are normal outcomes, not failures.
func (l *EventListener) drainBacklog(ctx context.Context) {
	for {
		command := commands.NewAssignNextOrderCommand()

		err := l.handler.Handle(ctx, command)
		switch {
		case err == nil:
			l.logger.Info("order assigned")
		case errors.Is(err, commands.ErrNoOrderFound):
			return
		case errors.Is(err, services.ErrNoEligibleWorker):
			l.logger.Info("no eligible worker for the next order")
			return
		case errors.Is(err, commands.ErrAssignmentContention):
			l.logger.Warn("assignment contention, leaving the rest to the sweep")
			return
		case errors.Is(err, context.Canceled):
			return
		default:
			l.logger.Error("failed to assign order", "error", err)
			return
		}
	}
}
