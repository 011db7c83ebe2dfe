// Package mailer implements the notification port over SMTP using go-mail.
// Notifications are best effort: callers fire them after commit and ignore
// failures, so every send error is logged here.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/schedule"
	"fieldops/internal/core/domain/model/worker"
	"fieldops/internal/pkg/errs"

	"github.com/wneessen/go-mail"
)

// MailNotifier sends worker-facing notifications through an SMTP client.
type MailNotifier struct {
	client *mail.Client
	from   string
	logger *slog.Logger
}

// NewMailNotifier creates a notifier sending from the given address.
func NewMailNotifier(client *mail.Client, from string, logger *slog.Logger) (*MailNotifier, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if from == "" {
		return nil, errs.NewValueIsRequiredError("from")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &MailNotifier{
		client: client,
		from:   from,
		logger: logger.With("component", "mail_notifier"),
	}, nil
}

// NotifyOrderAssigned mails the assignee about a new order on their plate.
func (n *MailNotifier) NotifyOrderAssigned(ctx context.Context, aggregate *order.Order,
	assignee *worker.Worker) error {
	subject := fmt.Sprintf("New order assigned: %s", aggregate.ID())
	body := fmt.Sprintf(
		"Hi %s,\n\nOrder %s (%s at %s, %s) was assigned to you for %s.\n",
		assignee.Name(),
		aggregate.ID(),
		aggregate.ServiceType(),
		aggregate.Street(),
		aggregate.City(),
		aggregate.RequestedDate().Format("2006-01-02"),
	)

	return n.send(ctx, assignee.Email(), subject, body)
}

// NotifyOrderFinished mails the assignee that their order is closed out.
func (n *MailNotifier) NotifyOrderFinished(ctx context.Context, aggregate *order.Order,
	assignee *worker.Worker) error {
	subject := fmt.Sprintf("Order finished: %s", aggregate.ID())
	body := fmt.Sprintf(
		"Hi %s,\n\nOrder %s (%s at %s, %s) is marked finished.\n",
		assignee.Name(),
		aggregate.ID(),
		aggregate.ServiceType(),
		aggregate.Street(),
		aggregate.City(),
	)

	return n.send(ctx, assignee.Email(), subject, body)
}

// NotifyLeaveReviewed mails the requester the review outcome.
func (n *MailNotifier) NotifyLeaveReviewed(ctx context.Context, request *schedule.LeaveRequest,
	requester *worker.Worker) error {
	subject := fmt.Sprintf("Leave request %s", request.Status())
	body := fmt.Sprintf(
		"Hi %s,\n\nYour leave request for %s to %s was %s.\n",
		requester.Name(),
		request.Period().Start().Format("2006-01-02"),
		request.Period().End().Format("2006-01-02"),
		request.Status(),
	)

	return n.send(ctx, requester.Email(), subject, body)
}

func (n *MailNotifier) send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		n.logger.ErrorContext(ctx, "invalid sender address", "error", err)
		return err
	}
	if err := msg.To(to); err != nil {
		n.logger.ErrorContext(ctx, "invalid recipient address", "to", to, "error", err)
		return err
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		n.logger.ErrorContext(ctx, "failed to send notification", "to", to, "error", err)
		return err
	}

	return nil
}
