package mailer

import (
	"context"

	"bimar-service/internal/app/contracts"
	"bimar-service/internal/app/models"
	"bimar-service/internal/pkg/constvars"
	"bimar-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type mailerService struct {
	channel *amqp091.Channel
	queue   string
}

// NewMailerService declares the mailer queue and returns a publisher bound
// to it. Publishing is fire-and-forget from the caller's point of view.
func NewMailerService(rabbitMQConnection *amqp091.Connection, queue string) (contracts.MailerService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &mailerService{
		channel: channel,
		queue:   queue,
	}, nil
}

func (s *mailerService) PublishIntent(ctx context.Context, intent *models.NotificationIntent) error {
	body, err := json.Marshal(intent)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
		},
	}

	err = s.channel.PublishWithContext(ctx, "", s.queue, false, false, message)
	if err != nil {
		return exceptions.ErrMailerPublish(err)
	}
	return nil
}
