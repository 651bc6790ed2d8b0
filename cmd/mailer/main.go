package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"bimar-service/internal/app/config"
	"bimar-service/internal/app/drivers/logger"
	smtpDriver "bimar-service/internal/app/drivers/mailer"
	"bimar-service/internal/app/drivers/messaging"
	"bimar-service/internal/app/models"
	"bimar-service/internal/app/services/shared/smtp"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// The mailer worker drains the notification intent queue and delivers each
// intent over SMTP. Delivery stays best effort: a failed send is logged and
// the message is dropped, never requeued into a retry storm.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	defer rabbitMQ.Close()

	channel, err := rabbitMQ.Channel()
	if err != nil {
		log.Fatalf("Failed to open RabbitMQ channel: %v", err)
	}
	defer channel.Close()

	queue := internalConfig.App.RabbitMQMailerQueue
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		log.Fatalf("Failed to declare queue %s: %v", queue, err)
	}

	deliveries, err := channel.Consume(queue, "bimar-mailer", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("Failed to start consuming queue %s: %v", queue, err)
	}

	smtpService := smtp.NewSMTPService(smtpDriver.NewSMTPClient(driverConfig))
	limiter := rate.NewLimiter(rate.Limit(internalConfig.App.MailerSendsPerSecond), 1)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("Mailer worker consuming queue %s", queue)

	for {
		select {
		case <-ctx.Done():
			log.Println("Mailer worker exiting")
			return
		case delivery, ok := <-deliveries:
			if !ok {
				log.Println("Delivery channel closed, mailer worker exiting")
				return
			}

			if err := limiter.Wait(ctx); err != nil {
				delivery.Nack(false, true)
				continue
			}

			intent := new(models.NotificationIntent)
			if err := json.Unmarshal(delivery.Body, intent); err != nil {
				log.WithError(err).Warn("Dropping malformed notification intent")
				delivery.Ack(false)
				continue
			}

			if err := smtpService.Send(intent); err != nil {
				log.WithError(err).WithFields(logrus.Fields{
					"kind":      intent.Kind,
					"recipient": intent.RecipientEmail,
				}).Warn("Failed to deliver notification")
			}
			delivery.Ack(false)
		}
	}
}
