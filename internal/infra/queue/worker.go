package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// FollowUpSender is the contract the worker needs from the mail layer.
type FollowUpSender interface {
	SendFollowUp(to, name, refNumber, eventType, eventDate string) error
}

type Worker struct {
	Channel *amqp.Channel
	Mailer  FollowUpSender
}

func NewWorker(ch *amqp.Channel, mailer FollowUpSender) *Worker {
	return &Worker{
		Channel: ch,
		Mailer:  mailer,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadCreatedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] invalid JSON: %s", err)
				// Malformed message. Reject without requeue so the queue
				// doesn't jam; it lands on the DLQ.
				d.Nack(false, false)
				continue
			}

			if payload.Email == "" {
				// Leads without an email can't get a follow-up. Ack and move on.
				log.Printf("⚠️ [WORKER] lead %s has no email, skipping follow-up", payload.RefNumber)
				d.Ack(false)
				continue
			}

			log.Printf("📥 [WORKER] sending follow-up for %s (%s)", payload.RefNumber, payload.Email)

			if err := w.Mailer.SendFollowUp(payload.Email, payload.ClientName, payload.RefNumber, payload.EventType, payload.EventDate); err != nil {
				log.Printf("❌ [WORKER] follow-up email failed for %s: %s", payload.RefNumber, err)
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] follow-up sent for %s", payload.RefNumber)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker running, waiting on queue '%s'", queueName)
	<-forever
}
