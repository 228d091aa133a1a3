package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tourtravels/config"
	"tourtravels/services/mailer"
	"tourtravels/services/tasks"

	"github.com/hibiken/asynq"
)

// InitMailWorker runs the async mail worker in background. Delivery errors
// are logged and retried by the queue; they are never surfaced to the
// request that produced the submission.
func InitMailWorker(sender mailer.MailSender) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeEnquiryMail, handleEnquiryMailTask(sender))

	go func() {
		log.Println("[MailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MailWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleEnquiryMailTask(sender mailer.MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.EnquiryMailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[MailWorker] invalid payload: %v", err)
			return err
		}

		if err := sender.Send(p.To, p.Subject, p.Text, p.HTML); err != nil {
			log.Printf("[MailWorker] failed to send enquiry mail for submission %s: %v", p.SubmissionID, err)
			return err
		}
		return nil
	}
}
