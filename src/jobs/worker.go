package jobs

import (
	"log"

	"Backend-PlacementCell/src/database"
	"Backend-PlacementCell/src/services/mailer"

	"github.com/hibiken/asynq"
)

// StartWorker runs the background email worker. It blocks, so run it in a
// goroutine. Without Redis there is nothing to consume and it returns
// immediately; the HTTP API works fine without it.
func StartWorker() {
	if database.RedisClient == nil || database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Email worker not started.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	if err := mailer.RegisterHandlers(mux); err != nil {
		log.Println("⚠️ Email worker not started:", err)
		return
	}

	log.Println("✅ Email worker started")
	if err := srv.Run(mux); err != nil {
		log.Println("❌ Email worker stopped:", err)
	}
}
