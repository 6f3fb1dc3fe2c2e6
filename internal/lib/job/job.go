// Package job provides background job processing using Asynq.
//
// The API enqueues tasks with Client; the worker server started by Start
// consumes them from the same Redis.
package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/blog-backend/internal/config"
	"github.com/deppfellow/blog-backend/internal/repository"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

var ErrNotStarted = errors.New("job service is not configured")

type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	logger *zerolog.Logger
	store  repository.Transactor
}

func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				QueueCritical: 6,
				QueueDefault:  3,
				QueueLow:      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// Start registers the task handlers and starts the worker pool. It does
// not block.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskPostEngagement, j.handlePostEngagementTask)

	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// Stop waits for running tasks and closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}

// EnqueuePostEngagement queues a TaskPostEngagement. It is safe to call on
// a nil JobService, which reports ErrNotStarted.
func (j *JobService) EnqueuePostEngagement(ctx context.Context, p PostEngagementPayload) error {
	if j == nil || j.Client == nil {
		return ErrNotStarted
	}

	task, err := NewPostEngagementTask(p)
	if err != nil {
		return err
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TaskPostEngagement, err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("Enqueued post engagement task")
	return nil
}
