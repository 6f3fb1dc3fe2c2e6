package job

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// TaskPostEngagement is queued after a comment or like is created.
const TaskPostEngagement = "post:engagement"

type EngagementKind string

const (
	EngagementComment EngagementKind = "comment"
	EngagementLike    EngagementKind = "like"
)

// PostEngagementPayload identifies the new comment or like and who made it.
type PostEngagementPayload struct {
	Kind     EngagementKind `json:"kind"`
	PostID   int64          `json:"post_id"`
	UserID   int64          `json:"user_id"`
	EntityID int64          `json:"entity_id"`
}

func NewPostEngagementTask(p PostEngagementPayload) (*asynq.Task, error) {
	if p.Kind != EngagementComment && p.Kind != EngagementLike {
		return nil, fmt.Errorf("unknown engagement kind %q", p.Kind)
	}

	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskPostEngagement,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueLow),
		asynq.Timeout(30*time.Second),
	), nil
}
