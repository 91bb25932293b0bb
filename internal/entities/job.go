package entities

import "time"

type Job struct {
	ID                    string
	Status                JobStatusType
	AssignedDriverID      *int64
	PickupCity            string
	EstimatedCompletionAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type JobStatusType string

const (
	JobPending    JobStatusType = "pending"
	JobAssigned   JobStatusType = "assigned"
	JobInProgress JobStatusType = "in_progress"
	JobCompleted  JobStatusType = "completed"
	JobCancelled  JobStatusType = "cancelled"
)

func (s JobStatusType) String() string {
	return string(s)
}

type JobModify struct {
	ID                    *string
	Status                *JobStatusType
	AssignedDriverID      *int64
	PickupCity            *string
	EstimatedCompletionAt *time.Time
}

type JobEventType string

const (
	JobEventCreated   JobEventType = "job.created"
	JobEventCancelled JobEventType = "job.cancelled"
)

func (t JobEventType) String() string {
	return string(t)
}

type JobEvent struct {
	JobID      string
	Type       JobEventType
	PickupCity string
}
