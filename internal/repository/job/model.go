package job

import "time"

type JobDB struct {
	ID                    string
	Status                string
	AssignedDriverID      *int64
	PickupCity            string
	EstimatedCompletionAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
