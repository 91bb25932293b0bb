package job_get

import "time"

type JobResponse struct {
	JobID                 string     `json:"job_ID"`
	Status                string     `json:"status"`
	PickupCity            string     `json:"pickup_city"`
	DriverID              *int64     `json:"driver_ID,omitempty"`
	EstimatedCompletionAt *time.Time `json:"estimated_completion_time,omitempty"`
}
