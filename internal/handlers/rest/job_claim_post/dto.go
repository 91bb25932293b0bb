package job_claim_post

import "time"

type JobClaimRequest struct {
	JobID string `json:"job_ID"`
}

type JobClaimResponse struct {
	JobID                 string    `json:"job_ID"`
	Status                string    `json:"status"`
	DriverID              int64     `json:"driver_ID"`
	EstimatedCompletionAt time.Time `json:"estimated_completion_time"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
