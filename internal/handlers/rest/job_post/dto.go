package job_post

type JobCreate struct {
	JobID      string `json:"job_ID"`
	PickupCity string `json:"pickup_city"`
}

type JobCreateResponse struct {
	JobID      string `json:"job_ID"`
	Status     string `json:"status"`
	PickupCity string `json:"pickup_city"`
}
