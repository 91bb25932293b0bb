package job

import "dispatch/internal/entities"

func ToDomain(j *JobDB) *entities.Job {
	if j == nil {
		return nil
	}
	return &entities.Job{
		ID:                    j.ID,
		Status:                entities.JobStatusType(j.Status),
		AssignedDriverID:      j.AssignedDriverID,
		PickupCity:            j.PickupCity,
		EstimatedCompletionAt: j.EstimatedCompletionAt,
		CreatedAt:             j.CreatedAt,
		UpdatedAt:             j.UpdatedAt,
	}
}
