package job_eta

import "time"

// completionOffset — фиксированный горизонт доставки от момента назначения.
const completionOffset = 45 * time.Minute

type CompletionTimeFactory struct{}

func New() *CompletionTimeFactory {
	return &CompletionTimeFactory{}
}

// EstimateCompletion считает ожидаемое время завершения от момента фиксации
// назначения. Время задаём в бизнес-логике, а не в БД.
func (f *CompletionTimeFactory) EstimateCompletion(baseTime time.Time) time.Time {
	return baseTime.Add(completionOffset)
}
