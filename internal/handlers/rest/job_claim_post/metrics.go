package job_claim_post

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ClaimOutcomeTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "job_claim_outcome_total",
		Help: "Total number of job claim attempts by outcome",
	},
	[]string{"outcome"},
)

const (
	outcomeWon        = "won"
	outcomeConflict   = "conflict"
	outcomeIneligible = "ineligible"
	outcomeNotFound   = "not_found"
	outcomeBadRequest = "bad_request"
	outcomeError      = "error"
)
