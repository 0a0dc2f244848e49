package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

type GovernanceMetrics struct {
	ProposalsCreated  metrics.Counter
	ProposalsExecuted metrics.Counter
	ProposalsCanceled metrics.Counter
	ProposalsCleaned  metrics.Counter
	VotesCast         metrics.Counter
}

func (g *GovernanceMetrics) AddProposalsCreated() {
	g.ProposalsCreated.Add(1)
}
func (g *GovernanceMetrics) AddProposalsExecuted() {
	g.ProposalsExecuted.Add(1)
}
func (g *GovernanceMetrics) AddProposalsCanceled() {
	g.ProposalsCanceled.Add(1)
}
func (g *GovernanceMetrics) AddProposalsCleaned() {
	g.ProposalsCleaned.Add(1)
}
func (g *GovernanceMetrics) AddVotesCast() {
	g.VotesCast.Add(1)
}

func PromGovernanceMetrics() *GovernanceMetrics {
	return &GovernanceMetrics{
		ProposalsCreated: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: GovernanceSubsystem,
			Name:      "proposals_created_total",
			Help:      "Total number of proposals created.",
		}, []string{}),
		ProposalsExecuted: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: GovernanceSubsystem,
			Name:      "proposals_executed_total",
			Help:      "Total number of proposals executed.",
		}, []string{}),
		ProposalsCanceled: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: GovernanceSubsystem,
			Name:      "proposals_canceled_total",
			Help:      "Total number of proposals canceled.",
		}, []string{}),
		ProposalsCleaned: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: GovernanceSubsystem,
			Name:      "proposals_cleaned_total",
			Help:      "Total number of proposal records erased by cleanup.",
		}, []string{}),
		VotesCast: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: GovernanceSubsystem,
			Name:      "votes_cast_total",
			Help:      "Total number of votes cast.",
		}, []string{}),
	}
}

func NopGovernanceMetrics() *GovernanceMetrics {
	return &GovernanceMetrics{
		ProposalsCreated:  discard.NewCounter(),
		ProposalsExecuted: discard.NewCounter(),
		ProposalsCanceled: discard.NewCounter(),
		ProposalsCleaned:  discard.NewCounter(),
		VotesCast:         discard.NewCounter(),
	}
}
