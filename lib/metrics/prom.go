package metrics

func InitPrometheusMetrics() {
	Version = PromVersion()
	Governance = PromGovernanceMetrics()
	API = PromAPIMetrics()
}
