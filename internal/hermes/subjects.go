package hermes

const (
	SubjectDecisionRequest = "fuzzy.decision.request"
	SubjectAdvisorStats    = "fuzzy.advisor.stats"

	StreamName   = "FUZZY_EVENTS"
	StreamMaxAge = "168h" // 7 days
)

func SubjectDecisionMade(decisionID string) string { return "fuzzy.decision." + decisionID + ".made" }
