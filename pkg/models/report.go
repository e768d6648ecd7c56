package models

// Classification is a category/subcategory pair derived from a two-line
// model reply.
type Classification struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

// AnalysisReport is the fixed-shape conversation-quality report produced by
// the AnalyseConversation task. The JSON field names match the template the
// model is instructed to fill in.
type AnalysisReport struct {
	OverallSummary        string                `json:"overallSummary"`
	AgentSummary          string                `json:"agentSummary"`
	CustomerSummary       string                `json:"customerSummary"`
	ConversationalInsight ConversationalInsight `json:"conversationalInsight"`
	OverallPerformance    float64               `json:"overallPerformance"`
	AIInsight             AIInsight             `json:"aiInsight"`
	TimeConsumption       TimeConsumption       `json:"timeConsumption"`
	TopicsDiscussed       map[string]float64    `json:"topicsDiscussed"`
}

// ConversationalInsight holds the per-conversation metrics block.
type ConversationalInsight struct {
	CSATScore           float64 `json:"csatScore"`
	ConversationResult  string  `json:"conversationResult"`
	CustomerSentiment   string  `json:"customerSentiment"`
	OverallCallDuration string  `json:"overallCallDuration"`
}

// AIInsight rates the agent's conduct on a 0-100 scale per dimension.
type AIInsight struct {
	Introduction        float64 `json:"introduction"`
	Recommendation      float64 `json:"recommendation"`
	ThankYouMessage     float64 `json:"thankYouMessage"`
	Attitude            float64 `json:"attitude"`
	CommunicationSkills float64 `json:"communicationSkills"`
}

// TimeConsumption is the talk-time percentage breakdown.
type TimeConsumption struct {
	Agent      float64 `json:"agent"`
	Customer   float64 `json:"customer"`
	NotTalking float64 `json:"notTalking"`
}
