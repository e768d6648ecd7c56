package models

// TaskKind identifies one of the supported insight tasks. Exactly one kind
// applies per request, and it alone decides how the model reply is parsed.
type TaskKind string

const (
	TaskAdminSentiment        TaskKind = "admin_sentiment"
	TaskCustomerSentiment     TaskKind = "customer_sentiment"
	TaskTopicCheck            TaskKind = "topic_check"
	TaskRagQuery              TaskKind = "rag_query"
	TaskAnalyseConversation   TaskKind = "analyse_conversation"
	TaskCategorizeIssue       TaskKind = "categorize_issue"
	TaskTranscribeAndClassify TaskKind = "transcribe_and_classify"
)
