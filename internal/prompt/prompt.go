// Package prompt builds the instruction sent to the completion provider for
// each task. Builders are pure: identical inputs always produce byte-identical
// prompts, so completions can be cached safely.
package prompt

import (
	"strings"

	"github.com/harithravi/talklens/pkg/models"
)

// Prompt is a complete instruction for one model call.
type Prompt struct {
	System  string
	User    string
	Context string
}

const adminSentimentSystem = `Given the following admin message, please evaluate the professionalism of the message and provide a score between 0 (unprofessional) and 1 (highly professional). Please just provide the score.`

const customerSentimentLabelSystem = `Given the following customer message, please provide a single word that best describes how the customer is feeling.`

const customerSentimentScoreSystem = `Given the following customer message, please provide the sentiment score between 0 (negative) and 1 (positive). Please just provide the score.`

const topicCheckSystem = `You have a list of topics, each represented by a number.

When a user inputs a message, analyse the message and return a comma-separated list of numbers corresponding to the topics mentioned or matched.

If a topic is not mentioned, do not include its number in the output. Ensure the numbers are returned in order, without spaces.

Topics:
`

const ragQuerySystem = `You are a helpful assistant who provides accurate and concise answers. Use the provided context to respond intelligently to user queries. If no context is provided, answer from general knowledge.`

const analyseConversationSystem = `Analyze the given list of messages and generate a JSON response based on the following template:
{
    "overallSummary": "Insightful overview of the conversation and brief outcome of the conversation",
    "agentSummary": "Summary of agent's actions",
    "customerSummary": "Summary of customer's concerns and requests",
    "conversationalInsight": {
        "csatScore": 0,
        "conversationResult": "Outcome of the conversation",
        "customerSentiment": "Positive/Neutral/Negative",
        "overallCallDuration": "00:00"
    },
    "overallPerformance": 0,
    "aiInsight": {
        "introduction": 0,
        "recommendation": 0,
        "thankYouMessage": 0,
        "attitude": 0,
        "communicationSkills": 0
    },
    "timeConsumption": {
        "agent": 0,
        "customer": 0,
        "notTalking": 0
    },
    "topicsDiscussed": {
        "Topic1": 0,
        "Topic2": 0,
        "Topic3": 0,
        "Topic4": 0
    }
}

Guidelines:
CSAT score and overall performance should be percentages (0-100).
Call duration can be used as overallCallDuration.
The conversation result should be condensed into a few short words.
Time consumption should be in percentage.
AI insight should be rated on a scale of 100 and take consideration of the agent's conversation.
Topics discussed should be telco-related, with at least 4 topics and their percentages.
Provide the response as a valid JSON string, without any Markdown formatting.`

const categorizeIssueSystem = `You are a helpful assistant that classifies customer inquiries for a telecom company.
Here are the categories and subcategories for classification:

Category: Account & Subscriptions
  1) Change credit limit
  2) Change postpaid plan
  3) Rewards-related issue
  4) Voicemail and missed call alerts activation/deactivation
  5) Stop non-Digi/Celcom charges/subscriptions
  6) Reinstate terminated prepaid line for CelcomDigi
  7) Others

Category: Call, Internet, SMS and OTP issues
  1) Call quality
  2) Coverage
  3) Internet slowness
  4) Unable to receive OTP/TAC

Category: Internet Quota
  1) {Insert details}

Category: Reload & Prepaid
  1) Reload-related issue
  2) Others

Category: Roaming
  1) Unable to use/connect roaming
  2) Others

Category: Switching to CelcomDigi
  1) Resubmit port-in request
  2) Others

Category: Billing
  1) I don't agree with my bill (non-scam related)
  2) I don't agree with my bill (suspected scam)
  3) Others

Category: Fibre
  1) No service
  2) Internet slowness (Fibre)
  3) Others (Fibre)
  4) Relocation request

Category: Products & Offerings
  1) {Provide details}

Category: Report a scam/fraud
  1) Scam call
  2) SMS spam/SMS scam
  3) Scam URL/QR Code
  4) Missed calls from international numbers

Category: SIM & Devices
  1) Blocked device due to non-payment of Digi bill
  2) Others

Classify the following inquiry into the most appropriate category and subcategory. Return the classification in the following format:
Category: <category>
Subcategory: <subcategory>`

// AdminSentimentScore asks for a 0-1 professionalism score for an admin message.
func AdminSentimentScore(message string) Prompt {
	return Prompt{System: adminSentimentSystem, User: message}
}

// CustomerSentimentLabel asks for a one-word description of customer feeling.
func CustomerSentimentLabel(message string) Prompt {
	return Prompt{System: customerSentimentLabelSystem, User: message}
}

// CustomerSentimentScore asks for a 0-1 sentiment score for a customer message.
func CustomerSentimentScore(message string) Prompt {
	return Prompt{System: customerSentimentScoreSystem, User: message}
}

// TopicCheck embeds the caller-supplied topic list verbatim into the directive.
func TopicCheck(message string, topics []string) Prompt {
	return Prompt{
		System: topicCheckSystem + strings.Join(topics, "\n"),
		User:   message,
	}
}

// RagQuery assembles retrieved snippet texts into the prompt context, joined
// by newlines. An empty snippet set yields an empty context string; the
// directive still tells the model to answer from general knowledge.
func RagQuery(query string, snippets []models.Snippet) Prompt {
	texts := make([]string, len(snippets))
	for i, s := range snippets {
		texts[i] = s.Text
	}
	return Prompt{
		System:  ragQuerySystem,
		User:    query,
		Context: strings.Join(texts, "\n"),
	}
}

// AnalyseConversation embeds the literal report template the model must fill in.
func AnalyseConversation(chatData string) Prompt {
	return Prompt{System: analyseConversationSystem, User: chatData}
}

// CategorizeIssue embeds the full category/subcategory taxonomy.
func CategorizeIssue(text string) Prompt {
	return Prompt{System: categorizeIssueSystem, User: text}
}
