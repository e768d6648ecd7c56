// Package insight orchestrates the conversation-intelligence tasks: it builds
// the prompt for a task, calls the completion provider, parses the reply, and
// coordinates the retrieval, transcription, cache, and store boundaries.
package insight

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/harithravi/talklens/internal/cache"
	"github.com/harithravi/talklens/internal/parse"
	"github.com/harithravi/talklens/internal/prompt"
	"github.com/harithravi/talklens/internal/retrieval"
	"github.com/harithravi/talklens/internal/store"
	"github.com/harithravi/talklens/internal/transcribe"
	"github.com/harithravi/talklens/pkg/models"
)

// ErrAudioTooLarge is returned when an uploaded audio payload exceeds the
// transcription size ceiling. The transcription gateway is never called.
var ErrAudioTooLarge = errors.New("audio payload exceeds size limit")

// maxAudioBytes is the upload ceiling for /transcribeAndClassify payloads.
const maxAudioBytes = 10 << 20

// reportName is the fixed artifact name conversation reports are stored under.
// Each analysis run replaces the previous report.
const reportName = "conversation-analysis"

const (
	completionTTL = 15 * time.Minute
	jobStatusTTL  = 30 * time.Minute
)

// SentimentResult pairs the banded or model-provided label with its numeric score.
type SentimentResult struct {
	Label string
	Score float64
}

// Service orchestrates insight tasks across the provider, retrieval,
// transcription, store, and cache boundaries.
type Service struct {
	provider    models.CompletionProvider
	retriever   retrieval.Client
	transcriber transcribe.Client
	store       store.Store
	cache       cache.Cache
	timeout     time.Duration
}

// New creates a new insight Service.
func New(provider models.CompletionProvider, retriever retrieval.Client, transcriber transcribe.Client, st store.Store, ca cache.Cache, timeout time.Duration) *Service {
	return &Service{
		provider:    provider,
		retriever:   retriever,
		transcriber: transcriber,
		store:       st,
		cache:       ca,
		timeout:     timeout,
	}
}

// AdminSentiment scores the professionalism of an admin message and bands the
// score into a label: <= 0.4 is "Not Professional", below 0.6 is "Neutral",
// 0.6 and above is "Professional".
func (s *Service) AdminSentiment(ctx context.Context, message string) (SentimentResult, error) {
	raw, err := s.complete(ctx, models.TaskAdminSentiment, prompt.AdminSentimentScore(message))
	if err != nil {
		return SentimentResult{}, err
	}
	score, err := parse.Score(raw)
	if err != nil {
		return SentimentResult{}, err
	}
	return SentimentResult{Label: professionalismBand(score), Score: score}, nil
}

// CustomerSentiment asks the model twice: once for a one-word feeling label
// and once for a 0-1 sentiment score.
func (s *Service) CustomerSentiment(ctx context.Context, message string) (SentimentResult, error) {
	rawLabel, err := s.complete(ctx, models.TaskCustomerSentiment, prompt.CustomerSentimentLabel(message))
	if err != nil {
		return SentimentResult{}, err
	}
	label, err := parse.Label(rawLabel)
	if err != nil {
		return SentimentResult{}, err
	}

	rawScore, err := s.complete(ctx, models.TaskCustomerSentiment, prompt.CustomerSentimentScore(message))
	if err != nil {
		return SentimentResult{}, err
	}
	score, err := parse.Score(rawScore)
	if err != nil {
		return SentimentResult{}, err
	}

	return SentimentResult{Label: label, Score: score}, nil
}

// CheckTopics matches a message against a caller-supplied topic list and
// returns the model's comma-separated list of matched topic numbers.
func (s *Service) CheckTopics(ctx context.Context, message string, topics []string) (string, error) {
	raw, err := s.complete(ctx, models.TaskTopicCheck, prompt.TopicCheck(message, topics))
	if err != nil {
		return "", err
	}
	return parse.Label(raw)
}

// Answer runs retrieval for the query, assembles the matches into the prompt
// context, and returns the model's answer. Zero retrieval matches is not an
// error; the model answers from general knowledge.
func (s *Service) Answer(ctx context.Context, query string) (string, error) {
	snippets, err := s.retriever.Search(ctx, query)
	if err != nil {
		return "", err
	}

	raw, err := s.complete(ctx, models.TaskRagQuery, prompt.RagQuery(query, snippets))
	if err != nil {
		return "", err
	}
	return parse.Label(raw)
}

// AnalyseConversation generates a conversation-quality report from transcript
// data. The model reply is validated as a report before this returns; the
// validated raw JSON is then persisted in the background, so a persistence
// failure never surfaces to the caller.
func (s *Service) AnalyseConversation(ctx context.Context, chatData string) error {
	raw, err := s.complete(ctx, models.TaskAnalyseConversation, prompt.AnalyseConversation(chatData))
	if err != nil {
		return err
	}
	if _, err := parse.Report(raw); err != nil {
		return err
	}

	job := models.ReportJob{
		ID:        uuid.New(),
		Status:    models.JobStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	_ = s.cache.SetJobStatus(ctx, job.ID, models.JobStatusPending, jobStatusTTL)

	go s.persistReport(job.ID, []byte(raw))

	return nil
}

// persistReport writes the validated report JSON in a background goroutine.
// It recovers from panics and always records a terminal job status.
func (s *Service) persistReport(jobID uuid.UUID, body []byte) {
	ctx := context.Background()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in persistReport", "error", r, "job_id", jobID)
			_ = s.cache.SetJobStatus(ctx, jobID, models.JobStatusFailed, jobStatusTTL)
		}
	}()

	_ = s.cache.SetJobStatus(ctx, jobID, models.JobStatusRunning, jobStatusTTL)

	if err := s.store.SaveReport(ctx, reportName, body); err != nil {
		slog.Error("persisting report", "error", err, "job_id", jobID)
		_ = s.cache.SetJobStatus(ctx, jobID, models.JobStatusFailed, jobStatusTTL)
		return
	}

	_ = s.cache.SetJobStatus(ctx, jobID, models.JobStatusCompleted, jobStatusTTL)
}

// Report returns the most recently persisted conversation report, or
// store.ErrNotFound when no analysis has completed yet.
func (s *Service) Report(ctx context.Context) ([]byte, error) {
	return s.store.GetReport(ctx, reportName)
}

// CategorizeIssue classifies a customer inquiry into the telecom taxonomy.
func (s *Service) CategorizeIssue(ctx context.Context, text string) (models.Classification, error) {
	raw, err := s.complete(ctx, models.TaskCategorizeIssue, prompt.CategorizeIssue(text))
	if err != nil {
		return models.Classification{}, err
	}
	return parse.Classification(raw)
}

// TranscribeAndClassify transcribes an audio recording and classifies the
// transcript. Payloads over the size ceiling are rejected before the
// transcription gateway is called.
func (s *Service) TranscribeAndClassify(ctx context.Context, audio []byte, filename string) (string, models.Classification, error) {
	if len(audio) > maxAudioBytes {
		return "", models.Classification{}, ErrAudioTooLarge
	}

	transcript, err := s.transcriber.Transcribe(ctx, audio, filename)
	if err != nil {
		return "", models.Classification{}, err
	}

	classification, err := s.CategorizeIssue(ctx, transcript)
	if err != nil {
		return "", models.Classification{}, err
	}

	return transcript, classification, nil
}

// complete runs one model call for a task, consulting the completion cache
// first. Prompt builders are deterministic, so the prompt digest fully
// identifies the call.
func (s *Service) complete(ctx context.Context, task models.TaskKind, p prompt.Prompt) (string, error) {
	key := cache.CompletionKey(string(task), promptDigest(p))

	if cached, found, err := s.cache.Get(ctx, key); err == nil && found {
		return string(cached), nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.provider.Complete(callCtx, models.CompletionRequest{
		System:  p.System,
		User:    p.User,
		Context: p.Context,
	})
	if err != nil {
		return "", err
	}

	_ = s.cache.Set(ctx, key, []byte(reply), completionTTL)

	return reply, nil
}

// promptDigest hashes all three prompt parts with length prefixes so that
// distinct (system, user, context) triples can never collide.
func promptDigest(p prompt.Prompt) string {
	h := sha256.New()
	for _, part := range []string{p.System, p.User, p.Context} {
		fmt.Fprintf(h, "%d:", len(part))
		h.Write([]byte(part))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// professionalismBand maps a 0-1 score to its label. Thresholds are closed
// and ordered: 0.4 itself is "Not Professional", 0.6 itself is "Professional".
func professionalismBand(score float64) string {
	switch {
	case score <= 0.4:
		return "Not Professional"
	case score < 0.6:
		return "Neutral"
	default:
		return "Professional"
	}
}
