// Package analysis contains the simulated emotion analyzers. There is no
// real inference here: results are pseudo-random picks shaped like the
// output of a model, matching the original product.
package analysis

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/dhairyaaprajapati/mindsync/internal/models"
)

// chatEmotions are the labels the chat analyzer picks from.
var chatEmotions = []string{"stress", "anxiety", "sadness", "happiness", "neutral", "concern"}

// chatIndicators are cues attributed to a message, in fixed priority order.
var chatIndicators = []string{
	"negative sentiment detected",
	"high stress keywords",
	"anxiety patterns",
	"positive outlook",
	"seeking support",
	"emotional vulnerability",
}

// chatResponses maps the detected emotion to the canned assistant reply.
var chatResponses = map[string]string{
	"stress":    "I notice some signs of stress in your message. It's completely normal to feel this way. Would you like to explore what might be contributing to these feelings?",
	"anxiety":   "I can sense some anxiety in your words. Thank you for sharing this with me. Can you tell me more about what's been causing you concern?",
	"sadness":   "I hear that you might be going through a difficult time. Your feelings are valid, and it's brave of you to express them. How long have you been feeling this way?",
	"happiness": "It's wonderful to hear positivity in your message! Maintaining good mental health is just as important as addressing concerns. What's been going well for you?",
	"neutral":   "Thank you for sharing. I'd like to understand more about your current situation. How would you describe your overall mood lately?",
	"concern":   "I appreciate your openness. It sounds like there might be some underlying concerns. Would you feel comfortable exploring these feelings further?",
}

// Greeting is the assistant's opening message of a chat session.
const Greeting = "Hello! I'm here to help analyze your emotional well-being through our conversation. Feel free to share what's on your mind today."

// Emotion is the per-message result of the chat analyzer.
type Emotion struct {
	Primary    string
	Confidence int
	Indicators []string
}

// ChatAnalyzer simulates per-message emotion detection with a configurable
// latency, mimicking a remote model call.
type ChatAnalyzer struct {
	rnd   *rand.Rand
	delay time.Duration
}

// NewChatAnalyzer returns an analyzer using the given randomness source.
// delay is the simulated inference latency per message; zero disables it.
func NewChatAnalyzer(rnd *rand.Rand, delay time.Duration) *ChatAnalyzer {
	return &ChatAnalyzer{rnd: rnd, delay: delay}
}

// AnalyzeMessage "detects" the emotion of one message: a random label, a
// confidence in [60,99] and one to three indicator cues. The text itself is
// ignored, as in the original. Honors ctx during the simulated delay.
func (a *ChatAnalyzer) AnalyzeMessage(ctx context.Context, text string) (Emotion, error) {
	if err := simulateDelay(ctx, a.delay); err != nil {
		return Emotion{}, err
	}

	primary := chatEmotions[a.rnd.Intn(len(chatEmotions))]
	confidence := a.rnd.Intn(40) + 60
	indicators := chatIndicators[:a.rnd.Intn(3)+1]

	return Emotion{Primary: primary, Confidence: confidence, Indicators: indicators}, nil
}

// Response returns the canned assistant reply for e.
func Response(e Emotion) string {
	if r, ok := chatResponses[e.Primary]; ok {
		return r
	}
	return chatResponses["neutral"]
}

// SessionStatus is the running classification of a chat session.
type SessionStatus string

const (
	StatusStable          SessionStatus = "stable"
	StatusMonitoring      SessionStatus = "monitoring"
	StatusAttentionNeeded SessionStatus = "attention_needed"
)

// Summary accumulates per-message emotions into session-level scores.
// Scores stay within [0,100].
type Summary struct {
	Stress   int
	Anxiety  int
	Mood     int
	Messages int
}

// Update folds one detected emotion into the running scores.
func (s *Summary) Update(e Emotion) {
	switch e.Primary {
	case "stress":
		s.Stress = min(100, s.Stress+15)
	case "anxiety":
		s.Anxiety = min(100, s.Anxiety+12)
	}

	if e.Primary == "happiness" || e.Primary == "neutral" {
		s.Mood = min(100, s.Mood+10)
	} else {
		s.Mood = max(0, s.Mood-5)
	}

	s.Messages++
}

// Overall classifies the session from the stress/anxiety average.
func (s *Summary) Overall() SessionStatus {
	switch avg := (s.Stress + s.Anxiety) / 2; {
	case avg > 60:
		return StatusAttentionNeeded
	case avg > 30:
		return StatusMonitoring
	default:
		return StatusStable
	}
}

// RiskLevel maps the session classification onto the history risk scale.
func (s *Summary) RiskLevel() models.RiskLevel {
	switch s.Overall() {
	case StatusAttentionNeeded:
		return models.RiskHigh
	case StatusMonitoring:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}

// Entry builds the history entry recorded at the end of a chat session.
// RecordedAt is left zero; the session service stamps it at append time.
func (s *Summary) Entry() models.AnalysisEntry {
	return models.AnalysisEntry{
		Kind:           models.AnalysisKindChat,
		RiskLevel:      s.RiskLevel(),
		Summary:        fmt.Sprintf("Chat session over %d messages: stress %d, anxiety %d, mood %d (%s)", s.Messages, s.Stress, s.Anxiety, s.Mood, s.Overall()),
		Recommendation: recommendationFor(s.RiskLevel()),
	}
}

func recommendationFor(level models.RiskLevel) string {
	switch level {
	case models.RiskHigh:
		return "Consider reaching out to a mental health professional"
	case models.RiskModerate:
		return "Consider stress management techniques"
	default:
		return "Keep up your current self-care routine"
	}
}

// simulateDelay blocks for d or until ctx is done.
func simulateDelay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
