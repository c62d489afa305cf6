package analysis

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/dhairyaaprajapati/mindsync/internal/models"
)

// voiceIndicators are the cues reported with every voice analysis,
// as in the original.
var voiceIndicators = []string{
	"Irregular speech patterns detected",
	"Voice tension indicators present",
	"Emotional stress markers found",
	"Breathing pattern variations",
}

// VoiceEmotions holds the per-emotion scores of a voice analysis, 0–100.
type VoiceEmotions struct {
	Stress    int
	Anxiety   int
	Sadness   int
	Anger     int
	Happiness int
	Neutral   int
}

// VoiceMetrics holds the simulated acoustic measurements. SpeechRate is in
// words per minute, the rest are relative scores.
type VoiceMetrics struct {
	PitchVariation int
	SpeechRate     int
	VoiceEnergy    int
	PauseFrequency int
}

// VoiceResult is the outcome of one simulated voice analysis.
type VoiceResult struct {
	Emotions       VoiceEmotions
	Metrics        VoiceMetrics
	Indicators     []string
	Recommendation string
	RiskLevel      models.RiskLevel
}

// VoiceAnalyzer simulates voice-based emotion analysis with a configurable
// latency.
type VoiceAnalyzer struct {
	rnd   *rand.Rand
	delay time.Duration
}

// NewVoiceAnalyzer returns an analyzer using the given randomness source.
// delay is the simulated inference latency; zero disables it.
func NewVoiceAnalyzer(rnd *rand.Rand, delay time.Duration) *VoiceAnalyzer {
	return &VoiceAnalyzer{rnd: rnd, delay: delay}
}

// Analyze produces a mock voice analysis in the original product's value
// ranges. Unlike the original, the risk level is derived from the generated
// emotion scores instead of being hard-coded, so the result is internally
// consistent. Honors ctx during the simulated delay.
func (a *VoiceAnalyzer) Analyze(ctx context.Context) (*VoiceResult, error) {
	if err := simulateDelay(ctx, a.delay); err != nil {
		return nil, err
	}

	emotions := VoiceEmotions{
		Stress:    a.rnd.Intn(40) + 30,
		Anxiety:   a.rnd.Intn(35) + 25,
		Sadness:   a.rnd.Intn(30) + 20,
		Anger:     a.rnd.Intn(25) + 10,
		Happiness: a.rnd.Intn(40) + 30,
		Neutral:   a.rnd.Intn(50) + 30,
	}
	metrics := VoiceMetrics{
		PitchVariation: a.rnd.Intn(30) + 50,
		SpeechRate:     a.rnd.Intn(40) + 120,
		VoiceEnergy:    a.rnd.Intn(35) + 45,
		PauseFrequency: a.rnd.Intn(20) + 15,
	}

	level := voiceRiskLevel(emotions)

	return &VoiceResult{
		Emotions:       emotions,
		Metrics:        metrics,
		Indicators:     voiceIndicators,
		Recommendation: recommendationFor(level),
		RiskLevel:      level,
	}, nil
}

// voiceRiskLevel classifies the average of the negative emotion scores on
// the same thresholds the chat summary uses.
func voiceRiskLevel(e VoiceEmotions) models.RiskLevel {
	switch avg := (e.Stress + e.Anxiety + e.Sadness) / 3; {
	case avg > 60:
		return models.RiskHigh
	case avg > 30:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}

// Entry builds the history entry for r. RecordedAt is left zero; the
// session service stamps it at append time.
func (r *VoiceResult) Entry() models.AnalysisEntry {
	return models.AnalysisEntry{
		Kind:           models.AnalysisKindVoice,
		RiskLevel:      r.RiskLevel,
		Summary:        fmt.Sprintf("Voice analysis: stress %d, anxiety %d, sadness %d, happiness %d", r.Emotions.Stress, r.Emotions.Anxiety, r.Emotions.Sadness, r.Emotions.Happiness),
		Recommendation: r.Recommendation,
	}
}
