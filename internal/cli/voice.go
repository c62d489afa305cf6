package cli

import (
	"context"
	"fmt"

	"github.com/dhairyaaprajapati/mindsync/internal/models"
	"github.com/fatih/color"
)

func riskColor(level models.RiskLevel) *color.Color {
	switch level {
	case models.RiskHigh:
		return color.New(color.FgRed)
	case models.RiskModerate:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

// Voice runs one simulated voice analysis and appends the result to the
// user's history. There is no actual audio capture; the "recording" step
// only paces the interaction like the original UI did.
func (a *App) Voice(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return
	}

	if _, err := GetSimpleText(a.reader, "Recording... press Enter to stop", a.out); err != nil {
		return
	}

	fmt.Fprintln(a.out, "Analyzing voice sample...")
	result, err := a.voice.Analyze(ctx)
	if err != nil {
		a.log.Error(ctx, "voice analysis failed", "error", err)
		return
	}

	fmt.Fprintf(a.out, "Risk level: %s\n", riskColor(result.RiskLevel).Sprint(result.RiskLevel))
	fmt.Fprintf(a.out, "Emotions:   stress %d, anxiety %d, sadness %d, anger %d, happiness %d, neutral %d\n",
		result.Emotions.Stress, result.Emotions.Anxiety, result.Emotions.Sadness,
		result.Emotions.Anger, result.Emotions.Happiness, result.Emotions.Neutral)
	fmt.Fprintf(a.out, "Voice:      pitch variation %d, speech rate %d wpm, energy %d, pauses %d\n",
		result.Metrics.PitchVariation, result.Metrics.SpeechRate,
		result.Metrics.VoiceEnergy, result.Metrics.PauseFrequency)
	for _, ind := range result.Indicators {
		fmt.Fprintf(a.out, "  - %s\n", ind)
	}
	fmt.Fprintf(a.out, "Recommendation: %s\n", result.Recommendation)

	if err := a.sessions.AppendAnalysis(ctx, result.Entry()); err != nil {
		a.log.Error(ctx, "failed to record voice analysis", "error", err)
		fmt.Fprintln(a.out, "Could not save this analysis to your history.")
		return
	}
	fmt.Fprintln(a.out, "Analysis saved to your history.")
}
