package analysis

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/dhairyaaprajapati/mindsync/internal/models"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeMessage_ResultWithinBounds(t *testing.T) {
	a := NewChatAnalyzer(rand.New(rand.NewSource(1)), 0)
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		e, err := a.AnalyzeMessage(ctx, "feeling okay today")
		require.NoError(t, err)

		require.Contains(t, chatEmotions, e.Primary)
		require.GreaterOrEqual(t, e.Confidence, 60)
		require.LessOrEqual(t, e.Confidence, 99)
		require.GreaterOrEqual(t, len(e.Indicators), 1)
		require.LessOrEqual(t, len(e.Indicators), 3)
	}
}

func TestAnalyzeMessage_CancelledContext(t *testing.T) {
	a := NewChatAnalyzer(rand.New(rand.NewSource(1)), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.AnalyzeMessage(ctx, "hello")
	require.ErrorIs(t, err, context.Canceled)
}

func TestResponse_KnownEmotionsAndFallback(t *testing.T) {
	for _, emotion := range chatEmotions {
		require.NotEmpty(t, Response(Emotion{Primary: emotion}))
	}
	require.Equal(t, chatResponses["neutral"], Response(Emotion{Primary: "unknown"}))
}

func TestSummary_Update(t *testing.T) {
	tests := []struct {
		name     string
		emotions []string
		want     Summary
	}{
		{
			name:     "stress raises stress and lowers mood",
			emotions: []string{"stress"},
			want:     Summary{Stress: 15, Anxiety: 0, Mood: 0, Messages: 1},
		},
		{
			name:     "anxiety raises anxiety",
			emotions: []string{"anxiety"},
			want:     Summary{Stress: 0, Anxiety: 12, Mood: 0, Messages: 1},
		},
		{
			name:     "happiness raises mood",
			emotions: []string{"happiness", "neutral"},
			want:     Summary{Stress: 0, Anxiety: 0, Mood: 20, Messages: 2},
		},
		{
			name:     "mood goes down but not below zero",
			emotions: []string{"happiness", "sadness", "sadness", "sadness"},
			want:     Summary{Stress: 0, Anxiety: 0, Mood: 0, Messages: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Summary
			for _, e := range tt.emotions {
				s.Update(Emotion{Primary: e})
			}
			require.Equal(t, tt.want, s)
		})
	}
}

func TestSummary_ScoresAreClamped(t *testing.T) {
	var s Summary
	for i := 0; i < 20; i++ {
		s.Update(Emotion{Primary: "stress"})
		s.Update(Emotion{Primary: "anxiety"})
	}
	require.Equal(t, 100, s.Stress)
	require.Equal(t, 100, s.Anxiety)
	require.Equal(t, 0, s.Mood)
}

func TestSummary_OverallAndRiskLevel(t *testing.T) {
	tests := []struct {
		stress, anxiety int
		wantStatus      SessionStatus
		wantRisk        models.RiskLevel
	}{
		{0, 0, StatusStable, models.RiskLow},
		{30, 30, StatusStable, models.RiskLow},
		{45, 20, StatusMonitoring, models.RiskModerate},
		{60, 62, StatusAttentionNeeded, models.RiskHigh},
		{100, 100, StatusAttentionNeeded, models.RiskHigh},
	}

	for _, tt := range tests {
		s := Summary{Stress: tt.stress, Anxiety: tt.anxiety}
		require.Equal(t, tt.wantStatus, s.Overall(), "stress=%d anxiety=%d", tt.stress, tt.anxiety)
		require.Equal(t, tt.wantRisk, s.RiskLevel(), "stress=%d anxiety=%d", tt.stress, tt.anxiety)
	}
}

func TestSummary_Entry(t *testing.T) {
	s := Summary{Stress: 45, Anxiety: 20, Mood: 10, Messages: 3}

	e := s.Entry()
	require.Equal(t, models.AnalysisKindChat, e.Kind)
	require.Equal(t, models.RiskModerate, e.RiskLevel)
	require.Contains(t, e.Summary, "stress 45")
	require.Contains(t, e.Summary, "3 messages")
	require.NotEmpty(t, e.Recommendation)
	require.True(t, e.RecordedAt.IsZero())
}
