package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dhairyaaprajapati/mindsync/internal/analysis"
	"github.com/fatih/color"
)

func statusColor(s analysis.SessionStatus) *color.Color {
	switch s {
	case analysis.StatusAttentionNeeded:
		return color.New(color.FgRed)
	case analysis.StatusMonitoring:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

// Chat runs one interactive chat-analysis session. Each message gets a
// simulated emotion read and a canned reply; when the session ends, the
// accumulated summary is appended to the user's history.
func (a *App) Chat(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return
	}

	fmt.Fprintln(a.out, analysis.Greeting)
	fmt.Fprintln(a.out, "(empty line to finish the session)")

	var summary analysis.Summary

	for {
		text, err := GetSimpleText(a.reader, "", a.out)
		if err != nil || text == "" {
			break
		}

		fmt.Fprintln(a.out, "Analyzing...")
		emotion, err := a.chat.AnalyzeMessage(ctx, text)
		if err != nil {
			a.log.Error(ctx, "chat analysis failed", "error", err)
			return
		}
		summary.Update(emotion)

		fmt.Fprintf(a.out, "[%s, %d%% confidence] %s\n", emotion.Primary, emotion.Confidence, strings.Join(emotion.Indicators, "; "))
		fmt.Fprintln(a.out, analysis.Response(emotion))
	}

	if summary.Messages == 0 {
		return
	}

	status := statusColor(summary.Overall()).Sprint(summary.Overall())
	fmt.Fprintf(a.out, "Session summary: stress %d, anxiety %d, mood %d [%s]\n",
		summary.Stress, summary.Anxiety, summary.Mood, status)

	if err := a.sessions.AppendAnalysis(ctx, summary.Entry()); err != nil {
		a.log.Error(ctx, "failed to record chat analysis", "error", err)
		fmt.Fprintln(a.out, "Could not save this session to your history.")
		return
	}
	fmt.Fprintln(a.out, "Session saved to your history.")
}
