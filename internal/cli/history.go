package cli

import (
	"context"
	"fmt"
)

// History prints the signed-in user's recorded analyses in append order.
func (a *App) History(ctx context.Context) {
	u := a.sessions.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Please log in first.")
		return
	}

	if len(u.Analyses) == 0 {
		fmt.Fprintln(a.out, "No analyses recorded yet.")
		return
	}

	for i, e := range u.Analyses {
		level := riskColor(e.RiskLevel).Sprint(e.RiskLevel)
		fmt.Fprintf(a.out, "%3d. %s  %-5s  %s  %s\n",
			i+1, e.RecordedAt.Local().Format("2006-01-02 15:04"), e.Kind, level, e.Summary)
		fmt.Fprintf(a.out, "     %s\n", e.Recommendation)
	}
}
