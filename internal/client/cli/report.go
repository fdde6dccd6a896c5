package cli

import (
	"context"
	"fmt"

	"github.com/diegorighi/yukam-front/internal/client/router"
)

// Report prints the active-customer totals and the lead-origin
// distribution.
func (a *App) Report(ctx context.Context) error {
	return a.guarded(ctx, router.To(router.ReportsPath), func(ctx context.Context) error {
		r, err := a.reports.Build(ctx)
		if err != nil {
			return err
		}

		printlnFn(fmt.Sprintf("Active customers: %d (PF %d, PJ %d)", r.TotalActive(), r.ActivePF, r.ActivePJ))
		printlnFn(fmt.Sprintf("Leads: %d, top source: %s", r.TotalLeads(), r.TopSource()))
		for _, l := range r.Leads {
			printlnFn(fmt.Sprintf("  %-18s %5d %6.2f%%", l.Label, l.Count, l.Percentage))
		}
		return nil
	})
}
