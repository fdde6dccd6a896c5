package services

import (
	"context"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/diegorighi/yukam-front/internal/client/models"
)

// leadLabels maps lead-origin codes to the names shown to operators.
// Unknown codes are shown as-is.
var leadLabels = map[string]string{
	"GOOGLE_ADS":      "Google Ads",
	"INSTAGRAM":       "Instagram",
	"FACEBOOK":        "Facebook",
	"LINKEDIN":        "LinkedIn",
	"ORGANICO":        "Orgânico (SEO)",
	"INDICACAO":       "Indicação",
	"YOUTUBE":         "YouTube",
	"TWITTER":         "Twitter",
	"TIKTOK":          "TikTok",
	"EMAIL_MARKETING": "Email Marketing",
	"WHATSAPP":        "WhatsApp",
	"OUTROS":          "Outros",
}

// LeadLabel returns the display name of a lead-origin code.
func LeadLabel(origin string) string {
	if l, ok := leadLabels[origin]; ok {
		return l
	}
	return origin
}

// LeadShare is one slice of the lead-origin distribution.
type LeadShare struct {
	Origin     string
	Label      string
	Count      int
	Percentage float64
}

// Report summarizes the active customer base.
type Report struct {
	ActivePF int
	ActivePJ int
	Leads    []LeadShare
}

func (r *Report) TotalActive() int { return r.ActivePF + r.ActivePJ }

// TotalLeads counts active customers with a known lead origin.
func (r *Report) TotalLeads() int {
	n := 0
	for _, l := range r.Leads {
		n += l.Count
	}
	return n
}

// TopSource is the label of the largest lead origin, or "-".
func (r *Report) TopSource() string {
	if len(r.Leads) == 0 {
		return "-"
	}
	return r.Leads[0].Label
}

type ReportService interface {
	Build(ctx context.Context) (*Report, error)
}

type reportService struct {
	customers CustomerService
}

func NewReportService(customers CustomerService) ReportService {
	return &reportService{customers: customers}
}

// Build reads both collections in parallel and summarizes the active
// records.
func (s *reportService) Build(ctx context.Context) (*Report, error) {
	var pf, pj []models.Customer

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		pf, err = s.customers.Active(gctx, models.KindPF)
		return err
	})
	g.Go(func() (err error) {
		pj, err = s.customers.Active(gctx, models.KindPJ)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Report{
		ActivePF: len(pf),
		ActivePJ: len(pj),
		Leads:    LeadDistribution(slices.Concat(pf, pj)),
	}, nil
}

// LeadDistribution counts customers per lead origin. Customers without an
// origin are left out, percentages are relative to those with one and
// rounded to two decimals. Larger counts come first; ties keep the order
// in which the origins first appeared.
func LeadDistribution(customers []models.Customer) []LeadShare {
	counts := make(map[string]int)
	var order []string
	total := 0

	for _, c := range customers {
		origin := c.LeadOrigin()
		if origin == "" {
			continue
		}
		if counts[origin] == 0 {
			order = append(order, origin)
		}
		counts[origin]++
		total++
	}

	shares := make([]LeadShare, 0, len(order))
	for _, origin := range order {
		n := counts[origin]
		shares = append(shares, LeadShare{
			Origin:     origin,
			Label:      LeadLabel(origin),
			Count:      n,
			Percentage: math.Round(float64(n)/float64(total)*10000) / 100,
		})
	}

	slices.SortStableFunc(shares, func(a, b LeadShare) int { return b.Count - a.Count })
	return shares
}
