package inquiry

import (
	"context"
	"fmt"
	"strings"

	"go-landing-backend/internal/domain"
)

// ReportedGeolocator replays the outcome of the browser's geolocation prompt.
// The browser owns the device API; the server only sees what it reports.
type ReportedGeolocator struct {
	report domain.LocateRequest
}

// NewReportedGeolocator wraps a client report
func NewReportedGeolocator(report domain.LocateRequest) *ReportedGeolocator {
	return &ReportedGeolocator{report: report}
}

func (g *ReportedGeolocator) CurrentPosition(ctx context.Context, onSuccess func(domain.Position), onError func(error)) {
	if err := ctx.Err(); err != nil {
		onError(err)
		return
	}
	if !g.report.Granted {
		reason := strings.TrimSpace(g.report.Reason)
		if reason == "" {
			reason = "permission denied"
		}
		onError(fmt.Errorf("%w: %s", domain.ErrLocationUnavailable, reason))
		return
	}
	onSuccess(domain.Position{
		Latitude:  g.report.Latitude,
		Longitude: g.report.Longitude,
		Accuracy:  g.report.Accuracy,
	})
}
