package metar

import "context"

// ReportSource fetches the latest raw report for a station.
type ReportSource interface {
	FetchLatest(ctx context.Context, station string) (ReportMessage, error)
}
