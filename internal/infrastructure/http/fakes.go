package httpserver

import (
	"context"

	"spreadwatch/internal/application"
	"spreadwatch/internal/domain"
)

var _ Dashboard = (*fakeDashboard)(nil)

// fakeDashboard is a canned Dashboard used by the router tests. Call counts
// let tests prove that rejected requests never reach the application layer.
type fakeDashboard struct {
	agg      application.Aggregate
	aggErr   error
	res      application.Resolution
	resErr   error
	aggCalls int
	resCalls int
}

func (f *fakeDashboard) Aggregate(_ context.Context, _ domain.Symbol) (application.Aggregate, error) {
	f.aggCalls++
	if f.aggErr != nil {
		return application.Aggregate{}, f.aggErr
	}
	return f.agg, nil
}

func (f *fakeDashboard) Resolve(_ context.Context, _ domain.Symbol) (application.Resolution, error) {
	f.resCalls++
	if f.resErr != nil {
		return application.Resolution{}, f.resErr
	}
	return f.res, nil
}
