package stats

import (
	"context"

	"github.com/verte-zerg/tuiarcade/internal/model"
	"github.com/verte-zerg/tuiarcade/internal/store"
)

// Report contains precomputed data for history rendering.
type Report struct {
	Rounds  []model.RoundResult   `yaml:"rounds"`
	Modes   []model.ModeAggregate `yaml:"modes"`
	Summary Summary               `yaml:"summary"`
}

// BuildReport loads and prepares the round journal for rendering.
func BuildReport(ctx context.Context, st *store.Store) (Report, error) {
	rounds, err := st.ListRounds(ctx, "")
	if err != nil {
		return Report{}, err
	}
	modes, err := st.ModeAggregates(ctx)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Rounds:  rounds,
		Modes:   modes,
		Summary: Summarize(rounds),
	}, nil
}
