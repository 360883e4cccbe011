package source

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rickgao/playerdata-source/internal/model"
)

// Sources holds a data source for every statistic, all bound to one pool.
type Sources struct {
	LastQuit   *Fetcher[model.PlayerLastQuit]
	BreakCount *Fetcher[model.PlayerBreakCount]
	BuildCount *Fetcher[model.PlayerBuildCount]
	PlayTicks  *Fetcher[model.PlayerPlayTicks]
	VoteCount  *Fetcher[model.PlayerVoteCount]
}

// NewSources creates all five data sources on db.
func NewSources(db Querier, opts ...Option) *Sources {
	return &Sources{
		LastQuit:   NewLastQuitSource(db, opts...),
		BreakCount: NewBreakCountSource(db, opts...),
		BuildCount: NewBuildCountSource(db, opts...),
		PlayTicks:  NewPlayTicksSource(db, opts...),
		VoteCount:  NewVoteCountSource(db, opts...),
	}
}

// Snapshot is the result of fetching every statistic once.
type Snapshot struct {
	LastQuit   []model.PlayerLastQuit   `json:"last_quit"`
	BreakCount []model.PlayerBreakCount `json:"break_count"`
	BuildCount []model.PlayerBuildCount `json:"build_count"`
	PlayTicks  []model.PlayerPlayTicks  `json:"play_ticks"`
	VoteCount  []model.PlayerVoteCount  `json:"vote_count"`
}

// FetchAll fetches every statistic concurrently. The first failure cancels
// the remaining fetches and is returned alone.
func (s *Sources) FetchAll(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.LastQuit, err = s.LastQuit.Fetch(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.BreakCount, err = s.BreakCount.Fetch(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.BuildCount, err = s.BuildCount.Fetch(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.PlayTicks, err = s.PlayTicks.Fetch(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.VoteCount, err = s.VoteCount.Fetch(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Fetch fetches a single statistic. The result is a slice of the record
// type matching kind.
func (s *Sources) Fetch(ctx context.Context, kind Kind) (any, error) {
	switch kind {
	case KindLastQuit:
		return s.LastQuit.Fetch(ctx)
	case KindBreakCount:
		return s.BreakCount.Fetch(ctx)
	case KindBuildCount:
		return s.BuildCount.Fetch(ctx)
	case KindPlayTicks:
		return s.PlayTicks.Fetch(ctx)
	case KindVoteCount:
		return s.VoteCount.Fetch(ctx)
	default:
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}
}
