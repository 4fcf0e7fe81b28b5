package rhythm

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/gordonklaus/synth"
)

// Mix renders rhythms concurrently, one goroutine each, and overlaps the
// results.  It stops at the first error or when ctx is done.
func Mix(ctx context.Context, rhythms ...*Rhythm) (synth.Audio, error) {
	out := make([]synth.Audio, len(rhythms))
	g, ctx := errgroup.WithContext(ctx)
	for i, r := range rhythms {
		g.Go(func() error {
			var err error
			out[i], err = r.render(ctx)
			if err != nil {
				return fmt.Errorf("rhythm %d: %w", i, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return synth.Audio{}, err
	}
	return synth.Mix(out...)
}
