package level

import (
	"context"

	"github.com/pkg/errors"

	"github.com/mrDIMAS/rusty-shooter/internal/game"
)

// LoadResult is what an async load resolves to.
type LoadResult struct {
	World *game.World
	Err   error
}

// LoadAsync reads, validates and builds a level off the calling goroutine.
// The returned channel receives exactly one result; cancelling the context
// abandons the load and resolves with the context error instead.
func LoadAsync(ctx context.Context, path string, cfg game.Config, match game.MatchConfig) <-chan LoadResult {
	out := make(chan LoadResult, 1)
	go func() {
		defer close(out)

		built := make(chan LoadResult, 1)
		go func() {
			doc, err := ReadFile(path)
			if err != nil {
				built <- LoadResult{Err: err}
				return
			}
			world, err := doc.Build(cfg, match)
			built <- LoadResult{World: world, Err: err}
		}()

		select {
		case <-ctx.Done():
			out <- LoadResult{Err: errors.Wrap(ctx.Err(), "level: load cancelled")}
		case res := <-built:
			out <- res
		}
	}()
	return out
}
