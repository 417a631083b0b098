package sources

import (
	"context"

	"github.com/termstack/palette/internal/logging"
	"github.com/termstack/palette/pkg/palette"
)

// Multi merges several sources in declaration order; later sources win
// id collisions through the palette's replace-by-id rule. A failing
// child is logged and skipped so one bad source cannot blank the whole
// palette. Only context cancellation aborts the merge.
func Multi(log *logging.Logger, srcs ...palette.Source) palette.Source {
	log = log.WithComponent("sources.multi")

	return func(ctx context.Context, m *palette.Model) ([]palette.Entry, error) {
		var merged []palette.Entry
		for _, src := range srcs {
			if src == nil {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			entries, err := src(ctx, m)
			if err != nil {
				log.Error(err, "source failed, skipping")
				continue
			}
			merged = append(merged, entries...)
		}
		return merged, nil
	}
}
