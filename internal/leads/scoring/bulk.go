package scoring

import (
	"context"
	"sort"

	"placement_portal_backend/internal/leads/domain"

	"golang.org/x/sync/errgroup"
)

// ScoreAll scores every lead independently and returns the results sorted
// by score descending. Equal scores keep their input order (stable sort),
// so output is deterministic for a given input slice. Work fans out over a
// bounded worker group; the interactions map is read-only during the call.
func (s *Service) ScoreAll(ctx context.Context, leads []domain.Lead, interactions map[string][]domain.Interaction) ([]Result, error) {
	results := make([]Result, len(leads))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, lead := range leads {
		i, lead := i, lead
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.Score(lead, interactions[lead.ID])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	if s.log != nil {
		s.log.Debug("bulk scoring complete", "leads", len(leads))
	}
	return results, nil
}
