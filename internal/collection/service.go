package collection

import (
	"context"
	"log/slog"

	"github.com/gpessoni/pokedex/internal/domain"
)

// Service performs catch/release/refresh operations against the ownership
// backend and keeps the local index in sync with their outcomes. Failures
// leave the index untouched; surfacing them to the user is the caller's job.
type Service struct {
	repo   domain.OwnershipRepository
	index  *Index
	logger *slog.Logger
}

// NewService creates a collection service around an empty index.
func NewService(repo domain.OwnershipRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, index: NewIndex(), logger: logger}
}

// Index exposes the live ownership index for render-time decoration.
func (s *Service) Index() *Index {
	return s.index
}

// Refresh fetches the user's complete record list and replaces the index.
// A refresh that raced with a catch or release is discarded silently; the
// write already left the index in the newer state.
func (s *Service) Refresh(ctx context.Context) error {
	start := s.index.Version()
	records, err := s.repo.ListMine(ctx)
	if err != nil {
		return err
	}
	if !s.index.ApplyRefresh(start, records) {
		s.logger.Debug("collection refresh superseded by a write, discarding", "records", len(records))
		return nil
	}
	s.logger.Debug("collection refreshed", "records", len(records))
	return nil
}

// Catch creates an ownership record for a catalog pokemon. On success the
// index is updated synchronously and the created record returned.
func (s *Service) Catch(ctx context.Context, p domain.Pokemon) (domain.CaughtPokemon, error) {
	rec, err := s.repo.Catch(ctx, p.ID, p.Name, p.Image)
	if err != nil {
		return domain.CaughtPokemon{}, err
	}
	s.index.ApplyCatch(rec)
	s.logger.Info("pokemon caught", "pokemon", p.Name, "record", rec.ID)
	return rec, nil
}

// Release deletes an ownership record by its server-assigned ID. The index
// is only updated after the server confirms; there is no optimistic removal.
func (s *Service) Release(ctx context.Context, rec domain.CaughtPokemon) error {
	if _, err := s.repo.Release(ctx, rec.ID); err != nil {
		return err
	}
	s.index.ApplyRelease(rec.PokemonID)
	s.logger.Info("pokemon released", "pokemon", rec.Name, "record", rec.ID)
	return nil
}
