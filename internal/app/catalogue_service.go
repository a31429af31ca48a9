package app

import (
	"context"

	"github.com/rs/zerolog"

	"cataloguer/internal/domain"
)

// CatalogueService encapsulates the catalogue CRUD use cases.
type CatalogueService struct {
	repo domain.CatalogueRepository
	log  zerolog.Logger
}

// NewCatalogueService creates a CatalogueService backed by the given
// repository.
func NewCatalogueService(repo domain.CatalogueRepository, logger zerolog.Logger) *CatalogueService {
	return &CatalogueService{repo: repo, log: logger}
}

// Create stores a new catalogue and returns the number of rows inserted.
func (s *CatalogueService) Create(ctx context.Context, c domain.Catalogue) (int64, error) {
	s.log.Debug().Str("name", c.Name).Msg("creating catalogue")
	n, err := s.repo.Create(ctx, c)
	if err != nil {
		s.log.Error().Err(err).Str("name", c.Name).Msg("failed to create catalogue")
		return 0, err
	}
	s.log.Info().Int64("rows", n).Msg("catalogue created")
	return n, nil
}

// GetByID fetches a single catalogue, returning nil when the id is absent.
func (s *CatalogueService) GetByID(ctx context.Context, id int64) (*domain.Catalogue, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Int64("id", id).Msg("failed to fetch catalogue")
		return nil, err
	}
	if c == nil {
		s.log.Warn().Int64("id", id).Msg("no catalogue found")
	}
	return c, nil
}

// GetAll returns every catalogue in storage order.
func (s *CatalogueService) GetAll(ctx context.Context) ([]domain.Catalogue, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to fetch catalogues")
		return nil, err
	}
	s.log.Debug().Int("count", len(items)).Msg("fetched catalogues")
	return items, nil
}

// UpdateByID overwrites the business fields of the catalogue matching id,
// returning the number of rows affected. A missing id affects zero rows.
func (s *CatalogueService) UpdateByID(ctx context.Context, id int64, c domain.Catalogue) (int64, error) {
	n, err := s.repo.UpdateByID(ctx, id, c)
	if err != nil {
		s.log.Error().Err(err).Int64("id", id).Msg("failed to update catalogue")
		return 0, err
	}
	s.log.Info().Int64("id", id).Int64("rows", n).Msg("catalogue updated")
	return n, nil
}

// DeleteByID removes the catalogue matching id, reporting whether a row was
// deleted.
func (s *CatalogueService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Int64("id", id).Msg("failed to delete catalogue")
		return false, err
	}
	if !ok {
		s.log.Warn().Int64("id", id).Msg("no catalogue found to delete")
	}
	return ok, nil
}
