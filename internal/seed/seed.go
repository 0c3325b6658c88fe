package seed

import (
	"context"
	"fmt"

	"github.com/tagmark/tagmark/internal/logger"
	"github.com/tagmark/tagmark/internal/service"
)

// Seeder fills empty accounts with the fixtures from the seed file.
type Seeder struct {
	loader  *Loader
	mapper  *Mapper
	service *service.BookmarkService
	log     logger.Logger
}

// NewSeeder creates a seeder for the given seed file.
func NewSeeder(filePath string, svc *service.BookmarkService, log logger.Logger) *Seeder {
	return &Seeder{
		loader:  NewLoader(filePath),
		mapper:  NewMapper(),
		service: svc,
		log:     log,
	}
}

// Run seeds each owner listed in the file whose store is still empty.
// Owners with existing bookmarks are skipped so restarts do not clobber
// user data.
func (s *Seeder) Run(ctx context.Context) error {
	config, err := s.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load seed config: %w", err)
	}

	for _, fixtures := range config {
		existing, err := s.service.FindByOwner(ctx, fixtures.Owner)
		if err != nil {
			return fmt.Errorf("failed to check owner %q: %w", fixtures.Owner, err)
		}
		if len(existing) > 0 {
			s.log.Debug("owner already has bookmarks, skipping seed",
				logger.String("owner", fixtures.Owner),
				logger.Int("count", len(existing)))
			continue
		}

		bookmarks, err := s.mapper.MapOwner(fixtures)
		if err != nil {
			return fmt.Errorf("failed to map seed fixtures: %w", err)
		}
		if err := s.service.SaveAll(ctx, bookmarks); err != nil {
			return fmt.Errorf("failed to save seed bookmarks for %q: %w", fixtures.Owner, err)
		}
		s.log.Info("seeded bookmarks",
			logger.String("owner", fixtures.Owner),
			logger.Int("count", len(bookmarks)))
	}
	return nil
}
