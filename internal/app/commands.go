package app

import (
	"context"
	"fmt"

	"hotel_rooms/internal/domain"
)

// SeedService writes catalog rooms into a repository. Cached views need no eviction:
// a catalog reloaded from the new rows has a new fingerprint, hence new cache keys.
type SeedService struct {
	repo domain.RoomRepository
}

func NewSeedService(r domain.RoomRepository) *SeedService {
	return &SeedService{repo: r}
}

func (s *SeedService) SeedRoom(ctx context.Context, r domain.Room) error {
	if err := s.repo.UpsertRoom(ctx, r); err != nil {
		return fmt.Errorf("upsert room %d (%s): %w", r.ID, r.Slug, err)
	}
	return nil
}
