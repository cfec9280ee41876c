package app

import (
	"context"
	"fmt"

	"hotel_rooms/internal/catalog"
	"hotel_rooms/internal/domain"
)

// LoadCatalog builds the process-wide catalog from one of: embedded, file, mysql.
// Hotel info always comes from the embedded document unless a file is given.
func LoadCatalog(ctx context.Context, source, file string, repo domain.RoomRepository) (*catalog.Catalog, error) {
	switch source {
	case "", "embedded":
		return catalog.Default()
	case "file":
		return catalog.LoadFile(file)
	case "mysql":
		if repo == nil {
			return nil, fmt.Errorf("catalog source mysql needs a repository")
		}
		hotel, _, err := catalog.Seed()
		if err != nil {
			return nil, err
		}
		rooms, err := repo.ListRooms(ctx)
		if err != nil {
			return nil, fmt.Errorf("list rooms: %w", err)
		}
		return catalog.New(hotel, rooms)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", source)
	}
}
