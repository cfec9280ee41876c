package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_rooms/internal/domain"
)

type QueryService struct {
	catalog  domain.RoomCatalog
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewQueryService accepts a nil cache; reads then go straight to the catalog.
func NewQueryService(c domain.RoomCatalog, cache domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{catalog: c, cache: cache, cacheTTL: ttl}
}

// ListRooms is never cached so the available count reflects the catalog at call time.
func (s *QueryService) ListRooms(ctx context.Context) domain.RoomsPage {
	rooms := s.catalog.ListAll()
	out := domain.RoomsPage{
		Items:     make([]domain.RoomView, 0, len(rooms)),
		Total:     len(rooms),
		Available: s.catalog.CountAvailable(),
	}
	for _, r := range rooms {
		out.Items = append(out.Items, toView(s.catalog, r))
	}
	return out
}

func (s *QueryService) Slugs(ctx context.Context) []string {
	rooms := s.catalog.ListAll()
	out := make([]string, len(rooms))
	for i, r := range rooms {
		out[i] = r.Slug
	}
	return out
}

// GetRoom consults the catalog first; the cache only ever holds views of rooms it contains.
func (s *QueryService) GetRoom(ctx context.Context, slug string) (domain.RoomView, error) {
	r, ok := s.catalog.FindBySlug(slug)
	if !ok {
		return domain.RoomView{}, domain.ErrNotFound
	}
	key := roomKey(s.catalog.Fingerprint(), slug)
	var rv domain.RoomView
	if s.cacheGet(ctx, key, &rv) {
		return rv, nil
	}
	rv = toView(s.catalog, r)
	s.cacheSet(ctx, key, rv)
	return rv, nil
}

func (s *QueryService) GetBooking(ctx context.Context, slug string) (domain.BookingSummary, error) {
	r, ok := s.catalog.FindBySlug(slug)
	if !ok {
		return domain.BookingSummary{}, domain.ErrNotFound
	}
	key := bookingKey(s.catalog.Fingerprint(), slug)
	var bs domain.BookingSummary
	if s.cacheGet(ctx, key, &bs) {
		return bs, nil
	}
	bs = toBooking(s.catalog, r)
	s.cacheSet(ctx, key, bs)
	return bs, nil
}

func (s *QueryService) Hotel(ctx context.Context) domain.HotelInfo { return s.catalog.Hotel() }

func (s *QueryService) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		return false
	}
	return ok
}

func (s *QueryService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds())); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}
