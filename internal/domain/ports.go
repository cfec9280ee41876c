package domain

import (
	"context"
	"time"
)

// RoomCatalog is the read-only room collection loaded at process start.
type RoomCatalog interface {
	ListAll() []Room
	FindBySlug(slug string) (Room, bool)
	CountAvailable() int
	TotalStayNights(r Room) int
	EstimatedTotal(r Room) float64
	Hotel() HotelInfo
	Fingerprint() string
}

type RoomRepository interface {
	// Write paths
	UpsertRoom(ctx context.Context, r Room) error

	// Read paths
	ListRooms(ctx context.Context) ([]Room, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Read models
type RoomView struct {
	Room
	Nights         int     `json:"nights"`
	EstimatedTotal float64 `json:"estimatedTotal"`
}

type RoomsPage struct {
	Items     []RoomView `json:"items"`
	Total     int        `json:"total"`
	Available int        `json:"available"`
}

type BookingSummary struct {
	Slug           string    `json:"slug"`
	CheckIn        time.Time `json:"checkIn"`
	CheckOut       time.Time `json:"checkOut"`
	Nights         int       `json:"nights"`
	Rate           float64   `json:"rate"`
	Currency       string    `json:"currency"`
	EstimatedTotal float64   `json:"estimatedTotal"`
	Reservable     bool      `json:"reservable"`
}
