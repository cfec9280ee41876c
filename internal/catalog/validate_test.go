package catalog_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"hotel_rooms/internal/catalog"
	"hotel_rooms/internal/domain"
)

func validRoom(id int64, slug string) domain.Room {
	in := time.Date(2026, 3, 15, 15, 0, 0, 0, time.UTC)
	return domain.Room{
		ID: id, Slug: slug, Name: "Room " + slug,
		Rate: 100, Currency: "USD",
		Guests: 2, Beds: 1, Sqft: 300, Stars: 3,
		CheckIn: in, CheckOut: in.Add(68 * time.Hour),
	}
}

func TestValidate_OK(t *testing.T) {
	if err := catalog.Validate([]domain.Room{validRoom(1, "a"), validRoom(2, "b-2")}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestValidate_Violations(t *testing.T) {
	cases := map[string]func(r *domain.Room){
		"not after checkIn":     func(r *domain.Room) { r.CheckOut = r.CheckIn },
		"rate must be positive": func(r *domain.Room) { r.Rate = 0 },
		"not an ISO 4217":       func(r *domain.Room) { r.Currency = "ZZZ" },
		"guests must be":        func(r *domain.Room) { r.Guests = 0 },
		"beds must be":          func(r *domain.Room) { r.Beds = 0 },
		"sqft must be":          func(r *domain.Room) { r.Sqft = -1 },
		"stars must be":         func(r *domain.Room) { r.Stars = 6 },
		"not URL-safe":          func(r *domain.Room) { r.Slug = "Has Space" },
		"name is empty":         func(r *domain.Room) { r.Name = " " },
	}
	for want, mutate := range cases {
		r := validRoom(1, "a")
		mutate(&r)
		err := catalog.Validate([]domain.Room{r})
		if !errors.Is(err, domain.ErrInvalidRoom) {
			t.Fatalf("%s: expected ErrInvalidRoom, got %v", want, err)
		}
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("%s: unexpected message %q", want, err)
		}
	}
}

func TestValidate_Duplicates(t *testing.T) {
	err := catalog.Validate([]domain.Room{validRoom(1, "a"), validRoom(1, "b"), validRoom(2, "a")})
	if err == nil {
		t.Fatalf("expected duplicate errors")
	}
	msg := err.Error()
	if !strings.Contains(msg, "duplicate id") || !strings.Contains(msg, "duplicate slug") {
		t.Fatalf("expected both duplicate id and slug, got %q", msg)
	}

	if _, err := catalog.New(domain.HotelInfo{}, []domain.Room{validRoom(1, "a"), validRoom(1, "a")}); err == nil {
		t.Fatalf("New must reject invalid rooms")
	}
}
