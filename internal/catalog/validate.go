package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/currency"

	"hotel_rooms/internal/domain"
)

var slugRE = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate reports every invariant violation in rooms, joined.
func Validate(rooms []domain.Room) error {
	var errs []error
	ids := make(map[int64]struct{}, len(rooms))
	slugs := make(map[string]struct{}, len(rooms))

	bad := func(r domain.Room, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: room %d (%q): %s", domain.ErrInvalidRoom, r.ID, r.Slug, fmt.Sprintf(format, args...)))
	}

	for _, r := range rooms {
		if _, dup := ids[r.ID]; dup {
			bad(r, "duplicate id")
		}
		ids[r.ID] = struct{}{}

		if _, dup := slugs[r.Slug]; dup {
			bad(r, "duplicate slug")
		}
		slugs[r.Slug] = struct{}{}

		if !slugRE.MatchString(r.Slug) {
			bad(r, "slug is not URL-safe")
		}
		if strings.TrimSpace(r.Name) == "" {
			bad(r, "name is empty")
		}
		if !r.CheckOut.After(r.CheckIn) {
			bad(r, "checkOut %s is not after checkIn %s", r.CheckOut.Format(timeLayout), r.CheckIn.Format(timeLayout))
		}
		if r.Rate <= 0 {
			bad(r, "rate must be positive, got %v", r.Rate)
		}
		if _, err := currency.ParseISO(r.Currency); err != nil {
			bad(r, "currency %q is not an ISO 4217 code", r.Currency)
		}
		if r.Guests < 1 {
			bad(r, "guests must be at least 1, got %d", r.Guests)
		}
		if r.Beds < 1 {
			bad(r, "beds must be at least 1, got %d", r.Beds)
		}
		if r.Sqft < 1 {
			bad(r, "sqft must be positive, got %d", r.Sqft)
		}
		if r.Stars < 1 || r.Stars > 5 {
			bad(r, "stars must be within 1..5, got %d", r.Stars)
		}
	}
	return errors.Join(errs...)
}
