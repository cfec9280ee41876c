// Package catalog holds the fixed room collection and the values derived from it.
package catalog

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"math"
	"time"

	"golang.org/x/text/currency"

	"hotel_rooms/internal/domain"
)

const day = 24 * time.Hour

// Catalog is immutable after New returns; it is safe for concurrent readers.
type Catalog struct {
	hotel       domain.HotelInfo
	rooms       []domain.Room
	bySlug      map[string]int
	fingerprint string
}

// New validates rooms and returns a catalog preserving their order.
func New(hotel domain.HotelInfo, rooms []domain.Room) (*Catalog, error) {
	if err := Validate(rooms); err != nil {
		return nil, err
	}
	c := &Catalog{
		hotel:  hotel,
		rooms:  make([]domain.Room, len(rooms)),
		bySlug: make(map[string]int, len(rooms)),
	}
	for i, r := range rooms {
		c.rooms[i] = r.Clone()
		c.bySlug[r.Slug] = i
	}
	fp, err := fingerprint(hotel, c.rooms)
	if err != nil {
		return nil, err
	}
	c.fingerprint = fp
	return c, nil
}

// fingerprint hashes the validated contents; two catalogs share it only if they hold the same data.
func fingerprint(hotel domain.HotelInfo, rooms []domain.Room) (string, error) {
	b, err := json.Marshal(struct {
		Hotel domain.HotelInfo `json:"hotel"`
		Rooms []domain.Room    `json:"rooms"`
	}{hotel, rooms})
	if err != nil {
		return "", err
	}
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:]), nil
}

func (c *Catalog) Len() int { return len(c.rooms) }

// Fingerprint identifies the catalog contents, e.g. to namespace shared cache keys.
func (c *Catalog) Fingerprint() string { return c.fingerprint }

func (c *Catalog) Hotel() domain.HotelInfo {
	h := c.hotel
	h.About = append([]string(nil), c.hotel.About...)
	h.Amenities = make([]domain.AmenityCategory, len(c.hotel.Amenities))
	for i, cat := range c.hotel.Amenities {
		h.Amenities[i] = domain.AmenityCategory{Title: cat.Title, Items: append([]string(nil), cat.Items...)}
	}
	return h
}

// ListAll returns every room in definition order.
func (c *Catalog) ListAll() []domain.Room {
	out := make([]domain.Room, len(c.rooms))
	for i, r := range c.rooms {
		out[i] = r.Clone()
	}
	return out
}

// FindBySlug is an exact, case-sensitive match.
func (c *Catalog) FindBySlug(slug string) (domain.Room, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return domain.Room{}, false
	}
	return c.rooms[i].Clone(), true
}

func (c *Catalog) CountAvailable() int {
	n := 0
	for _, r := range c.rooms {
		if r.Available {
			n++
		}
	}
	return n
}

// TotalStayNights rounds the stay window to the nearest whole day, halves away from zero.
func (c *Catalog) TotalStayNights(r domain.Room) int {
	return StayNights(r.CheckIn, r.CheckOut)
}

// EstimatedTotal is rate times nights, rounded to the currency's minor unit.
func (c *Catalog) EstimatedTotal(r domain.Room) float64 {
	return roundToCurrency(r.Rate*float64(c.TotalStayNights(r)), r.Currency)
}

func StayNights(checkIn, checkOut time.Time) int {
	return int(math.Round(float64(checkOut.Sub(checkIn)) / float64(day)))
}

func roundToCurrency(v float64, code string) float64 {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return v
	}
	scale, incr := currency.Standard.Rounding(unit)
	if incr <= 0 {
		incr = 1
	}
	pow := math.Pow10(scale)
	return math.Round(v*pow/float64(incr)) * float64(incr) / pow
}
