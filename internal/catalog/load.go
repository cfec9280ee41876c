package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"hotel_rooms/internal/domain"
)

// Stay timestamps in the source data carry no zone; they are read as UTC wall clock.
const timeLayout = "2006-01-02T15:04:05"

//go:embed rooms.yaml
var seedYAML []byte

type document struct {
	Hotel domain.HotelInfo `yaml:"hotel"`
	Rooms []roomRecord     `yaml:"rooms"`
}

type roomRecord struct {
	ID              int64    `yaml:"id"`
	Slug            string   `yaml:"slug"`
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	LongDescription string   `yaml:"longDescription"`
	Rate            float64  `yaml:"rate"`
	Currency        string   `yaml:"currency"`
	Guests          int      `yaml:"guests"`
	Beds            int      `yaml:"beds"`
	Sqft            int      `yaml:"sqft"`
	Stars           int      `yaml:"stars"`
	Available       bool     `yaml:"available"`
	CheckIn         string   `yaml:"checkIn"`
	CheckOut        string   `yaml:"checkOut"`
	Amenities       []string `yaml:"amenities"`
}

// Parse decodes a YAML catalog document without validating it.
func Parse(data []byte) (domain.HotelInfo, []domain.Room, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.HotelInfo{}, nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	rooms := make([]domain.Room, 0, len(doc.Rooms))
	for _, rec := range doc.Rooms {
		in, err := ParseTime(rec.CheckIn)
		if err != nil {
			return domain.HotelInfo{}, nil, fmt.Errorf("room %d checkIn: %w", rec.ID, err)
		}
		out, err := ParseTime(rec.CheckOut)
		if err != nil {
			return domain.HotelInfo{}, nil, fmt.Errorf("room %d checkOut: %w", rec.ID, err)
		}
		rooms = append(rooms, domain.Room{
			ID:              rec.ID,
			Slug:            rec.Slug,
			Name:            rec.Name,
			Description:     rec.Description,
			LongDescription: rec.LongDescription,
			Rate:            rec.Rate,
			Currency:        rec.Currency,
			Guests:          rec.Guests,
			Beds:            rec.Beds,
			Sqft:            rec.Sqft,
			Stars:           rec.Stars,
			Available:       rec.Available,
			CheckIn:         in,
			CheckOut:        out,
			Amenities:       rec.Amenities,
		})
	}
	return doc.Hotel, rooms, nil
}

// ParseTime accepts zone-less timestamps (read as UTC) and RFC 3339.
func ParseTime(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(timeLayout, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return t.UTC(), nil
}

// Load parses and validates a YAML catalog document.
func Load(data []byte) (*Catalog, error) {
	hotel, rooms, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return New(hotel, rooms)
}

func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Load(data)
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) { return Load(seedYAML) }

// Seed returns the embedded hotel info and rooms, unvalidated.
func Seed() (domain.HotelInfo, []domain.Room, error) { return Parse(seedYAML) }
