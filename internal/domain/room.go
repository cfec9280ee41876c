package domain

import "time"

type Room struct {
	ID              int64     `json:"id"`
	Slug            string    `json:"slug"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription"`
	Rate            float64   `json:"rate"`     // per night, major currency units
	Currency        string    `json:"currency"` // ISO 4217
	Guests          int       `json:"guests"`
	Beds            int       `json:"beds"`
	Sqft            int       `json:"sqft"`
	Stars           int       `json:"stars"`
	Available       bool      `json:"available"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Amenities       []string  `json:"amenities"`
}

// Clone returns a copy that shares no backing arrays with r.
func (r Room) Clone() Room {
	if r.Amenities != nil {
		r.Amenities = append([]string(nil), r.Amenities...)
	}
	return r
}
