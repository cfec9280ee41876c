package domain

type HotelInfo struct {
	Address      string            `json:"address" yaml:"address"`
	Phone        string            `json:"phone" yaml:"phone"`
	CheckInTime  string            `json:"checkInTime" yaml:"checkInTime"`   // e.g. "15:00"
	CheckOutTime string            `json:"checkOutTime" yaml:"checkOutTime"` // e.g. "11:00"
	About        []string          `json:"about" yaml:"about"`
	Amenities    []AmenityCategory `json:"amenities" yaml:"amenities"`
}

type AmenityCategory struct {
	Title string   `json:"title" yaml:"title"`
	Items []string `json:"items" yaml:"items"`
}
