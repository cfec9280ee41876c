package app

import "hotel_rooms/internal/domain"

// keys are scoped by catalog fingerprint
func roomKey(fp, slug string) string    { return "room:" + fp + ":" + slug }
func bookingKey(fp, slug string) string { return "booking:" + fp + ":" + slug }

func toView(c domain.RoomCatalog, r domain.Room) domain.RoomView {
	return domain.RoomView{
		Room:           r,
		Nights:         c.TotalStayNights(r),
		EstimatedTotal: c.EstimatedTotal(r),
	}
}

func toBooking(c domain.RoomCatalog, r domain.Room) domain.BookingSummary {
	return domain.BookingSummary{
		Slug:           r.Slug,
		CheckIn:        r.CheckIn,
		CheckOut:       r.CheckOut,
		Nights:         c.TotalStayNights(r),
		Rate:           r.Rate,
		Currency:       r.Currency,
		EstimatedTotal: c.EstimatedTotal(r),
		Reservable:     r.Available,
	}
}
