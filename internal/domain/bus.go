package domain

// Bus is a catalog entry: a scheduled route with a fixed fare and seat
// capacity. AvailableSeats is the only mutable field and changes only
// inside the ledger.
type Bus struct {
	ID             int    `json:"id"`
	Route          string `json:"route"`
	Time           string `json:"time"`
	Fare           int    `json:"fare"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
}

// DefaultCatalog returns the buses seeded at startup.
func DefaultCatalog() []Bus {
	return []Bus{
		{ID: 1, Route: "North Nazimabad - Power House", Time: "09:00 AM", Fare: 500, TotalSeats: 30, AvailableSeats: 30},
		{ID: 2, Route: "KDA - Gulshan", Time: "12:00 PM", Fare: 700, TotalSeats: 30, AvailableSeats: 30},
		{ID: 3, Route: "Ayesha Manzil - Bahria", Time: "05:00 PM", Fare: 600, TotalSeats: 30, AvailableSeats: 30},
	}
}
