package domain

import "time"

const (
	EventCafeAdded    = "cafe_added"
	EventPriceUpdated = "price_updated"
	EventCafeClosed   = "cafe_closed"
)

type CafeEvent struct {
	Type        string    `json:"type"`
	CafeID      int       `json:"cafe_id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	CoffeePrice *string   `json:"coffee_price,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
