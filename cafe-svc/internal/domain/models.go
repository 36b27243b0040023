package domain

import (
	"errors"
	"time"
)

var (
	ErrCafeNotFound  = errors.New("cafe not found")
	ErrDuplicateName = errors.New("a cafe with that name already exists")
	ErrNoCafes       = errors.New("no cafes stored")
	ErrUnauthorized  = errors.New("api key does not match")
	ErrMissingPrice  = errors.New("no price was given")
)

// Cafe is a row of the cafes table. The json tags are the complete response shape.
type Cafe struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	MapURL       string  `json:"map_url"`
	ImgURL       string  `json:"img_url"`
	Location     string  `json:"location"`
	Seats        string  `json:"seats"`
	HasToilet    bool    `json:"has_toilet"`
	HasWifi      bool    `json:"has_wifi"`
	HasSockets   bool    `json:"has_sockets"`
	CanTakeCalls bool    `json:"can_take_calls"`
	CoffeePrice  *string `json:"coffee_price"`
}

type LocationCount struct {
	Location string `json:"location"`
	Cafes    int    `json:"cafes"`
}

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

// ValidationError reports a rejected form field on create.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason + ": " + e.Field
}
