package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"cafe-api/cafe-svc/internal/domain"
)

// formBool accepts the strconv.ParseBool tokens. An absent or empty field is false.
func formBool(r *http.Request, field string) (bool, error) {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &domain.ValidationError{Field: field, Reason: "invalid boolean"}
	}
	return value, nil
}

func cafeFromForm(r *http.Request) (*domain.Cafe, error) {
	cafe := &domain.Cafe{
		Name:     r.FormValue("name"),
		MapURL:   r.FormValue("map_url"),
		ImgURL:   r.FormValue("img_url"),
		Location: r.FormValue("location"),
		Seats:    r.FormValue("seats"),
	}

	flags := []struct {
		field string
		dst   *bool
	}{
		{"has_toilet", &cafe.HasToilet},
		{"has_wifi", &cafe.HasWifi},
		{"has_sockets", &cafe.HasSockets},
		{"can_take_calls", &cafe.CanTakeCalls},
	}
	for _, flag := range flags {
		value, err := formBool(r, flag.field)
		if err != nil {
			return nil, err
		}
		*flag.dst = value
	}

	if price := r.FormValue("coffee_price"); price != "" {
		cafe.CoffeePrice = &price
	}
	return cafe, nil
}
