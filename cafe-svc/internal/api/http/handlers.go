package httpapi

import (
	_ "embed"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"cafe-api/cafe-svc/internal/domain"
	"cafe-api/cafe-svc/internal/service"

	"github.com/gorilla/mux"
)

//go:embed static/index.html
var indexHTML []byte

const (
	msgNoLocation   = "Sorry, we don't have a cafe at that location"
	msgNoCafes      = "Sorry, we don't have any cafes yet"
	msgAdded        = "Successfully added the new cafe"
	msgPriceUpdated = "Successfully update the price"
	msgNoPrice      = "No price was found"
	msgNoCafeID     = "No cafe id was found"
	msgDeleted      = "Cafe was success deleted"
	msgCafeNotFound = "The cafe was not found"
	msgUnauthorized = "You dont have authorization"
	msgDuplicate    = "A cafe with that name already exists"
)

type Handler struct {
	Cafes service.CafeServiceInterface
}

func NewHandler(cafes service.CafeServiceInterface) *Handler {
	return &Handler{Cafes: cafes}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.home).Methods("GET")
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/random", h.randomCafe).Methods("GET")
	r.HandleFunc("/all", h.allCafes).Methods("GET")
	r.HandleFunc("/search", h.searchCafes).Methods("GET")
	r.HandleFunc("/add", h.addCafe).Methods("POST")
	r.HandleFunc("/update-price/{id:[0-9]+}", h.updatePrice).Methods("PATCH")
	r.HandleFunc("/report-closed/{id:[0-9]+}", h.reportClosed).Methods("GET", "DELETE")

	r.HandleFunc("/cafes/{id:[0-9]+}/qrcode", h.cafeQRCode).Methods("GET")
	r.HandleFunc("/stats/locations", h.locationStats).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[cafe-svc] failed to encode response: %v", err)
	}
}

func serverError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("[cafe-svc] %s %s: %v", r.Method, r.URL.Path, err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// pathID reports false for ids that overflow int; the route regexp already rejects non-digits.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "cafe-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) randomCafe(w http.ResponseWriter, r *http.Request) {
	cafe, err := h.Cafes.Random(r.Context())
	if errors.Is(err, domain.ErrNoCafes) {
		writeJSON(w, http.StatusOK, map[string]any{"error": map[string]string{"Not Found": msgNoCafes}})
		return
	}
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cafe": cafe})
}

func (h *Handler) allCafes(w http.ResponseWriter, r *http.Request) {
	cafes, err := h.Cafes.List(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cafes": cafes})
}

func (h *Handler) searchCafes(w http.ResponseWriter, r *http.Request) {
	cafes, err := h.Cafes.Search(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		serverError(w, r, err)
		return
	}
	if len(cafes) == 0 {
		writeJSON(w, http.StatusOK, map[string]any{"error": map[string]string{"Not Found": msgNoLocation}})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cafes": cafes})
}

func (h *Handler) addCafe(w http.ResponseWriter, r *http.Request) {
	cafe, err := cafeFromForm(r)
	if err == nil {
		err = h.Cafes.Create(r.Context(), cafe)
	}

	var validationErr *domain.ValidationError
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]any{"response": map[string]string{"Success": msgAdded}})
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": map[string]string{"Bad Request": validationErr.Error()}})
	case errors.Is(err, domain.ErrDuplicateName):
		writeJSON(w, http.StatusConflict, map[string]any{"error": map[string]string{"Conflict": msgDuplicate}})
	default:
		serverError(w, r, err)
	}
}

func (h *Handler) updatePrice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]string{"error": msgNoCafeID})
		return
	}

	err := h.Cafes.UpdatePrice(r.Context(), id, r.URL.Query().Get("new-price"))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"Success": msgPriceUpdated})
	case errors.Is(err, domain.ErrCafeNotFound):
		writeJSON(w, http.StatusOK, map[string]string{"error": msgNoCafeID})
	case errors.Is(err, domain.ErrMissingPrice):
		writeJSON(w, http.StatusOK, map[string]string{"error": msgNoPrice})
	default:
		serverError(w, r, err)
	}
}

func (h *Handler) reportClosed(w http.ResponseWriter, r *http.Request) {
	apiKey := r.URL.Query().Get("api-key")
	id, ok := pathID(r)
	if !ok {
		id = -1
	}

	err := h.Cafes.ReportClosed(r.Context(), id, apiKey)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"success": msgDeleted})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusOK, map[string]string{"error": msgUnauthorized})
	case errors.Is(err, domain.ErrCafeNotFound):
		writeJSON(w, http.StatusOK, map[string]string{"error": msgCafeNotFound})
	default:
		serverError(w, r, err)
	}
}

func (h *Handler) cafeQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": msgNoCafeID})
		return
	}

	png, err := h.Cafes.QRCode(r.Context(), id)
	if errors.Is(err, domain.ErrCafeNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": msgNoCafeID})
		return
	}
	if err != nil {
		serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) locationStats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Cafes.LocationStats(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"locations": counts})
}
