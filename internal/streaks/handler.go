package streaks

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/2fit/fitstreak/internal/auth"
	"github.com/2fit/fitstreak/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// CalendarTokenHeader carries the short-lived Google access token the app
// forwards when the user has calendar mirroring switched on.
const CalendarTokenHeader = "X-CALENDAR-TOKEN"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) ownerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	ownerID, ok := auth.OwnerIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return "", false
	}
	return ownerID, true
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	var kind *Kind
	if kindParam := r.URL.Query().Get("kind"); kindParam != "" {
		k := Kind(kindParam)
		if !k.IsValid() {
			http.Error(w, "unknown kind", http.StatusBadRequest)
			return
		}
		kind = &k
	}

	events, err := h.service.ListEvents(r.Context(), ownerID, kind)
	if err != nil {
		log.Errorf("list events: %s", err)
		http.Error(w, "failed to list events", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOrError(w, events, http.StatusOK, "failed to list events")
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	var input EventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Errorf("add event: decode: %s", err)
		http.Error(w, "invalid event payload", http.StatusBadRequest)
		return
	}

	res, err := h.service.CreateEvent(
		r.Context(), ownerID, input,
		r.Header.Get(CalendarTokenHeader),
		time.Now(),
	)
	if err != nil {
		if IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("add event: %s", err)
		http.Error(w, "failed to add event", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOrError(w, res, http.StatusCreated, "failed to add event")
}

func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "invalid event id", http.StatusBadRequest)
		return
	}

	event, counters, err := h.service.CompleteEvent(r.Context(), ownerID, id, time.Now())
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}
		log.Errorf("complete event %d: %s", id, err)
		http.Error(w, "failed to complete event", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOrError(w, struct {
		Event    *Event   `json:"event"`
		Counters Counters `json:"counters"`
	}{event, counters}, http.StatusOK, "failed to complete event")
}

func (h *Handler) HandleRemovePast(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	swept, err := h.service.RemovePastEvents(r.Context(), ownerID, time.Now())
	if err != nil {
		log.Errorf("remove past events: %s", err)
		http.Error(w, "failed to remove past events", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOrError(w, swept, http.StatusOK, "failed to remove past events")
}

func (h *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	status, err := h.service.Today(r.Context(), ownerID, time.Now())
	if err != nil {
		log.Errorf("today status: %s", err)
		http.Error(w, "failed to resolve today", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOrError(w, status, http.StatusOK, "failed to resolve today")
}

func (h *Handler) HandleReconcile(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	res, err := h.service.Reconcile(r.Context(), ownerID, time.Now())
	if err != nil {
		log.Errorf("reconcile: %s", err)
		http.Error(w, "failed to reconcile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOrError(w, res, http.StatusOK, "failed to reconcile")
}

func (h *Handler) HandleMonthly(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil || year < 2000 || year > 2100 {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	buckets, err := h.service.Monthly(r.Context(), ownerID, time.Month(month), year)
	if err != nil {
		log.Errorf("monthly buckets %d-%d: %s", year, month, err)
		http.Error(w, fmt.Sprintf("failed to aggregate %d-%02d", year, month), http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOrError(w, struct {
		Year    int    `json:"year"`
		Month   int    `json:"month"`
		Buckets [4]int `json:"buckets"`
	}{year, month, buckets}, http.StatusOK, "failed to aggregate")
}
