package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2fit/fitstreak/internal/auth"
	"github.com/2fit/fitstreak/internal/streaks"
	"github.com/2fit/fitstreak/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=profile_test

type profileRepo interface {
	Create(ctx context.Context, p *Profile) error
	Get(ctx context.Context, ownerID string) (*Profile, error)
	Update(ctx context.Context, ownerID string, update Update) error
	GetCounters(ctx context.Context, ownerID string) (streaks.Counters, error)
	UpdateCounters(ctx context.Context, ownerID string, delta streaks.Delta) error
}

type Handler struct {
	repo          profileRepo
	appSecretHash string
}

func NewHandler(repo profileRepo, appSecretHash string) *Handler {
	return &Handler{
		repo:          repo,
		appSecretHash: appSecretHash,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	p, err := h.repo.Get(r.Context(), ownerID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile: %s", err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOrError(w, p, http.StatusOK, "failed to get profile")
}

// HandleRegister creates the profile row for a freshly signed up owner. The
// path is open (registration happens before a session exists), so it is
// gated by the shared app secret instead.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if !pkg.CheckPasswordHash(r.Header.Get("X-FITSTREAK-APP-SECRET"), h.appSecretHash) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var p Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Errorf("register profile: decode: %s", err)
		http.Error(w, "invalid profile payload", http.StatusBadRequest)
		return
	}
	if p.OwnerID == "" {
		http.Error(w, "owner id missing", http.StatusBadRequest)
		return
	}

	// counters always start from zero, whatever the payload said
	p.Counters = streaks.Counters{}

	if err := h.repo.Create(r.Context(), &p); err != nil {
		if pkg.IsUniqueViolationError(err) {
			http.Error(w, "profile already exists", http.StatusConflict)
			return
		}
		log.Errorf("register profile: %s", err)
		http.Error(w, "failed to register profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOrError(w, p, http.StatusCreated, "failed to register profile")
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	var update Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Errorf("update profile: decode: %s", err)
		http.Error(w, "invalid profile payload", http.StatusBadRequest)
		return
	}
	if update.Empty() {
		http.Error(w, "nothing to update", http.StatusBadRequest)
		return
	}

	if err := h.repo.Update(r.Context(), ownerID, update); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("update profile: %s", err)
		http.Error(w, "failed to update profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}
