package auth

import (
	"encoding/json"
	"net/http"

	"github.com/2fit/fitstreak/internal/telemetry/tracing"
	"github.com/2fit/fitstreak/pkg"

	log "github.com/sirupsen/logrus"
)

const TokenHeader = "X-FITSTREAK-TOKEN"

type Handler struct {
	service *Service
	// bcrypt hash of the secret baked into the app builds
	appSecretHash string
}

func NewHandler(service *Service, appSecretHash string) *Handler {
	return &Handler{
		service:       service,
		appSecretHash: appSecretHash,
	}
}

type LoginRequest struct {
	OwnerID string `json:"ownerId"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	// the device proves it runs our app; the owner id itself comes from the
	// sign-in provider on the device
	if !pkg.CheckPasswordHash(r.Header.Get("X-FITSTREAK-APP-SECRET"), h.appSecretHash) {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var loginReq LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		log.Errorf("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}
	if loginReq.OwnerID == "" {
		http.Error(w, "error, owner id empty", http.StatusBadRequest)
		return
	}

	token, err := h.service.Login(ctx, loginReq.OwnerID)
	if err != nil {
		log.Errorf("login for %s: %s", loginReq.OwnerID, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOrError(w, LoginResponse{Token: token}, http.StatusOK, "login failed")
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token := r.Header.Get(TokenHeader)
	if token == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := h.service.Logout(ctx, token); err != nil {
		log.Tracef("logout: %s", err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}
