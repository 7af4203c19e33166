package server

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/fraudguard/internal/config"
	"github.com/jonathan/fraudguard/internal/types"
)

// APIKeyService verifies presented API keys against configured bcrypt hashes.
// Keys are never stored in plaintext; operators provision hashes via the
// API_KEY_HASHES environment variable (comma-separated).
type APIKeyService struct {
	config *config.APIKeyConfig
	hashes []string
}

// NewAPIKeyService creates an API key service with the given hashes.
func NewAPIKeyService(cfg *config.APIKeyConfig, hashes []string) *APIKeyService {
	return &APIKeyService{
		config: cfg,
		hashes: hashes,
	}
}

// LoadAPIKeyHashes reads the configured key hashes from the environment.
func LoadAPIKeyHashes() []string {
	raw := os.Getenv("API_KEY_HASHES")
	if raw == "" {
		return nil
	}

	var hashes []string
	for _, hash := range strings.Split(raw, ",") {
		hash = strings.TrimSpace(hash)
		if hash != "" {
			hashes = append(hashes, hash)
		}
	}
	return hashes
}

// Verify checks the presented key against every configured hash.
func (s *APIKeyService) Verify(key string) bool {
	for _, hash := range s.hashes {
		if s.config.VerifyKey(key, hash) {
			return true
		}
	}
	return false
}

// AuthHandler handles the API-key-for-token exchange.
type AuthHandler struct {
	apiKeys    *APIKeyService
	jwtService *JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(apiKeys *APIKeyService, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		apiKeys:    apiKeys,
		jwtService: jwtService,
	}
}

// Token exchanges a valid API key for a short-lived bearer token. Each
// issued token carries a freshly generated client ID so requests can be
// correlated without identifying the key itself.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req types.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		validationErr := &ErrValidation{Field: "api_key", Message: "must be at least 16 characters"}
		http.Error(w, validationErr.Error(), HTTPStatus(validationErr))
		return
	}

	if !h.apiKeys.Verify(req.APIKey) {
		authErr := &ErrInvalidAPIKey{}
		http.Error(w, authErr.Error(), HTTPStatus(authErr))
		return
	}

	token, err := h.jwtService.GenerateToken(uuid.New())
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	response := types.TokenResponse{
		Token:     token,
		ExpiresIn: int64(time.Duration(h.jwtService.config.ExpirationHours) * time.Hour / time.Second),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Response already sent
		return
	}
}
