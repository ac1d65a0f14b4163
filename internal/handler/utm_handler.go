package handler

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"simuweb/internal/marketing"

	"github.com/rs/zerolog"
)

// UTMHandler handles campaign URL builder requests.
type UTMHandler struct {
	mu     sync.Mutex
	rand   *rand.Rand
	logger zerolog.Logger
}

// NewUTMHandler creates a new campaign URL handler.
func NewUTMHandler(logger zerolog.Logger) *UTMHandler {
	return &UTMHandler{
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger.With().Str("handler", "utm").Logger(),
	}
}

// Build handles POST /api/utm requests.
func (h *UTMHandler) Build(w http.ResponseWriter, r *http.Request) {
	var req marketing.BuildRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	url, err := marketing.BuildURL(req.BaseURL, req.UTMParams)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, marketing.BuildResponse{URL: url})
}

// Random handles GET /api/utm/random requests.
func (h *UTMHandler) Random(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	params := marketing.RandomParams(h.rand)
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, params)
}
