package push

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/dmitrijs2005/gophchat/internal/server/auth"
)

// TokenValidator checks an access token.
type TokenValidator interface {
	Validate(token string) (auth.Identity, error)
}

// wsChannel adapts a server-side *websocket.Conn to Channel.
type wsChannel struct {
	conn *websocket.Conn
}

func (c *wsChannel) Write(ctx context.Context, data []byte) error {
	return c.conn.Write(ctx, websocket.MessageText, data)
}

func (c *wsChannel) Close() error {
	return c.conn.Close(websocket.StatusGoingAway, "superseded")
}

type HealthResponse struct {
	Status    string    `json:"Status"`
	Timestamp time.Time `json:"Timestamp"`
}

// Handler serves GET /ws and GET /health.
type Handler struct {
	registry *Registry
	tokens   TokenValidator
	logger   logging.Logger
	accept   *websocket.AcceptOptions
	now      func() time.Time
}

func NewHandler(reg *Registry, tokens TokenValidator, l logging.Logger) *Handler {
	return &Handler{
		registry: reg,
		tokens:   tokens,
		logger:   logging.OrNop(l).With("module", "push_handler"),
		accept:   &websocket.AcceptOptions{InsecureSkipVerify: true},
		now:      time.Now,
	}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+common.PushPath, h.serveWS)
	mux.HandleFunc("GET /health", h.serveHealth)
	return mux
}

func isUpgrade(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Upgrade"), "websocket")
}

func (h *Handler) serveWS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !isUpgrade(r) {
		http.Error(w, "websocket upgrade required", http.StatusBadRequest)
		return
	}

	token := r.URL.Query().Get(common.AccessTokenQueryParam)
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}
	id, err := h.tokens.Validate(token)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	conn, err := websocket.Accept(w, r, h.accept)
	if err != nil {
		h.logger.Warn(ctx, "websocket accept failed", "user_id", id.UserID, "error", err)
		return
	}

	ch := &wsChannel{conn: conn}
	h.registry.AddConnection(id.UserID, ch)
	h.logger.Info(ctx, "push connected", "user_id", id.UserID)

	defer func() {
		h.registry.RemoveConnection(id.UserID, ch)
		_ = conn.Close(websocket.StatusNormalClosure, "")
		h.logger.Info(ctx, "push disconnected", "user_id", id.UserID)
	}()

	// Inbound frames carry nothing; reading only detects the close.
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
	}
}

func (h *Handler) serveHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(HealthResponse{Status: "Healthy", Timestamp: h.now().UTC()})
}
