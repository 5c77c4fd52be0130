// Package sync talks to the hosted JSON document endpoint that holds the
// shared team state. The protocol is deliberately primitive: GET returns the
// whole document, POST replaces it wholesale. There is no retry, no queueing
// and no conflict detection; the last writer wins.
package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"stormfins/club-app/internal/config"
	"stormfins/club-app/internal/domain"
	"stormfins/club-app/pkg/logger"

	"go.uber.org/zap"
)

const defaultHTTPTimeout = 15 * time.Second

// Client pushes and pulls the state document identified by the configured
// server id. It satisfies the store's RemoteAdapter interface.
type Client struct {
	endpoint string
	serverID string
	apiKey   string
	http     *http.Client
	log      *zap.Logger
}

// NewClient creates a document client from sync configuration. Callers
// should only construct one when cfg.Enabled() is true.
func NewClient(cfg config.SyncConfig, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		endpoint: cfg.Endpoint,
		serverID: cfg.ServerID,
		apiKey:   cfg.APIKey,
		http:     &http.Client{Timeout: defaultHTTPTimeout},
		log:      log.With(zap.String(logger.FieldDocID, cfg.ServerID)),
	}
}

func (c *Client) url() string {
	return fmt.Sprintf("%s/%s", c.endpoint, c.serverID)
}

// Fetch GETs the document. A 404 or empty body means the document has not
// been written yet and is returned as an empty object rather than an error.
func (c *Client) Fetch(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return json.RawMessage("{}"), nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch document: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return json.RawMessage("{}"), nil
	}
	return json.RawMessage(body), nil
}

// Save POSTs the full state, replacing the remote document. The X-API-Key
// header is sent even for services that ignore it, for compatibility with
// hosts that require one.
func (c *Client) Save(ctx context.Context, state *domain.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("save document: unexpected status %d", resp.StatusCode)
	}
	c.log.Debug("state document saved")
	return nil
}
