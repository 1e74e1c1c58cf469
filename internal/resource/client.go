package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"wuwaconv/internal/config"
)

// Kind names a translatable resource category. The values match the
// resourceType labels found in tracker exports.
type Kind string

const (
	KindWeapon    Kind = "Weapon"
	KindCharacter Kind = "Character"
)

// Resolver maps a resource id to its localized display name.
type Resolver interface {
	Resolve(kind Kind, id int) (string, bool)
}

// Client fetches the weapon and character name tables from the encore.moe
// API. One attempt per call, no retries: a failed fetch degrades the
// conversion to untranslated names, it never aborts it.
type Client struct {
	cfg        config.Config
	httpClient *http.Client
}

type tableEntry struct {
	ID   int    `json:"Id"`
	Name string `json:"Name"`
}

type weaponPayload struct {
	Weapons []tableEntry `json:"weapons"`
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.APITimeoutMs) * time.Millisecond},
	}
}

func (c *Client) FetchWeapons(ctx context.Context) (map[int]string, error) {
	body, err := c.fetchJSON(ctx, "weapon")
	if err != nil {
		return nil, err
	}
	var payload weaponPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	return toNameMap(payload.Weapons), nil
}

// FetchCharacters loads the character table. Unlike the weapon endpoint,
// this one responds with a bare array.
func (c *Client) FetchCharacters(ctx context.Context) (map[int]string, error) {
	body, err := c.fetchJSON(ctx, "character")
	if err != nil {
		return nil, err
	}
	var entries []tableEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, err
	}
	return toNameMap(entries), nil
}

func (c *Client) fetchJSON(ctx context.Context, endpoint string) ([]byte, error) {
	base := strings.TrimRight(c.cfg.APIBaseURL, "/")
	url := base + "/" + c.cfg.APILocale + "/" + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("encore api error: status=%d body=%s", resp.StatusCode, string(body))
	}
	return body, nil
}

func toNameMap(entries []tableEntry) map[int]string {
	out := make(map[int]string, len(entries))
	for _, e := range entries {
		if e.ID == 0 || e.Name == "" {
			continue
		}
		out[e.ID] = e.Name
	}
	return out
}
