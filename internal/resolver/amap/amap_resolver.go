package amap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"ndagen/internal/config"
)

const (
	placeTextPath = "/v3/place/text"
	inputTipsPath = "/v3/assistant/inputtips"

	defaultBaseURL = "https://restapi.amap.com"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

// Resolver implements port.AddressResolver on top of the Amap web service
// API: a keyword place search, then input tips when the search finds nothing.
type Resolver struct {
	apiKey   string
	baseURL  string
	types    string
	city     string
	pageSize int
	timeout  time.Duration
	client   *http.Client
	logger   *zap.Logger
}

// NewResolver creates an Amap resolver from config.
func NewResolver(cfg *config.AmapConfig, logger *zap.Logger) *Resolver {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > 25 {
		pageSize = 10
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		apiKey:   cfg.APIKey,
		baseURL:  baseURL,
		types:    cfg.Types,
		city:     cfg.City,
		pageSize: pageSize,
		timeout:  timeout,
		client:   &http.Client{Timeout: timeout},
		logger:   logger.Named("amap"),
	}
}

// Resolve returns the best-guess registered address for companyName.
func (r *Resolver) Resolve(ctx context.Context, companyName string) (string, bool) {
	name := strings.TrimSpace(companyName)
	if name == "" {
		return "", false
	}

	addr, err := r.searchPlace(ctx, name)
	if err != nil {
		r.logger.Warn("place search failed", zap.String("company", name), zap.Error(err))
	}
	if addr != "" {
		return addr, true
	}

	addr, err = r.inputTips(ctx, name)
	if err != nil {
		r.logger.Warn("input tips failed", zap.String("company", name), zap.Error(err))
	}
	if addr != "" {
		return addr, true
	}

	r.logger.Info("no address found", zap.String("company", name))
	return "", false
}

func (r *Resolver) searchPlace(ctx context.Context, name string) (string, error) {
	q := url.Values{}
	q.Set("key", r.apiKey)
	q.Set("keywords", name)
	q.Set("types", r.types)
	q.Set("city", r.city)
	q.Set("citylimit", "false")
	q.Set("offset", strconv.Itoa(r.pageSize))
	q.Set("page", "1")
	q.Set("extensions", "base")
	q.Set("output", "JSON")

	var resp placeResponse
	if err := r.get(ctx, placeTextPath, q, &resp); err != nil {
		return "", err
	}
	if err := resp.envelope.check(); err != nil {
		return "", err
	}
	if len(resp.Pois) == 0 {
		return "", nil
	}
	return resp.Pois[0].fullAddress(), nil
}

func (r *Resolver) inputTips(ctx context.Context, name string) (string, error) {
	q := url.Values{}
	q.Set("key", r.apiKey)
	q.Set("keywords", name)
	q.Set("type", r.types)
	q.Set("datatype", "all")
	q.Set("output", "JSON")

	var resp tipsResponse
	if err := r.get(ctx, inputTipsPath, q, &resp); err != nil {
		return "", err
	}
	if err := resp.envelope.check(); err != nil {
		return "", err
	}
	if len(resp.Tips) == 0 {
		return "", nil
	}
	tip := resp.Tips[0]
	if addr := strings.TrimSpace(string(tip.Address)); addr != "" {
		return addr, nil
	}
	return strings.TrimSpace(string(tip.Name)), nil
}

func (r *Resolver) get(ctx context.Context, path string, q url.Values, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling amap %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("amap %s error (status %d): %s", path, resp.StatusCode, truncate(string(body), 200))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshaling %s response: %w", path, err)
	}
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
