// Package translate translates free text, trying Azure Translator first and
// falling back to LibreTranslate endpoints.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ukaji3/arbeitsnachweis-go/internal/config"
)

// ErrNotConfigured is returned by an engine without endpoint or credentials.
var ErrNotConfigured = errors.New("translator not configured")

// Default languages of the Arbeitsnachweis form.
const (
	DefaultSource = "hr"
	DefaultTarget = "de"
)

// Engine translates text from one language to another.
type Engine interface {
	Name() string
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Result is a translation and the engine that produced it.
type Result struct {
	Text   string `json:"translated"`
	Engine string `json:"engine,omitempty"`
	// Errors holds the failures of engines tried before Engine.
	Errors []string `json:"errors,omitempty"`
}

// Chain tries engines in order until one succeeds.
type Chain struct {
	Engines []Engine
}

// New builds the Azure then LibreTranslate chain. Unconfigured engines are
// left out.
func New(cfg *config.Config) *Chain {
	c := &Chain{}
	if cfg.AzureEnabled() {
		c.Engines = append(c.Engines, NewAzure(cfg.AzureEndpoint, cfg.AzureKey, cfg.AzureRegion, cfg.LTTimeout))
	}
	if cfg.LTEndpoint != "" || cfg.LTBackupEndpoint != "" {
		c.Engines = append(c.Engines, NewLibre([]string{cfg.LTEndpoint, cfg.LTBackupEndpoint}, cfg.LTVirtualHost, cfg.LTTimeout))
	}
	return c
}

// Translate returns the first successful translation. Blank text is
// returned unchanged without contacting any engine.
func (c *Chain) Translate(ctx context.Context, text, source, target string) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, nil
	}
	if source = strings.TrimSpace(source); source == "" {
		source = DefaultSource
	}
	if target = strings.TrimSpace(target); target == "" {
		target = DefaultTarget
	}

	var res Result
	var errs []error
	for _, e := range c.Engines {
		out, err := e.Translate(ctx, text, source, target)
		if err == nil {
			res.Text = out
			res.Engine = e.Name()
			return res, nil
		}
		err = fmt.Errorf("%s: %w", e.Name(), err)
		errs = append(errs, err)
		res.Errors = append(res.Errors, err.Error())
	}
	if len(errs) == 0 {
		return res, ErrNotConfigured
	}
	return res, errors.Join(errs...)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		IdleConnTimeout:     90 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: tr}
}

func postJSON(ctx context.Context, httpc *http.Client, endpoint string, header http.Header, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	for k, v := range header {
		req.Header[k] = v
	}
	if h := header.Get("Host"); h != "" {
		req.Host = h
	}

	resp, err := httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, truncate(strings.TrimSpace(string(raw)), 200))
	}
	return raw, nil
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}

// isIPHost reports whether the endpoint addresses a bare IPv4 host.
func isIPHost(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	ip := net.ParseIP(u.Hostname())
	return ip != nil && ip.To4() != nil
}
