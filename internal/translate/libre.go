package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Libre is a LibreTranslate engine with a primary and optional backup
// endpoint. Endpoints given as bare IPs are sent VirtualHost in the Host
// header so TLS-terminating proxies route them.
type Libre struct {
	Endpoints   []string
	VirtualHost string
	httpc       *http.Client
}

// NewLibre returns an engine over the non-empty endpoints, tried in order.
// An empty virtualHost defaults to libretranslate.com.
func NewLibre(endpoints []string, virtualHost string, timeout time.Duration) *Libre {
	var eps []string
	for _, e := range endpoints {
		if e != "" {
			eps = append(eps, e)
		}
	}
	if virtualHost == "" {
		virtualHost = "libretranslate.com"
	}
	return &Libre{Endpoints: eps, VirtualHost: virtualHost, httpc: newHTTPClient(timeout)}
}

// WithHTTPClient overrides the internal HTTP client.
func (l *Libre) WithHTTPClient(c *http.Client) *Libre {
	if c != nil {
		l.httpc = c
	}
	return l
}

// Name implements Engine.
func (l *Libre) Name() string { return "libretranslate" }

// Translate tries each endpoint until one answers and joins the errors
// of all failed attempts otherwise.
func (l *Libre) Translate(ctx context.Context, text, source, target string) (string, error) {
	if len(l.Endpoints) == 0 {
		return "", ErrNotConfigured
	}
	body := map[string]string{"q": text, "source": source, "target": target, "format": "text"}

	var errs []error
	for _, ep := range l.Endpoints {
		out, err := l.try(ctx, ep, body)
		if err == nil {
			return out, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", ep, err))
		if ctx.Err() != nil {
			break
		}
	}
	return "", errors.Join(errs...)
}

func (l *Libre) headers(endpoint string) http.Header {
	h := http.Header{}
	h.Set("Accept", "application/json")
	h.Set("Content-Type", "application/json")
	if isIPHost(endpoint) {
		h.Set("Host", l.VirtualHost)
	}
	return h
}

func (l *Libre) try(ctx context.Context, endpoint string, body map[string]string) (string, error) {
	raw, err := postJSON(ctx, l.httpc, endpoint, l.headers(endpoint), body)
	if err != nil {
		return "", err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	// Deployments disagree on the field name.
	for _, k := range []string{"translatedText", "translation", "translated"} {
		if s, ok := out[k].(string); ok && s != "" {
			return s, nil
		}
	}
	return "", fmt.Errorf("parse response: no translation in %s", truncate(string(raw), 200))
}
