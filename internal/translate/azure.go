package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Azure is the Azure Translator v3 engine.
type Azure struct {
	Endpoint string
	Key      string
	Region   string
	httpc    *http.Client
}

// NewAzure returns an engine for the given resource. A zero timeout uses
// the package default.
func NewAzure(endpoint, key, region string, timeout time.Duration) *Azure {
	return &Azure{
		Endpoint: strings.TrimRight(endpoint, "/"),
		Key:      key,
		Region:   region,
		httpc:    newHTTPClient(timeout),
	}
}

// WithHTTPClient overrides the internal HTTP client.
func (a *Azure) WithHTTPClient(c *http.Client) *Azure {
	if c != nil {
		a.httpc = c
	}
	return a
}

// Name implements Engine.
func (a *Azure) Name() string { return "azure" }

// Translate sends text to the v3 /translate endpoint and returns the first
// translation. It fails with ErrNotConfigured unless endpoint, key and
// region are all set.
func (a *Azure) Translate(ctx context.Context, text, source, target string) (string, error) {
	if a.Endpoint == "" || a.Key == "" || a.Region == "" {
		return "", ErrNotConfigured
	}
	qs := url.Values{"api-version": {"3.0"}, "from": {source}, "to": {target}}
	h := http.Header{}
	h.Set("Ocp-Apim-Subscription-Key", a.Key)
	h.Set("Ocp-Apim-Subscription-Region", a.Region)
	h.Set("Content-Type", "application/json; charset=UTF-8")
	h.Set("Accept", "application/json")

	raw, err := postJSON(ctx, a.httpc, a.Endpoint+"/translate?"+qs.Encode(), h, []map[string]string{{"text": text}})
	if err != nil {
		return "", err
	}

	var out []struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(out) == 0 || len(out[0].Translations) == 0 {
		return "", fmt.Errorf("parse response: no translation in %s", truncate(string(raw), 200))
	}
	return out[0].Translations[0].Text, nil
}
