// Package grafana mirrors the four Grafana alerting CRD kinds into a
// remote Grafana HTTP provisioning API.
package grafana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"

	zv1 "github.com/zengarden-space/homelab-operators/apis/zengarden/v1"
	"github.com/zengarden-space/homelab-operators/internal/gateway"
	"github.com/zengarden-space/homelab-operators/internal/metrics"
)

// Credentials is the decoded content of the secret a GrafanaRef points at.
type Credentials struct {
	URL   string `json:"url"`
	OrgID string `json:"orgId"`
	Token string `json:"token"`
}

// ResolveCredentials reads the Secret named by ref. The token, Grafana URL
// and org ID are three separate keys on the Secret rather than one encoded
// blob: the token key defaults to "token" (ref.Key overrides it), the URL
// is always read from "url", and the org ID is always read from "orgId"
// (defaulting to "1" when absent).
func ResolveCredentials(ctx context.Context, g *gateway.Gateway, ref zv1.GrafanaSecretRef, fallbackNamespace string) (Credentials, error) {
	ns := ref.Namespace
	if ns == "" {
		ns = fallbackNamespace
	}

	var secret corev1.Secret
	found, err := gateway.Get(ctx, g, types.NamespacedName{Namespace: ns, Name: ref.Name}, &secret)
	if err != nil {
		return Credentials{}, fmt.Errorf("fetching grafana credentials secret %s/%s: %w", ns, ref.Name, err)
	}
	if !found {
		return Credentials{}, fmt.Errorf("grafana credentials secret %s/%s not found", ns, ref.Name)
	}

	tokenKey := ref.Key
	if tokenKey == "" {
		tokenKey = "token"
	}

	token, ok := secret.Data[tokenKey]
	if !ok {
		return Credentials{}, fmt.Errorf("grafana credentials secret %s/%s has no key %q", ns, ref.Name, tokenKey)
	}

	url := string(secret.Data["url"])
	if url == "" {
		return Credentials{}, fmt.Errorf("grafana credentials secret %s/%s missing 'url' field", ns, ref.Name)
	}

	orgID := string(secret.Data["orgId"])
	if orgID == "" {
		orgID = "1"
	}

	return Credentials{URL: url, OrgID: orgID, Token: string(token)}, nil
}

// API is the capability surface a sub-reconciler needs from Grafana,
// modeled as an interface (per the design note on substituting an
// in-memory fake in tests) rather than a concrete HTTP type.
type API interface {
	Get(ctx context.Context, path string) (json.RawMessage, bool, error)
	Create(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	Replace(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	Delete(ctx context.Context, path string) error
}

// httpAPI is the real implementation, scoped to one resource family for
// metrics labeling.
type httpAPI struct {
	creds  Credentials
	client *http.Client
	family string
}

// NewHTTPAPI builds an API bound to one Grafana instance and resource
// family (used only for metric labels).
func NewHTTPAPI(creds Credentials, family string) API {
	return &httpAPI{
		creds:  creds,
		client: &http.Client{Timeout: 30 * time.Second},
		family: family,
	}
}

func (a *httpAPI) do(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.creds.URL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+a.creds.Token)
	req.Header.Set("X-Grafana-Org-Id", a.creds.OrgID)
	req.Header.Set("X-Disable-Provenance", "true")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return a.client.Do(req)
}

func (a *httpAPI) Get(ctx context.Context, path string) (json.RawMessage, bool, error) {
	resp, err := a.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		metrics.RecordGrafanaCall(a.family, "GET", "error")
		return nil, false, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		metrics.RecordGrafanaCall(a.family, "GET", "absent")
		return nil, false, nil
	}
	body, err := readAndCheck(resp)
	if err != nil {
		metrics.RecordGrafanaCall(a.family, "GET", "error")
		return nil, false, fmt.Errorf("GET %s: %w", path, err)
	}
	metrics.RecordGrafanaCall(a.family, "GET", "success")
	return body, true, nil
}

func (a *httpAPI) Create(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return a.write(ctx, http.MethodPost, path, body)
}

func (a *httpAPI) Replace(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return a.write(ctx, http.MethodPut, path, body)
}

func (a *httpAPI) write(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	resp, err := a.do(ctx, method, path, body)
	if err != nil {
		metrics.RecordGrafanaCall(a.family, method, "error")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := readAndCheck(resp)
	if err != nil {
		metrics.RecordGrafanaCall(a.family, method, "error")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	metrics.RecordGrafanaCall(a.family, method, "success")
	return respBody, nil
}

func (a *httpAPI) Delete(ctx context.Context, path string) error {
	resp, err := a.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		metrics.RecordGrafanaCall(a.family, "DELETE", "error")
		return fmt.Errorf("DELETE %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		metrics.RecordGrafanaCall(a.family, "DELETE", "absent")
		return nil
	}
	if _, err := readAndCheck(resp); err != nil {
		metrics.RecordGrafanaCall(a.family, "DELETE", "error")
		return fmt.Errorf("DELETE %s: %w", path, err)
	}
	metrics.RecordGrafanaCall(a.family, "DELETE", "success")
	return nil
}

func readAndCheck(resp *http.Response) (json.RawMessage, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, oneLine(body))
	}
	return body, nil
}

func oneLine(b []byte) string {
	const max = 200
	if len(b) > max {
		b = b[:max]
	}
	return string(b)
}
