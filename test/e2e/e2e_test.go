package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interest-capture/internal/catalog"
	"interest-capture/internal/common/config"
	"interest-capture/internal/common/logger"
	"interest-capture/internal/common/observability"
	"interest-capture/internal/notify"
	"interest-capture/internal/server"
)

var (
	obsOnce sync.Once
	obs     *observability.Observability
)

// sharedObservability registers the OpenTelemetry exporter once per test
// process; the default Prometheus registerer rejects duplicates.
func sharedObservability() *observability.Observability {
	obsOnce.Do(func() {
		obs = observability.New("e2e")
	})
	return obs
}

// buildStack spins up a fake notification endpoint plus the full service
// wired exactly as cmd/interest-server does it.
func buildStack(t *testing.T, endpointStatus int) (*httptest.Server, *httptest.Server) {
	t.Helper()

	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(endpointStatus)
	}))
	t.Cleanup(endpoint.Close)

	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`products:
  - id: pellet
    name: Pellet ecologico
    status: future
    summary: In fase di sviluppo
`), 0o644))

	cfg := &config.Config{
		Notify: config.NotifyConfig{
			EndpointURL: endpoint.URL,
			Timeout:     2000,
		},
		Fallback: config.FallbackConfig{
			AdminEmail:     "info@ricicla.example",
			ProductSubject: "Interesse: %s",
			ContactSubject: "Richiesta di contatto",
			ProductBody:    "Salve, vorrei manifestare il mio interesse per %s.\n\n",
			ContactBody:    "Salve, vorrei mettermi in contatto con voi.\n\n",
		},
		UI: config.UIConfig{
			HighlightDuration: 100,
			Sections:          []string{"contatti"},
		},
	}

	cat, err := catalog.Load(catalogPath)
	require.NoError(t, err)

	log := logger.NewTestLogger(t)
	notifier := notify.NewClient(cfg.Notify.EndpointURL, config.GetDuration(cfg.Notify.Timeout), log)
	srv := server.New(cfg, cat, notifier, sharedObservability(), log)

	app := httptest.NewServer(srv.Handler())
	t.Cleanup(app.Close)

	return app, endpoint
}

func postJSON(t *testing.T, url string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	resp, err := http.Post(url, "application/json", &buf)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestEndToEnd_ContactDelivered(t *testing.T) {
	app, _ := buildStack(t, http.StatusOK)

	resp, body := postJSON(t, app.URL+"/api/contact", map[string]string{
		"name":    "Mario",
		"email":   "mario@example.com",
		"message": "Vorrei informazioni sul compost",
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "succeeded", body["state"])
	assert.NotEmpty(t, body["confirmation"])
	assert.Nil(t, body["fallback"])
}

func TestEndToEnd_ModalDegradedToMailto(t *testing.T) {
	app, _ := buildStack(t, http.StatusInternalServerError)

	resp, _ := postJSON(t, app.URL+"/api/modal/open", map[string]string{"productId": "pellet"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := postJSON(t, app.URL+"/api/modal/submit", map[string]string{"email": "a@b.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "degraded", body["state"])
	assert.Nil(t, body["confirmation"])

	fb, ok := body["fallback"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "info@ricicla.example", fb["to"])
	assert.Contains(t, fb["subject"], "Pellet ecologico")
	assert.Contains(t, body["mailto"], "mailto:info@ricicla.example")
}

func TestEndToEnd_EndpointDown(t *testing.T) {
	app, endpoint := buildStack(t, http.StatusOK)
	endpoint.Close()

	resp, body := postJSON(t, app.URL+"/api/contact", map[string]string{
		"email": "mario@example.com",
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "degraded", body["state"])
}

func TestEndToEnd_SectionFocusAndExpiry(t *testing.T) {
	app, _ := buildStack(t, http.StatusOK)

	resp, body := postJSON(t, app.URL+"/api/sections/contatti/focus", map[string]string{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["focused"])

	// Transient highlight clears on its own.
	time.Sleep(200 * time.Millisecond)

	resp, body = postJSON(t, app.URL+"/api/sections/ignota/focus", map[string]string{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["focused"])
}

func TestEndToEnd_Metrics(t *testing.T) {
	app, _ := buildStack(t, http.StatusOK)

	_, _ = postJSON(t, app.URL+"/api/contact", map[string]string{"email": "mario@example.com"})

	resp, err := http.Get(app.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "interest_submissions_completed_total")
}
