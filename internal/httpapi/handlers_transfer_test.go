package httpapi

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantrycore/internal/export"
	"pantrycore/pkg/domain"
)

func TestInlineTextExport(t *testing.T) {
	h := newHarness(t)
	h.server.nowFn = func() time.Time {
		return time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	}
	h.addCartEntry(t, map[string]any{"item": "Apples", "quantity": 2})

	resp := h.do(t, http.MethodGet, "/api/export/list.txt", nil)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header().Get("Content-Type"))
	body := resp.Body.String()
	assert.True(t, strings.HasPrefix(body, "Grocery List - March 14, 2025\n"), "body: %s", body)
	assert.Contains(t, body, "Produce - Fruits\n2 lb Apples\n")
	assert.Contains(t, body, "\n1 item\n")
}

func TestInlineBackupExport(t *testing.T) {
	h := newHarness(t)
	h.server.nowFn = func() time.Time {
		return time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	}
	resp := h.do(t, http.MethodPut, "/api/preferences/Apples", map[string]string{"unit": "lb", "brand": "Gala"})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = h.do(t, http.MethodGet, "/api/export/backup", nil)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="grocery_backup_2025-03-14_09-30.json"`,
		resp.Header().Get("Content-Disposition"))

	var bundle domain.BackupBundle
	decodeJSON(t, resp, &bundle)
	assert.Equal(t, domain.Preference{Unit: "lb", Brand: "Gala"}, bundle.Preferences["Apples"])
}

func TestImportReplaceRoundTrip(t *testing.T) {
	h := newHarness(t)

	payload := `{
		"preferences": {"Whole Milk": {"unit": "gallon", "brand": "Fairlife"}},
		"hidden_items": ["Apples"],
		"custom_brands": {"milk": ["Malk"]},
		"custom_items": {"Snacks": {"Wasabi Peas": "bag"}}
	}`
	resp := h.doRaw(t, http.MethodPost, "/api/import?mode=replace", payload)

	require.Equal(t, http.StatusOK, resp.Code, "body: %s", resp.Body.String())
	var body struct {
		Summary domain.ImportSummary `json:"summary"`
	}
	decodeJSON(t, resp, &body)
	assert.Equal(t, domain.ImportReplace, body.Summary.Mode)
	assert.Equal(t, 1, body.Summary.PreferencesApplied)
	assert.Equal(t, 1, body.Summary.HiddenItemsApplied)
	assert.Equal(t, 1, body.Summary.CustomBrandsAdded)
	assert.Equal(t, 1, body.Summary.CustomItemsAdded)

	resp = h.do(t, http.MethodGet, "/api/hidden", nil)
	var hidden struct {
		Items []string `json:"items"`
	}
	decodeJSON(t, resp, &hidden)
	assert.Equal(t, []string{"Apples"}, hidden.Items)
}

func TestImportRejectsMalformedPayload(t *testing.T) {
	h := newHarness(t)

	resp := h.doRaw(t, http.MethodPost, "/api/import?mode=merge", "this is not json")

	require.Equal(t, http.StatusBadRequest, resp.Code)
	var body map[string]any
	decodeJSON(t, resp, &body)
	assert.Contains(t, body["error"], "invalid import payload")
}

func TestImportRejectsUnknownMode(t *testing.T) {
	h := newHarness(t)

	resp := h.doRaw(t, http.MethodPost, "/api/import?mode=zap", "{}")

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "unknown import mode")
}

func TestAsyncExportLifecycle(t *testing.T) {
	h := newHarness(t)
	h.addCartEntry(t, map[string]any{"item": "Apples", "quantity": 2})

	resp := h.do(t, http.MethodPost, "/api/exports", map[string]string{"format": "text"})
	require.Equal(t, http.StatusAccepted, resp.Code)
	var record export.Record
	decodeJSON(t, resp, &record)
	require.NotEmpty(t, record.ID)
	assert.Equal(t, export.FormatText, record.Format)

	deadline := time.Now().Add(2 * time.Second)
	for {
		resp = h.do(t, http.MethodGet, "/api/exports/"+record.ID, nil)
		require.Equal(t, http.StatusOK, resp.Code)
		decodeJSON(t, resp, &record)
		if record.Status.Terminal() {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("export %s still %s", record.ID, record.Status)
		}
		time.Sleep(5 * time.Millisecond)
	}

	require.Equal(t, export.StatusSucceeded, record.Status, "error: %s", record.Error)
	require.NotNil(t, record.Artifact)
	assert.True(t, strings.HasPrefix(record.Artifact.Key, "exports/"), "key: %s", record.Artifact.Key)

	info, err := h.blobs.Head(context.Background(), record.Artifact.Key)
	require.NoError(t, err)
	assert.Equal(t, record.Artifact.SizeBytes, info.Size)

	resp = h.do(t, http.MethodGet, "/api/exports", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var index struct {
		Exports []export.Record `json:"exports"`
	}
	decodeJSON(t, resp, &index)
	require.Len(t, index.Exports, 1)
	assert.Equal(t, record.ID, index.Exports[0].ID)
}

func TestAsyncExportRejectsUnknownFormat(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, http.MethodPost, "/api/exports", map[string]string{"format": "pdf"})

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "unknown export format")
}

func TestAsyncExportUnknownIDReturns404(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, http.MethodGet, "/api/exports/ghost", nil)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
