package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "id,dish_name_hebrew,ingredients,gross_yield_per_person,gross_yield_per_gn1_1,preparation_method,notes\n"

func TestPlannerFlow(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grains_and_pasta.csv"),
		[]byte(csvHeader+"1,Rice Pilaf,rice,150,40,bake,A\n2,Rice Pilaf,rice,150,40,bake,B\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "meat_special.csv"),
		[]byte(csvHeader+"1,אסאדו,בקר,250,12,צלייה,לפרוס דק\n"), 0o644))

	r := newTestRouter(t, dir)

	// first visit starts a session
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Contains(t, w.Body.String(), "01. 🍝 דגנים ופסטה")
	assert.Contains(t, w.Body.String(), "Файл не найден")

	// a dropdown change is retained
	form := url.Values{"slot_1": {"Rice Pilaf"}}
	req := httptest.NewRequest(http.MethodPost, "/select", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusSeeOther, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/form", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Slots []struct {
			Position int      `json:"position"`
			Options  []string `json:"options"`
			Value    string   `json:"value"`
		} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Slots, 18)
	assert.Equal(t, "Rice Pilaf", got.Slots[0].Value)
	assert.Equal(t, []string{"-", "Rice Pilaf", "Rice Pilaf"}, got.Slots[0].Options)
	assert.Equal(t, []string{"-"}, got.Slots[11].Options)

	// summary over slots 1 and 18
	form = url.Values{"slot_1": {"Rice Pilaf"}, "slot_2": {"-"}, "slot_18": {"אסאדו"}}
	req = httptest.NewRequest(http.MethodPost, "/summary", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "<td>1</td><td dir=\"auto\">Rice Pilaf</td><td dir=\"auto\">A</td>")
	assert.Contains(t, body, "<td>2</td><td dir=\"auto\">אסאדו</td><td dir=\"auto\">לפרוס דק</td>")
	assert.NotContains(t, body, "Ничего не выбрано.")
}

func TestPlannerFlow_NothingSelected(t *testing.T) {
	r := newTestRouter(t, t.TempDir())

	req := httptest.NewRequest(http.MethodPost, "/summary", strings.NewReader("slot_1=-"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ничего не выбрано.")
	assert.NotContains(t, w.Body.String(), "<table>")
}
