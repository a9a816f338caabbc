package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"standupdash/pkg/standupapi"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

func newTestServer(api API, useMock bool) (*Server, *Dashboard) {
	gin.SetMode(gin.TestMode)
	d := newTestDashboard(api, useMock)
	s := NewServer(d)
	s.run = func(f func()) { f() }
	return s, d
}

func postForm(h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.ServeHTTP(w, req)
	return w
}

func TestIndex_LoadingShowsSkeletons(t *testing.T) {
	s, _ := newTestServer(&fakeAPI{}, true)

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, 6, strings.Count(body, `class="loading-card"`))
	assert.Equal(t, true, strings.Contains(body, `http-equiv="refresh"`))
	assert.Equal(t, true, strings.Contains(body, "Mock Data"))
}

func TestIndex_RendersChannels(t *testing.T) {
	s, d := newTestServer(&fakeAPI{}, true)
	d.Load(t.Context())

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	body := w.Body.String()
	assert.Equal(t, 10, strings.Count(body, `class="channel-card"`))
	assert.Equal(t, true, strings.Contains(body, "Infrastructure Team"))
	assert.Equal(t, true, strings.Contains(body, "Total Messages"))
	assert.Equal(t, true, strings.Contains(body, ">120<"))
	assert.Equal(t, false, strings.Contains(body, `http-equiv="refresh"`))
}

func TestIndex_ShowsError(t *testing.T) {
	s, _ := newTestServer(&fakeAPI{channelsErr: standupapi.ErrFetchChannels}, true)

	postForm(s.Handler(), "/source", url.Values{"source": {"real"}})

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, true, strings.Contains(w.Body.String(), "Error: Failed to fetch channels"))
	assert.Equal(t, true, strings.Contains(w.Body.String(), "Real Data"))
}

func TestDate_Reloads(t *testing.T) {
	s, d := newTestServer(&fakeAPI{}, true)

	w := postForm(s.Handler(), "/date", url.Values{"date": {"2024-02-02"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, "2024-02-02", d.State().SelectedDate)
	assert.Equal(t, false, d.State().Loading)
}

func TestDate_UnchangedIsNoop(t *testing.T) {
	s, d := newTestServer(&fakeAPI{}, true)

	postForm(s.Handler(), "/date", url.Values{"date": {"2024-01-01"}})
	postForm(s.Handler(), "/date", url.Values{"date": {""}})

	assert.Equal(t, 0, d.State().Generation)
}

func TestRefresh_IgnoredWhileLoading(t *testing.T) {
	s, d := newTestServer(&fakeAPI{}, true)

	postForm(s.Handler(), "/refresh", nil)
	assert.Equal(t, 0, d.State().Generation)

	d.Load(t.Context())
	postForm(s.Handler(), "/refresh", nil)
	assert.Equal(t, 2, d.State().Generation)
}

func TestStateJSON(t *testing.T) {
	s, d := newTestServer(&fakeAPI{}, true)
	d.Load(t.Context())

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/state", nil))

	var st State
	json.Unmarshal(w.Body.Bytes(), &st)
	assert.Equal(t, 10, len(st.Channels))
	assert.Equal(t, true, st.UseMockData)
}
