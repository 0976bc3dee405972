package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AnshRaj112/tgprofile-forwarder/internal/models"
)

type sentPayload struct {
	path, contentType string
	body              []byte
}

type fakeDispatcher struct {
	mu   sync.Mutex
	sent []sentPayload
}

func (d *fakeDispatcher) Dispatch(path, contentType string, body []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, sentPayload{path, contentType, body})
}

func initData(user string) string {
	v := url.Values{}
	v.Set("user", user)
	v.Set("auth_date", "1700000000")
	v.Set("hash", "unchecked")
	return v.Encode()
}

func TestPageRendersProfileAndForwards(t *testing.T) {
	disp := &fakeDispatcher{}
	h := NewMiniAppHandler(disp, zap.NewNop())

	q := url.Values{}
	q.Set(InitDataParam, initData(`{"id":77,"first_name":"Lin","username":"lin","language_code":"de"}`))
	req := httptest.NewRequest(http.MethodGet, "/?"+q.Encode(), nil)
	rec := httptest.NewRecorder()

	h.Page(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get(ActivationIDHeader))
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	require.Contains(t, body, `<div id="info">`)
	require.Contains(t, body, "<p><strong>ID:</strong> 77</p>")
	require.Contains(t, body, "<p><strong>Last Name:</strong> None</p>")
	require.Contains(t, body, "<p><strong>Username:</strong> @lin</p>")

	require.Len(t, disp.sent, 1)
	require.Equal(t, "/submit", disp.sent[0].path)
	require.Equal(t, "application/json", disp.sent[0].contentType)
	var forwarded models.UserProfile
	require.NoError(t, json.Unmarshal(disp.sent[0].body, &forwarded))
	require.Equal(t, models.UserProfile{ID: 77, FirstName: "Lin", Username: "lin", LanguageCode: "de"}, forwarded)
}

func TestPageReadsInitDataHeader(t *testing.T) {
	disp := &fakeDispatcher{}
	h := NewMiniAppHandler(disp, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(InitDataHeader, initData(`{"id":3,"first_name":"Kai","is_premium":true}`))
	rec := httptest.NewRecorder()

	h.Page(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "<p><strong>Premium:</strong> Yes</p>")
	require.Len(t, disp.sent, 1)
}

func TestPageWithoutUser(t *testing.T) {
	disp := &fakeDispatcher{}
	h := NewMiniAppHandler(disp, zap.NewNop())

	rec := httptest.NewRecorder()
	h.Page(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.False(t, resp.Success)
	require.Empty(t, disp.sent)
}

func TestPageWithMalformedInitData(t *testing.T) {
	disp := &fakeDispatcher{}
	h := NewMiniAppHandler(disp, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(InitDataHeader, "user=%7Bnot-json")
	rec := httptest.NewRecorder()
	h.Page(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, disp.sent)
}

func TestSubmitEchoesProfile(t *testing.T) {
	h := NewSubmitHandler(zap.NewNop())

	body := `{"id":5,"first_name":"Eve","last_name":"Moss","is_premium":true}`
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SubmitResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "ok", resp.Status)
	require.Equal(t, &models.UserProfile{ID: 5, FirstName: "Eve", LastName: "Moss", IsPremium: true}, resp.Received)
}

func TestSubmitRejectsInvalidBody(t *testing.T) {
	h := NewSubmitHandler(zap.NewNop())

	rec := httptest.NewRecorder()
	h.Submit(rec, httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader("{")))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
