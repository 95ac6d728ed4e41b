package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stormhq/storm-admin/internal/backend"
	"github.com/stormhq/storm-admin/internal/config"
)

// fakeStorm is a scripted stand-in for the Storm API. It counts every
// call per "METHOD path" so tests can assert which backend operations a
// page interaction did, and did not, trigger.
type fakeStorm struct {
	mu    sync.Mutex
	calls map[string]int
	mux   *http.ServeMux
	srv   *httptest.Server
}

func newFakeStorm(t *testing.T) *fakeStorm {
	t.Helper()
	f := &fakeStorm{calls: map[string]int{}, mux: http.NewServeMux()}
	counted := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.calls[r.Method+" "+r.URL.Path]++
		f.mu.Unlock()
		f.mux.ServeHTTP(w, r)
	})
	f.srv = httptest.NewServer(counted)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeStorm) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *fakeStorm) handle(pattern string, fn http.HandlerFunc) { f.mux.HandleFunc(pattern, fn) }

// identities maps session tokens to /auth/me payloads.
func (f *fakeStorm) identities(byToken map[string]string) {
	f.handle("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("token")
		if err == nil {
			if body, ok := byToken[c.Value]; ok {
				w.Write([]byte(body))
				return
			}
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid session"}`))
	})
}

func newTestApp(t *testing.T, f *fakeStorm) http.Handler {
	t.Helper()
	return New(backend.New(config.APIConfig{BaseURL: f.srv.URL, Key: "k", Timeout: 5}))
}

const (
	superAdminMe = `{"user":{"id":"u1","email":"root@storm.io","name":"Root","roleId":"super_admin"}}`
	partnerMe    = `{"user":{"id":"u2","email":"p@storm.io","name":"Parceiro","roleId":"partner","contractId":"ct-1"}}`
	plainUserMe  = `{"user":{"id":"u3","email":"u@storm.io","name":"Comum","roleId":"user"}}`
)

func get(app http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func postForm(app http.Handler, path, token string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestLoginSetsCookieAndRedirects(t *testing.T) {
	f := newFakeStorm(t)
	f.handle("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"sess-ok"}`))
	})
	app := newTestApp(t, f)

	rec := postForm(app, "/login", "", url.Values{"email": {"root@storm.io"}, "password": {"Valid123"}})
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == "token" && c.Value == "sess-ok" {
			found = true
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, found, "session cookie not set")
}

func TestLoginFirstAccessRedirect(t *testing.T) {
	f := newFakeStorm(t)
	f.handle("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"password change required","isFirstAccess":true}`))
	})
	app := newTestApp(t, f)

	rec := postForm(app, "/login", "", url.Values{"email": {"novo@storm.io"}, "password": {"Temp1234"}})
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/first-access?email=novo%40storm.io", rec.Header().Get("Location"))
}

func TestLoginFailureShowsServerMessage(t *testing.T) {
	f := newFakeStorm(t)
	f.handle("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"conta bloqueada temporariamente"}`))
	})
	app := newTestApp(t, f)

	rec := postForm(app, "/login", "", url.Values{"email": {"a@b.c"}, "password": {"Valid123"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "conta bloqueada temporariamente")
}

func TestDashboardRendersIframe(t *testing.T) {
	f := newFakeStorm(t)
	f.identities(map[string]string{"tok-p": partnerMe})
	f.handle("/metabase/iframe", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"iframeUrl":"https://metabase.storm.io/embed/abc"}`))
	})
	app := newTestApp(t, f)

	rec := get(app, "/dashboard", "tok-p")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://metabase.storm.io/embed/abc")
	assert.Equal(t, 1, f.count("GET /auth/me"))
	assert.Equal(t, 1, f.count("POST /metabase/iframe"))
}

func TestDashboardWithoutContract(t *testing.T) {
	f := newFakeStorm(t)
	f.identities(map[string]string{"tok-u": plainUserMe})
	app := newTestApp(t, f)

	rec := get(app, "/dashboard", "tok-u")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "contrato")
	assert.Equal(t, 0, f.count("POST /metabase/iframe"))
}

func TestExpiredSessionClearsCookie(t *testing.T) {
	f := newFakeStorm(t)
	f.identities(map[string]string{})
	app := newTestApp(t, f)

	rec := get(app, "/dashboard", "tok-dead")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" && c.Value == "" && c.Expires.Before(time.Now()) {
			cleared = true
		}
	}
	assert.True(t, cleared, "stale cookie not cleared")
}

func TestForbiddenScreenRedirects(t *testing.T) {
	f := newFakeStorm(t)
	f.identities(map[string]string{"tok-p": partnerMe})
	app := newTestApp(t, f)

	rec := get(app, "/dashboard/admin/cupons", "tok-p")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard?err=forbidden", rec.Header().Get("Location"))
	assert.Equal(t, 0, f.count("GET /admin/coupons"))
}

func TestDeleteUserNeedsConfirmation(t *testing.T) {
	f := newFakeStorm(t)
	f.identities(map[string]string{"tok-sa": superAdminMe})
	f.handle("/admin/users/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	app := newTestApp(t, f)

	rec := postForm(app, "/dashboard/admin/usuarios/delete", "tok-sa", url.Values{"id": {"u9"}, "name": {"Fulano"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fulano")
	assert.Equal(t, 0, f.count("DELETE /admin/users/u9"), "unconfirmed delete reached the backend")

	rec = postForm(app, "/dashboard/admin/usuarios/delete", "tok-sa", url.Values{"id": {"u9"}, "confirm": {"1"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard/admin/usuarios?msg=user_deleted", rec.Header().Get("Location"))
	assert.Equal(t, 1, f.count("DELETE /admin/users/u9"))
}

func TestCreateCouponRedirectsThenRefetches(t *testing.T) {
	f := newFakeStorm(t)
	f.identities(map[string]string{"tok-sa": superAdminMe})
	f.handle("/admin/coupons", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"coupon":{"id":"c1","code":"PROMO10","discountType":"percentage","discountValue":10,"isActive":true,"createdAt":"2026-01-10T00:00:00Z"}}`))
			return
		}
		w.Write([]byte(`{"coupons":[{"id":"c1","code":"PROMO10","discountType":"percentage","discountValue":10,"isActive":true,"createdAt":"2026-01-10T00:00:00Z"}]}`))
	})
	app := newTestApp(t, f)

	rec := postForm(app, "/dashboard/admin/cupons/create", "tok-sa", url.Values{
		"code": {"PROMO10"}, "discountType": {"percentage"}, "discountValue": {"10"}, "isActive": {"on"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard/admin/cupons?msg=coupon_created", rec.Header().Get("Location"))
	assert.Equal(t, 0, f.count("GET /admin/coupons"), "list fetched before the redirect landed")

	rec = get(app, rec.Header().Get("Location"), "tok-sa")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROMO10")
	assert.Equal(t, 1, f.count("GET /admin/coupons"), "redirected page must re-fetch the list")
}

func TestCreateUserShowsTempPasswordOnce(t *testing.T) {
	f := newFakeStorm(t)
	f.identities(map[string]string{"tok-sa": superAdminMe})
	f.handle("/admin/users", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"user":{"id":"u5","email":"novo@storm.io","name":"Novo","roleId":"partner","isActive":true,"createdAt":"2026-02-01T00:00:00Z"},"tempPassword":"Xy7kQ2ab"}`))
			return
		}
		w.Write([]byte(`{"users":[{"id":"u5","email":"novo@storm.io","name":"Novo","roleId":"partner","isActive":true,"createdAt":"2026-02-01T00:00:00Z"}]}`))
	})
	f.handle("/admin/contracts", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"contracts":[]}`))
	})
	app := newTestApp(t, f)

	rec := postForm(app, "/dashboard/admin/usuarios/create", "tok-sa", url.Values{
		"name": {"Novo"}, "email": {"novo@storm.io"}, "roleId": {"partner"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Xy7kQ2ab")
	assert.Contains(t, rec.Header().Get("Cache-Control"), "no-store")

	// The password never appears again: the list page renders without it.
	rec = get(app, "/dashboard/admin/usuarios", "tok-sa")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Xy7kQ2ab")
}

func TestShareRequiresTargetUser(t *testing.T) {
	f := newFakeStorm(t)
	f.identities(map[string]string{"tok-sa": superAdminMe})
	f.handle("/admin/users", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users":[]}`))
	})
	f.handle("/admin/coupons/share", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	app := newTestApp(t, f)

	rec := postForm(app, "/dashboard/admin/cupons/share", "tok-sa", url.Values{"couponId": {"c1"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, f.count("POST /admin/coupons/share"), "share submitted without a target user")

	rec = postForm(app, "/dashboard/admin/cupons/share", "tok-sa", url.Values{
		"couponId": {"c1"}, "sharedWithUserId": {"u7"}, "canViewStats": {"on"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 1, f.count("POST /admin/coupons/share"))
}

func TestMyCouponsStatsVisibility(t *testing.T) {
	f := newFakeStorm(t)
	f.identities(map[string]string{"tok-p": partnerMe})
	f.handle("/partner/coupons", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"coupons":[
			{"id":"c1","code":"PROMO10","discountType":"percentage","discountValue":10,"isActive":true,"createdAt":"2026-01-01T00:00:00Z","share":{"id":"s1","canViewStats":true,"canDeactivate":false,"sharedAt":"2026-01-02T00:00:00Z","sharedByUser":{"id":"u1","name":"Root","email":"root@storm.io"}},"statistics":{"totalUses":7,"currentUses":7}},
			{"id":"c2","code":"SECRETO","discountType":"fixed","discountValue":3,"isActive":true,"createdAt":"2026-01-01T00:00:00Z","share":{"id":"s2","canViewStats":false,"canDeactivate":false,"sharedAt":"2026-01-02T00:00:00Z","sharedByUser":{"id":"u1","name":"Root","email":"root@storm.io"}},"statistics":{"totalUses":9,"currentUses":9}}
		]}`))
	})
	app := newTestApp(t, f)

	rec := get(app, "/dashboard/cupons", "tok-p")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "PROMO10")
	assert.Contains(t, body, "SECRETO")
	assert.Contains(t, body, ">7<", "granted share must show its usage count")
	assert.NotContains(t, body, ">9<", "stats rendered despite canViewStats=false")
}

func TestDeactivateWithoutGrantNeverWrites(t *testing.T) {
	f := newFakeStorm(t)
	f.identities(map[string]string{"tok-p": partnerMe})
	f.handle("/partner/coupons", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"coupons":[{"id":"c3","code":"FIXO5","discountType":"fixed","discountValue":5,"isActive":true,"createdAt":"2026-01-01T00:00:00Z","share":{"id":"s1","canViewStats":true,"canDeactivate":false,"sharedAt":"2026-01-02T00:00:00Z","sharedByUser":{"id":"u1","name":"Root","email":"root@storm.io"}}}]}`))
	})
	f.handle("/admin/coupons/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"coupon":{"id":"c3","code":"FIXO5","discountType":"fixed","discountValue":5,"isActive":false,"createdAt":"2026-01-01T00:00:00Z"}}`))
	})
	app := newTestApp(t, f)

	rec := postForm(app, "/dashboard/cupons/deactivate", "tok-p", url.Values{"id": {"c3"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard/cupons?err=deactivate_not_allowed", rec.Header().Get("Location"))
	assert.Equal(t, 0, f.count("PUT /admin/coupons/c3"), "deactivation reached the backend despite missing grant")
}

func TestFirstAccessValidatesBeforeBackend(t *testing.T) {
	f := newFakeStorm(t)
	f.handle("/auth/first-access/change-password", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	app := newTestApp(t, f)

	rec := postForm(app, "/first-access", "", url.Values{
		"email": {"novo@storm.io"}, "currentPassword": {"Temp1234"},
		"newPassword": {"alllowercase1"}, "confirmPassword": {"alllowercase1"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "maiúscula")
	assert.Equal(t, 0, f.count("POST /auth/first-access/change-password"))
}

func TestExportStreamsWorkbook(t *testing.T) {
	f := newFakeStorm(t)
	f.identities(map[string]string{"tok-sa": superAdminMe})
	f.handle("/admin/coupons", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"coupons":[{"id":"c1","code":"PROMO10","discountType":"percentage","discountValue":10,"isActive":true,"createdAt":"2026-01-10T00:00:00Z"}]}`))
	})
	app := newTestApp(t, f)

	rec := get(app, "/dashboard/admin/cupons/export", "tok-sa")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, rec.Body.Len())
}

func TestSessionEndpoint(t *testing.T) {
	f := newFakeStorm(t)
	f.identities(map[string]string{"tok-sa": superAdminMe})
	app := newTestApp(t, f)

	rec := get(app, "/api/session", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":false`)

	rec = get(app, "/api/session", "tok-sa")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":true`)
}

func TestHealth(t *testing.T) {
	f := newFakeStorm(t)
	app := newTestApp(t, f)

	rec := get(app, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
