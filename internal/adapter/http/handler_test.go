package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adwallet/internal/adapter/session"
	"adwallet/internal/core/domain"
	"adwallet/internal/core/port"
	"adwallet/internal/core/port/mocks"
)

const cookieName = "sessionid"

type testEnv struct {
	svc      *mocks.MockMarketUseCase
	sessions *mocks.MockSessionStore
	tokens   *session.Tokens
	handler  http.Handler
}

func newTestEnv(t *testing.T, opts ...func(*Options)) *testEnv {
	t.Helper()
	o := Options{CookieName: cookieName, SessionTTL: time.Hour, MaxUploadBytes: 1 << 20}
	for _, fn := range opts {
		fn(&o)
	}
	env := &testEnv{
		svc:      mocks.NewMockMarketUseCase(t),
		sessions: mocks.NewMockSessionStore(t),
		tokens:   session.NewTokens("test-secret", time.Hour),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env.handler = NewHandler(env.svc, env.sessions, env.tokens, o, logger).Router()
	return env
}

// login attaches a valid session cookie to req and makes the store resolve
// it to wallet.
func (e *testEnv) login(t *testing.T, req *http.Request, wallet string) string {
	t.Helper()
	sid := session.NewID()
	tok, err := e.tokens.Issue(sid)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: tok})
	e.sessions.EXPECT().Load(mock.Anything, sid).Return(wallet, nil)
	return sid
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sameAmount(s string) interface{} {
	want := dec(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func advertiserProfile(balance string) domain.Profile {
	return domain.Profile{ID: 7, WalletAddress: "0xadv", Role: domain.RoleAdvertiser, ETHBalance: dec(balance), TokenBalance: decimal.Zero}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHome(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		env := newTestEnv(t)
		env.svc.EXPECT().Profile(mock.Anything, "").Return(nil, nil)

		rec := env.do(httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "", body["wallet_address"])
		assert.NotContains(t, body, "profile")
	})

	t.Run("registered", func(t *testing.T) {
		env := newTestEnv(t)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		env.login(t, req, "0xadv")
		p := advertiserProfile("1.5")
		env.svc.EXPECT().Profile(mock.Anything, "0xadv").Return(&p, nil)

		body := decodeBody(t, env.do(req))
		assert.Equal(t, "0xadv", body["wallet_address"])
		profile := body["profile"].(map[string]any)
		assert.Equal(t, "advertiser", profile["role"])
		assert.Equal(t, "1.50000000", profile["eth_balance"])
		assert.Equal(t, "0.00", profile["token_balance"])
	})
}

func TestConnectWallet(t *testing.T) {
	t.Run("starts a session", func(t *testing.T) {
		env := newTestEnv(t)
		env.svc.EXPECT().ConnectWallet(mock.Anything, "0xabc").
			Return(&port.ConnectResult{Wallet: "0xabc", RedirectURL: "/select_role/"}, nil)

		var savedID string
		env.sessions.EXPECT().Save(mock.Anything, mock.AnythingOfType("string"), "0xabc").
			Run(func(_ context.Context, sessionID, _ string) { savedID = sessionID }).
			Return(nil)

		rec := env.do(jsonRequest(http.MethodPost, "/connect_wallet/", `{"wallet_address":"0xabc"}`))
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, false, body["has_profile"])
		assert.Equal(t, "/select_role/", body["redirect_url"])
		assert.NotContains(t, body, "role")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, cookieName, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
		sid, err := env.tokens.Parse(cookies[0].Value)
		require.NoError(t, err)
		assert.Equal(t, savedID, sid)
		_, err = uuid.Parse(savedID)
		assert.NoError(t, err)
	})

	t.Run("reuses the current session", func(t *testing.T) {
		env := newTestEnv(t)
		req := jsonRequest(http.MethodPost, "/connect_wallet/", `{"wallet_address":"0xadv"}`)
		sid := env.login(t, req, "0xold")
		env.svc.EXPECT().ConnectWallet(mock.Anything, "0xadv").
			Return(&port.ConnectResult{Wallet: "0xadv", HasProfile: true, Role: domain.RoleAdvertiser, RedirectURL: "/advertiser_dashboard/"}, nil)
		env.sessions.EXPECT().Save(mock.Anything, sid, "0xadv").Return(nil)

		body := decodeBody(t, env.do(req))
		assert.Equal(t, true, body["has_profile"])
		assert.Equal(t, "advertiser", body["role"])
		assert.Equal(t, "/advertiser_dashboard/", body["redirect_url"])
	})

	t.Run("missing address", func(t *testing.T) {
		env := newTestEnv(t)
		body := decodeBody(t, env.do(jsonRequest(http.MethodPost, "/connect_wallet/", `{}`)))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Invalid wallet address", body["error"])
		assert.Equal(t, "invalid_wallet", body["reason"])
	})

	t.Run("blank address rejected by use case", func(t *testing.T) {
		env := newTestEnv(t)
		env.svc.EXPECT().ConnectWallet(mock.Anything, "   ").Return(nil, domain.ErrInvalidWallet)

		body := decodeBody(t, env.do(jsonRequest(http.MethodPost, "/connect_wallet/", `{"wallet_address":"   "}`)))
		assert.Equal(t, "Invalid wallet address", body["error"])
	})

	t.Run("malformed body", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(jsonRequest(http.MethodPost, "/connect_wallet/", `{"wallet_address":`))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Invalid request body", decodeBody(t, rec)["error"])
	})

	t.Run("session store failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.svc.EXPECT().ConnectWallet(mock.Anything, "0xabc").
			Return(&port.ConnectResult{Wallet: "0xabc", RedirectURL: "/select_role/"}, nil)
		env.sessions.EXPECT().Save(mock.Anything, mock.Anything, "0xabc").Return(errors.New("redis down"))

		rec := env.do(jsonRequest(http.MethodPost, "/connect_wallet/", `{"wallet_address":"0xabc"}`))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestIdentity(t *testing.T) {
	t.Run("forged cookie is ignored", func(t *testing.T) {
		env := newTestEnv(t)
		forged, err := session.NewTokens("other-secret", time.Hour).Issue(session.NewID())
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/select_role/", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: forged})

		rec := env.do(req)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("expired session is anonymous", func(t *testing.T) {
		env := newTestEnv(t)
		req := httptest.NewRequest(http.MethodGet, "/publisher_dashboard/", nil)
		env.login(t, req, "")
		env.svc.EXPECT().PublisherDashboard(mock.Anything, "").Return(nil, domain.ErrNotAuthenticated)

		rec := env.do(req)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("store failure", func(t *testing.T) {
		env := newTestEnv(t)
		sid := session.NewID()
		tok, err := env.tokens.Issue(sid)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: tok})
		env.sessions.EXPECT().Load(mock.Anything, sid).Return("", errors.New("redis down"))

		assert.Equal(t, http.StatusInternalServerError, env.do(req).Code)
	})
}

func TestSelectRole(t *testing.T) {
	t.Run("requires a wallet", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(formRequest("/select_role/", url.Values{"role": {"publisher"}}))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("get shows the form", func(t *testing.T) {
		env := newTestEnv(t)
		req := httptest.NewRequest(http.MethodGet, "/select_role/", nil)
		env.login(t, req, "0xabc")

		body := decodeBody(t, env.do(req))
		assert.Equal(t, "0xabc", body["wallet_address"])
		assert.Equal(t, []any{"publisher", "advertiser"}, body["roles"])
	})

	t.Run("registers and redirects", func(t *testing.T) {
		env := newTestEnv(t)
		req := formRequest("/select_role/", url.Values{"role": {"publisher"}})
		env.login(t, req, "0xabc")
		env.svc.EXPECT().SelectRole(mock.Anything, "0xabc", "publisher").
			Return(&domain.Profile{ID: 1, WalletAddress: "0xabc", Role: domain.RolePublisher}, nil)

		rec := env.do(req)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/publisher_dashboard/", rec.Header().Get("Location"))
	})

	t.Run("unknown role shows the form again", func(t *testing.T) {
		env := newTestEnv(t)
		req := formRequest("/select_role/", url.Values{"role": {"admin"}})
		env.login(t, req, "0xabc")

		rec := env.do(req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "0xabc", decodeBody(t, rec)["wallet_address"])
	})

	t.Run("second registration conflicts", func(t *testing.T) {
		env := newTestEnv(t)
		req := formRequest("/select_role/", url.Values{"role": {"advertiser"}})
		env.login(t, req, "0xabc")
		env.svc.EXPECT().SelectRole(mock.Anything, "0xabc", "advertiser").
			Return(nil, fmt.Errorf("create profile: %w", domain.ErrProfileExists))

		rec := env.do(req)
		assert.Equal(t, http.StatusConflict, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "profile_exists", body["reason"])
	})
}

func TestPublisherDashboard(t *testing.T) {
	t.Run("lists videos", func(t *testing.T) {
		env := newTestEnv(t)
		req := httptest.NewRequest(http.MethodGet, "/publisher_dashboard/", nil)
		env.login(t, req, "0xpub")
		env.svc.EXPECT().PublisherDashboard(mock.Anything, "0xpub").Return(&port.PublisherDashboard{
			Profile: domain.Profile{ID: 3, WalletAddress: "0xpub", Role: domain.RolePublisher},
			Videos: []domain.Video{
				{ID: 1, PublisherID: 7, Title: "a", VideoFile: "videos/a.mp4", Impressions: 2, EarningsETH: dec("0.02"), EarningsTokens: dec("200")},
			},
		}, nil)

		rec := env.do(req)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		videos := body["videos"].([]any)
		require.Len(t, videos, 1)
		v := videos[0].(map[string]any)
		assert.Equal(t, "0.02000000", v["earnings_eth"])
		assert.Equal(t, "200.00", v["earnings_tokens"])
		assert.Equal(t, float64(2), v["impressions"])
	})

	t.Run("wrong role goes home", func(t *testing.T) {
		env := newTestEnv(t)
		req := httptest.NewRequest(http.MethodGet, "/publisher_dashboard/", nil)
		env.login(t, req, "0xadv")
		env.svc.EXPECT().PublisherDashboard(mock.Anything, "0xadv").Return(nil, domain.ErrWrongRole)

		rec := env.do(req)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("storage failure", func(t *testing.T) {
		env := newTestEnv(t)
		req := httptest.NewRequest(http.MethodGet, "/publisher_dashboard/", nil)
		env.login(t, req, "0xpub")
		env.svc.EXPECT().PublisherDashboard(mock.Anything, "0xpub").Return(nil, errors.New("db down"))

		assert.Equal(t, http.StatusInternalServerError, env.do(req).Code)
	})
}

func multipartRequest(t *testing.T, title, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if title != "" {
		require.NoError(t, mw.WriteField("title", title))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("video_file", filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/advertiser_dashboard/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAdvertiserDashboard(t *testing.T) {
	t.Run("lists own videos and campaigns", func(t *testing.T) {
		env := newTestEnv(t)
		req := httptest.NewRequest(http.MethodGet, "/advertiser_dashboard/", nil)
		env.login(t, req, "0xadv")
		env.svc.EXPECT().AdvertiserDashboard(mock.Anything, "0xadv").Return(&port.AdvertiserDashboard{
			Profile:   advertiserProfile("4"),
			Videos:    []domain.Video{{ID: 1, PublisherID: 7}},
			Campaigns: []domain.Campaign{{ID: 9, AdvertiserID: 7, VideoID: 1, BudgetETH: dec("3")}},
		}, nil)

		body := decodeBody(t, env.do(req))
		assert.Equal(t, "4.00000000", body["profile"].(map[string]any)["eth_balance"])
		campaigns := body["campaigns"].([]any)
		require.Len(t, campaigns, 1)
		c := campaigns[0].(map[string]any)
		assert.Equal(t, "3.00000000", c["budget_eth"])
		assert.Equal(t, "0.00000000", c["spent_eth"])
		assert.Equal(t, float64(0), c["views"])
	})

	t.Run("upload redirects back", func(t *testing.T) {
		env := newTestEnv(t)
		req := multipartRequest(t, "clip", "clip.mp4", "frames")
		env.login(t, req, "0xadv")
		env.svc.EXPECT().UploadVideo(mock.Anything, "0xadv", mock.MatchedBy(func(u port.VideoUpload) bool {
			return u.Title == "clip" && u.Filename == "clip.mp4" && u.File != nil
		})).Return(&domain.Video{ID: 1}, nil)

		rec := env.do(req)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/advertiser_dashboard/", rec.Header().Get("Location"))
	})

	t.Run("missing file renders dashboard", func(t *testing.T) {
		env := newTestEnv(t)
		req := multipartRequest(t, "clip", "", "")
		env.login(t, req, "0xadv")
		env.svc.EXPECT().UploadVideo(mock.Anything, "0xadv", mock.MatchedBy(func(u port.VideoUpload) bool {
			return u.Title == "clip" && u.File == nil
		})).Return(nil, domain.ErrMissingUpload)
		env.svc.EXPECT().AdvertiserDashboard(mock.Anything, "0xadv").
			Return(&port.AdvertiserDashboard{Profile: advertiserProfile("0")}, nil)

		rec := env.do(req)
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Empty(t, body["videos"])
	})

	t.Run("publisher cannot upload", func(t *testing.T) {
		env := newTestEnv(t)
		req := multipartRequest(t, "clip", "clip.mp4", "frames")
		env.login(t, req, "0xpub")
		env.svc.EXPECT().UploadVideo(mock.Anything, "0xpub", mock.Anything).Return(nil, domain.ErrWrongRole)

		rec := env.do(req)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("oversized upload", func(t *testing.T) {
		env := newTestEnv(t, func(o *Options) { o.MaxUploadBytes = 64 })
		req := multipartRequest(t, "clip", "clip.mp4", strings.Repeat("x", 1024))
		env.login(t, req, "0xadv")

		assert.Equal(t, http.StatusRequestEntityTooLarge, env.do(req).Code)
	})
}

func TestSimulateView(t *testing.T) {
	t.Run("credits one view", func(t *testing.T) {
		env := newTestEnv(t)
		env.svc.EXPECT().SimulateView(mock.Anything, int64(4)).Return(&port.ViewResult{
			Video:     domain.Video{ID: 4, Impressions: 1, EarningsETH: dec("0.01"), EarningsTokens: dec("100")},
			Publisher: domain.Profile{ETHBalance: dec("0.01"), TokenBalance: dec("100")},
		}, nil)

		rec := env.do(httptest.NewRequest(http.MethodPost, "/simulate_ad_view/4/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(1), body["impressions"])
		assert.Equal(t, "0.01000000", body["earnings_eth"])
		assert.Equal(t, "100.00", body["earnings_tokens"])
		assert.Equal(t, "0.01000000", body["publisher_eth_balance"])
		assert.Equal(t, "100.00", body["publisher_token_balance"])
	})

	t.Run("unknown video", func(t *testing.T) {
		env := newTestEnv(t)
		env.svc.EXPECT().SimulateView(mock.Anything, int64(99)).
			Return(nil, fmt.Errorf("record view: %w", domain.ErrVideoNotFound))

		assert.Equal(t, http.StatusNotFound, env.do(httptest.NewRequest(http.MethodPost, "/simulate_ad_view/99/", nil)).Code)
	})

	t.Run("non numeric id", func(t *testing.T) {
		env := newTestEnv(t)
		assert.Equal(t, http.StatusNotFound, env.do(httptest.NewRequest(http.MethodPost, "/simulate_ad_view/abc/", nil)).Code)
	})

	t.Run("get is not allowed", func(t *testing.T) {
		env := newTestEnv(t)
		assert.Equal(t, http.StatusMethodNotAllowed, env.do(httptest.NewRequest(http.MethodGet, "/simulate_ad_view/4/", nil)).Code)
	})
}

func TestAddETH(t *testing.T) {
	t.Run("not authenticated", func(t *testing.T) {
		env := newTestEnv(t)
		body := decodeBody(t, env.do(jsonRequest(http.MethodPost, "/add_eth/", `{"amount":1}`)))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Not authenticated", body["error"])
	})

	tests := []struct {
		name   string
		body   string
		amount string
	}{
		{"number", `{"amount":5.00000000}`, "5"},
		{"string", `{"amount":"5"}`, "5"},
		{"missing", `{}`, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			req := jsonRequest(http.MethodPost, "/add_eth/", tt.body)
			env.login(t, req, "0xadv")
			env.svc.EXPECT().AddETH(mock.Anything, "0xadv", sameAmount(tt.amount)).Return(dec("5"), nil)

			body := decodeBody(t, env.do(req))
			assert.Equal(t, true, body["success"])
			assert.Equal(t, "5.00000000", body["new_balance"])
		})
	}

	t.Run("invalid amount", func(t *testing.T) {
		env := newTestEnv(t)
		req := jsonRequest(http.MethodPost, "/add_eth/", `{"amount":"lots"}`)
		env.login(t, req, "0xadv")

		body := decodeBody(t, env.do(req))
		assert.Equal(t, "Invalid amount", body["error"])
		assert.Equal(t, "invalid_amount", body["reason"])
	})

	// Oversized values are refused before rounding, which would otherwise
	// expand the coefficient to 10^|exponent| digits.
	unstorable := []string{
		`{"amount":"1e300000000"}`,
		`{"amount":1e300000000}`,
		`{"amount":"1e-300000000"}`,
		`{"amount":"1e13"}`,
		`{"amount":1000000000000}`,
	}
	for _, raw := range unstorable {
		t.Run("unstorable "+raw, func(t *testing.T) {
			env := newTestEnv(t)
			req := jsonRequest(http.MethodPost, "/add_eth/", raw)
			env.login(t, req, "0xadv")

			rec := env.do(req)
			assert.Equal(t, http.StatusOK, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Invalid amount", body["error"])
			assert.Equal(t, "invalid_amount", body["reason"])
		})
	}

	t.Run("user not found", func(t *testing.T) {
		env := newTestEnv(t)
		req := jsonRequest(http.MethodPost, "/add_eth/", `{"amount":1}`)
		env.login(t, req, "0xghost")
		env.svc.EXPECT().AddETH(mock.Anything, "0xghost", mock.Anything).Return(decimal.Zero, domain.ErrProfileNotFound)

		body := decodeBody(t, env.do(req))
		assert.Equal(t, "User not found", body["error"])
		assert.Equal(t, "profile_not_found", body["reason"])
	})
}

func TestCreateCampaign(t *testing.T) {
	t.Run("funds a campaign", func(t *testing.T) {
		env := newTestEnv(t)
		req := jsonRequest(http.MethodPost, "/create_campaign/", `{"video_id":"4","budget":3}`)
		env.login(t, req, "0xadv")
		env.svc.EXPECT().CreateCampaign(mock.Anything, "0xadv", int64(4), sameAmount("3")).
			Return(&port.CampaignResult{Campaign: domain.Campaign{ID: 11}, NewBalance: dec("7")}, nil)

		body := decodeBody(t, env.do(req))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(11), body["campaign_id"])
		assert.Equal(t, "7.00000000", body["new_balance"])
	})

	rejections := []struct {
		name   string
		err    error
		msg    string
		reason string
	}{
		{"insufficient balance", domain.ErrInsufficientBalance, "Insufficient balance", "insufficient_balance"},
		{"wrong role", domain.ErrWrongRole, "Invalid request", "wrong_role"},
		{"unknown profile", domain.ErrProfileNotFound, "Invalid request", "profile_not_found"},
		{"unknown video", domain.ErrVideoNotFound, "Invalid request", "video_not_found"},
	}
	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			req := jsonRequest(http.MethodPost, "/create_campaign/", `{"video_id":4,"budget":"3"}`)
			env.login(t, req, "0xadv")
			env.svc.EXPECT().CreateCampaign(mock.Anything, "0xadv", int64(4), sameAmount("3")).
				Return(nil, fmt.Errorf("create campaign: %w", tt.err))

			rec := env.do(req)
			assert.Equal(t, http.StatusOK, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.msg, body["error"])
			assert.Equal(t, tt.reason, body["reason"])
		})
	}

	for _, raw := range []string{`{"video_id":4,"budget":"1e300000000"}`, `{"video_id":4,"budget":1e13}`} {
		t.Run("unstorable budget "+raw, func(t *testing.T) {
			env := newTestEnv(t)
			req := jsonRequest(http.MethodPost, "/create_campaign/", raw)
			env.login(t, req, "0xadv")

			body := decodeBody(t, env.do(req))
			assert.Equal(t, "Invalid amount", body["error"])
			assert.Equal(t, "invalid_amount", body["reason"])
		})
	}

	t.Run("non numeric video id", func(t *testing.T) {
		env := newTestEnv(t)
		req := jsonRequest(http.MethodPost, "/create_campaign/", `{"video_id":"four","budget":1}`)
		env.login(t, req, "0xadv")

		body := decodeBody(t, env.do(req))
		assert.Equal(t, "Invalid request", body["error"])
		assert.Equal(t, "invalid_video_id", body["reason"])
	})

	t.Run("not authenticated", func(t *testing.T) {
		env := newTestEnv(t)
		body := decodeBody(t, env.do(jsonRequest(http.MethodPost, "/create_campaign/", `{"video_id":1}`)))
		assert.Equal(t, "Not authenticated", body["error"])
	})

	t.Run("storage failure", func(t *testing.T) {
		env := newTestEnv(t)
		req := jsonRequest(http.MethodPost, "/create_campaign/", `{"video_id":1,"budget":1}`)
		env.login(t, req, "0xadv")
		env.svc.EXPECT().CreateCampaign(mock.Anything, "0xadv", int64(1), mock.Anything).Return(nil, errors.New("db down"))

		rec := env.do(req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal error", decodeBody(t, rec)["error"])
	})
}
