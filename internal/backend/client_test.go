package backend

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sentagsite/internal/config"
)

func testClient(srv *httptest.Server) *Client {
	urls := config.BackendURLs{
		SaveRequest:  srv.URL + "/save-request",
		UploadFile:   srv.URL + "/upload-file",
		AdminAuth:    srv.URL + "/admin-auth",
		SiteSettings: srv.URL + "/site-settings",
		Documents:    srv.URL + "/documents",
		TrackClick:   srv.URL + "/track-click",
		TrackVisit:   srv.URL + "/track-visit",
		ClickStats:   srv.URL + "/click-stats",
		Requests:     srv.URL + "/requests",
	}
	return NewClient(urls, 5*time.Second)
}

func TestSubmitLeadStep1(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/save-request", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{"success": true, "requestId": 7})
	}))
	defer srv.Close()

	id, err := testClient(srv).SubmitLeadStep1(context.Background(), &Step1Request{
		Phone: "+7 900", Email: "a@b.c", Consent: true, VisitorID: "v-1",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, float64(1), got["step"])
	assert.Equal(t, "v-1", got["visitorId"])
}

func TestSubmitLeadStep1RemoteRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "duplicate"})
	}))
	defer srv.Close()

	_, err := testClient(srv).SubmitLeadStep1(context.Background(), &Step1Request{})
	var be *Error
	assert.ErrorAs(t, err, &be)
	assert.Equal(t, "duplicate", be.Message)
}

func TestUploadFileEncodesContent(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{"success": true, "url": "https://files/x.pdf"})
	}))
	defer srv.Close()

	url, err := testClient(srv).UploadFile(context.Background(), 7, CategoryCompanyCard, "x.pdf", "application/pdf", []byte("hello"))
	assert.NoError(t, err)
	assert.Equal(t, "https://files/x.pdf", url)

	assert.Equal(t, "x.pdf", got["name"])
	assert.Equal(t, "company_card", got["category"])
	assert.Equal(t, float64(7), got["requestId"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("hello")), got["content"])
}

func TestAuthHeaderForwarded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("X-Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"users": []any{}})
	}))
	defer srv.Close()

	users, err := testClient(srv).ListUsers(context.Background(), "tok-1")
	assert.NoError(t, err)
	assert.Empty(t, users)
}

func TestNon2xxBecomesBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"error": "Invalid session"})
	}))
	defer srv.Close()

	_, err := testClient(srv).VerifySession(context.Background(), "stale")
	var be *Error
	assert.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusUnauthorized, be.Status)
	assert.Equal(t, "Invalid session", be.Message)
}

func TestTransportErrorHasZeroStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	err := testClient(srv).TrackVisit(context.Background(), "v-1")
	var be *Error
	assert.ErrorAs(t, err, &be)
	assert.Zero(t, be.Status)
}

func TestMalformedBodyIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := testClient(srv).GetSettings(context.Background())
	var be *Error
	assert.ErrorAs(t, err, &be)
	assert.Equal(t, "malformed response body", be.Message)
}

func TestCallerContextCancelsRequest(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	err := testClient(srv).TrackVisit(ctx, "v-1")
	assert.Error(t, err)
	var be *Error
	assert.ErrorAs(t, err, &be)
	assert.True(t, errors.Is(ctx.Err(), context.Canceled))
}
