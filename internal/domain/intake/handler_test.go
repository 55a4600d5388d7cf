package intake

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"sentagsite/internal/pkg/token"
)

func testRouter(api RemoteAPI) (*gin.Engine, *Registry) {
	gin.SetMode(gin.TestMode)
	registry := NewRegistry(api, time.Hour)
	handler := NewHandler(registry, token.New("test-secret", time.Hour))

	r := gin.New()
	v1 := r.Group("/api/v1")
	RegisterRoutes(v1, handler)
	return r, registry
}

func doJSON(r *gin.Engine, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validStep1Body() map[string]any {
	return map[string]any{
		"phone":         "+7 900 000-00-00",
		"email":         "ivanov@example.com",
		"company":       "Aquapark LLC",
		"role":          "customer",
		"fullName":      "Ivanov Ivan",
		"objectName":    "City Aquapark",
		"objectAddress": "Moscow, Prospekt Mira 1",
		"consent":       true,
	}
}

func TestGetStateIssuesSessionCookie(t *testing.T) {
	r, registry := testRouter(newFakeRemote())
	defer registry.Close()

	w := doJSON(r, http.MethodGet, "/api/v1/intake", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == "intake_session" {
			found = true
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, found)
	assert.Contains(t, w.Body.String(), `"state":"step1_editing"`)
}

func TestSessionCookieResumesWizard(t *testing.T) {
	r, registry := testRouter(newFakeRemote())
	defer registry.Close()

	w := doJSON(r, http.MethodPost, "/api/v1/intake/step1", validStep1Body(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()

	// The next request with the cookie sees step 2, not a fresh wizard.
	w = doJSON(r, http.MethodGet, "/api/v1/intake", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"step2_editing"`)
	assert.Contains(t, w.Body.String(), `"has_request_id":true`)
}

func TestForgedSessionCookieStartsFresh(t *testing.T) {
	r, registry := testRouter(newFakeRemote())
	defer registry.Close()

	forged := []*http.Cookie{{Name: "intake_session", Value: "forged-value"}}
	w := doJSON(r, http.MethodGet, "/api/v1/intake", nil, forged)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"step1_editing"`)
}

func TestSubmitStep1ValidationResponse(t *testing.T) {
	r, registry := testRouter(newFakeRemote())
	defer registry.Close()

	body := validStep1Body()
	body["email"] = ""
	body["consent"] = false

	w := doJSON(r, http.MethodPost, "/api/v1/intake/step1", body, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, w.Body.String(), "Email")
	assert.Contains(t, w.Body.String(), "Consent")
}

func TestSubmitStep1BackendFailure(t *testing.T) {
	api := newFakeRemote()
	api.step1Err = assert.AnError
	r, registry := testRouter(api)
	defer registry.Close()

	w := doJSON(r, http.MethodPost, "/api/v1/intake/step1", validStep1Body(), nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "BACKEND_ERROR")
}

func TestAttachmentUploadAndSubmit(t *testing.T) {
	api := newFakeRemote()
	r, registry := testRouter(api)
	defer registry.Close()

	w := doJSON(r, http.MethodPost, "/api/v1/intake/step1", validStep1Body(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()

	w = doJSON(r, http.MethodPatch, "/api/v1/intake/step2", map[string]any{
		"visitorsInfo": "200/day",
		"poolSize":     "25m",
		"deadline":     "Q4",
	}, cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doMultipart(r, "/api/v1/intake/attachments/company-card", "card.pdf", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "card.pdf")

	w = doJSON(r, http.MethodPost, "/api/v1/intake/submit", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"step1_editing"`)

	assert.Equal(t, 1, api.uploadCount())
	assert.Len(t, api.step2Calls, 1)
}

func TestSubmitWithoutPoolSizeFails(t *testing.T) {
	r, registry := testRouter(newFakeRemote())
	defer registry.Close()

	w := doJSON(r, http.MethodPost, "/api/v1/intake/step1", validStep1Body(), nil)
	cookies := w.Result().Cookies()

	w = doJSON(r, http.MethodPost, "/api/v1/intake/submit", nil, cookies)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "PoolSize")
}

func TestBackEndpoint(t *testing.T) {
	r, registry := testRouter(newFakeRemote())
	defer registry.Close()

	w := doJSON(r, http.MethodPost, "/api/v1/intake/step1", validStep1Body(), nil)
	cookies := w.Result().Cookies()

	w = doJSON(r, http.MethodPost, "/api/v1/intake/back", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"step1_editing"`)
	assert.Contains(t, w.Body.String(), `"has_request_id":true`)
}

func doMultipart(r *gin.Engine, path, filename string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", filename)
	part.Write([]byte("%PDF-1.4 test"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
