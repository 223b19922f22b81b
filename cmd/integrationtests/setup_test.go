package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	market "solosphere-server/internal/marketService"
	"solosphere-server/internal/repository"
	"solosphere-server/internal/server"
	"solosphere-server/internal/token"
)

const testSecret = "integration-test-secret"

// SetupTestRouter initializes the full router with an in-memory repository
// and a real token service for integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	service := market.NewMarketService(repo)
	tokens := token.NewService(testSecret, 365*24*time.Hour)
	return server.SetupRouter(service, tokens, false)
}

// ExecuteRequest executes an HTTP request with optional session cookies and
// returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ParseData unmarshals the standard response envelope and returns its data field
func ParseData(t *testing.T, w *httptest.ResponseRecorder) any {
	t.Helper()

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp["data"]
}

// LoginAs obtains a session cookie for the given email through POST /jwt
func LoginAs(t *testing.T, router *gin.Engine, email string) *http.Cookie {
	t.Helper()

	w := ExecuteRequest(t, router, http.MethodPost, "/jwt", map[string]string{"email": email})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "token" && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("no session cookie in /jwt response")
	return nil
}

// seedJobPayload builds a valid job creation body
func seedJobPayload(title, category, deadline, buyerEmail string) map[string]any {
	return map[string]any{
		"job_title": title,
		"category":  category,
		"deadline":  deadline,
		"min_price": 100.0,
		"max_price": 300.0,
		"buyer": map[string]any{
			"email": buyerEmail,
			"name":  "Test Buyer",
		},
	}
}

// CreateJob posts a job and returns its assigned identifier
func CreateJob(t *testing.T, router *gin.Engine, payload map[string]any) string {
	t.Helper()

	w := ExecuteRequest(t, router, http.MethodPost, "/job", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("job creation failed with status %d: %s", w.Code, w.Body.String())
	}

	data := ParseData(t, w).(map[string]any)
	return data["_id"].(string)
}
