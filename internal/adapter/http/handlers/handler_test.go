package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	request "isp_backoffice/internal/adapter/http/dto/request"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// newTestRouter returns a gin engine in test mode with the custom binding
// validators registered.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			t.Fatalf("unexpected validator engine")
		}
		if err := request.RegisterValidators(v); err != nil {
			t.Fatalf("register validators: %v", err)
		}
	})
	return gin.New()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(UserIDHeader, "staff-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
