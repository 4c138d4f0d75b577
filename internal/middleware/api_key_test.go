package middleware

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupAPIKeyRouter(apiKey string) *gin.Engine {
	r := gin.New()
	r.Use(APIKeyMiddleware(apiKey))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestAPIKeyMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		configuredKey string
		requestKey    string
		wantStatus    int
	}{
		{"valid_api_key", "secret-metrics-key", "secret-metrics-key", http.StatusOK},
		{"invalid_api_key", "secret-metrics-key", "wrong", http.StatusUnauthorized},
		{"missing_api_key", "secret-metrics-key", "", http.StatusUnauthorized},
		{"open_when_unconfigured", "", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(setupAPIKeyRouter(tt.configuredKey), "X-API-Key", tt.requestKey)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantStatus != http.StatusOK {
				if code := errorCode(t, rec); code != "INVALID_API_KEY" {
					t.Errorf("expected INVALID_API_KEY, got %s", code)
				}
			}
		})
	}
}
