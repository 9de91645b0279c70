package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/models"
)

type contextKey string

const LogDetailsKey contextKey = "logDetails"

var sensitiveHeaders = []string{"Authorization", "Cookie", "X-Api-Key"}

func extractHeaders(headers map[string][]string) map[string]interface{} {
	result := make(map[string]interface{})
	for key, values := range headers {
		if len(values) == 0 {
			continue
		}
		if isSensitive(key) {
			result[key] = "*****"
			continue
		}
		result[key] = values[0]
	}
	return result
}

func isSensitive(key string) bool {
	for _, sensitive := range sensitiveHeaders {
		if strings.EqualFold(sensitive, key) {
			return true
		}
	}
	return false
}

// AttachRequestDetails tags every request with a request id and emits one
// access-log line when the handler chain completes.
func AttachRequestDetails() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestTime := time.Now().UTC()

		details := models.RequestDetails{
			RequestID:     uuid.New().String(),
			IP:            c.ClientIP(),
			UserAgent:     c.Request.UserAgent(),
			HTTPMethod:    c.Request.Method,
			Path:          c.Request.URL.String(),
			OperationName: c.HandlerName(),
			RequestTime:   requestTime.Format(time.RFC3339Nano),
			RequestParams: map[string]interface{}{
				"headers": extractHeaders(c.Request.Header),
				"query":   c.Request.URL.Query(),
			},
		}

		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), LogDetailsKey, details))
		c.Next()

		details.Status = c.Writer.Status()
		details.ResponseTime = time.Now().UTC().Format(time.RFC3339Nano)

		if logMessage, err := json.Marshal(details); err == nil {
			fmt.Println(string(logMessage))
		}
	}
}
