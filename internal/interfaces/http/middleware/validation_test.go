package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adjustRequest struct {
	Amount  string `json:"amount" binding:"required,decimal"`
	Reason  string `json:"reason" binding:"required,max=10"`
	OrderID string `json:"order_id" binding:"omitempty,uuid"`
	Ignored string `json:"-"`
}

func bindAdjust(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var req adjustRequest
	return c.ShouldBindJSON(&req)
}

func TestValidationDetails(t *testing.T) {
	SetupValidator()

	t.Run("valid body", func(t *testing.T) {
		assert.NoError(t, bindAdjust(t, `{"amount":"12.50","reason":"fix"}`))
	})

	t.Run("reports JSON field names", func(t *testing.T) {
		err := bindAdjust(t, `{"amount":"12,50","reason":"much too long reason","order_id":"x"}`)
		require.Error(t, err)

		details := ValidationDetails(err)
		require.Len(t, details, 3)
		byField := map[string]string{}
		for _, d := range details {
			byField[d.Field] = d.Message
		}
		assert.Equal(t, "Must be a decimal number", byField["amount"])
		assert.Equal(t, "Must be at most 10 characters", byField["reason"])
		assert.Equal(t, "Invalid UUID format", byField["order_id"])
	})

	t.Run("required", func(t *testing.T) {
		details := ValidationDetails(bindAdjust(t, `{}`))
		require.Len(t, details, 2)
		assert.Equal(t, "This field is required", details[0].Message)
	})

	t.Run("non validator errors", func(t *testing.T) {
		err := bindAdjust(t, `{"amount":`)
		require.Error(t, err)
		assert.Nil(t, ValidationDetails(err))
	})
}
