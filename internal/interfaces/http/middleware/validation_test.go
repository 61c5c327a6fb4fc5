package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	type Input struct {
		Label     string `json:"label" binding:"required"`
		StartDate string `form:"startDate" binding:"required"`
	}

	err := binding.Validator.ValidateStruct(&Input{})
	details, ok := ValidationDetails(err)

	require.True(t, ok)
	require.Len(t, details, 2)
	assert.Equal(t, "label", details[0].Field)
	assert.Equal(t, "startDate", details[1].Field)
	assert.Equal(t, "This field is required", details[0].Message)
}

func TestValidationDetails(t *testing.T) {
	SetupValidator()

	type Input struct {
		Email string `json:"email" binding:"required,email"`
		Age   int    `json:"age" binding:"required,min=18"`
	}

	router := gin.New()
	var bindErr error
	router.POST("/test", func(c *gin.Context) {
		var in Input
		bindErr = c.ShouldBindJSON(&in)
		c.Status(http.StatusOK)
	})

	t.Run("lists every invalid field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"email": "invalid", "age": 10}`))
		req.Header.Set("Content-Type", "application/json")
		serve(router, req)

		details, ok := ValidationDetails(bindErr)
		require.True(t, ok)
		require.Len(t, details, 2)
		assert.Equal(t, "email", details[0].Field)
		assert.Equal(t, "Invalid email format", details[0].Message)
		assert.Equal(t, "age", details[1].Field)
		assert.Equal(t, "Must be at least 18", details[1].Message)
	})

	t.Run("wrapped validation errors are found", func(t *testing.T) {
		err := fmt.Errorf("saving: %w", binding.Validator.ValidateStruct(&Input{Email: "a@b.co"}))

		details, ok := ValidationDetails(err)
		require.True(t, ok)
		assert.Equal(t, "age", details[0].Field)
	})

	t.Run("other errors are not validation errors", func(t *testing.T) {
		_, ok := ValidationDetails(assert.AnError)
		assert.False(t, ok)
	})
}

func TestGetValidationMessage(t *testing.T) {
	type Fields struct {
		Required string `binding:"required"`
		Email    string `binding:"email"`
		Min      string `binding:"min=5"`
		Max      string `binding:"max=3"`
		Len      string `binding:"len=5"`
		UUID     string `binding:"uuid"`
		OneOf    string `binding:"oneof=a b c"`
		GTE      int    `binding:"gte=10"`
		LTE      int    `binding:"lte=100"`
		MinInt   int    `binding:"min=2"`
	}

	v := validator.New()
	v.SetTagName("binding")
	err := v.Struct(Fields{
		Email: "invalid",
		Min:   "ab",
		Max:   "too long",
		Len:   "ab",
		UUID:  "invalid",
		OneOf: "d",
		LTE:   101,
	})
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	got := map[string]string{}
	for _, e := range errs {
		got[e.Field()] = getValidationMessage(e)
	}

	assert.Equal(t, map[string]string{
		"Required": "This field is required",
		"Email":    "Invalid email format",
		"Min":      "Must be at least 5 characters",
		"Max":      "Must be at most 3 characters",
		"Len":      "Must be exactly 5 characters",
		"UUID":     "Invalid UUID format",
		"OneOf":    "Must be one of: a b c",
		"GTE":      "Must be greater than or equal to 10",
		"LTE":      "Must be less than or equal to 100",
		"MinInt":   "Must be at least 2",
	}, got)
}
