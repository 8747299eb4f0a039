package middleware

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/examtable/internal/app/models/dto"
	"github.com/yigit/examtable/internal/pkg/validation"
)

const validatedQueryKey = "validatedQuery"

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterBindingRules installs the custom validation rules on gin's binding validator.
// Safe to call more than once.
func RegisterBindingRules() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding engine is not a validator.Validate")
			return
		}
		registerErr = validation.Register(v)
	})
	return registerErr
}

// ValidateQuery binds and validates the query string into T before the handler runs
func ValidateQuery[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var query T
		if err := c.ShouldBindQuery(&query); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
			return
		}
		c.Set(validatedQueryKey, query)
		c.Next()
	}
}

// ValidatedQuery returns the value bound by ValidateQuery
func ValidatedQuery[T any](c *gin.Context) T {
	query, _ := c.Get(validatedQueryKey)
	value, _ := query.(T)
	return value
}
