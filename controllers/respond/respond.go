// Package respond writes the JSON error bodies shared by every handler.
package respond

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/junaidrashid-git/nursery-store/models"
)

var once sync.Once

// UseJSONFieldNames makes gin's validator report fields by their json name.
// Call it before the first request is bound.
func UseJSONFieldNames() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
	})
}

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// Field reports a validation failure on one input field.
func Field(c *gin.Context, field, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg, "field": field})
}

// Invalid writes a 400 for a binding or validation error.
func Invalid(c *gin.Context, err error) {
	var fieldErr *models.FieldError
	if errors.As(err, &fieldErr) {
		Field(c, fieldErr.Field, fieldErr.Message)
		return
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		Field(c, fe.Field(), describe(fe))
		return
	}
	Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
