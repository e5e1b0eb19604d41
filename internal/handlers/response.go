package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/go-playground/validator/v10"
	"github.com/ricechain/supply-tracker/internal/logger"
	"github.com/ricechain/supply-tracker/internal/models"
	"github.com/shopspring/decimal"
)

const (
	msgInvalidBody      = "Invalid request body"
	msgValidationFailed = "Validation failed"
	msgInternal         = "Internal server error"
	msgUnauthorized     = "Token is not valid"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Decimals are validated through their exact string form so that no
	// precision or sign is lost on the way.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	registerDecimalRule(v, "dec_gte", func(d, param decimal.Decimal) bool { return d.GreaterThanOrEqual(param) })
	registerDecimalRule(v, "dec_lt", func(d, param decimal.Decimal) bool { return d.LessThan(param) })
	if err := v.RegisterValidation("dec_scale", validateDecimalScale); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("maxbytes", validateMaxBytes); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		role, ok := fl.Field().Interface().(models.Role)
		return ok && role.Valid()
	}); err != nil {
		panic(err)
	}

	return v
}

// registerDecimalRule installs a rule comparing a decimal field against the tag parameter.
func registerDecimalRule(v *validator.Validate, tag string, cmp func(d, param decimal.Decimal) bool) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		param, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return cmp(d, param)
	})
	if err != nil {
		panic(err)
	}
}

// validateDecimalScale rejects values with more fractional digits than the
// parameter. Trailing zeros are ignored.
func validateDecimalScale(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	places, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil {
		return false
	}
	return d.Equal(d.Truncate(int32(places)))
}

// validateMaxBytes bounds the encoded length of a string, not its rune count.
func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{
		Success: false,
		Message: message,
	})
}

// writeInternalError logs err and reports it to Sentry; the caller only sees a generic message.
func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Errorw("internal server error", "method", r.Method, "path", r.URL.Path, "err", err)
	if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
		hub.CaptureException(err)
	}
	writeError(w, http.StatusInternalServerError, msgInternal)
}

// decodeAndValidate reads a JSON body into dst and validates it. On failure the
// error response has already been written and false is returned.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any, normalize func()) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Log.Warnw("invalid request body", "path", r.URL.Path, "err", err)
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	if normalize != nil {
		normalize()
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			writeInternalError(w, r, err)
			return false
		}
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: msgValidationFailed,
			Errors:  fieldErrors(verrs),
		})
		return false
	}
	return true
}

func fieldErrors(verrs validator.ValidationErrors) []models.FieldError {
	out := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, models.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "maxbytes":
		return fe.Field() + " must be at most " + fe.Param() + " bytes"
	case "role":
		return fe.Field() + " must be one of: " + roleList()
	case "gte", "dec_gte":
		return fe.Field() + " must be greater than or equal to " + fe.Param()
	case "dec_lt":
		return fe.Field() + " must be less than " + fe.Param()
	case "dec_scale":
		return fe.Field() + " must have at most " + fe.Param() + " decimal places"
	default:
		return fe.Field() + " is invalid"
	}
}

func roleList() string {
	names := make([]string, len(models.Roles))
	for i, r := range models.Roles {
		names[i] = string(r)
	}
	return strings.Join(names, " ")
}
