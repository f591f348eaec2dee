package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RequestHost returns the host the client used for the request, honoring the
// x-forwarded-proto, x-forwarded-host and x-forwarded-prefix headers a
// reverse proxy sets. Without a proxy, the request host is used directly.
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	host := c.Request.Host
	var prefix string

	if forwardedHost := c.Request.Header.Get("x-forwarded-host"); forwardedHost != "" {
		host = forwardedHost
		prefix = c.Request.Header.Get("x-forwarded-prefix")
	}

	return scheme + "://" + host + prefix
}

// BindData binds the data from the request body to the struct passed in.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// BindID binds the ":id" URI parameter. A malformed ID is rejected here,
// before any database access happens.
func BindID(c *gin.Context, uri any) error {
	if err := c.ShouldBindUri(uri); err != nil {
		return ErrInvalidID
	}

	return nil
}

// GetBodyFields returns the names of all fields of the resource that are set
// in the request body. This is used to determine which fields to update in
// the database for partial updates.
//
// It reads and restores the request body, so it must be called before any of
// gin's binding methods.
func GetBodyFields(c *gin.Context, resource any) ([]any, error) {
	// Copy the body to be able to use it multiple times
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	// Parse the body into a map to have all fields available
	var mapBody map[string]any
	if err := json.Unmarshal(body, &mapBody); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return []any{}, ErrInvalidBody
	}

	var bodyFields []any
	val := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)

		if _, ok := mapBody[field.Tag.Get("json")]; ok {
			bodyFields = append(bodyFields, field.Name)
		}
	}

	return bodyFields, nil
}
