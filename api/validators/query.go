package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/promotions-backend/pkg/errors"
)

// QueryString returns a pointer to the trimmed query value, or nil when the
// parameter is absent or blank.
func QueryString(r *http.Request, key string) *string {
	if !r.URL.Query().Has(key) {
		return nil
	}
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return nil
	}
	return &value
}

// QueryBool parses an optional boolean query parameter.
func QueryBool(r *http.Request, key string) (*bool, error) {
	raw := QueryString(r, key)
	if raw == nil {
		return nil, nil
	}
	value, err := strconv.ParseBool(*raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a boolean").WithDetails(map[string]any{"field": key})
	}
	return &value, nil
}
