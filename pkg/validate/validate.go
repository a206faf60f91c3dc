// Package validate rejects request payloads carrying fields outside a
// fixed allow-list. Policies are plain values built once at startup and
// handed to handlers; nothing is cached or reloaded at runtime.
package validate

import (
	"encoding/json"
	"net/url"

	"github.com/rentix/rentix/internal/apperrors"
)

type Policy struct {
	allowed map[string]struct{}
}

func NewPolicy(keys ...string) Policy {
	allowed := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		allowed[k] = struct{}{}
	}
	return Policy{allowed: allowed}
}

// CheckJSON decodes the body into a generic map and fails with 400 on the
// first top-level key that is not allow-listed.
func (p Policy) CheckJSON(body []byte) error {
	if len(body) == 0 {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return apperrors.BadRequest("Invalid request body")
	}
	for key := range fields {
		if _, ok := p.allowed[key]; !ok {
			return apperrors.BadRequest("field %q is not allowed", key)
		}
	}
	return nil
}

// CheckQuery applies the same allow-list to URL query parameters.
func (p Policy) CheckQuery(values url.Values) error {
	for key := range values {
		if _, ok := p.allowed[key]; !ok {
			return apperrors.BadRequest("query parameter %q is not allowed", key)
		}
	}
	return nil
}
