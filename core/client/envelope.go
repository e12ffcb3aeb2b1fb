package client

import (
	"encoding/json"
	"errors"
)

// ErrEnvelope is returned when a response body matches none of the known
// collection envelope shapes.
var ErrEnvelope = errors.New("api client: unrecognized response envelope")

// Collection normalizes a backend collection payload. Backends disagree on
// the wrapper shape, so the body is tried in order as {"data": [...]},
// {"<resource>": [...]}, and finally a bare array.
func Collection[T any](raw json.RawMessage, resource string) ([]T, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		for _, key := range []string{"data", resource} {
			inner, ok := envelope[key]
			if !ok {
				continue
			}
			var items []T
			if err := json.Unmarshal(inner, &items); err == nil {
				return items, nil
			}
			// {"data": {...}} single-object payloads fall through to the
			// next key rather than failing the whole normalization.
		}
		return nil, ErrEnvelope
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}
	return nil, ErrEnvelope
}

// Single normalizes a single-record payload, trying {"data": {...}},
// {"<resource>": {...}}, then the bare object.
func Single[T any](raw json.RawMessage, resource string) (T, error) {
	var zero T

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		for _, key := range []string{"data", resource} {
			inner, ok := envelope[key]
			if !ok {
				continue
			}
			var item T
			if err := json.Unmarshal(inner, &item); err == nil {
				return item, nil
			}
		}
	}

	var item T
	if err := json.Unmarshal(raw, &item); err == nil {
		return item, nil
	}
	return zero, ErrEnvelope
}

// MutationResult is the success body of create/update/delete calls.
type MutationResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ID         string `json:"id,omitempty"`
	PropertyID string `json:"propertyId,omitempty"`
}

// Mutation decodes a write-operation response body.
func Mutation(raw json.RawMessage) (MutationResult, error) {
	var res MutationResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return MutationResult{}, errors.Join(ErrDecode, err)
	}
	return res, nil
}
