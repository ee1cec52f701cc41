// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package catalog

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/goccy/go-json"
)

// Parse errors. FieldError wraps one of these.
var (
	ErrInvalidNumber = errors.New("invalid number")
	ErrNegative      = errors.New("must be non-negative")
	ErrOutOfRange    = errors.New("out of range")
	ErrInvalidList   = errors.New("invalid list literal")
	ErrUnknownTime   = errors.New("unknown time category")
)

var firstInteger = regexp.MustCompile(`\d+`)

// parseFloat parses a finite float. A leading currency sign is accepted.
func parseFloat(s string) (float64, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidNumber, s)
	}
	return v, nil
}

// parseNonNegative parses a finite float >= 0. Empty input is 0.
func parseNonNegative(s string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	v, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %v", ErrNegative, v)
	}
	return v, nil
}

// parseWaitTime reads an explicit wait time, or the first integer in the
// availability text when no explicit value is given.
func parseWaitTime(explicit, availability string) (int, error) {
	if s := strings.TrimSpace(explicit); s != "" {
		v, err := parseNonNegative(s)
		if err != nil {
			return 0, err
		}
		if v > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %v", ErrOutOfRange, v)
		}
		return int(v), nil
	}

	m := firstInteger.FindString(availability)
	if m == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, m)
	}
	return v, nil
}

// parseEmbedding strips one enclosing bracket pair and splits on whitespace
// or commas. Any bad token invalidates the whole vector.
func parseEmbedding(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")

	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(tokens) == 0 {
		return nil, nil
	}

	out := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := parseFloat(tok)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseRestrictions accepts a list literal such as "['Dairy', ' Eggs']" or a
// comma-separated list. Tags are trimmed and deduplicated case-insensitively.
func parseRestrictions(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}, nil
	}

	var raw []string
	if strings.HasPrefix(s, "[") {
		if err := json.Unmarshal([]byte(strings.ReplaceAll(s, "'", `"`)), &raw); err != nil {
			return []string{}, fmt.Errorf("%w: %v", ErrInvalidList, err)
		}
	} else {
		raw = strings.Split(s, ",")
	}
	return cleanTags(raw), nil
}

// parseIngredients splits on commas. Text without a comma is one ingredient.
func parseIngredients(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseCoordinate parses an optional coordinate bounded by +/-limit degrees.
// Empty input stays unknown.
func parseCoordinate(s string, limit float64) (*float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := parseFloat(s)
	if err != nil {
		return nil, err
	}
	if v < -limit || v > limit {
		return nil, fmt.Errorf("%w: %v outside +/-%v", ErrOutOfRange, v, limit)
	}
	return &v, nil
}

func cleanTags(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}
