// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package override

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/bpetkov/modena/internal/core/attribute"
)

// ErrUncoercible marks input that cannot be converted to the declared type.
var ErrUncoercible = errors.New("value cannot be coerced to the declared data type")

// Normalize coerces a raw payload value to the declared data type and applies
// the zero-means-absent rule.
//
// Returns:
//   - a set Value when a real override should be persisted;
//   - an unset Value and nil error when the input is absent-equivalent
//     (nil, numeric zero, empty string, boolean false);
//   - [ErrUncoercible] when the input cannot be interpreted at all.
//
// The zero rule is deliberate and inherited from the original catalogue data:
// an override of 0 or "" is stored as no override. A genuine zero measurement
// therefore cannot be distinguished from "not specified".
func Normalize(dataType attribute.DataType, raw any) (attribute.Value, error) {
	if raw == nil {
		return attribute.Value{}, nil
	}

	switch dataType {
	case attribute.TypeInt:
		number, ok, err := coerceNumber(raw)
		if err != nil || !ok {
			return attribute.Value{}, err
		}
		if number == 0 {
			return attribute.Value{}, nil
		}
		return attribute.NewInt(int64(number)), nil

	case attribute.TypeDecimal:
		number, ok, err := coerceNumber(raw)
		if err != nil || !ok {
			return attribute.Value{}, err
		}
		if number == 0 {
			return attribute.Value{}, nil
		}
		return attribute.NewDecimal(number), nil

	case attribute.TypeBoolean:
		truthy, err := coerceBool(raw)
		if err != nil {
			return attribute.Value{}, err
		}
		// False normalizes to absent: effective booleans are true or unset.
		if !truthy {
			return attribute.Value{}, nil
		}
		return attribute.NewBool(true), nil

	case attribute.TypeText:
		text, err := coerceText(raw)
		if err != nil {
			return attribute.Value{}, err
		}
		if text == "" {
			return attribute.Value{}, nil
		}
		return attribute.NewText(text), nil

	case attribute.TypeEnum:
		text, ok := raw.(string)
		if !ok {
			return attribute.Value{}, ErrUncoercible
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return attribute.Value{}, nil
		}
		return attribute.NewEnum(text), nil

	default:
		return attribute.Value{}, ErrUncoercible
	}
}

// coerceNumber accepts JSON numbers and numeric strings. The ok result is
// false for empty strings (absent-equivalent input).
func coerceNumber(raw any) (float64, bool, error) {
	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false, ErrUncoercible
		}
		return parsed, true, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false, nil
		}
		// Legacy feeds use a decimal comma.
		trimmed = strings.ReplaceAll(trimmed, ",", ".")
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false, ErrUncoercible
		}
		return parsed, true, nil
	default:
		return 0, false, ErrUncoercible
	}
}

// coerceBool accepts JSON booleans, 0/1 numbers, and common string forms.
func coerceBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case float64:
		return v != 0, nil
	case int:
		return v != 0, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "0", "false", "no":
			return false, nil
		case "1", "true", "yes":
			return true, nil
		default:
			return false, ErrUncoercible
		}
	default:
		return false, ErrUncoercible
	}
}

// coerceText accepts strings and renders numbers; anything else is rejected.
func coerceText(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case json.Number:
		return v.String(), nil
	default:
		return "", ErrUncoercible
	}
}
