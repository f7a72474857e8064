/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package awair

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies what a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
)

// Value is a single scalar field of a device response. Firmware only sends
// integers, floats and strings at the top level; anything else is kept as
// its raw JSON text.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// IntValue wraps an integer.
func IntValue(v int64) Value { return Value{kind: KindInt, i: v} }

// FloatValue wraps a float.
func FloatValue(v float64) Value { return Value{kind: KindFloat, f: v} }

// StringValue wraps a string.
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

// Kind reports the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Float64 returns the numeric value; ok is false for strings and nulls.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	case KindNull, KindString:
		return 0, false
	}

	return 0, false
}

// String renders the value the way the console report shows it.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindString:
		return v.s
	case KindNull:
		return ""
	}

	return ""
}

// MarshalJSON encodes the value as a JSON scalar or null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return []byte(strconv.FormatInt(v.i, 10)), nil
	case KindFloat:
		return json.Marshal(v.f)
	case KindString:
		return json.Marshal(v.s)
	case KindNull:
		return []byte("null"), nil
	}

	return []byte("null"), nil
}

// UnmarshalJSON keeps integers exact; objects, arrays and booleans become
// their raw JSON text.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch typed := raw.(type) {
	case nil:
		*v = Value{}
	case json.Number:
		if i, err := typed.Int64(); err == nil {
			*v = IntValue(i)
			return nil
		}

		f, err := typed.Float64()
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", typed, err)
		}

		*v = FloatValue(f)
	case string:
		*v = StringValue(typed)
	default:
		*v = StringValue(string(bytes.TrimSpace(data)))
	}

	return nil
}

// Fields holds every field of a device response by name.
type Fields map[string]Value

// Number returns the named field as a float64.
func (f Fields) Number(key string) (float64, error) {
	v, ok := f[key]
	if !ok || v.kind == KindNull {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, key)
	}

	n, ok := v.Float64()
	if !ok {
		return 0, fmt.Errorf("%w: %s=%q", ErrNotNumeric, key, v.s)
	}

	return n, nil
}

// Text returns the named field rendered as a string.
func (f Fields) Text(key string) (string, error) {
	v, ok := f[key]
	if !ok || v.kind == KindNull {
		return "", fmt.Errorf("%w: %s", ErrMissingField, key)
	}

	return v.String(), nil
}

// Clone returns a shallow copy; values are immutable so this is a full copy.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}

	return out
}
