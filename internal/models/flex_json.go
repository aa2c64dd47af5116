package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// fieldMaps caches JSON tag -> struct field index mappings per type
var fieldMaps sync.Map

func getFieldMap(t reflect.Type) map[string]int {
	if m, ok := fieldMaps.Load(t); ok {
		return m.(map[string]int)
	}
	m := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		m[name] = i
	}
	fieldMaps.Store(t, m)
	return m
}

// UnmarshalJSON accepts ids and counters encoded as strings, as older
// leaderboard payloads do ("owner_id":"123").
func (l *RawLeaderboard) UnmarshalJSON(data []byte) error {
	type alias RawLeaderboard
	return flexUnmarshal(data, (*alias)(l))
}

// UnmarshalJSON accepts string-encoded ids, scores and timestamps.
func (m *RawMember) UnmarshalJSON(data []byte) error {
	type alias RawMember
	return flexUnmarshal(data, (*alias)(m))
}

// UnmarshalJSON accepts "get_star_ts":"1543640521".
func (s *RawStarStats) UnmarshalJSON(data []byte) error {
	type alias RawStarStats
	return flexUnmarshal(data, (*alias)(s))
}

// flexUnmarshal decodes data into target, a pointer to a struct alias.
// Values that are JSON strings but target a numeric field are coerced.
func flexUnmarshal(data []byte, target any) error {
	// Fast path: try standard unmarshal (works when all types match natively)
	if err := json.Unmarshal(data, target); err == nil {
		return nil
	}

	// Slow path: field-by-field with string-to-native coercion
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("flex unmarshal: %w", err)
	}

	v := reflect.ValueOf(target).Elem()
	fieldMap := getFieldMap(v.Type())

	for key, rawVal := range raw {
		idx, ok := fieldMap[key]
		if !ok {
			continue
		}

		fv := v.Field(idx)
		if !fv.CanSet() {
			continue
		}

		// Try direct unmarshal first
		ptr := reflect.New(fv.Type())
		if err := json.Unmarshal(rawVal, ptr.Interface()); err == nil {
			fv.Set(ptr.Elem())
			continue
		}

		// Value is a JSON string but target is numeric — coerce
		if len(rawVal) > 1 && rawVal[0] == '"' {
			var s string
			if err := json.Unmarshal(rawVal, &s); err != nil {
				continue
			}
			if err := coerceStringToField(fv, s); err != nil {
				return fmt.Errorf("flex unmarshal %q: %w", key, err)
			}
			continue
		}

		return fmt.Errorf("flex unmarshal %q: unsupported value %s", key, rawVal)
	}

	return nil
}

// coerceStringToField converts a string value to the field's native type.
func coerceStringToField(fv reflect.Value, s string) error {
	switch fv.Kind() {
	case reflect.Ptr:
		elem := reflect.New(fv.Type().Elem())
		if err := coerceStringToField(elem.Elem(), s); err != nil {
			return err
		}
		fv.Set(elem)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.String:
		fv.SetString(s)
	default:
		return fmt.Errorf("cannot coerce string into %s", fv.Kind())
	}
	return nil
}
