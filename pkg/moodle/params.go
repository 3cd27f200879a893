package moodle

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// Params is the parameter set of a single web service call. Values may
// be scalars, time.Time, nested slices or nested string-keyed maps; the
// encoder flattens them into the bracketed query-string form the Moodle
// REST endpoint expects:
//
//	sequences:  name[0]=v0&name[1]=v1
//	maps:       name[key]=v
//	times:      seconds since epoch, as integers
//	booleans:   0 or 1
//
// applied recursively for non-scalar elements.
type Params map[string]any

// Encode flattens p into query values. Map keys are visited in sorted
// order so the encoding is deterministic.
func (p Params) Encode() (url.Values, error) {
	vals := url.Values{}
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := encodeValue(vals, k, p[k]); err != nil {
			return nil, err
		}
	}
	return vals, nil
}

func encodeValue(vals url.Values, name string, v any) error {
	switch t := v.(type) {
	case nil:
		return fmt.Errorf("parameter %q is nil", name)
	case string:
		vals.Set(name, t)
		return nil
	case bool:
		if t {
			vals.Set(name, "1")
		} else {
			vals.Set(name, "0")
		}
		return nil
	case int:
		vals.Set(name, strconv.Itoa(t))
		return nil
	case int32:
		vals.Set(name, strconv.FormatInt(int64(t), 10))
		return nil
	case int64:
		vals.Set(name, strconv.FormatInt(t, 10))
		return nil
	case float64:
		vals.Set(name, strconv.FormatFloat(t, 'f', -1, 64))
		return nil
	case float32:
		vals.Set(name, strconv.FormatFloat(float64(t), 'f', -1, 32))
		return nil
	case time.Time:
		vals.Set(name, strconv.FormatInt(t.Unix(), 10))
		return nil
	}

	// Slices and maps of arbitrary element types are flattened via
	// reflection; everything below recurses back into encodeValue.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			key := fmt.Sprintf("%s[%d]", name, i)
			if err := encodeValue(vals, key, rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		mapKeys := rv.MapKeys()
		strKeys := make([]string, len(mapKeys))
		byStr := make(map[string]reflect.Value, len(mapKeys))
		for i, mk := range mapKeys {
			s := fmt.Sprint(mk.Interface())
			strKeys[i] = s
			byStr[s] = mk
		}
		sort.Strings(strKeys)
		for _, s := range strKeys {
			key := fmt.Sprintf("%s[%s]", name, s)
			if err := encodeValue(vals, key, rv.MapIndex(byStr[s]).Interface()); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("parameter %q has unsupported type %T", name, v)
	}
}
