package convert

import (
	"encoding"
	"math"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// DecodeMap fills out from a generic document such as one produced by a YAML
// or form decoder. Keys are matched against the json tags of the shape.
func DecodeMap(input map[string]interface{}, out interface{}) error {
	var firstErr error
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			epochToTimeHook(),
			textUnmarshalerHook(&firstErr),
		),
		TagName:          "json",
		WeaklyTypedInput: false,
		Result:           out,
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(input); err != nil {
		// mapstructure flattens hook errors into strings
		if firstErr != nil {
			return errors.Wrapf(firstErr, "decoding %s", shapeName(out))
		}
		return errors.Wrapf(err, "decoding %s", shapeName(out))
	}
	return nil
}

// ToMap is the inverse of DecodeMap, going through the wire encoding so enum
// fields are emitted as their canonical strings.
func ToMap(in interface{}) (map[string]interface{}, error) {
	data, err := marshal(in)
	if err != nil {
		return nil, err
	}
	result := map[string]interface{}{}
	if err := wire.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func textUnmarshalerHook(firstErr *error) mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		result := reflect.New(t).Interface()
		unmarshaler, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return data, nil
		}
		if err := unmarshaler.UnmarshalText([]byte(data.(string))); err != nil {
			if *firstErr == nil {
				*firstErr = err
			}
			return nil, err
		}
		return result, nil
	}
}

func epochToTimeHook() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != timeType {
			return data, nil
		}
		switch v := data.(type) {
		case float64:
			sec, frac := math.Modf(v)
			return time.Unix(int64(sec), int64(math.Round(frac*1e9))).UTC(), nil
		case int:
			return time.Unix(int64(v), 0).UTC(), nil
		case int64:
			return time.Unix(v, 0).UTC(), nil
		}
		return data, nil
	}
}
