package piecewise

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Unmarshals a yaml document into Params, dispatching each segment entry
// to the correct segment type based on its "type" field.
func (p *Params) UnmarshalYAML(unmarshal func(interface{}) error) error {
	// Temporary structure to unmarshal the yaml document
	var raw struct {
		Period   float64                  `yaml:"Period"`
		Segments []map[string]interface{} `yaml:"Segments"`
	}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	p.Period = raw.Period
	p.Segments = p.Segments[:0]
	for _, yamlEntry := range raw.Segments {
		seg, err := createSegmentFromYamlEntry(yamlEntry)
		if err != nil {
			return err
		}
		p.Segments = append(p.Segments, seg)
	}

	return nil
}

// Returns a decodeHook function that can be used to unmarshal segments
// from a yaml file using mapstructure. This supports configuration
// solutions like spf13/viper that use mapstructure to unmarshal yaml files.
func GetDecodeHook() (mapstructure.DecodeHookFunc, error) {
	decodeHook := func(f reflect.Type, t reflect.Type, yamlEntry interface{}) (interface{}, error) {
		if t == reflect.TypeOf((*Segment)(nil)).Elem() {
			// If the target type is Segment, create the correct segment type from the yaml entry
			return createSegmentFromYamlEntry(yamlEntry)
		}
		// Otherwise, return the yaml entry as is (default behaviour)
		return yamlEntry, nil
	}

	return decodeHook, nil
}

// Creates a generic segment from a yaml entry based on the segment "type"
// (or "Type") field.
func createSegmentFromYamlEntry(yamlEntry interface{}) (Segment, error) {
	m, ok := yamlEntry.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("yaml entry cannot be parsed to map[string]interface{}: %v", yamlEntry)
	}

	// must check both m["type"] and m["Type"] because some yaml parsers convert to lower case and some don't
	typeStr, ok := m["type"].(string)
	if !ok {
		typeStr, ok = m["Type"].(string)
		if !ok {
			return nil, errMissingType
		}
	}

	var seg Segment
	switch typeStr {
	case "constant":
		seg = &constantSegment{}
	case "ramp":
		seg = &rampSegment{}
	default:
		return nil, fmt.Errorf("unknown segment type: %s", typeStr)
	}

	// Use mapstructure to decode the map into Segment
	decoderConfig := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			constantSegmentDecodeHookFunc(), // decodeHook for constantSegment
			rampSegmentDecodeHookFunc(),     // decodeHook for rampSegment
			// add more decoders here as required
		),
		Result: &seg,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(m); err != nil {
		return nil, err
	}

	return seg, nil
}

// Returns a DecodeHookFunc that can be used to unmarshal a
// constantSegment from a yaml file.
func constantSegmentDecodeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t == reflect.TypeOf(constantSegment{}) {
			// unmarshal into ConstantParams and use constructor function to create constantSegment
			var params ConstantParams
			if err := segmentParamsDecodeHookFunc(&params, data); err != nil {
				return nil, err
			}
			return NewConstant(params)
		}
		// If the type is not constantSegment, return data unchanged
		return data, nil
	}
}

// Returns a DecodeHookFunc that can be used to unmarshal a rampSegment
// from a yaml file.
func rampSegmentDecodeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t == reflect.TypeOf(rampSegment{}) {
			// unmarshal into RampParams and use constructor function to create rampSegment
			var params RampParams
			if err := segmentParamsDecodeHookFunc(&params, data); err != nil {
				return nil, err
			}
			return NewRamp(params)
		}
		// If the type is not rampSegment, return data unchanged
		return data, nil
	}
}

// Use mapstructure to unmarshal data into segmentParams.
func segmentParamsDecodeHookFunc[T any](segmentParams *T, data interface{}) error {
	m, ok := data.(map[string]interface{})
	if !ok {
		return fmt.Errorf("expected map[string]interface{}, got %T", data)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true, // yaml parsers may produce ints for whole-number floats
		Result:           &segmentParams,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(m)
}
