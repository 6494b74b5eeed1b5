package poextract

import (
	"fmt"
)

// StringList is a config value that may be written as a single string or as a list
// (markers: __ or markers: [__, i18n.t]).
type StringList []string

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (l *StringList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	out, err := stringListFrom(v)
	if err != nil {
		return err
	}
	*l = out
	return nil
}

// UnmarshalTOML accepts a string or an array of strings.
func (l *StringList) UnmarshalTOML(v interface{}) error {
	out, err := stringListFrom(v)
	if err != nil {
		return err
	}
	*l = out
	return nil
}

func stringListFrom(v interface{}) (StringList, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return StringList{t}, nil
	case []interface{}:
		out := make(StringList, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("list items must be strings, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("must be a string or a list of strings, got %T", v)
	}
}
