package cmd

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
)

// headerFlag represents a flag for setting HTTP headers.
// Any repeats will not override. They will append.
//
// format: a=1,b=2
type headerFlag struct {
	value   *http.Header
	changed bool
}

func (*headerFlag) String() string { return "" }

func (*headerFlag) Type() string { return "map[string][]string" }

func (f *headerFlag) Set(val string) error {
	ss, err := splitPairs(val)
	if err != nil {
		return err
	}

	out := make(http.Header, len(ss))
	for _, pair := range ss {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return fmt.Errorf("%s must be formatted as key=value", pair)
		}
		out.Add(kv[0], strings.Trim(kv[1], "\""))
	}
	if !f.changed {
		*f.value = out
	} else {
		for k, v := range out {
			for _, s := range v {
				f.value.Add(k, strings.Trim(s, "\""))
			}
		}
	}
	f.changed = true
	return nil
}

// mapFlag represents a flag for mapping custom scalars to target types.
// Repeats merge; a later value for the same scalar wins.
//
// format: DateTime=time.Time,URL=string
type mapFlag struct {
	value   *map[string]string
	changed bool
}

func (*mapFlag) String() string { return "" }

func (*mapFlag) Type() string { return "map[string]string" }

func (f *mapFlag) Set(val string) error {
	ss, err := splitPairs(val)
	if err != nil {
		return err
	}

	if !f.changed || *f.value == nil {
		*f.value = make(map[string]string, len(ss))
	}
	for _, pair := range ss {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return fmt.Errorf("%s must be formatted as key=value", pair)
		}
		(*f.value)[kv[0]] = strings.Trim(kv[1], "\"")
	}
	f.changed = true
	return nil
}

func splitPairs(val string) ([]string, error) {
	var ss []string
	n := strings.Count(val, "=")
	switch n {
	case 0:
		return nil, fmt.Errorf("%s must be formatted as key=value", val)
	case 1:
		ss = append(ss, strings.Trim(val, `"`))
	default:
		r := csv.NewReader(strings.NewReader(val))
		var err error
		ss, err = r.Read()
		if err != nil {
			return nil, err
		}
	}
	return ss, nil
}
