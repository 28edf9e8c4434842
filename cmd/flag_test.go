package cmd

import (
	"net/http"
	"reflect"
	"testing"
)

func TestHeaderFlag(t *testing.T) {
	testCases := []struct {
		Name   string
		Args   []string
		Expect http.Header
		Err    bool
	}{
		{
			Name:   "Single",
			Args:   []string{"Authorization=Bearer xyz"},
			Expect: http.Header{"Authorization": []string{"Bearer xyz"}},
		},
		{
			Name:   "Multiple",
			Args:   []string{"a=1,b=2"},
			Expect: http.Header{"A": []string{"1"}, "B": []string{"2"}},
		},
		{
			Name:   "RepeatsAppend",
			Args:   []string{"a=1", "a=2"},
			Expect: http.Header{"A": []string{"1", "2"}},
		},
		{
			Name: "Malformed",
			Args: []string{"nope"},
			Err:  true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(subT *testing.T) {
			var h http.Header
			f := &headerFlag{value: &h}

			var err error
			for _, arg := range testCase.Args {
				if err = f.Set(arg); err != nil {
					break
				}
			}

			if testCase.Err {
				if err == nil {
					subT.Error("expected an error")
				}
				return
			}
			if err != nil {
				subT.Fatalf("unexpected error: %s", err)
			}
			if !reflect.DeepEqual(h, testCase.Expect) {
				subT.Errorf("expected %v but got: %v", testCase.Expect, h)
			}
		})
	}
}

func TestMapFlag(t *testing.T) {
	testCases := []struct {
		Name   string
		Args   []string
		Expect map[string]string
		Err    bool
	}{
		{
			Name:   "Single",
			Args:   []string{"DateTime=time.Time"},
			Expect: map[string]string{"DateTime": "time.Time"},
		},
		{
			Name:   "Multiple",
			Args:   []string{"DateTime=time.Time,URL=string"},
			Expect: map[string]string{"DateTime": "time.Time", "URL": "string"},
		},
		{
			Name:   "LaterWins",
			Args:   []string{"URL=string", "URL=url.URL"},
			Expect: map[string]string{"URL": "url.URL"},
		},
		{
			Name: "Malformed",
			Args: []string{"DateTime"},
			Err:  true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(subT *testing.T) {
			var m map[string]string
			f := &mapFlag{value: &m}

			var err error
			for _, arg := range testCase.Args {
				if err = f.Set(arg); err != nil {
					break
				}
			}

			if testCase.Err {
				if err == nil {
					subT.Error("expected an error")
				}
				return
			}
			if err != nil {
				subT.Fatalf("unexpected error: %s", err)
			}
			if !reflect.DeepEqual(m, testCase.Expect) {
				subT.Errorf("expected %v but got: %v", testCase.Expect, m)
			}
		})
	}
}
