package crunchbase

import (
	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/scout"
)

// pluck returns the value at path in v, nil if absent.
//
// jsonpath returns a list for wildcards and filters, then the first item is kept.
func pluck(v any, path string) any {
	jval, err := jsonpath.Get(path, v)
	if err != nil {
		return nil
	}
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return nil
		}
		return jlist[0]
	}
	return jval
}

// str returns the string at path, "" if absent.
func str(v any, path string) string {
	s, _ := pluck(v, path).(string)
	return s
}

// strs returns the strings at path, a wildcard path.
func strs(v any, path string) []string {
	jval, err := jsonpath.Get(path, v)
	if err != nil {
		return nil
	}
	jlist, _ := jval.([]any)
	var list []string
	for _, item := range jlist {
		if s, ok := item.(string); ok {
			list = append(list, s)
		}
	}
	return list
}

// num returns the number at path, 0 if absent.
func num(v any, path string) float64 {
	f, _ := pluck(v, path).(float64)
	return f
}

// usd returns the dollar amount at path, nil if absent.
func usd(v any, path string) *scout.Money {
	f, ok := pluck(v, path).(float64)
	if !ok {
		return nil
	}
	m := scout.USD(f)
	return &m
}

// date returns the date at path, zero if absent or unparsable.
func date(v any, path string) scout.Date {
	d, err := scout.ParseDate(str(v, path))
	if err != nil {
		return scout.Date{}
	}
	return d
}
