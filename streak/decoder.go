package streak

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/scout"
)

// Field types with coded values.
const (
	TypeTag      = "TAG"
	TypeDropdown = "DROPDOWN"
)

// Decoder turns the coded values of a TAG or DROPDOWN field into labels.
type Decoder struct {
	Type   string
	labels map[string]string
	order  []string // labels in definition order
}

// settings tells where the key and label of each coded value are, per field type.
var settings = map[string]struct{ path, label string }{
	TypeTag:      {"$.tagSettings.tags[*]", "tag"},
	TypeDropdown: {"$.dropdownSettings.items[*]", "name"},
}

// NewDecoder returns the decoder of a field, nil if its values are not coded.
func NewDecoder(f Field) (*Decoder, error) {
	s, ok := settings[f.Type]
	if !ok {
		return nil, nil
	}
	jval, err := jsonpath.Get(s.path, f.Raw)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s settings of field %q: %w", f.Type, f.Name, err)
	}
	items, _ := jval.([]any)

	d := &Decoder{Type: f.Type, labels: make(map[string]string, len(items))}
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		key, _ := m["key"].(string)
		label, _ := m[s.label].(string)
		d.labels[key] = label
		d.order = append(d.order, label)
	}
	return d, nil
}

// Labels returns every label of the field in definition order.
func (d *Decoder) Labels() []string { return d.order }

// Decode converts a raw box value: a code becomes its label, a list of codes the
// sorted list of labels. With a nil decoder values are kept as text.
//
// It returns false for absent values and unknown codes.
func (d *Decoder) Decode(raw any) (scout.FieldValue, bool) {
	switch v := raw.(type) {
	case nil:
		return scout.FieldValue{}, false
	case string:
		if d == nil {
			return scout.FieldValue{Text: v}, true
		}
		label, ok := d.labels[v]
		return scout.FieldValue{Text: label}, ok
	case []any:
		tags := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return scout.FieldValue{}, false
			}
			if d != nil {
				if s, ok = d.labels[s]; !ok {
					return scout.FieldValue{}, false
				}
			}
			tags = append(tags, s)
		}
		sort.Strings(tags)
		return scout.FieldValue{Tags: tags, IsList: true}, true
	case float64:
		return scout.FieldValue{Text: strconv.FormatFloat(v, 'f', -1, 64)}, true
	case bool:
		return scout.FieldValue{Text: strconv.FormatBool(v)}, true
	default:
		return scout.FieldValue{}, false
	}
}
