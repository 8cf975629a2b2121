package output

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/yndnr/ordmap-go/internal/pairfile"
	"github.com/yndnr/ordmap-go/pkg/ordmap"
)

// Pairs is an ordered list of string pairs. It renders as a mapping in JSON
// and YAML and as a KEY/VALUE table, always in list order.
type Pairs []ordmap.Pair[string, string]

// PairsOf snapshots m in insertion order.
func PairsOf(m *ordmap.Map[string, string]) Pairs {
	return Pairs(m.ToList())
}

// MarshalJSON encodes the pairs as a JSON object in list order.
func (p Pairs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the pairs as a YAML mapping in list order.
func (p Pairs) MarshalYAML() (any, error) {
	return pairfile.Node(ordmap.FromList(p)), nil
}

// Table renders the pairs as rows. Wide mode adds the insertion position.
func (p Pairs) Table(wide bool) *Table {
	t := &Table{Headers: []string{"KEY", "VALUE"}}
	if wide {
		t.Headers = []string{"#", "KEY", "VALUE"}
	}
	for i, kv := range p {
		if wide {
			t.AddRow(strconv.Itoa(i), kv.Key, kv.Value)
			continue
		}
		t.AddRow(kv.Key, kv.Value)
	}
	return t
}
