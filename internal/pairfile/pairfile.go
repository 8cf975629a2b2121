package pairfile

import (
	"bytes"
	"errors"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/yndnr/ordmap-go/internal/core/domain"
	"github.com/yndnr/ordmap-go/pkg/ordmap"
)

// Read decodes a pair file into a new map with the given bucket count.
func Read(r io.Reader, buckets int) (*ordmap.Map[string, string], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, domain.ErrPairFileIO.WithCause(err)
	}
	return Decode(data, buckets)
}

// Decode parses pair file content.
func Decode(data []byte, buckets int) (*ordmap.Map[string, string], error) {
	m := ordmap.NewWithBuckets[string, string](buckets)
	if len(bytes.TrimSpace(data)) == 0 {
		return m, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, domain.ErrInvalidPairFile.WithCause(err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return m, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return m, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, domain.ErrInvalidPairFile.WithDetailsf("line %d: document is not a mapping", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := resolve(root.Content[i]), resolve(root.Content[i+1])
		if k.Kind != yaml.ScalarNode {
			return nil, domain.ErrInvalidPairFile.WithDetailsf("line %d: key is not a scalar", k.Line)
		}
		if v.Kind != yaml.ScalarNode {
			return nil, domain.ErrInvalidPairFile.WithDetailsf("line %d: value of %q is not a scalar", v.Line, scalar(k))
		}
		m.Add(scalar(k), scalar(v))
	}
	return m, nil
}

// Load reads a pair file from disk.
func Load(path string, buckets int) (*ordmap.Map[string, string], error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrPairFileIO.WithDetailsf("%s: no such file", path).WithCause(err)
		}
		return nil, domain.ErrPairFileIO.WithCause(err)
	}
	defer f.Close()
	return Read(f, buckets)
}

// Write encodes m as a pair file, keys in insertion order.
func Write(w io.Writer, m *ordmap.Map[string, string]) error {
	root := Node(m)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return domain.ErrPairFileIO.WithCause(err)
	}
	if err := enc.Close(); err != nil {
		return domain.ErrPairFileIO.WithCause(err)
	}
	return nil
}

// Save writes m to path, replacing any existing file.
func Save(path string, m *ordmap.Map[string, string]) error {
	var buf bytes.Buffer
	if err := Write(&buf, m); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return domain.ErrPairFileIO.WithCause(err)
	}
	return nil
}

// Node builds an ordered YAML mapping node for m.
func Node(m *ordmap.Map[string, string]) *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if m.Len() == 0 {
		root.Style = yaml.FlowStyle
	}
	for k, v := range m.All() {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v},
		)
	}
	return root
}

// resolve follows an alias to its anchored node.
func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// scalar returns the text of a scalar node; null reads as "".
func scalar(n *yaml.Node) string {
	if n.Tag == "!!null" {
		return ""
	}
	return n.Value
}
