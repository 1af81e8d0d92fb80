// Package seed imports problems, projects, and career events from a JSON
// or YAML document validated against an embedded JSON schema.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/blaezi/blaezi/internal/pillar"
	"github.com/blaezi/blaezi/internal/store"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://blaezi/seed.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Format is the encoding of a seed document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension; anything that is
// not .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ErrInvalidDocument indicates a seed document that is not well-formed or
// does not conform to the schema.
type ErrInvalidDocument struct {
	Err error
}

func (e *ErrInvalidDocument) Error() string {
	return fmt.Sprintf("invalid seed document: %v", e.Err)
}

func (e *ErrInvalidDocument) Unwrap() error { return e.Err }

// Document is a parsed seed with records ready to store.
type Document struct {
	Problems     []pillar.PracticeProblem
	Projects     []pillar.Project
	CareerEvents []pillar.CareerEvent
}

// Counts reports how many records of each kind were imported.
type Counts struct {
	Problems     int
	Projects     int
	CareerEvents int
}

// Parse decodes and validates a seed document. Records without an ID get a
// fresh one.
func Parse(data []byte, format Format) (*Document, error) {
	if format == FormatYAML {
		j, err := yamlToJSON(data)
		if err != nil {
			return nil, &ErrInvalidDocument{Err: err}
		}
		data = j
	}

	// The validator wants json.Number values, so decode with its helper.
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, &ErrInvalidDocument{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile seed schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrInvalidDocument{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ErrInvalidDocument{Err: err}
	}
	doc, err := raw.toDocument()
	if err != nil {
		return nil, &ErrInvalidDocument{Err: err}
	}
	return doc, nil
}

// Apply upserts every record of the document into the store.
func (d *Document) Apply(ctx context.Context, s *store.Store) (Counts, error) {
	var c Counts
	problems, projects, careers := s.Problems(), s.Projects(), s.Careers()

	for i := range d.Problems {
		if err := problems.Upsert(ctx, &d.Problems[i]); err != nil {
			return c, err
		}
		c.Problems++
	}
	for i := range d.Projects {
		if err := projects.Upsert(ctx, &d.Projects[i]); err != nil {
			return c, err
		}
		c.Projects++
	}
	for i := range d.CareerEvents {
		if err := careers.Upsert(ctx, &d.CareerEvents[i]); err != nil {
			return c, err
		}
		c.CareerEvents++
	}
	return c, nil
}

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// yamlToJSON re-encodes a YAML document as JSON. Timestamp scalars keep
// their source text so date-only values resolve in local time like JSON.
func yamlToJSON(data []byte) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	v, err := nodeValue(&root)
	if err != nil {
		return nil, fmt.Errorf("convert YAML: %w", err)
	}
	if v == nil {
		v = map[string]any{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("convert YAML: %w", err)
	}
	return b, nil
}

func nodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeValue(n.Content[0])
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
			}
			v, err := nodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[k.Value] = v
		}
		return m, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.ScalarNode:
		if n.ShortTag() == "!!timestamp" {
			return n.Value, nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	default:
		return nil, nil
	}
}
