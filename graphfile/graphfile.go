package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mcsgraph/core"
	"github.com/katalvlaran/mcsgraph/points"
)

var (
	// ErrInvalidDefinition is returned when a definition fails schema validation.
	ErrInvalidDefinition = errors.New("graphfile: invalid definition")

	// ErrUnknownNode is returned when an edge refers to a key no node declares.
	ErrUnknownNode = errors.New("graphfile: edge refers to unknown node")

	// ErrDuplicateKey is returned when two nodes share a key.
	ErrDuplicateKey = errors.New("graphfile: duplicate node key")
)

var validate = validator.New()

// Definition is the YAML form of one graph.
type Definition struct {
	ID    *int      `yaml:"id" validate:"required,gte=0"`
	Name  string    `yaml:"name"`
	Nodes []NodeDef `yaml:"nodes" validate:"dive"`
	Edges []EdgeDef `yaml:"edges" validate:"dive"`
}

// NodeDef declares one node. Weight 0 means 1.
type NodeDef struct {
	Key    string  `yaml:"key" validate:"required"`
	Type   string  `yaml:"type" validate:"required"`
	Weight float64 `yaml:"weight" validate:"gte=0"`
}

// EdgeDef declares one edge between two node keys. Arrow accepts the literals
// of core.ParseArrow; empty means undirected.
type EdgeDef struct {
	From   string  `yaml:"from" validate:"required"`
	To     string  `yaml:"to" validate:"required"`
	Arrow  string  `yaml:"arrow" validate:"omitempty,oneof=- -- none -> → to <-> ←→ both"`
	Type   string  `yaml:"type"`
	Weight float64 `yaml:"weight" validate:"gte=0"`
}

// Label is the node and edge label of file graphs: a type tag with a weight.
type Label struct {
	Type   string
	Weight float64
}

// weight returns Weight, defaulting to 1.
func (l Label) weight() float64 {
	if l.Weight == 0 {
		return 1
	}

	return l.Weight
}

// Compare scores other against l by type equality: w/w on equal types,
// 0/w otherwise, where w is l's weight.
func (l Label) Compare(other Label) (points.Points, error) {
	w := l.weight()
	if l.Type == other.Type {
		return points.New(w, w)
	}

	return points.New(0, w)
}

// String returns the type tag.
func (l Label) String() string { return l.Type }

// Parse decodes and validates one YAML definition.
func Parse(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}
	if err := validate.Struct(&def); err != nil {
		return nil, formatValidationError(err)
	}

	return &def, nil
}

// Load reads and parses the definition at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return def, nil
}

// LoadGraph reads the definition at path and builds it.
func LoadGraph(path string) (*core.Graph[Label, Label], error) {
	def, err := Load(path)
	if err != nil {
		return nil, err
	}
	g, err := Build(def)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Build turns a validated definition into an immutable graph.
// Complexity: O(V + E).
func Build(def *Definition) (*core.Graph[Label, Label], error) {
	if def == nil || def.ID == nil {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidDefinition)
	}

	b, err := core.NewBuilder[Label, Label](*def.ID, core.WithName(def.Name))
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	byKey := make(map[string]*core.Node[Label], len(def.Nodes))
	for _, nd := range def.Nodes {
		if _, dup := byKey[nd.Key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, nd.Key)
		}
		n, err := b.AddNode(Label{Type: nd.Type, Weight: nd.Weight})
		if err != nil {
			return nil, fmt.Errorf("graphfile: node %q: %w", nd.Key, err)
		}
		byKey[nd.Key] = n
	}
	for i, ed := range def.Edges {
		from, ok := byKey[ed.From]
		if !ok {
			return nil, fmt.Errorf("%w: edges[%d].from %q", ErrUnknownNode, i, ed.From)
		}
		to, ok := byKey[ed.To]
		if !ok {
			return nil, fmt.Errorf("%w: edges[%d].to %q", ErrUnknownNode, i, ed.To)
		}
		arrow, err := core.ParseArrow(ed.Arrow)
		if err != nil {
			return nil, fmt.Errorf("graphfile: edges[%d]: %w", i, err)
		}
		if _, err = b.AddEdge(from, to, arrow, Label{Type: ed.Type, Weight: ed.Weight}); err != nil {
			return nil, fmt.Errorf("graphfile: edges[%d]: %w", i, err)
		}
	}

	return b.Build()
}

// formatValidationError flattens validator errors into one ErrInvalidDefinition.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidDefinition, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Definition.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
