package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownProductLine is returned when a product-line selector is neither wood nor iron.
var ErrUnknownProductLine = errors.New("unknown product line")

// ProductLine selects one of the two parallel offerings.
type ProductLine string

const (
	ProductLineWood ProductLine = "wood"
	ProductLineIron ProductLine = "iron"
)

var namespacePrefixes = map[ProductLine]string{
	ProductLineWood: "wood_",
	ProductLineIron: "iron_",
}

// ProductLines returns both product lines in a stable order.
func ProductLines() []ProductLine {
	return []ProductLine{ProductLineWood, ProductLineIron}
}

// ParseProductLine normalizes a raw selector (path param, CLI flag) into a ProductLine.
func ParseProductLine(raw string) (ProductLine, error) {
	line := ProductLine(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := namespacePrefixes[line]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownProductLine, raw)
	}
	return line, nil
}

// Namespace is the resolved storage partition of a product line.
//
// Every catalog and configuration lookup takes a Namespace; the engine never
// builds a prefix on its own. The zero value is not a valid namespace.
type Namespace struct {
	line   ProductLine
	prefix string
}

// ResolveNamespace maps a product line to its namespace handle.
func ResolveNamespace(line ProductLine) (Namespace, error) {
	prefix, ok := namespacePrefixes[line]
	if !ok {
		return Namespace{}, fmt.Errorf("%w: %q", ErrUnknownProductLine, string(line))
	}
	return Namespace{line: line, prefix: prefix}, nil
}

// MustResolveNamespace is ResolveNamespace for compile-time known lines (tests, seeds).
func MustResolveNamespace(line ProductLine) Namespace {
	ns, err := ResolveNamespace(line)
	if err != nil {
		panic(err)
	}
	return ns
}

func (n Namespace) Line() ProductLine { return n.line }

func (n Namespace) Prefix() string { return n.prefix }

// Table returns the storage name of a record kind inside this namespace.
func (n Namespace) Table(base string) string { return n.prefix + base }

func (n Namespace) IsZero() bool { return n.prefix == "" }

func (n Namespace) String() string { return string(n.line) }
