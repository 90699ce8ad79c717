package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"

	"carport_configurator/internal/domain/entities"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// money decodes a YAML scalar ("1200", 1200.5, "1200.50") into cents.
type money entities.Money

func (m *money) UnmarshalYAML(node *yaml.Node) error {
	v, err := entities.ParseMoney(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*m = money(v)
	return nil
}

type entryDoc struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Active    *bool  `yaml:"active"`
	SortOrder int    `yaml:"sort_order"`
}

func (d entryDoc) meta() entities.CatalogMeta {
	active := true
	if d.Active != nil {
		active = *d.Active
	}
	return entities.CatalogMeta{ID: d.ID, Name: d.Name, Active: active, SortOrder: d.SortOrder}
}

type structureTypeDoc struct {
	entryDoc    `yaml:",inline"`
	Description string                   `yaml:"description"`
	ImageURL    string                   `yaml:"image_url"`
	Limits      entities.DimensionLimits `yaml:"limits"`
}

type modelDoc struct {
	entryDoc    `yaml:",inline"`
	Description string `yaml:"description"`
	BasePrice   money  `yaml:"base_price"`
	ImageURL    string `yaml:"image_url"`
}

type surfaceDoc struct {
	entryDoc      `yaml:",inline"`
	ImageURL      string `yaml:"image_url"`
	PriceModifier money  `yaml:"price_modifier"`
}

type coverageDoc struct {
	entryDoc      `yaml:",inline"`
	Description   string `yaml:"description"`
	ImageURL      string `yaml:"image_url"`
	PriceModifier money  `yaml:"price_modifier"`
}

type colorDoc struct {
	entryDoc      `yaml:",inline"`
	HexValue      string `yaml:"hex_value"`
	Category      string `yaml:"category"`
	PriceModifier money  `yaml:"price_modifier"`
}

type accessoryDoc struct {
	entryDoc      `yaml:",inline"`
	Icon          string `yaml:"icon"`
	ImageURL      string `yaml:"image_url"`
	PriceModifier money  `yaml:"price_modifier"`
}

type packageDoc struct {
	entryDoc `yaml:",inline"`
	Contents []string `yaml:"contents"`
	Price    money    `yaml:"price"`
}

// LineCatalog is the seed content of one product line.
type LineCatalog struct {
	StructureTypes []structureTypeDoc `yaml:"structure_types"`
	Models         []modelDoc         `yaml:"models"`
	Surfaces       []surfaceDoc       `yaml:"surfaces"`
	CoverageTypes  []coverageDoc      `yaml:"coverage_types"`
	Colors         []colorDoc         `yaml:"colors"`
	Accessories    []accessoryDoc     `yaml:"accessories"`
	Packages       []packageDoc       `yaml:"packages"`
}

// Catalog is a parsed seed file.
type Catalog struct {
	Lines map[entities.ProductLine]LineCatalog `yaml:"lines"`
}

// Parse decodes a seed document, rejecting unknown fields and product lines.
func Parse(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}
	for line := range c.Lines {
		if _, err := entities.ParseProductLine(string(line)); err != nil {
			return nil, fmt.Errorf("parse catalog seed: %w", err)
		}
	}
	return &c, nil
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(bytes.NewReader(defaultCatalog))
}

// Entries flattens the seed of line into catalog entities, in wizard order.
func (c *Catalog) Entries(line entities.ProductLine) []entities.CatalogEntity {
	doc := c.Lines[line]
	var out []entities.CatalogEntity
	for _, d := range doc.StructureTypes {
		out = append(out, entities.StructureType{CatalogMeta: d.meta(), Description: d.Description, ImageURL: d.ImageURL, Limits: d.Limits})
	}
	for _, d := range doc.Models {
		out = append(out, entities.Model{CatalogMeta: d.meta(), Description: d.Description, BasePrice: entities.Money(d.BasePrice), ImageURL: d.ImageURL})
	}
	for _, d := range doc.Surfaces {
		out = append(out, entities.Surface{CatalogMeta: d.meta(), ImageURL: d.ImageURL, PriceModifier: entities.Money(d.PriceModifier)})
	}
	for _, d := range doc.CoverageTypes {
		out = append(out, entities.CoverageType{CatalogMeta: d.meta(), Description: d.Description, ImageURL: d.ImageURL, PriceModifier: entities.Money(d.PriceModifier)})
	}
	for _, d := range doc.Colors {
		out = append(out, entities.Color{CatalogMeta: d.meta(), HexValue: d.HexValue, Category: entities.ColorCategory(d.Category), PriceModifier: entities.Money(d.PriceModifier)})
	}
	for _, d := range doc.Accessories {
		out = append(out, entities.Accessory{CatalogMeta: d.meta(), Icon: d.Icon, ImageURL: d.ImageURL, PriceModifier: entities.Money(d.PriceModifier)})
	}
	for _, d := range doc.Packages {
		out = append(out, entities.Package{CatalogMeta: d.meta(), Contents: d.Contents, Price: entities.Money(d.Price)})
	}
	return out
}

// ProductLines lists the lines present in the seed, sorted.
func (c *Catalog) ProductLines() []entities.ProductLine {
	out := make([]entities.ProductLine, 0, len(c.Lines))
	for line := range c.Lines {
		out = append(out, line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Upserter is satisfied by the catalog use case.
type Upserter interface {
	Upsert(ctx context.Context, ns entities.Namespace, e entities.CatalogEntity) (entities.CatalogEntity, error)
}

// Apply upserts every entry of the selected lines (all lines when lines is
// empty) and returns how many entries were written per line. It stops at the
// first failure.
func Apply(ctx context.Context, u Upserter, c *Catalog, lines ...entities.ProductLine) (map[entities.ProductLine]int, error) {
	if len(lines) == 0 {
		lines = c.ProductLines()
	}
	written := make(map[entities.ProductLine]int, len(lines))
	for _, line := range lines {
		ns, err := entities.ResolveNamespace(line)
		if err != nil {
			return written, err
		}
		for _, e := range c.Entries(line) {
			if _, err := u.Upsert(ctx, ns, e); err != nil {
				return written, fmt.Errorf("seed %s %s/%s: %w", line, e.Kind(), e.EntityID(), err)
			}
			written[line]++
		}
		zap.L().Info("[catalog][seed] product line seeded",
			zap.String("product_line", string(line)),
			zap.Int("entries", written[line]),
		)
	}
	return written, nil
}
