package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"html"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/junaidrashid-git/nursery-store/models"
	"github.com/junaidrashid-git/nursery-store/pricing"
)

var (
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	scientificRe = regexp.MustCompile(`\(([A-Z][a-z]+ [a-z][a-z.' -]+)\)`)
)

// ImportResult is what a WooCommerce export turned into.
type ImportResult struct {
	Products []models.Product
	Skipped  int
	Warnings []string
}

type wooRow struct {
	line        int
	id          string
	kind        string
	sku         string
	name        string
	published   string
	featured    string
	short       string
	description string
	inStock     string
	stock       string
	salePrice   string
	regular     string
	categories  string
	images      string
	parent      string
	attrValues  string
}

type wooColumns map[string]int

func (c wooColumns) get(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// ParseWooCommerce reads a WooCommerce product export. Variable products take
// their sizes from their variations; products that only list size attribute
// values get the default multiplier ladder.
func ParseWooCommerce(r io.Reader) (ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return ImportResult{}, fmt.Errorf("read header: %w", err)
	}
	cols := make(wooColumns, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	if _, ok := cols["Name"]; !ok {
		return ImportResult{}, errors.New("export has no Name column")
	}

	var parents []wooRow
	variations := make(map[string][]wooRow)
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return ImportResult{}, fmt.Errorf("line %d: %w", line, err)
		}
		row := wooRow{
			line:        line,
			id:          cols.get(record, "ID"),
			kind:        strings.ToLower(cols.get(record, "Type")),
			sku:         cols.get(record, "SKU"),
			name:        cols.get(record, "Name"),
			published:   cols.get(record, "Published"),
			featured:    cols.get(record, "Is featured?"),
			short:       cols.get(record, "Short description"),
			description: cols.get(record, "Description"),
			inStock:     cols.get(record, "In stock?"),
			stock:       cols.get(record, "Stock"),
			salePrice:   cols.get(record, "Sale price"),
			regular:     cols.get(record, "Regular price"),
			categories:  cols.get(record, "Categories"),
			images:      cols.get(record, "Images"),
			parent:      cols.get(record, "Parent"),
			attrValues:  cols.get(record, "Attribute 1 value(s)"),
		}
		if row.kind == "variation" {
			variations[row.parent] = append(variations[row.parent], row)
			continue
		}
		parents = append(parents, row)
	}

	var res ImportResult
	usedIDs := make(map[string]bool)
	for _, row := range parents {
		if row.published != "" && row.published != "1" {
			res.Skipped++
			continue
		}
		var vars []wooRow
		if row.id != "" {
			vars = append(vars, variations["id:"+row.id]...)
		}
		if row.sku != "" {
			vars = append(vars, variations[row.sku]...)
		}
		p, err := buildProduct(row, vars)
		if err != nil {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("line %d (%s): %v", row.line, row.name, err))
			continue
		}
		if usedIDs[p.ID] {
			p.ID = pricing.SizeID(p.ID + " " + firstNonEmpty(row.sku, row.id))
		}
		usedIDs[p.ID] = true
		res.Products = append(res.Products, p)
	}
	return res, nil
}

func buildProduct(row wooRow, vars []wooRow) (models.Product, error) {
	if row.name == "" {
		return models.Product{}, errors.New("missing name")
	}
	name, scientific := splitScientificName(row.name)
	description := cleanText(firstNonEmpty(row.description, row.short))

	p := models.Product{
		ID:             pricing.SizeID(name),
		Name:           name,
		ScientificName: scientific,
		Category:       InferCategory(row.categories, row.name),
		Description:    description,
		InStock:        row.inStock != "0",
		Featured:       row.featured == "1",
	}
	if p.ID == "" {
		p.ID = pricing.SizeID(firstNonEmpty(row.sku, row.id))
	}
	if images := splitList(row.images); len(images) > 0 {
		p.Images = pq.StringArray(images)
		p.ImageURL = images[0]
	}
	if n, err := decimal.NewFromString(row.stock); err == nil {
		p.StockQuantity = int(n.IntPart())
	}

	chars := InferCharacteristics(row.name, row.short, description)
	p.Characteristics = &chars

	switch {
	case len(vars) > 0:
		base, sizes, err := sizesFromVariations(vars)
		if err != nil {
			return models.Product{}, err
		}
		p.Price = base
		p.Sizes = sizes
	default:
		price, err := rowPrice(row)
		if err != nil {
			return models.Product{}, err
		}
		p.Price = price
		p.Sizes = pricing.SizesFromLabels(splitList(row.attrValues))
	}
	return p, p.Validate()
}

// sizesFromVariations turns priced variations into a size table relative to
// the cheapest one.
func sizesFromVariations(vars []wooRow) (decimal.Decimal, []models.Size, error) {
	type priced struct {
		label string
		price decimal.Decimal
	}
	var rows []priced
	for _, v := range vars {
		price, err := rowPrice(v)
		if err != nil {
			continue
		}
		label := firstNonEmpty(v.attrValues, v.name)
		rows = append(rows, priced{label: label, price: price})
	}
	if len(rows) == 0 {
		return decimal.Zero, nil, errors.New("no priced variations")
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].price.LessThan(rows[j].price) })

	base := rows[0].price
	var sizes []models.Size
	seen := make(map[string]bool)
	for _, r := range rows {
		id := pricing.SizeID(r.label)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		sizes = append(sizes, models.Size{
			ID:         id,
			Label:      r.label,
			Multiplier: r.price.Div(base).Round(2),
		})
	}
	return base, sizes, nil
}

func rowPrice(row wooRow) (decimal.Decimal, error) {
	raw := firstNonEmpty(row.salePrice, row.regular)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "$"))
	if raw == "" {
		return decimal.Zero, errors.New("missing price")
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q", raw)
	}
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("non-positive price %q", raw)
	}
	return price, nil
}

// splitScientificName pulls "(Genus species)" out of a display name.
func splitScientificName(name string) (string, string) {
	m := scientificRe.FindStringSubmatchIndex(name)
	if m == nil {
		return strings.TrimSpace(name), ""
	}
	scientific := name[m[2]:m[3]]
	display := strings.TrimSpace(whitespaceRe.ReplaceAllString(name[:m[0]]+name[m[1]:], " "))
	return display, strings.TrimSpace(scientific)
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, `\n`, " ")
	s = tagRe.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
