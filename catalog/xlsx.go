package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"

	"github.com/junaidrashid-git/nursery-store/models"
	"github.com/junaidrashid-git/nursery-store/pricing"
)

// SheetHeaders are the columns of the admin product spreadsheet.
var SheetHeaders = []string{
	"ID", "Name", "ScientificName", "Category", "Price", "Description",
	"ImageURL", "Images", "Sizes", "StockQuantity", "InStock", "Featured",
}

// WriteSheet writes products as an .xlsx workbook.
func WriteSheet(w io.Writer, products []models.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range SheetHeaders {
		header.AddCell().SetString(h)
	}
	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.ScientificName)
		row.AddCell().SetString(string(p.Category))
		row.AddCell().SetString(p.Price.StringFixed(2))
		row.AddCell().SetString(p.Description)
		row.AddCell().SetString(p.ImageURL)
		row.AddCell().SetString(strings.Join(p.Images, ","))
		row.AddCell().SetString(FormatSizes(p.Sizes))
		row.AddCell().SetInt(p.StockQuantity)
		row.AddCell().SetString(strconv.FormatBool(p.InStock))
		row.AddCell().SetString(strconv.FormatBool(p.Featured))
	}
	return file.Write(w)
}

// ReadSheet parses a workbook in the WriteSheet layout. Rows that do not make
// a valid product are skipped with a warning.
func ReadSheet(r io.ReaderAt, size int64) (ImportResult, error) {
	file, err := xlsx.OpenReaderAt(r, size)
	if err != nil {
		return ImportResult{}, fmt.Errorf("open workbook: %w", err)
	}
	if len(file.Sheets) == 0 || file.Sheets[0].MaxRow < 2 {
		return ImportResult{}, fmt.Errorf("workbook is empty or missing header row")
	}

	sheet := file.Sheets[0]
	var res ImportResult
	for i := 1; i < len(sheet.Rows); i++ {
		row := sheet.Rows[i]
		get := func(index int) string {
			if index < len(row.Cells) {
				return strings.TrimSpace(row.Cells[index].String())
			}
			return ""
		}
		if get(0) == "" && get(1) == "" {
			continue
		}

		p, err := productFromRow(get)
		if err == nil {
			err = p.Validate()
		}
		if err != nil {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		res.Products = append(res.Products, p)
	}
	return res, nil
}

func productFromRow(get func(int) string) (models.Product, error) {
	p := models.Product{
		ID:             get(0),
		Name:           get(1),
		ScientificName: get(2),
		Description:    get(5),
		ImageURL:       get(6),
		InStock:        true,
	}
	if p.ID == "" {
		p.ID = pricing.SizeID(p.Name)
	}

	if raw := get(3); raw != "" {
		category, ok := models.ParseCategory(raw)
		if !ok {
			return p, &models.FieldError{Field: "category", Message: fmt.Sprintf("unknown category %q", raw)}
		}
		p.Category = category
	} else {
		p.Category = InferCategory(p.Name, p.ScientificName)
	}

	price, err := decimal.NewFromString(strings.TrimPrefix(get(4), "$"))
	if err != nil {
		return p, &models.FieldError{Field: "price", Message: fmt.Sprintf("invalid price %q", get(4))}
	}
	p.Price = price

	if images := splitList(get(7)); len(images) > 0 {
		p.Images = pq.StringArray(images)
		if p.ImageURL == "" {
			p.ImageURL = images[0]
		}
	}
	if p.Sizes, err = ParseSizes(get(8)); err != nil {
		return p, &models.FieldError{Field: "sizes", Message: err.Error()}
	}
	if raw := get(9); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return p, &models.FieldError{Field: "stock_quantity", Message: fmt.Sprintf("invalid stock %q", raw)}
		}
		p.StockQuantity = n
	}
	if raw := get(10); raw != "" {
		p.InStock = parseBool(raw)
	}
	p.Featured = parseBool(get(11))
	return p, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}
