package pipeline

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/enarroied/get-amm/internal"
)

var (
	copperHeaders = []string{
		"Spécialité Commerciale", "Matière Active (M.A.)", "Autre",
		"Concentration en M.A. (%)", "Dose homologuée (Kg ou L / ha)",
		"Kg / ha de M.A.", "Nombre de traitements max",
	}
	sulphurHeaders = []string{
		"Spécialité Commerciale", "Matière Active (M.A.)", "Autre",
		"Concentration en M.A. (%)", "Dose homologuée (Kg ou L / ha)",
		"Kg / ha de M.A.", "Biocontrôle (1/0)", "Nombre de traitements max",
	}
	insecticideHeaders = sulphurHeaders
	pheromoneHeaders   = []string{
		"Spécialité commerciale", "Matière Active (M.A)", "Biocontrôle (1/0)",
	}
	otherHeaders = []string{
		"Spécialité Commerciale", "Matière Active (M.A.)", "Autre",
		"Concentration en M.A. (%)", "Dose homologuée (Kg ou L / ha)",
		"Kg / ha de M.A.", "Biocontrôle (1/0)", "Insecticide",
		"Nombre de traitements max",
	}

	wideHeaders = []string{
		"Catégorie", "Spécialité Commerciale", "Matière Active (M.A.)", "Autre",
		"Concentration en M.A. (%)", "Dose homologuée (Kg ou L / ha)",
		"Kg / ha de M.A.", "Biocontrôle (1/0)", "Insecticide",
		"Nombre de traitements max",
	}
)

type block struct {
	category internal.Category
	headers  []string
	rows     [][]string
}

func reportBlocks(report internal.Report) []block {
	copper := block{category: internal.CategoryCopper, headers: copperHeaders}
	for _, row := range report.Copper {
		copper.rows = append(copper.rows, []string{
			row.Product, row.Compound, row.Annotation,
			formatFloat(row.Concentration), row.ReferenceDose,
			formatFloat(row.Dose), row.MaxTreatments,
		})
	}

	sulphur := block{category: internal.CategorySulphur, headers: sulphurHeaders}
	for _, row := range report.Sulphur {
		sulphur.rows = append(sulphur.rows, []string{
			row.Product, row.Compound, row.Annotation,
			formatFloat(row.Concentration), row.ReferenceDose,
			formatFloat(row.Dose), strconv.Itoa(row.Biocontrol), row.MaxTreatments,
		})
	}

	insecticide := block{category: internal.CategoryInsecticide, headers: insecticideHeaders}
	for _, row := range report.Insecticide {
		insecticide.rows = append(insecticide.rows, []string{
			row.Product, row.Compound, row.Annotation,
			formatFloat(row.Concentration), row.ReferenceDose,
			formatFloat(row.Dose), strconv.Itoa(row.Biocontrol), row.MaxTreatments,
		})
	}

	pheromone := block{category: internal.CategoryPheromone, headers: pheromoneHeaders}
	for _, row := range report.Pheromone {
		pheromone.rows = append(pheromone.rows, []string{
			row.Product, row.Compound, strconv.Itoa(row.Biocontrol),
		})
	}

	other := block{category: internal.CategoryOther, headers: otherHeaders}
	for _, row := range report.Other {
		other.rows = append(other.rows, []string{
			row.Product, row.Compound, row.Annotation,
			formatFloat(row.Concentration), row.ReferenceDose,
			formatFloat(row.Dose), strconv.Itoa(row.Biocontrol),
			strconv.Itoa(row.Insecticide), row.MaxTreatments,
		})
	}

	return []block{copper, sulphur, insecticide, pheromone, other}
}

// WriteLegacyCSV renders the five category blocks side by side: a banner
// row naming each block, a row of sub-column names, then the block rows.
// Shorter blocks are padded with empty cells to the longest block.
func WriteLegacyCSV(report internal.Report, path string) error {
	blocks := reportBlocks(report)

	maxRows := 0
	for _, b := range blocks {
		if len(b.rows) > maxRows {
			maxRows = len(b.rows)
		}
	}

	banner := make([]string, 0)
	header := make([]string, 0)
	for _, b := range blocks {
		banner = append(banner, string(b.category))
		banner = append(banner, make([]string, len(b.headers)-1)...)
		header = append(header, b.headers...)
	}

	lines := [][]string{banner, header}
	for i := 0; i < maxRows; i++ {
		line := make([]string, 0, len(header))
		for _, b := range blocks {
			if i < len(b.rows) {
				line = append(line, b.rows[i]...)
			} else {
				line = append(line, make([]string, len(b.headers))...)
			}
		}
		lines = append(lines, line)
	}

	return writeCSV(path, lines)
}

// WriteWideCSV renders one flat table, one row per classified product,
// with the category as the first column. Columns a category does not carry
// stay empty.
func WriteWideCSV(report internal.Report, path string) error {
	return writeCSV(path, wideLines(report))
}

// WriteXLSX renders the wide layout as a spreadsheet.
func WriteXLSX(report internal.Report, path string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for r, line := range wideLines(report) {
		for c, value := range line {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func wideLines(report internal.Report) [][]string {
	lines := [][]string{wideHeaders}

	for _, row := range report.Copper {
		lines = append(lines, []string{
			string(internal.CategoryCopper), row.Product, row.Compound, row.Annotation,
			formatFloat(row.Concentration), row.ReferenceDose, formatFloat(row.Dose),
			"", "", row.MaxTreatments,
		})
	}
	for _, row := range report.Sulphur {
		lines = append(lines, []string{
			string(internal.CategorySulphur), row.Product, row.Compound, row.Annotation,
			formatFloat(row.Concentration), row.ReferenceDose, formatFloat(row.Dose),
			strconv.Itoa(row.Biocontrol), "", row.MaxTreatments,
		})
	}
	for _, row := range report.Insecticide {
		lines = append(lines, []string{
			string(internal.CategoryInsecticide), row.Product, row.Compound, row.Annotation,
			formatFloat(row.Concentration), row.ReferenceDose, formatFloat(row.Dose),
			strconv.Itoa(row.Biocontrol), "", row.MaxTreatments,
		})
	}
	for _, row := range report.Pheromone {
		lines = append(lines, []string{
			string(internal.CategoryPheromone), row.Product, row.Compound, "",
			"", "", "", strconv.Itoa(row.Biocontrol), "", "",
		})
	}
	for _, row := range report.Other {
		lines = append(lines, []string{
			string(internal.CategoryOther), row.Product, row.Compound, row.Annotation,
			formatFloat(row.Concentration), row.ReferenceDose, formatFloat(row.Dose),
			strconv.Itoa(row.Biocontrol), strconv.Itoa(row.Insecticide), row.MaxTreatments,
		})
	}

	return lines
}

func writeCSV(path string, lines [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	w.Comma = ';'
	if err := w.WriteAll(lines); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// formatFloat renders a derived value, empty when the parse failed. The
// distinction between 0 and missing is deliberate.
func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
