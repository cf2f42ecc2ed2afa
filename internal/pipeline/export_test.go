package pipeline

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/enarroied/get-amm/internal"
	"github.com/enarroied/get-amm/internal/util"
)

func sampleReport() internal.Report {
	return internal.Report{
		Copper: []internal.CopperRow{
			{Product: "BORDELAISE", Compound: "Cuivre ", Concentration: util.FloatPtr(2.0), ReferenceDose: "10", Dose: util.FloatPtr(0.2), MaxTreatments: "6"},
			{Product: "CUPROX", Compound: "Cuivre ", ReferenceDose: "8", MaxTreatments: "4"},
		},
		Sulphur: []internal.SulphurRow{
			{Product: "SOUFREX", Compound: "Soufre ", Concentration: util.FloatPtr(8.0), ReferenceDose: "5", Dose: util.FloatPtr(0.4), Biocontrol: 1, MaxTreatments: "8"},
		},
		Pheromone: []internal.PheromoneRow{
			{Product: "RAK 1+2", Compound: "acétate ", Biocontrol: 1},
		},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1
	lines, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return lines
}

func TestWriteLegacyCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "intrants.csv")
	if err := WriteLegacyCSV(sampleReport(), out); err != nil {
		t.Fatal(err)
	}

	lines := readCSV(t, out)
	// Banner, sub-column header, then rows padded to the longest block (copper, 2).
	if len(lines) != 4 {
		t.Fatalf("lines=%d", len(lines))
	}

	banner := lines[0]
	if banner[0] != "CUIVRE" {
		t.Fatalf("banner starts with %q", banner[0])
	}
	// Sulphur banner sits right after the 7 copper columns.
	if banner[7] != "SOUFRE" {
		t.Fatalf("banner[7]=%q", banner[7])
	}
	if banner[15] != "INSECTICIDE" || banner[23] != "CONFUSION" || banner[26] != "BIOCONTROLE" {
		t.Fatalf("banner layout: %v", banner)
	}

	width := 7 + 8 + 8 + 3 + 9
	for i, line := range lines {
		if len(line) != width {
			t.Fatalf("line %d has %d fields, want %d", i, len(line), width)
		}
	}

	// First data row: copper row 1, sulphur row 1, pheromone row 1.
	row := lines[2]
	if row[0] != "BORDELAISE" || row[3] != "2" || row[5] != "0.2" {
		t.Fatalf("copper cells: %v", row[:7])
	}
	if row[7] != "SOUFREX" || row[13] != "1" {
		t.Fatalf("sulphur cells: %v", row[7:15])
	}
	if row[23] != "RAK 1+2" {
		t.Fatalf("pheromone cells: %v", row[23:26])
	}

	// Second data row: only copper has one; the other blocks are padding.
	row = lines[3]
	if row[0] != "CUPROX" {
		t.Fatalf("second copper row: %v", row[:7])
	}
	// Failed parse exports as empty, never as 0.
	if row[3] != "" || row[5] != "" {
		t.Fatalf("missing values must stay empty: conc=%q dose=%q", row[3], row[5])
	}
	for i := 7; i < width; i++ {
		if row[i] != "" {
			t.Fatalf("padding cell %d = %q", i, row[i])
		}
	}
}

func TestWriteWideCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "intrants_wide.csv")
	if err := WriteWideCSV(sampleReport(), out); err != nil {
		t.Fatal(err)
	}

	lines := readCSV(t, out)
	if len(lines) != 5 {
		t.Fatalf("lines=%d", len(lines))
	}
	if lines[0][0] != "Catégorie" {
		t.Fatalf("header: %v", lines[0])
	}
	if lines[1][0] != "CUIVRE" || lines[1][1] != "BORDELAISE" {
		t.Fatalf("first row: %v", lines[1])
	}
	if lines[4][0] != "CONFUSION" || lines[4][7] != "1" {
		t.Fatalf("pheromone row: %v", lines[4])
	}
}

func TestWriteXLSXMatchesWide(t *testing.T) {
	tmp := t.TempDir()
	csvOut := filepath.Join(tmp, "intrants.csv")
	xlsxOut := filepath.Join(tmp, "intrants.xlsx")

	report := sampleReport()
	if err := WriteWideCSV(report, csvOut); err != nil {
		t.Fatal(err)
	}
	if err := WriteXLSX(report, xlsxOut); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(xlsxOut)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatal(err)
	}

	want := readCSV(t, csvOut)
	if len(rows) != len(want) {
		t.Fatalf("xlsx rows=%d csv rows=%d", len(rows), len(want))
	}
	for i := range want {
		for j, cell := range want[i] {
			got := ""
			if j < len(rows[i]) {
				got = rows[i][j]
			}
			if got != cell {
				t.Fatalf("cell (%d,%d): xlsx=%q csv=%q", i, j, got, cell)
			}
		}
	}
}
