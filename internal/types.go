package internal

// UsageRecord is one row of the E-Phy usage table, keyed by the French
// column headers of the source CSV. All fields are kept as raw text;
// numeric derivations happen during enrichment.
type UsageRecord struct {
	ProductName     string
	SecondNames     string
	Substances      string
	UsageID         string
	UsageState      string
	Mentions        string
	Functions       string
	UsageConditions string
	UsageRange      string
	ReferenceDose   string
	MaxTreatments   string
}

// EnrichedRecord carries the derived attributes on top of the source row.
// Concentration and ReferenceDoseValue stay nil when the source text does
// not parse; a nil is rendered as an empty cell, never as zero.
type EnrichedRecord struct {
	UsageRecord
	Annotation         string
	ActiveCompound     string
	Concentration      *float64
	ReferenceDoseValue *float64
}

type Category string

const (
	CategoryCopper      Category = "CUIVRE"
	CategorySulphur     Category = "SOUFRE"
	CategoryInsecticide Category = "INSECTICIDE"
	CategoryPheromone   Category = "CONFUSION"
	CategoryOther       Category = "BIOCONTROLE"
)

type CopperRow struct {
	Product       string
	Compound      string
	Annotation    string
	Concentration *float64
	ReferenceDose string
	Dose          *float64
	MaxTreatments string
}

type SulphurRow struct {
	Product       string
	Compound      string
	Annotation    string
	Concentration *float64
	ReferenceDose string
	Dose          *float64
	Biocontrol    int
	MaxTreatments string
}

type InsecticideRow struct {
	Product       string
	Compound      string
	Annotation    string
	Concentration *float64
	ReferenceDose string
	Dose          *float64
	Biocontrol    int
	MaxTreatments string
}

type PheromoneRow struct {
	Product    string
	Compound   string
	Biocontrol int
}

type OtherRow struct {
	Product       string
	Compound      string
	Annotation    string
	Concentration *float64
	ReferenceDose string
	Dose          *float64
	Biocontrol    int
	Insecticide   int
	MaxTreatments string
}

// Report groups the five category blocks produced by one classifier pass.
type Report struct {
	Copper      []CopperRow
	Sulphur     []SulphurRow
	Insecticide []InsecticideRow
	Pheromone   []PheromoneRow
	Other       []OtherRow
}
