package pipeline

import (
	"strings"

	"github.com/enarroied/get-amm/internal"
	"github.com/enarroied/get-amm/internal/util"
)

// Substance-name patterns claimed by the four named categories; "other" is
// their complement over the substance field.
var namedSubstancePatterns = []string{
	"Spinosad", "Bacillus", "pyréthrines",
	"soufre", "sulphur", "cuivre", "pheromones",
}

var insecticideSubstances = []string{"Spinosad", "Bacillus", "pyréthrines"}

// The pheromone substance field repeats this literal for every compound.
const pheromoneLiteral = "(Straight Chain Lepidopteran Pheromones)"

// Classify partitions the enriched rows into the five category blocks.
// It is a pure function: running it twice over the same input yields
// identical blocks.
func Classify(records []internal.EnrichedRecord) internal.Report {
	report := internal.Report{}
	for _, record := range records {
		switch {
		case isCopper(record):
			report.Copper = append(report.Copper, internal.CopperRow{
				Product:       record.ProductName,
				Compound:      record.ActiveCompound,
				Annotation:    record.Annotation,
				Concentration: record.Concentration,
				ReferenceDose: record.ReferenceDose,
				Dose:          dose(record.Concentration, record.ReferenceDoseValue, 1),
				MaxTreatments: record.MaxTreatments,
			})
		case isSulphur(record):
			report.Sulphur = append(report.Sulphur, internal.SulphurRow{
				Product:       record.ProductName,
				Compound:      record.ActiveCompound,
				Annotation:    record.Annotation,
				Concentration: record.Concentration,
				ReferenceDose: record.ReferenceDose,
				Dose:          dose(record.Concentration, record.ReferenceDoseValue, 1),
				Biocontrol:    biocontrolFlag(record),
				MaxTreatments: record.MaxTreatments,
			})
		case isInsecticide(record):
			concentration := record.Concentration
			if strings.Contains(record.Substances, "Bacillus") {
				// Bacillus concentrations are counts of spores, not mass;
				// the report convention is 0.
				concentration = util.FloatPtr(0)
			}
			report.Insecticide = append(report.Insecticide, internal.InsecticideRow{
				Product:       record.ProductName,
				Compound:      record.ActiveCompound,
				Annotation:    record.Annotation,
				Concentration: concentration,
				ReferenceDose: record.ReferenceDose,
				Dose:          dose(concentration, record.ReferenceDoseValue, 3),
				Biocontrol:    biocontrolFlag(record),
				MaxTreatments: record.MaxTreatments,
			})
		case isPheromone(record):
			report.Pheromone = append(report.Pheromone, internal.PheromoneRow{
				Product:    record.ProductName,
				Compound:   pheromoneCompound(record.Substances),
				Biocontrol: biocontrolFlag(record),
			})
		case isOther(record):
			report.Other = append(report.Other, internal.OtherRow{
				Product:       record.ProductName,
				Compound:      record.ActiveCompound,
				Annotation:    record.Annotation,
				Concentration: record.Concentration,
				ReferenceDose: record.ReferenceDose,
				Dose:          dose(record.Concentration, record.ReferenceDoseValue, 1),
				Biocontrol:    biocontrolFlag(record),
				Insecticide:   insecticideFlag(record),
				MaxTreatments: record.MaxTreatments,
			})
		}
	}
	return report
}

// dose is concentration/100 × reference dose. Missing either operand means
// a missing dose, never a zero.
func dose(concentration, referenceDose *float64, places int) *float64 {
	if concentration == nil || referenceDose == nil {
		return nil
	}
	return util.FloatPtr(util.Round(*concentration/100**referenceDose, places))
}

func isCopper(record internal.EnrichedRecord) bool {
	return util.ContainsFold(record.ActiveCompound, "cuivre")
}

func isSulphur(record internal.EnrichedRecord) bool {
	return util.ContainsFold(record.ActiveCompound, "soufre") ||
		util.ContainsFold(record.ActiveCompound, "sulphur")
}

func isInsecticide(record internal.EnrichedRecord) bool {
	return util.ContainsFold(record.Functions, "insecticide") &&
		util.ContainsAnyFold(record.Substances, insecticideSubstances)
}

func isPheromone(record internal.EnrichedRecord) bool {
	return util.ContainsFold(record.Substances, "pheromones")
}

func isOther(record internal.EnrichedRecord) bool {
	return !util.ContainsAnyFold(record.Substances, namedSubstancePatterns)
}

func pheromoneCompound(substances string) string {
	compound := strings.ReplaceAll(substances, pheromoneLiteral, "")
	return strings.ReplaceAll(compound, "|", "+")
}

func biocontrolFlag(record internal.EnrichedRecord) int {
	if util.ContainsFold(record.Mentions, "biocontrôle") {
		return 1
	}
	return 0
}

func insecticideFlag(record internal.EnrichedRecord) int {
	if util.ContainsFold(record.Functions, "insecticide") {
		return 1
	}
	return 0
}
