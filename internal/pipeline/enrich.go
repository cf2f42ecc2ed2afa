package pipeline

import (
	"strings"

	"github.com/enarroied/get-amm/internal"
	"github.com/enarroied/get-amm/internal/util"
)

// Enrich derives the report attributes for each retained row: the "Autres"
// annotation, the active compound name, the parsed concentration and the
// numeric reference dose. Parse failures stay nil.
func Enrich(records []internal.UsageRecord) []internal.EnrichedRecord {
	out := make([]internal.EnrichedRecord, 0, len(records))
	for _, record := range records {
		out = append(out, internal.EnrichedRecord{
			UsageRecord:        record,
			Annotation:         annotation(record),
			ActiveCompound:     activeCompound(record.Substances),
			Concentration:      util.ParseConcentration(util.ConcentrationFragment(record.Substances)),
			ReferenceDoseValue: util.ParseFloatLoose(record.ReferenceDose),
		})
	}
	return out
}

// annotation joins the "badigeon" and "Jardin autorisé" markers, in that
// fixed order, with a pipe.
func annotation(record internal.UsageRecord) string {
	result := ""
	if strings.Contains(record.UsageConditions, "badigeon") {
		result += "badigeon"
	}
	if strings.Contains(record.UsageRange, "jardin") {
		if result != "" {
			result += "|"
		}
		result += "Jardin autorisé"
	}
	return result
}

// activeCompound is the substance description up to the first parenthesis,
// untrimmed (the trailing space is part of the published report format).
func activeCompound(substances string) string {
	before, _, _ := strings.Cut(substances, "(")
	return before
}

// ExpandSecondNames appends one derived row per secondary trade name, with
// that name substituted as the product name and every other field copied.
// Original rows come first, in input order.
func ExpandSecondNames(records []internal.EnrichedRecord) []internal.EnrichedRecord {
	out := make([]internal.EnrichedRecord, 0, len(records))
	out = append(out, records...)
	for _, record := range records {
		if strings.TrimSpace(record.SecondNames) == "" {
			continue
		}
		for _, name := range strings.Split(record.SecondNames, "|") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			derived := record
			derived.ProductName = name
			out = append(out, derived)
		}
	}
	return out
}
