package pipeline

import (
	"github.com/enarroied/get-amm/internal"
	"github.com/enarroied/get-amm/internal/util"
)

var organicTerms = []string{"agriculture biologique", "production biologique"}

// Marginal vine usages excluded from the report. Black rot is on the list
// even though excluding it is functionally debatable; kept to match the
// published report.
var excludedUsages = []string{
	"Thrips",
	"Black rot",
	"Bactérioses",
	"Excoriose",
	"Erinose",
	"Cochenilles",
	"Aleurodes",
	"Pourriture grise",
	"Mouches",
	"Stad. Hivern. Ravageurs",
	"lack dead arm",
	"Esca",
	"Chenilles phytophages",
	"Eutypiose",
	"Acariens",
}

// FilterOrganicVine keeps the rows usable in organic viticulture: organic
// mention present, vine usage, none of the excluded usages, and a usage
// state still carrying the "Autorisé" marker. Input order is preserved.
//
// TODO(product): "etat usage" has values beyond Autorisé/Retrait (renewal
// pending, provisional); confirm with the report owners whether those
// should be kept ("not withdrawn") or dropped as done here.
func FilterOrganicVine(records []internal.UsageRecord) []internal.UsageRecord {
	out := make([]internal.UsageRecord, 0, len(records))
	for _, record := range records {
		if !util.ContainsAnyFold(record.Mentions, organicTerms) {
			continue
		}
		if !util.ContainsFold(record.UsageID, "vigne") {
			continue
		}
		if util.ContainsAnyFold(record.Mentions, excludedUsages) {
			continue
		}
		if !util.ContainsFold(record.UsageState, "Autorisé") {
			continue
		}
		out = append(out, record)
	}
	return out
}
