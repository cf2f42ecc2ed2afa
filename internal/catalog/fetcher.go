package catalog

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/enarroied/get-amm/internal"
	"github.com/enarroied/get-amm/internal/config"
)

var ErrMissingMember = errors.New("expected file not found in the zip archive")

// French column headers of the usage CSV.
const (
	ColProductName     = "nom produit"
	ColSecondNames     = "seconds noms commerciaux"
	ColSubstances      = "Substances actives"
	ColUsageID         = "identifiant usage"
	ColUsageState      = "etat usage"
	ColMentions        = "mentions autorisees"
	ColFunctions       = "fonctions"
	ColUsageConditions = "condition emploi"
	ColUsageRange      = "gamme usage"
	ColReferenceDose   = "dose retenue"
	ColMaxTreatments   = "nombre max d'application"
)

type Fetcher struct {
	httpClient *http.Client
}

func NewFetcher(cfg config.Config) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutMs) * time.Millisecond},
	}
}

// FetchUsageTable downloads the dataset archive, extracts the named CSV
// member and parses it into a Table. Everything happens in memory; no
// temporary files are written.
func (f *Fetcher) FetchUsageTable(ctx context.Context, archiveURL, member string) (*Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("archive download status %d", resp.StatusCode)
	}

	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}

	return ExtractMemberTable(blob, member)
}

// ExtractMemberTable opens a ZIP blob and parses the named member.
func ExtractMemberTable(blob []byte, member string) (*Table, error) {
	reader, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	for _, file := range reader.File {
		if file.Name != member {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return ParseUsageCSV(rc)
	}

	return nil, fmt.Errorf("%w: %s", ErrMissingMember, member)
}

// ParseUsageCSV reads a semicolon-delimited UTF-8 table with a header row.
func ParseUsageCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("csv member is empty")
	}

	headers := records[0]
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}
	return NewTable(headers, records[1:]), nil
}

// UsageRecords maps the table rows to domain records by column name.
// Columns absent from the file come through as empty strings.
func UsageRecords(t *Table) []internal.UsageRecord {
	out := make([]internal.UsageRecord, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		out = append(out, internal.UsageRecord{
			ProductName:     t.Get(i, ColProductName),
			SecondNames:     t.Get(i, ColSecondNames),
			Substances:      t.Get(i, ColSubstances),
			UsageID:         t.Get(i, ColUsageID),
			UsageState:      t.Get(i, ColUsageState),
			Mentions:        t.Get(i, ColMentions),
			Functions:       t.Get(i, ColFunctions),
			UsageConditions: t.Get(i, ColUsageConditions),
			UsageRange:      t.Get(i, ColUsageRange),
			ReferenceDose:   t.Get(i, ColReferenceDose),
			MaxTreatments:   t.Get(i, ColMaxTreatments),
		})
	}
	return out
}
