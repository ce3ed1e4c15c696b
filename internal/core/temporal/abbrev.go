package temporal

import (
	_ "embed"
	"strings"

	"timebanner/internal/core/normalize"
	perr "timebanner/internal/platform/errors"
)

// zonesData is the reference abbreviation dataset, one entry per line of
// shape ABBR<tab>label<tab>UTC<offset-token>. See the file header for the
// duplicate precedence rule
//
//go:embed zones.txt
var zonesData string

// AbbrevTable maps timezone abbreviations to signed UTC offset seconds.
// Built once before serving begins and never mutated afterward, safe for
// unsynchronized concurrent reads
type AbbrevTable struct {
	entries map[string]int
}

// LoadAbbrevTable builds the table from the embedded reference dataset.
// Malformed data is a hard error, the dataset ships with the binary so a bad
// line is a deploy defect rather than user input
func LoadAbbrevTable() (*AbbrevTable, error) {
	return parseAbbrevTable(zonesData)
}

func parseAbbrevTable(data string) (*AbbrevTable, error) {
	norm := normalize.New()
	entries := make(map[string]int)

	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) != 3 {
			return nil, perr.Parsef("zones line %d: want ABBR<tab>label<tab>UTC<offset>, got %q", i+1, line)
		}

		abbr := strings.TrimSpace(parts[0])
		if abbr == "" {
			return nil, perr.Parsef("zones line %d: empty abbreviation", i+1)
		}

		token := norm.Normalize(parts[2])
		if !strings.HasPrefix(token, "UTC") {
			return nil, perr.Parsef("zones line %d: offset %q must start with UTC", i+1, parts[2])
		}

		secs, err := ParseOffset(strings.TrimPrefix(token, "UTC"))
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeParse, "zones line %d", i+1)
		}

		// duplicates resolve last-wins, canonical entries are listed last
		entries[abbr] = secs
	}

	return &AbbrevTable{entries: entries}, nil
}

// Lookup returns the offset seconds for an abbreviation, exact and case
// sensitive. Unknown abbreviations fail with a NotFound error
func (t *AbbrevTable) Lookup(abbr string) (int, error) {
	secs, ok := t.entries[abbr]
	if !ok {
		return 0, perr.NotFoundf("unknown timezone abbreviation %q", abbr)
	}
	return secs, nil
}

// Len returns the number of distinct abbreviations in the table
func (t *AbbrevTable) Len() int { return len(t.entries) }
