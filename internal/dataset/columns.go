package dataset

import (
	"strconv"
	"strings"
)

// Column names of the fetched and cleaned CSV files.
const (
	ColTitle       = "Job Title"
	ColCompany     = "Company"
	ColDescription = "Description"
	ColLocation    = "Location"
	ColSalaryMin   = "Salary Min"
	ColSalaryMax   = "Salary Max"
	ColPosted      = "Date Posted"
	ColURL         = "URL"
	ColCity        = "City"
	ColState       = "State"
	ColSalaryAvg   = "Salary Avg"
	ColSkills      = "Skills"
)

// PostingColumns is the header of the fetched dataset.
var PostingColumns = []string{
	ColTitle, ColCompany, ColDescription, ColLocation,
	ColSalaryMin, ColSalaryMax, ColPosted, ColURL,
}

// EnrichedColumns is the header of the cleaned dataset.
var EnrichedColumns = append(append([]string(nil), PostingColumns...),
	ColCity, ColState, ColSalaryAvg, ColSkills,
)

// skillSeparator joins the Skills list inside a single cell.
const skillSeparator = "; "

// missingTokens are cell values read back as missing.
var missingTokens = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-NaN":     true,
	"-nan":     true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

// IsMissing reports whether a raw cell counts as an absent value.
func IsMissing(cell string) bool {
	return missingTokens[strings.TrimSpace(cell)]
}

// FormatFloat renders v in its shortest round-trip form.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseFloat converts a cell to a number. Missing or non-numeric cells yield nil.
func ParseFloat(cell string) *float64 {
	if IsMissing(cell) {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return nil
	}
	return &v
}

func formatOptional(v *float64, missing string) string {
	if v == nil {
		return missing
	}
	return FormatFloat(*v)
}

// text returns the cell, or "" if it counts as missing.
func text(cell string) string {
	if IsMissing(cell) {
		return ""
	}
	return cell
}

func joinSkills(skills []string) string {
	return strings.Join(skills, skillSeparator)
}

func splitSkills(cell string) []string {
	if IsMissing(cell) {
		return nil
	}
	var skills []string
	for _, s := range strings.Split(cell, strings.TrimSpace(skillSeparator)) {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
