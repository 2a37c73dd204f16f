package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amishk599/jobinsight/internal/model"
)

// Record is one CSV row keyed by column name.
type Record map[string]string

// Table is a loaded CSV file.
type Table struct {
	Header []string
	Rows   []Record
}

// WritePostings writes fetched postings to path with the posting header.
// Absent salaries are written as the sentinel.
func WritePostings(path string, postings []model.JobPosting) error {
	rows := make([][]string, 0, len(postings))
	for _, p := range postings {
		rows = append(rows, []string{
			p.Title,
			p.Company,
			p.Description,
			p.Location,
			formatOptional(p.SalaryMin, model.Sentinel),
			formatOptional(p.SalaryMax, model.Sentinel),
			p.Posted,
			p.URL,
		})
	}
	if err := writeFile(path, PostingColumns, rows); err != nil {
		return fmt.Errorf("write postings: %w", err)
	}
	return nil
}

// WriteEnriched writes cleaned rows to path with the enriched header.
// Absent values are written as empty cells.
func WriteEnriched(path string, jobs []model.EnrichedJob) error {
	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, []string{
			j.Title,
			j.Company,
			j.Description,
			j.Location,
			formatOptional(j.SalaryMin, ""),
			formatOptional(j.SalaryMax, ""),
			j.Posted,
			j.URL,
			j.City,
			j.State,
			formatOptional(j.SalaryAvg, ""),
			joinSkills(j.Skills),
		})
	}
	if err := writeFile(path, EnrichedColumns, rows); err != nil {
		return fmt.Errorf("write enriched: %w", err)
	}
	return nil
}

func writeFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadTable loads a CSV file with a header row. Rows shorter than the header
// are padded with empty cells.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	defer f.Close()

	t, err := readTable(f)
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", path, err)
	}
	return t, nil
}

func readTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty file")
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		// Drop a UTF-8 byte order mark left by spreadsheet exports.
		header[0] = trimBOM(header[0])
	}

	t := &Table{Header: header}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rec := make(Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

func trimBOM(s string) string {
	const bom = "\ufeff"
	if len(s) >= len(bom) && s[:len(bom)] == bom {
		return s[len(bom):]
	}
	return s
}

// ReadEnriched loads a cleaned CSV file back into enriched rows.
func ReadEnriched(path string) ([]model.EnrichedJob, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}

	jobs := make([]model.EnrichedJob, 0, len(t.Rows))
	for _, rec := range t.Rows {
		jobs = append(jobs, model.EnrichedJob{
			JobPosting: PostingFromRecord(rec),
			City:       text(rec[ColCity]),
			State:      text(rec[ColState]),
			SalaryAvg:  ParseFloat(rec[ColSalaryAvg]),
			Skills:     splitSkills(rec[ColSkills]),
		})
	}
	return jobs, nil
}

// PostingFromRecord converts a raw row to a posting. Missing text cells
// become empty strings and non-numeric salaries become nil.
func PostingFromRecord(rec Record) model.JobPosting {
	return model.JobPosting{
		Title:       text(rec[ColTitle]),
		Company:     text(rec[ColCompany]),
		Description: text(rec[ColDescription]),
		Location:    text(rec[ColLocation]),
		SalaryMin:   ParseFloat(rec[ColSalaryMin]),
		SalaryMax:   ParseFloat(rec[ColSalaryMax]),
		Posted:      text(rec[ColPosted]),
		URL:         text(rec[ColURL]),
	}
}
