package aero

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads an aerodynamic sample table from a CSV file with columns
// alpha (degrees), CL, CD. A single header row is tolerated, as are blank
// lines and rows with missing columns (skipped). Any other malformed row,
// or a file that yields no samples, is an ErrDataLoad.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataLoad, path, err)
	}
	return t, nil
}

// ReadCSV parses alpha,CL,CD rows from r. See LoadCSV.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows []Row
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if first {
			first = false
			if isHeader(rec) {
				continue
			}
		}
		if len(rec) < 3 {
			continue
		}

		var row Row
		if row.AlphaDeg, err = parseField(rec[0]); err != nil {
			return nil, fmt.Errorf("bad alpha %q: %v", rec[0], err)
		}
		if row.CL, err = parseField(rec[1]); err != nil {
			return nil, fmt.Errorf("bad CL %q: %v", rec[1], err)
		}
		if row.CD, err = parseField(rec[2]); err != nil {
			return nil, fmt.Errorf("bad CD %q: %v", rec[2], err)
		}
		rows = append(rows, row)
	}

	return NewTable(rows)
}

func parseField(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func isHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	_, err := parseField(rec[0])
	return err != nil
}
