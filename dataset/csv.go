package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// FromCSV reads a dataset from CSV data with a header row. The column named
// class is used as the label; every other column becomes an attribute, typed
// numeric when every value in it parses as a float.
func FromCSV(r io.Reader, class string) (Dataset, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return Dataset{}, err
	}
	if len(records) < 2 {
		return Dataset{}, fmt.Errorf("dataset: csv needs a header row and at least one instance")
	}
	header := records[0]
	classCol := -1
	for i, h := range header {
		if h == class {
			classCol = i
		}
	}
	if classCol < 0 {
		return Dataset{}, fmt.Errorf("dataset: no column named %s", class)
	}

	rows := records[1:]
	d := Dataset{Labels: make([]string, len(rows))}
	for i, rec := range rows {
		if len(rec) != len(header) {
			return Dataset{}, fmt.Errorf("dataset: row %d has %d columns, header has %d", i+1, len(rec), len(header))
		}
		d.Labels[i] = rec[classCol]
	}

	for c, name := range header {
		if c == classCol {
			continue
		}
		numeric := true
		num := make([]float64, len(rows))
		values := make([]string, len(rows))
		for i, rec := range rows {
			values[i] = rec[c]
			if numeric {
				v, err := strconv.ParseFloat(rec[c], 64)
				if err != nil {
					numeric = false
					continue
				}
				num[i] = v
			}
		}
		if numeric {
			d.Attributes = append(d.Attributes, Attribute{Name: name, Kind: Numeric, Num: num})
		} else {
			d.Attributes = append(d.Attributes, Attribute{Name: name, Kind: Categorical, Values: values})
		}
	}

	return d, d.Validate()
}
