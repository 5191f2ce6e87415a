// Package output provides different formats of output for extraction results.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"

	"github.com/metafeat/metafeat/summary"
)

// ResultFormatter renders an extraction result as a string. Entries are
// always emitted in sorted key order so output is reproducible.
type ResultFormatter func(result summary.Result) (string, error)

// JsonResultFormatter outputs results in a JSON format.
func JsonResultFormatter(result summary.Result) (string, error) {
	v, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// CsvResultFormatter outputs results in CSV format, one feature per row.
func CsvResultFormatter(result summary.Result) (string, error) {
	b := bytes.NewBufferString("")
	w := csv.NewWriter(b)
	if err := w.Write([]string{"feature", "value"}); err != nil {
		return "", err
	}
	for _, k := range result.Keys() {
		if err := w.Write([]string{k, strconv.FormatFloat(result[k], 'f', -1, 64)}); err != nil {
			return "", err
		}
	}
	w.Flush()
	return b.String(), w.Error()
}
