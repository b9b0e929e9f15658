package charts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// unnamedSeries heads the column of a dataset without a label
const unnamedSeries = "Quantidade"

// ExportCSV writes one row per label and one column per dataset
func ExportCSV(w io.Writer, chart Chart) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	header := make([]string, 0, len(chart.Datasets)+1)
	header = append(header, "Period")
	for _, ds := range chart.Datasets {
		label := ds.Label
		if label == "" {
			label = unnamedSeries
		}
		header = append(header, label)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for i, label := range chart.Labels {
		row := make([]string, 0, len(chart.Datasets)+1)
		row = append(row, label)
		for _, ds := range chart.Datasets {
			value := 0
			if i < len(ds.Data) {
				value = ds.Data[i]
			}
			row = append(row, strconv.Itoa(value))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row %q: %w", label, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
