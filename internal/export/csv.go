package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/dragsim/internal/store"
)

// WriteCSV writes every sample of every record, one row per sample, in
// store order.
func WriteCSV(out io.Writer, records []store.Record) error {
	w := csv.NewWriter(out)

	header := []string{"record", "label", "color", "line", "t", "x", "y", "speed", "accel"}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, rec := range records {
		s := rec.Series
		for k := 0; k < s.Len(); k++ {
			row := []string{
				strconv.Itoa(i),
				rec.Label,
				string(rec.Style.Color),
				string(rec.Style.Line),
			}
			for _, val := range []float64{s.T[k], s.X[k], s.Y[k], s.Speed[k], s.Accel[k]} {
				row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}
