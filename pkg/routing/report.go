package routing

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// WriteCSV renders the comparison records in the persisted report shape:
// algorithm, path, distance_km, time_s, optimal, iterations.
func WriteCSV(w io.Writer, results []AlgorithmResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"algorithm", "path", "distance_km", "time_s", "optimal", "iterations"}); err != nil {
		return err
	}
	for _, r := range results {
		record := []string{
			r.Algorithm,
			strings.Join(r.Path, " -> "),
			strconv.FormatFloat(r.DistanceKm, 'f', 6, 64),
			strconv.FormatFloat(r.Seconds, 'f', 6, 64),
			strconv.FormatBool(r.Optimal),
			strconv.Itoa(r.Steps),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
