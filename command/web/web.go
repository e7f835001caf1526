package web

import (
	"encoding/csv"
	"errors"
	"flag"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"sales-stats/connectors/config"
)

// Run starts a small Echo web server exposing the computed aggregates as
// CSV-as-JSON APIs and serving the generated report artifacts.
//
// Usage:
//
//	sales-stats web [-addr :8080]
//
// Endpoints:
//
//	GET /api/sales/weekly      -> <data>/weekly_sales.csv
//	GET /api/sales/segments    -> <data>/segment_analysis.csv
//	GET /api/sales/promotions  -> <data>/promo_analysis.csv
//	GET /api/sales/summary     -> <data>/summary.csv
//	GET /reports/*             -> chart images and the text report
func Run(args []string) error {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	addr := fs.String("addr", ":8080", "http listen address (host:port)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Resolve()
	e := echo.New()

	// Helper to register a GET endpoint serving a specific CSV file
	serveCSV := func(route string, filename string) {
		e.GET(route, func(c echo.Context) error {
			path := filepath.Join(cfg.Dirs.Data, filename)
			rows, err := readCSV(path)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return c.JSON(http.StatusNotFound, map[string]any{
						"error":   "file not found",
						"path":    path,
						"message": "CSV file is missing, run calculate first",
					})
				}
				return c.JSON(http.StatusInternalServerError, map[string]any{
					"error":   err.Error(),
					"path":    path,
					"message": "failed to read CSV",
				})
			}
			return c.JSON(http.StatusOK, rows)
		})
	}

	serveCSV("/api/sales/weekly", "weekly_sales.csv")
	serveCSV("/api/sales/segments", "segment_analysis.csv")
	serveCSV("/api/sales/promotions", "promo_analysis.csv")
	serveCSV("/api/sales/summary", "summary.csv")

	e.Static("/reports", cfg.Dirs.Reports)

	return e.Start(*addr)
}

// readCSV loads a CSV file and returns a slice of objects keyed by headers.
// Values are kept as strings to avoid lossy or incorrect type coercion.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Read all rows; these CSVs are expected to be small.
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []map[string]string{}, nil
	}

	headers := records[0]
	res := make([]map[string]string, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		row := records[i]
		if len(row) == 0 {
			continue
		}
		obj := make(map[string]string, len(headers))
		for j := 0; j < len(headers) && j < len(row); j++ {
			obj[headers[j]] = row[j]
		}
		res = append(res, obj)
	}
	return res, nil
}
