package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"sales-stats/domain/sales"
)

const weekLayout = "20060102"

// ParseSales decodes the dataset format: a header row followed by one row
// per observation. Required columns: week, store, price, base_price, units,
// featured (case-insensitive, any order). Malformed values are errors, not
// skipped rows.
func ParseSales(r io.Reader) ([]sales.Record, error) {
	cr := csv.NewReader(r)
	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := indexMap(head)
	for _, col := range []string{"week", "store", "price", "base_price", "units", "featured"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("dataset missing column %s", col)
		}
	}

	var out []sales.Record
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		week, err := time.Parse(weekLayout, strings.TrimSpace(rec[idx["week"]]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad week %q: %w", line, rec[idx["week"]], err)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(rec[idx["price"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad price %q: %w", line, rec[idx["price"]], err)
		}
		basePrice, err := strconv.ParseFloat(strings.TrimSpace(rec[idx["base_price"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad base_price %q: %w", line, rec[idx["base_price"]], err)
		}
		units, err := strconv.Atoi(strings.TrimSpace(rec[idx["units"]]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad units %q: %w", line, rec[idx["units"]], err)
		}
		out = append(out, sales.Record{
			Store:     strings.TrimSpace(rec[idx["store"]]),
			Week:      week,
			Price:     price,
			BasePrice: basePrice,
			Units:     units,
			Featured:  parseBool(rec[idx["featured"]]),
		})
	}
	return out, nil
}

// ReadSales loads a dataset snapshot from disk.
func ReadSales(path string) ([]sales.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	records, err := ParseSales(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// WriteSales writes the normalized dataset snapshot, raw columns only.
func WriteSales(path string, records []sales.Record) error {
	return writeRows(path, []string{"week", "store", "price", "base_price", "units", "featured"},
		len(records), func(i int) []string {
			r := records[i]
			featured := "0"
			if r.Featured {
				featured = "1"
			}
			return []string{
				r.Week.Format(weekLayout),
				r.Store,
				strconv.FormatFloat(r.Price, 'f', -1, 64),
				strconv.FormatFloat(r.BasePrice, 'f', -1, 64),
				strconv.Itoa(r.Units),
				featured,
			}
		})
}

func WriteWeekly(path string, rows []sales.WeeklyAggregate) error {
	return writeRows(path, []string{"week", "revenue", "units", "profit"},
		len(rows), func(i int) []string {
			r := rows[i]
			return []string{
				r.Week.Format(weekLayout),
				strconv.FormatFloat(r.Revenue, 'f', -1, 64),
				strconv.Itoa(r.Units),
				strconv.FormatFloat(r.Profit, 'f', -1, 64),
			}
		})
}

func ReadWeekly(path string) ([]sales.WeeklyAggregate, error) {
	var out []sales.WeeklyAggregate
	err := readRows(path, []string{"week", "revenue", "units", "profit"}, func(idx map[string]int, rec []string) error {
		week, err := time.Parse(weekLayout, rec[idx["week"]])
		if err != nil {
			return fmt.Errorf("bad week %q: %w", rec[idx["week"]], err)
		}
		revenue, err := strconv.ParseFloat(rec[idx["revenue"]], 64)
		if err != nil {
			return err
		}
		units, err := strconv.Atoi(rec[idx["units"]])
		if err != nil {
			return err
		}
		profit, err := strconv.ParseFloat(rec[idx["profit"]], 64)
		if err != nil {
			return err
		}
		out = append(out, sales.WeeklyAggregate{Week: week, Revenue: revenue, Units: units, Profit: profit})
		return nil
	})
	return out, err
}

func WriteSegments(path string, rows []sales.TierAggregate) error {
	return writeRows(path, []string{"segment", "revenue", "units", "avg_profit"},
		len(rows), func(i int) []string {
			r := rows[i]
			return []string{
				string(r.Segment),
				strconv.FormatFloat(r.Revenue, 'f', 2, 64),
				strconv.Itoa(r.Units),
				strconv.FormatFloat(r.AvgProfit, 'f', 2, 64),
			}
		})
}

func ReadSegments(path string) ([]sales.TierAggregate, error) {
	var out []sales.TierAggregate
	err := readRows(path, []string{"segment", "revenue", "units", "avg_profit"}, func(idx map[string]int, rec []string) error {
		revenue, err := strconv.ParseFloat(rec[idx["revenue"]], 64)
		if err != nil {
			return err
		}
		units, err := strconv.Atoi(rec[idx["units"]])
		if err != nil {
			return err
		}
		avgProfit, err := strconv.ParseFloat(rec[idx["avg_profit"]], 64)
		if err != nil {
			return err
		}
		out = append(out, sales.TierAggregate{
			Segment:   sales.Tier(rec[idx["segment"]]),
			Revenue:   revenue,
			Units:     units,
			AvgProfit: avgProfit,
		})
		return nil
	})
	return out, err
}

func WritePromotions(path string, rows []sales.PromotionAggregate) error {
	return writeRows(path, []string{"featured", "avg_units", "avg_revenue", "avg_profit"},
		len(rows), func(i int) []string {
			r := rows[i]
			featured := "0"
			if r.Featured {
				featured = "1"
			}
			return []string{
				featured,
				strconv.FormatFloat(r.AvgUnits, 'f', 2, 64),
				strconv.FormatFloat(r.AvgRevenue, 'f', 2, 64),
				strconv.FormatFloat(r.AvgProfit, 'f', 2, 64),
			}
		})
}

func ReadPromotions(path string) ([]sales.PromotionAggregate, error) {
	var out []sales.PromotionAggregate
	err := readRows(path, []string{"featured", "avg_units", "avg_revenue", "avg_profit"}, func(idx map[string]int, rec []string) error {
		avgUnits, err := strconv.ParseFloat(rec[idx["avg_units"]], 64)
		if err != nil {
			return err
		}
		avgRevenue, err := strconv.ParseFloat(rec[idx["avg_revenue"]], 64)
		if err != nil {
			return err
		}
		avgProfit, err := strconv.ParseFloat(rec[idx["avg_profit"]], 64)
		if err != nil {
			return err
		}
		out = append(out, sales.PromotionAggregate{
			Featured:   parseBool(rec[idx["featured"]]),
			AvgUnits:   avgUnits,
			AvgRevenue: avgRevenue,
			AvgProfit:  avgProfit,
		})
		return nil
	})
	return out, err
}

func WriteSummary(path string, t sales.Totals) error {
	return writeRows(path, []string{"total_revenue", "total_units", "avg_profit"},
		1, func(int) []string {
			return []string{
				strconv.FormatFloat(t.Revenue, 'f', -1, 64),
				strconv.Itoa(t.Units),
				strconv.FormatFloat(t.AvgProfit, 'f', 2, 64),
			}
		})
}

func ReadSummary(path string) (sales.Totals, error) {
	var t sales.Totals
	err := readRows(path, []string{"total_revenue", "total_units", "avg_profit"}, func(idx map[string]int, rec []string) error {
		revenue, err := strconv.ParseFloat(rec[idx["total_revenue"]], 64)
		if err != nil {
			return err
		}
		units, err := strconv.Atoi(rec[idx["total_units"]])
		if err != nil {
			return err
		}
		avgProfit, err := strconv.ParseFloat(rec[idx["avg_profit"]], 64)
		if err != nil {
			return err
		}
		t = sales.Totals{Revenue: revenue, Units: units, AvgProfit: avgProfit}
		return nil
	})
	return t, err
}

func writeRows(path string, headers []string, n int, row func(i int) []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write(headers); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return err
		}
	}
	return w.Error()
}

func readRows(path string, required []string, row func(idx map[string]int, rec []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	r := csv.NewReader(f)
	head, err := r.Read()
	if err != nil {
		return fmt.Errorf("%s: read header: %w", path, err)
	}
	idx := indexMap(head)
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return fmt.Errorf("%s missing column %s", path, col)
		}
	}
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%s line %d: %w", path, line, err)
		}
		if err := row(idx, rec); err != nil {
			return fmt.Errorf("%s line %d: %w", path, line, err)
		}
	}
	return nil
}

func indexMap(headers []string) map[string]int {
	m := map[string]int{}
	for i, h := range headers {
		m[strings.TrimSpace(strings.ToLower(h))] = i
	}
	return m
}

func parseBool(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	return s == "true" || s == "1" || s == "yes"
}
