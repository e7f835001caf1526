package main

import (
	"fmt"
	"log/slog"
	"os"

	cmdcalculate "sales-stats/command/calculate"
	cmdimport "sales-stats/command/import"
	cmdreport "sales-stats/command/report"
	cmdweb "sales-stats/command/web"
)

// Retail sales analytics pipeline.
// Usage:
//   sales-stats import    [-url <csv url>]   # fetch dataset -> data/sales.csv
//   sales-stats calculate                    # clean + aggregate -> data/*.csv
//   sales-stats report                       # charts + text report -> reports/
//   sales-stats analyze                      # import + calculate + report
//   sales-stats web       [-addr :8080]      # serve aggregates and reports
// Notes:
// - Computes: weekly revenue/units/profit, customer segments (volume
//   tertiles per store), and promotion effectiveness.
// - Set CONFIG_PATH to point to a YAML config file (default ./config.yml);
//   everything has working defaults.

func main() {
	args := os.Args
	// Initialize slog logger (text to stderr, INFO level)
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(h))

	if len(args) > 1 {
		sub := args[1]
		rest := append([]string{}, args[2:]...)
		switch sub {
		case "import":
			exit(cmdimport.Run(rest))
			return
		case "calculate":
			exit(cmdcalculate.Run(rest))
			return
		case "report":
			exit(cmdreport.Run(rest))
			return
		case "analyze":
			// Full pipeline in one pass; stops at the first failure so no
			// partial report artifacts are written.
			if err := cmdimport.Run(rest); err != nil {
				exit(err)
				return
			}
			if err := cmdcalculate.Run(nil); err != nil {
				exit(err)
				return
			}
			exit(cmdreport.Run(nil))
			return
		case "web":
			exit(cmdweb.Run(rest))
			return
		}
	}
	fmt.Fprintln(os.Stderr, "usage: sales-stats import [-url <csv url>] | calculate | report | analyze | web [-addr :8080]\nENV: set CONFIG_PATH to point to a YAML config file (default ./config.yml)")
	os.Exit(2)
}

func exit(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
