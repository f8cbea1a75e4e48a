package driver

import (
	"embed"
	"fmt"

	"github.com/fireant-io/tap-fireant/types"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// schemaFileFor maps a stream to its schema file; the four financial-report
// variants share one shape.
var schemaFileFor = map[string]string{
	"instruments":       "instruments.json",
	"quotes":            "quotes.json",
	"events":            "events.json",
	"balance":           "financial_reports.json",
	"income_statement":  "financial_reports.json",
	"direct_cashflow":   "financial_reports.json",
	"indirect_cashflow": "financial_reports.json",
	"indicators":        "indicators.json",
}

const (
	reportTypeBalance         = 1
	reportTypeIncomeStatement = 2
	reportTypeDirectCashflow  = 3
	reportTypeIndirectCash    = 4
)

// streamDefinitions builds the full stream table. Eight near-identical
// stream variants collapse into this configuration consumed by one generic
// engine; the four report streams differ only in their type discriminator.
func streamDefinitions() []*types.Stream {
	instruments := types.NewStream("instruments", "/instruments", "symbol")

	quotes := types.NewStream("quotes", "/symbols/{symbol}/historical-quotes", "symbol", "date")
	quotes.CursorField = "date"
	quotes.SyncMode = types.INCREMENTAL
	quotes.Pagination = types.DateWindow
	quotes.Parent = instruments.Name

	events := types.NewStream("events", "/symbols/{symbol}/timescale-marks", "symbol", "date")
	events.CursorField = "date"
	events.Pagination = types.DateWindow
	events.Parent = instruments.Name

	report := func(name string, reportType int) *types.Stream {
		s := types.NewStream(name, "/symbols/{symbol}/full-financial-reports", "symbol")
		s.Parent = instruments.Name
		s.ReportType = reportType
		return s
	}

	indicators := types.NewStream("indicators", "/symbols/{symbol}/financial-indicators", "symbol")
	indicators.Parent = instruments.Name

	return []*types.Stream{
		instruments,
		quotes,
		events,
		report("balance", reportTypeBalance),
		report("income_statement", reportTypeIncomeStatement),
		report("direct_cashflow", reportTypeDirectCashflow),
		report("indirect_cashflow", reportTypeIndirectCash),
		indicators,
	}
}

func loadSchema(stream string) ([]byte, error) {
	file, found := schemaFileFor[stream]
	if !found {
		return nil, fmt.Errorf("no schema registered for stream %s", stream)
	}

	data, err := schemaFiles.ReadFile("schemas/" + file)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema for stream %s: %s", stream, err)
	}
	return data, nil
}
