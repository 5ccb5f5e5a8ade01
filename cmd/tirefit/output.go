package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tirefit/internal/core/fitment"
	"tirefit/internal/core/tiresize"
	perr "tirefit/internal/platform/errors"
	"tirefit/internal/services/api/fitment/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

type format string

const (
	formatTable format = "table"
	formatJSON  format = "json"
	formatYAML  format = "yaml"
)

func parseFormat(s string) (format, error) {
	switch f := format(strings.ToLower(strings.TrimSpace(s))); f {
	case formatTable, formatJSON, formatYAML:
		return f, nil
	case "yml":
		return formatYAML, nil
	default:
		return "", perr.InvalidArgf("unknown output format %q, want table, json or yaml", s)
	}
}

// render writes v in the selected format; table hands the writer to the given printer
func (a *app) render(v any, table func(io.Writer) error) error {
	f, err := parseFormat(a.format)
	if err != nil {
		return err
	}
	switch f {
	case formatJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return table(a.out)
	}
}

var (
	labelStyle  = lipgloss.NewStyle().Bold(true).Width(12)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func line(w io.Writer, label, format string, a ...any) {
	fmt.Fprintln(w, labelStyle.Render(label)+fmt.Sprintf(format, a...))
}

func flush(w io.Writer, t *table.Table) error {
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func alternativesTable(w io.Writer, res domain.AlternativesResponse) error {
	p := res.SearchParams
	line(w, "original", "%s  %.1f mm", tiresize.Format(p.Original), res.OriginalDiameter)
	line(w, "search", "±%.1f%%  width ±%d mm  rim ±%d in", p.MaxDeviationPercent, p.AllowedWidthRange, p.AllowedDiameterRange)
	line(w, "found", "%d, showing %d", res.TotalFound, res.Returned)

	t := newTable("SIZE", "DIAMETER", "DEVIATION", "RIM WIDTH", "TIER", "WARNINGS")
	for _, alt := range res.Alternatives {
		t.Row(
			alt.Size,
			fmt.Sprintf("%.1f", alt.CalculatedDiameter),
			fmt.Sprintf("%+.2f%%", alt.DeviationPercent),
			alt.RecommendedRimWidth,
			string(alt.Tier),
			strings.Join(alt.Warnings, "; "),
		)
	}
	return flush(w, t)
}

func impactTable(w io.Writer, res domain.ImpactResponse) error {
	line(w, "diameters", "%.1f -> %.1f mm", res.OriginalDiameter, res.CandidateDiameter)
	rows := res.Table
	if res.Impact != nil {
		rows = []fitment.Impact{*res.Impact}
	}
	return impactRows(w, rows)
}

func impactRows(w io.Writer, rows []fitment.Impact) error {
	t := newTable("INDICATED", "REAL", "KM/H", "%", "NOTE")
	for _, im := range rows {
		t.Row(
			fmt.Sprintf("%.0f", im.IndicatedSpeed),
			fmt.Sprintf("%.1f", im.RealSpeed),
			fmt.Sprintf("%+.1f", im.DeviationKmh),
			fmt.Sprintf("%+.2f", im.DeviationPercent),
			im.Description,
		)
	}
	return flush(w, t)
}

func validationTable(w io.Writer, res domain.ValidateResponse) error {
	if res.IsValid {
		line(w, res.Size, "valid")
		return nil
	}
	line(w, res.Size, "invalid")
	for _, e := range res.Errors {
		fmt.Fprintln(w, "  -", e)
	}
	return nil
}

func comparisonTable(w io.Writer, c fitment.Comparison) error {
	t := newTable("", c.From.Size, c.To.Size, "CHANGE")
	t.Row("diameter mm", fmt.Sprintf("%.1f", c.From.Diameter), fmt.Sprintf("%.1f", c.To.Diameter),
		fmt.Sprintf("%+.1f (%+.2f%%)", c.DiameterDiffMm, c.DiameterDiffPercent))
	t.Row("sidewall mm", fmt.Sprintf("%.1f", c.From.SidewallMm), fmt.Sprintf("%.1f", c.To.SidewallMm),
		fmt.Sprintf("%+.1f", c.SidewallDiffMm))
	t.Row("circumference mm", fmt.Sprintf("%.1f", c.From.CircumferenceMm), fmt.Sprintf("%.1f", c.To.CircumferenceMm), "")
	t.Row("revs per km", fmt.Sprintf("%.1f", c.From.RevsPerKm), fmt.Sprintf("%.1f", c.To.RevsPerKm),
		fmt.Sprintf("%+.1f", c.RevsPerKmDiff))
	t.Row("rim width", c.From.RimWidth, c.To.RimWidth, "")
	t.Row("clearance mm", "", "", fmt.Sprintf("%+.1f", c.ClearanceChangeMm))
	if err := flush(w, t); err != nil {
		return err
	}
	line(w, "tier", "%s", c.Tier)
	return impactRows(w, c.Impacts)
}

func ratingsTable(w io.Writer, rows []tiresize.SpeedRating) error {
	t := newTable("SYMBOL", "MAX KM/H", "RANK")
	for _, r := range rows {
		t.Row(string(r.Symbol), strconv.Itoa(r.MaxSpeedKmh), strconv.Itoa(r.Rank))
	}
	return flush(w, t)
}

// printError writes err and any validation details, one per line
func printError(w io.Writer, err error) {
	wr := perr.WireFrom(err)
	if wr.Field != "" {
		fmt.Fprintf(w, "error: %s: %s\n", wr.Field, wr.Message)
	} else {
		fmt.Fprintln(w, "error:", wr.Message)
	}
	for _, d := range wr.Details {
		fmt.Fprintln(w, "  -", d)
	}
}
