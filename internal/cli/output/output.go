// Package output writes expansion and tracing results in the formats the
// CLI offers.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mainakk/lsystem"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// Mode is an output format.
type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeJSON  Mode = "json"
	ModeCSV   Mode = "csv"
	ModeTable Mode = "table"
	ModeText  Mode = "text"
)

// Resolve turns ModeAuto into ModeTable on a terminal and ModeJSON
// otherwise. Other modes are returned unchanged.
func Resolve(mode Mode, w io.Writer) Mode {
	if mode != ModeAuto {
		return mode
	}
	if IsTerminal(w) {
		return ModeTable
	}
	return ModeJSON
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Segments writes segments to w.
func Segments(w io.Writer, mode Mode, segments []lsystem.Segment) error {
	switch Resolve(mode, w) {
	case ModeJSON:
		if segments == nil {
			segments = []lsystem.Segment{}
		}
		return json.NewEncoder(w).Encode(segments)
	case ModeCSV:
		cw := csv.NewWriter(w)
		if len(segments) > 0 {
			if err := cw.Write(header(segments[0].Dim())); err != nil {
				return err
			}
		}
		for _, s := range segments {
			if err := cw.Write(append(formatPoint(s.From), formatPoint(s.To)...)); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case ModeTable:
		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.SetStyle(table.StyleLight)
		if len(segments) > 0 {
			tw.AppendHeader(headerRow(header(segments[0].Dim())))
		}
		for i, s := range segments {
			row := table.Row{i}
			for _, c := range append(formatPoint(s.From), formatPoint(s.To)...) {
				row = append(row, c)
			}
			tw.AppendRow(row)
		}
		tw.Render()
		return nil
	case ModeText:
		for _, s := range segments {
			if _, err := fmt.Fprintln(w, s.From, s.To); err != nil {
				return err
			}
		}
		return nil
	}
	return errors.Errorf("unknown output mode %q", mode)
}

func header(dim int) []string {
	axes := []string{"x", "y", "z"}[:dim]
	var out []string
	for _, end := range []string{"1", "2"} {
		for _, a := range axes {
			out = append(out, a+end)
		}
	}
	return out
}

func headerRow(names []string) table.Row {
	row := table.Row{"#"}
	for _, n := range names {
		row = append(row, n)
	}
	return row
}

func formatPoint(p lsystem.Point) []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return out
}

// Presets writes a summary of presets to w.
func Presets(w io.Writer, mode Mode, presets []lsystem.Preset) error {
	type row struct {
		Name       string  `json:"name"`
		Mode       string  `json:"mode"`
		Angle      float64 `json:"angle_degrees"`
		Iterations int     `json:"iterations"`
		Axiom      string  `json:"axiom"`
		Source     string  `json:"source"`
	}
	rows := make([]row, len(presets))
	for i, p := range presets {
		rows[i] = row{
			Name:       p.Name,
			Mode:       p.Geometry.Mode.String(),
			Angle:      p.Geometry.Angle * 180 / math.Pi,
			Iterations: p.Iterations,
			Axiom:      p.Parameters.Axiom,
			Source:     p.Source,
		}
	}

	switch Resolve(mode, w) {
	case ModeJSON:
		return json.NewEncoder(w).Encode(rows)
	case ModeCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"name", "mode", "angle_degrees", "iterations", "axiom", "source"}); err != nil {
			return err
		}
		for _, r := range rows {
			if err := cw.Write([]string{r.Name, r.Mode, strconv.FormatFloat(r.Angle, 'f', 2, 64), strconv.Itoa(r.Iterations), r.Axiom, r.Source}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case ModeTable, ModeText:
		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.SetStyle(table.StyleLight)
		tw.AppendHeader(table.Row{"Name", "Mode", "Angle", "Iterations", "Axiom", "Source"})
		for _, r := range rows {
			tw.AppendRow(table.Row{r.Name, r.Mode, fmt.Sprintf("%.2f°", r.Angle), r.Iterations, r.Axiom, r.Source})
		}
		tw.Render()
		return nil
	}
	return errors.Errorf("unknown output mode %q", mode)
}
