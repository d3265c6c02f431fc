package game

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/quantum-visualization/internal/decoder"
	"github.com/iburimskiy/quantum-visualization/internal/tunnel"
)

// exportCSV asks for a destination file and writes the current view's
// sequence. A canceled dialog is not an error.
func (g *Game) exportCSV() error {
	name := "prime-sequence.csv"
	if g.view == viewTunnel {
		name = "tunnel-depth.csv"
	}

	filename, err := zenity.SelectFileSave(
		zenity.Title("Export Sequence"),
		zenity.Filename(name),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "CSV",
			Patterns: []string{"*.csv"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if g.view == viewTunnel {
		return writeTunnelCSV(f, g.tunnelData)
	}
	return writeDecoderCSV(f, g.result)
}

func writeDecoderCSV(w io.Writer, res decoder.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"x", "initial_field", "final_field", "lambda", "stability",
		"phase_coherence", "zeta_alignment", "tunnel_effect", "alignment", "is_prime",
	}); err != nil {
		return err
	}
	for _, p := range res.Points {
		record := []string{
			strconv.Itoa(p.X),
			formatCSV(p.InitialField),
			formatCSV(p.FinalField),
			formatCSV(p.Lambda),
			formatCSV(p.Stability),
			formatCSV(p.PhaseCoherence),
			formatCSV(p.ZetaAlignment),
			formatCSV(p.TunnelEffect),
			formatCSV(p.Alignment),
			strconv.FormatBool(p.IsPrime),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeTunnelCSV(w io.Writer, points []tunnel.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"step", "depth", "fluctuation", "lambda", "tunneling_effect", "limit_exceeded",
	}); err != nil {
		return err
	}
	for _, p := range points {
		record := []string{
			strconv.Itoa(p.Step),
			formatCSV(p.Depth),
			formatCSV(p.Fluctuation),
			formatCSV(p.Lambda),
			formatCSV(p.TunnelingEffect),
			strconv.FormatBool(p.LimitExceeded),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCSV(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
