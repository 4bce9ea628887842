package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdMatrix() *cli.Command {
	var (
		register   registerSource
		department string
		format     string
	)

	flags := joinFlags(
		register.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "department",
				Usage:       "Only place risks of this department",
				Destination: &department,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format (table, json)",
				Value:       "table",
				Destination: &format,
			},
		},
	)

	return &cli.Command{
		Name:  "matrix",
		Usage: "Print the likelihood x severity risk matrix",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, seed, err := register.Open(ctx, false)
			if err != nil {
				return err
			}
			defer repo.Close()

			uc := usecase.NewRisk(repo, usecase.WithThresholds(seed.GetThresholds()))
			matrix, err := uc.GetMatrix(ctx, model.RiskFilter{Department: department})
			if err != nil {
				return goerr.Wrap(err, "failed to build risk matrix")
			}

			switch format {
			case "table", "":
				return renderMatrix(os.Stdout, matrix)
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(matrix); err != nil {
					return goerr.Wrap(err, "failed to encode matrix")
				}
				return nil
			default:
				return goerr.New("invalid output format", goerr.V("format", format))
			}
		},
	}
}

// renderMatrix writes the matrix with the most likely row on top. Each cell
// shows score, level and number of risks.
func renderMatrix(w io.Writer, matrix *model.RiskMatrix) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := make([]string, 0, len(matrix.Severities)+1)
	header = append(header, "likelihood \\ severity")
	for _, s := range matrix.Severities {
		header = append(header, string(s))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for i := len(matrix.Rows) - 1; i >= 0; i-- {
		row := matrix.Rows[i]
		cols := make([]string, 0, len(row)+1)
		cols = append(cols, string(matrix.Likelihoods[i]))
		for _, cell := range row {
			cols = append(cols, fmt.Sprintf("%d %s (%d)", cell.Score, cell.Level, cell.Count()))
		}
		fmt.Fprintln(tw, strings.Join(cols, "\t"))
	}

	fmt.Fprintf(tw, "total: %d\n", matrix.Total())

	if err := tw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to write matrix")
	}
	return nil
}
