package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"tcx-compare/internal/config"
	"tcx-compare/internal/fitfile"
	"tcx-compare/internal/reconcile"
	"tcx-compare/internal/report"
	"tcx-compare/internal/series"
	"tcx-compare/internal/tcx"
	"tcx-compare/internal/trackpoint"

	"github.com/spf13/cobra"
)

var errUnknownFormat = errors.New("unknown trackpoint file format")

func newCompareCmd(cfg config.Config) *cobra.Command {
	var chartPath string

	cmd := &cobra.Command{
		Use:   "compare FILE1 FILE2",
		Short: "Reconcile two recordings of the same session and report their disagreement",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			dev1, err := loadDevice(args[0])
			if err != nil {
				return err
			}
			dev2, err := loadDevice(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %d heart rate records\n", dev1.Name, len(dev1.Series))
			fmt.Fprintf(out, "%s: %d heart rate records\n", dev2.Name, len(dev2.Series))

			result := reconcile.Reconcile(dev1.Series, dev2.Series)
			fmt.Fprint(out, report.Summary(dev1, dev2, result))

			if chartPath != "" {
				return report.WriteChart(chartPath, dev1, dev2, result)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&chartPath, "chart", cfg.ChartPath, "write a comparison chart PNG to this path")
	return cmd
}

func loadDevice(path string) (report.Device, error) {
	var (
		points []trackpoint.Trackpoint
		err    error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tcx":
		points, err = tcx.ReadFile(path)
	case ".fit":
		points, err = fitfile.ReadFile(path)
	default:
		return report.Device{}, fmt.Errorf("%w: %s", errUnknownFormat, path)
	}
	if err != nil {
		return report.Device{}, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return report.Device{Name: name, Series: series.Canonicalize(points)}, nil
}
