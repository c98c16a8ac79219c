package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/ElGugiAlt1/wgt-shot-calculator/internal/config"
	"github.com/ElGugiAlt1/wgt-shot-calculator/internal/domain"
	"github.com/ElGugiAlt1/wgt-shot-calculator/internal/render"
)

var calcFlags struct {
	distance  float64
	wind      float64
	angle     float64
	direction string
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run one wind-adjustment calculation and print the step trace",
	RunE:  runCalc,
}

func init() {
	calcCmd.Flags().Float64Var(&calcFlags.distance, "distance", 103, "distance to target in yards")
	calcCmd.Flags().Float64Var(&calcFlags.wind, "wind", 15, "wind strength")
	calcCmd.Flags().Float64Var(&calcFlags.angle, "angle", 0, "shot angle in degrees")
	calcCmd.Flags().StringVar(&calcFlags.direction, "direction", "headwind", "wind direction: headwind or tailwind")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := checkRanges(cfg); err != nil {
		return err
	}

	trace, err := domain.AdjustDistance(calcFlags.distance, calcFlags.wind, calcFlags.angle, calcFlags.direction)
	if err != nil {
		return err
	}

	direction, _ := domain.ParseWindDirection(calcFlags.direction)
	summary := render.NewSummary(calcFlags.distance, trace.AdjustedDistance)
	fmt.Fprint(cmd.OutOrStdout(), render.Trace(trace, direction, summary))
	return nil
}

func checkRanges(cfg *config.Config) error {
	if !finite(calcFlags.distance) || calcFlags.distance < 0 {
		return fmt.Errorf("--distance must be a finite number >= 0")
	}
	if !finite(calcFlags.wind) || calcFlags.wind < 0 || calcFlags.wind > cfg.Limits.WindMax {
		return fmt.Errorf("--wind must be between 0 and %g", cfg.Limits.WindMax)
	}
	if !finite(calcFlags.angle) || calcFlags.angle < 0 || calcFlags.angle > cfg.Limits.AngleMax {
		return fmt.Errorf("--angle must be between 0 and %g", cfg.Limits.AngleMax)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
