package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ElGugiAlt1/wgt-shot-calculator/internal/config"
	"github.com/ElGugiAlt1/wgt-shot-calculator/internal/render"
)

var diagramFlags struct {
	angle float64
	out   string
}

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Render the shot-angle circle as SVG",
	RunE:  runDiagram,
}

func init() {
	diagramCmd.Flags().Float64Var(&diagramFlags.angle, "angle", 0, "shot angle in degrees")
	diagramCmd.Flags().StringVar(&diagramFlags.out, "out", "", "output file (stdout when empty)")
	rootCmd.AddCommand(diagramCmd)
}

func runDiagram(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !finite(diagramFlags.angle) || diagramFlags.angle < 0 || diagramFlags.angle > cfg.Limits.AngleMax {
		return fmt.Errorf("--angle must be between 0 and %g", cfg.Limits.AngleMax)
	}

	svg := render.Diagram(diagramFlags.angle, render.DiagramConfig{
		Width:  cfg.Diagram.Width,
		Height: cfg.Diagram.Height,
		Radius: cfg.Diagram.Radius,
	})

	if diagramFlags.out == "" {
		fmt.Fprint(cmd.OutOrStdout(), svg)
		return nil
	}
	if err := os.WriteFile(diagramFlags.out, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("write diagram: %w", err)
	}
	return nil
}
