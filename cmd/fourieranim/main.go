// Command fourieranim renders the frames of a Fourier series
// approximation converging on a configured target function. The job is
// described by a yaml config file; frames are written as PNG images for
// external tooling to assemble into a video.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/synaptecltd/fourier/animation"
	"github.com/synaptecltd/fourier/waveform"
)

var (
	configPath string
	outDir     string
)

func main() {
	root := &cobra.Command{
		Use:           "fourieranim",
		Short:         "Render Fourier series approximation animations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	render := &cobra.Command{
		Use:   "render",
		Short: "Render every frame of the configured job as PNG files",
		RunE:  runRender,
	}
	render.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "yaml render job description")
	render.Flags().StringVarP(&outDir, "out", "o", "frames", "output directory for PNG frames")

	coeffs := &cobra.Command{
		Use:   "coeffs",
		Short: "Print the coefficient table for the configured job",
		RunE:  runCoeffs,
	}
	coeffs.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "yaml render job description")

	waveforms := &cobra.Command{
		Use:   "waveforms",
		Short: "List the built-in target waveforms",
		Run: func(cmd *cobra.Command, args []string) {
			names := waveform.GetWaveformNames()
			sort.Strings(names)
			fmt.Println(strings.Join(names, "\n"))
		},
	}

	root.AddCommand(render, coeffs, waveforms)

	if err := root.Execute(); err != nil {
		log.SetFlags(0)
		log.Fatal(err)
	}
}

func loadSequence() (*animation.Config, *animation.Sequence, error) {
	cfg, err := animation.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	seq, err := animation.NewSequenceFromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, seq, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, seq, err := loadSequence()
	if err != nil {
		return err
	}

	renderer, err := animation.NewRenderer(cfg.Render)
	if err != nil {
		return err
	}

	paths, err := renderer.RenderSequence(seq, outDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "wrote %d frames to %s (job %s)\n", len(paths), outDir, seq.ID())
	return nil
}

func runCoeffs(cmd *cobra.Command, args []string) error {
	_, seq, err := loadSequence()
	if err != nil {
		return err
	}

	series, err := seq.Series()
	if err != nil {
		return err
	}

	fmt.Printf("a0 = %.9g\n", series.A0)
	for n := 1; n <= series.Degree(); n++ {
		fmt.Printf("n=%3d  a=%12.6g  b=%12.6g\n", n, series.An[n-1], series.Bn[n-1])
	}
	return nil
}
