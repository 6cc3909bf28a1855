package main

import (
	"os"

	solarsystem "github.com/FihlaTV/SolarSystem"
	"github.com/spf13/cobra"
)

func main() {
	var confDir string

	rootCmd := &cobra.Command{
		Use:           "solarsim",
		Short:         "Headless scaled solar system animation",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVarP(&confDir, "config", "c", "", "directory of solarsim.toml (defaults to $"+solarsystem.ConfigEnv+")")

	load := func() (solarsystem.Config, error) {
		if confDir != "" {
			return solarsystem.LoadConfig(confDir)
		}
		return solarsystem.ConfigFromEnv()
	}

	rootCmd.AddCommand(runCmd(load))
	rootCmd.AddCommand(infoCmd(load))
	rootCmd.AddCommand(serveCmd(load))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type configLoader func() (solarsystem.Config, error)

func runCmd(load configLoader) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a number of frames and print the positions of all bodies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := load()
			if err != nil {
				return err
			}
			return runSim(cmd.OutOrStdout(), conf, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.frames, "frames", "n", 600, "number of frames to simulate")
	cmd.Flags().Float64Var(&opts.dt, "dt", 1.0/60, "real time duration of a frame in seconds")
	cmd.Flags().StringVarP(&opts.focus, "focus", "f", "SolarSystemView", "focused body")
	cmd.Flags().StringVarP(&opts.start, "start", "s", "", "start date as a Julian day or "+dateFormat+" (defaults to the configured one)")
	cmd.Flags().Float64Var(&opts.speed, "speed", 0, "days per frame scale (0 keeps the configured one)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "body scale (0 keeps the configured one)")
	cmd.Flags().IntVar(&opts.bursts, "burst", 0, "number of burst speed ups")
	cmd.Flags().BoolVar(&opts.csv, "csv", false, "export all frames as CSV")
	cmd.Flags().BoolVar(&opts.cosmo, "cosmo", false, "export all frames as a Cosmographia catalog")
	return cmd
}

func infoCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "info [body]",
		Short: "Show the catalog information of a body, or list all bodies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := load()
			if err != nil {
				return err
			}
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runInfo(cmd.OutOrStdout(), conf, name)
		},
	}
}

func serveCmd(load configLoader) *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the simulation in real time and stream the frames over websockets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := load()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), conf, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.focus, "focus", "f", "SolarSystemView", "focused body")
	cmd.Flags().Float64Var(&opts.fps, "fps", 60, "simulation frames per second")
	return cmd
}
