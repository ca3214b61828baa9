package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "capsulegen",
		Short:         "Generate and inspect capsule meshes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx.timeSet = cmd.Flags().Changed("time")
			ctx.configureLogging(cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.scenePath, "scene", "s", "", "TOML scene file")
	flags.Float64VarP(&ctx.timeFlag, "time", "t", 0, "Evaluation time code (default time when unset)")
	flags.BoolVarP(&ctx.verbose, "verbose", "v", false, "Log attribute warnings and variability to stderr")

	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newPointsCommand(ctx))
	rootCmd.AddCommand(newTopologyCommand(ctx))
	rootCmd.AddCommand(newInvalidateCommand(ctx))

	return rootCmd
}
