package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/voxelforge/blockquery/check"
	"github.com/voxelforge/blockquery/internal"
)

var watchMode bool

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Compile query files and report errors",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := check.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize check engine", zap.Error(err))
		}

		diagnostics, err := check.ProcessFiles(ctx, logger, engine, args, check.ProcessFile)
		if err != nil {
			logger.Error("Error processing files", zap.Error(err))
			os.Exit(1)
		}

		fmt.Print(internal.FormatDiagnostics(diagnostics))

		if watchMode {
			if err := engine.StartWatching(args); err != nil {
				logger.Fatal("Failed to start watching", zap.Error(err))
			}
			defer engine.StopWatching()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt)
			<-sig
			return
		}

		if len(diagnostics) > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().BoolVar(&watchMode, "watch", false, "Re-check query files when they change")
}
