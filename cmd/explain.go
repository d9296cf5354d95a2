package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/voxelforge/blockquery/check"
	"github.com/voxelforge/blockquery/internal"
	"github.com/voxelforge/blockquery/query"
)

var explainCmd = &cobra.Command{
	Use:   "explain [query]",
	Short: "Print the compiled predicate tree of a query",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide exactly one query")
			os.Exit(1)
		}

		engine, err := check.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize engine", zap.Error(err))
		}

		predicate, err := engine.Compiler().Compile(args[0])
		if err != nil {
			var parseErr *query.ParseError
			if errors.As(err, &parseErr) {
				fmt.Print(internal.FormatDiagnostics([]internal.Diagnostic{{
					Filename: "<query>",
					Line:     1,
					Query:    args[0],
					Err:      parseErr,
				}}))
			} else {
				fmt.Printf("error: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Println(predicate.String())
	},
}
