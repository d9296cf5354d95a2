package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/voxelforge/blockquery/check"
	"github.com/voxelforge/blockquery/world"
)

// variables for flags
var (
	evalWorldPath string
	evalAt        string
)

var evalCmd = &cobra.Command{
	Use:   "eval [query]",
	Short: "Evaluate a query at one position in a snapshot world",
	Long: `Compiles the query against the configured vocabulary and evaluates it at
the given position of a world snapshot file.
Example) blockquery eval --world world.yaml --at 0,64,0 "grass[snowy=false]"`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide exactly one query")
			os.Exit(1)
		}

		pos, err := parsePos(evalAt)
		if err != nil {
			fmt.Printf("error: invalid position %q: %v\n", evalAt, err)
			os.Exit(1)
		}

		snapshot, err := world.LoadSnapshot(evalWorldPath)
		if err != nil {
			logger.Fatal("Failed to load world snapshot", zap.Error(err))
		}

		engine, err := check.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize engine", zap.Error(err))
		}

		predicate, err := engine.Compiler().Compile(args[0])
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(predicate.Matches(snapshot, pos))
	},
}

func init() {
	evalCmd.Flags().StringVarP(&evalWorldPath, "world", "w", "", "Path to the world snapshot file")
	evalCmd.Flags().StringVar(&evalAt, "at", "0,0,0", "Position to evaluate, as x,y,z")
	evalCmd.MarkFlagRequired("world")
}

func parsePos(s string) (world.Pos, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return world.Pos{}, fmt.Errorf("want x,y,z")
	}
	var coords [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return world.Pos{}, err
		}
		coords[i] = n
	}
	return world.Pos{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
