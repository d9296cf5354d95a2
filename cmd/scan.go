package cmd

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/voxelforge/blockquery/check"
	"github.com/voxelforge/blockquery/world"
)

var scanWorldPath string

var scanCmd = &cobra.Command{
	Use:   "scan [query]",
	Short: "Find every position in a snapshot world matching a query",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide exactly one query")
			os.Exit(1)
		}

		snapshot, err := world.LoadSnapshot(scanWorldPath)
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

		min, max, ok := snapshot.Bounds()
		if !ok {
			fmt.Println("snapshot is empty")
			return
		}

		volume := (max.X - min.X + 1) * (max.Y - min.Y + 1) * (max.Z - min.Z + 1)
		bar := progressbar.NewOptions(volume,
			progressbar.OptionSetDescription("scanning"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount())

		var matches []world.Pos
		for x := min.X; x <= max.X; x++ {
			for y := min.Y; y <= max.Y; y++ {
				for z := min.Z; z <= max.Z; z++ {
					pos := world.Pos{X: x, Y: y, Z: z}
					if predicate.Matches(snapshot, pos) {
						matches = append(matches, pos)
					}
					bar.Add(1)
				}
			}
		}
		fmt.Println()

		for _, pos := range matches {
			fmt.Printf("%d,%d,%d  %s\n", pos.X, pos.Y, pos.Z, snapshot.StateAt(pos).ID())
		}
		fmt.Printf("%d of %d positions match\n", len(matches), volume)
	},
}

func init() {
	scanCmd.Flags().StringVarP(&scanWorldPath, "world", "w", "", "Path to the world snapshot file")
	scanCmd.MarkFlagRequired("world")
}
