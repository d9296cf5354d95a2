package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/voxelforge/blockquery/check"
)

// initCmd: blockquery init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new vocabulary configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		path := cfgFile
		if path == "" {
			path = ".blockquery.yaml"
		}
		if err := check.WriteConfig(path, check.DefaultConfig()); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created/updated: %s\n", path)
	},
}
