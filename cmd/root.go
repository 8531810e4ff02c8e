package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cch137/gokv/cmd/kv"
	"github.com/cch137/gokv/cmd/util"
	"github.com/cch137/gokv/lib/store"
)

const Version = "0.1.0"

var (
	// RootCmd represents the base command when called without any subcommands.
	RootCmd = &cobra.Command{
		Use:   "gokv",
		Short: "in-memory key-value store",
		Long: fmt.Sprintf(`gokv (v%s)

An in-memory key-value store with string, list and sorted-set values,
a single-writer dispatcher, incremental hash-table rehashing, and JSON
snapshot persistence.`, Version),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return util.BindCommandFlags(cmd)
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of gokv",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gokv v%s\n", Version)
		},
	}
)

func init() {
	cobra.OnInitialize(util.InitConfig)

	key := "db-path"
	RootCmd.PersistentFlags().String(key, store.DefaultPersistenceFilepath, util.WrapString("path to the JSON snapshot file"))

	key = "hash-seed"
	RootCmd.PersistentFlags().Int64(key, 0, util.WrapString("seed for the hash table's MurmurHash2; 0 picks a random seed"))

	key = "log-level"
	RootCmd.PersistentFlags().String(key, "info", util.WrapString("log level (debug, info, warn, error)"))

	RootCmd.AddCommand(kv.ReplCmd)
	RootCmd.AddCommand(kv.MetricsCmd)
	RootCmd.AddCommand(kv.KeyValueCommands...)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
