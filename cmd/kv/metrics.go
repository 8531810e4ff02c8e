package kv

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cch137/gokv/cmd/util"
)

// MetricsCmd starts a dispatcher just long enough to dump its counters -
// mostly useful to confirm the metric names a long-running repl would
// expose, since a fresh one-shot dispatcher has done no work yet.
var MetricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Dump the current Prometheus metrics and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := util.NewDispatcher()
		if err := d.Start(); err != nil {
			return err
		}
		d.WritePrometheus(os.Stdout)
		d.Stop()
		return nil
	},
}
