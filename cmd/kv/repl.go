package kv

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cch137/gokv/cmd/util"
	"github.com/cch137/gokv/lib/command"
	"github.com/cch137/gokv/lib/parser"
)

// ReplCmd runs an interactive session: one dispatcher for the whole
// process lifetime, reading command lines from stdin until EOF or an
// explicit SHUTDOWN.
var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run an interactive session against an in-process store",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := util.NewDispatcher()
		if err := d.Start(); err != nil {
			return err
		}

		scanner := bufio.NewScanner(os.Stdin)
		fmt.Print("gokv> ")
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				fmt.Print("gokv> ")
				continue
			}

			req := parser.Parse(line)
			reply := d.Submit(req)
			printReply(reply)

			if req.Action == command.ActionShutdown {
				break
			}
			fmt.Print("gokv> ")
		}

		err := scanner.Err()
		d.Stop()
		return err
	},
}
