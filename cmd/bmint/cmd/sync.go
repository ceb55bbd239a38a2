package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func syncCmd() *cobra.Command {
	syncRoot := &cobra.Command{
		Use:   "sync",
		Short: "Reconcile eBay inventory with local books",
	}

	syncRoot.AddCommand(
		syncRunCmd(),
		syncRunsCmd(),
		syncGetCmd(),
	)

	return syncRoot
}

func syncRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Trigger an inventory sync",
		Example: `  bmint sync run
  bmint sync run --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			run, err := c.TriggerSync(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(run)
			}
			fmt.Printf("Sync %s: %d synced, %d failed\n",
				run.Status, run.ItemsSynced, run.ItemsFailed)
			if run.ErrorText != "" {
				fmt.Println("Error:", run.ErrorText)
			}
			return nil
		},
	}
}

func syncRunsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List sync run history",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			runs, err := c.ListSyncRuns(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Println("No sync runs found.")
				return nil
			}
			return printSyncRunTable(runs)
		},
	}
}

func syncGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show sync run details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			run, err := c.GetSyncRun(context.Background(), args[0])
			if err != nil {
				return err
			}
			return outputJSON(run)
		},
	}
}
