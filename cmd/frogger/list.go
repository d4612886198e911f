package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List level files",
	Long:  `Shows every level file in the level directory, numbered as in the play menu.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	loader := a.loader()
	entries, err := loader.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintf(out, "No levels found in %s.\n", loader.Root)
		return nil
	}

	for i, e := range entries {
		fmt.Fprintf(out, "[%d]  %s\n", i+1, e.Name)
	}
	return nil
}
