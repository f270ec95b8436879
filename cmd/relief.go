package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var reliefCmd = &cobra.Command{
	Use:   "relief NAME...",
	Short: "Create calendar events for an operator's vacation relief weeks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  relief,
}

func init() {
	rootCmd.AddCommand(reliefCmd)
}

func relief(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(svc)
	return svc.PopulateRelief(strings.Join(args, " "))
}
