package cmd

import (
	"github.com/spf13/cobra"

	"github.com/YoRyan/operdate-getbus/core/model"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup DATE",
	Short: "Write the resolved schedule report for a date",
	Args:  cobra.ExactArgs(1),
	RunE:  lookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func lookup(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(svc)

	date, err := model.ParseDate(args[0], svc.Location())
	if err != nil {
		return err
	}
	return svc.Lookup(date)
}
