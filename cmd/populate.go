package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/YoRyan/operdate-getbus/app"
)

var populateCmd = &cobra.Command{
	Use:   "populate [today|tomorrow|DATE]",
	Short: "Create calendar events for the stored assignment",
	Args:  cobra.MaximumNArgs(1),
	RunE:  populate,
}

func init() {
	rootCmd.AddCommand(populateCmd)
}

func populate(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(svc)

	arg := ""
	if len(args) == 1 {
		arg = args[0]
	}
	date, err := app.ResolveDate(arg, svc.Location(), time.Now())
	if err != nil {
		return err
	}
	return svc.Populate(date)
}
