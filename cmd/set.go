package cmd

import "github.com/spf13/cobra"

var setRunCmd = &cobra.Command{
	Use:   "set-run NUMBER",
	Short: "Store a run number as the standing assignment",
	Args:  cobra.ExactArgs(1),
	RunE:  setRun,
}

var setShowCmd = &cobra.Command{
	Use:   "set-show TIME [SECOND]",
	Short: "Store one or two show start times as the standing assignment",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  setShow,
}

func init() {
	rootCmd.AddCommand(setRunCmd, setShowCmd)
}

func setRun(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(svc)
	return svc.SetRun(args[0])
}

func setShow(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(svc)
	second := ""
	if len(args) == 2 {
		second = args[1]
	}
	return svc.SetShow(args[0], second)
}
