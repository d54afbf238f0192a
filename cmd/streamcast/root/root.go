package rootcmder

import (
	"github.com/spf13/cobra"

	runcmder "github.com/papercomputeco/streamcast/cmd/streamcast/run"
	scriptcmder "github.com/papercomputeco/streamcast/cmd/streamcast/script"
)

const rootLongDesc string = `streamcast plays scripted terminal sessions to an agent stream sink.

A script is an ordered list of text fragments, each with a pause
after it. Fragments are sent one at a time, in order, and the run
stops at the first fragment the sink does not accept.`

func NewStreamcastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "streamcast",
		Short:         "Stream scripted terminal sessions",
		Long:          rootLongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(runcmder.NewRunCmd())
	cmd.AddCommand(scriptcmder.NewScriptCmd())

	return cmd
}
