package scriptcmder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/papercomputeco/streamcast/pkg/script"
	"github.com/papercomputeco/streamcast/pkg/stream"
)

const scriptLongDesc string = `Inspect a script without sending it anywhere.

By default prints the fragment count, payload size and total pacing
time. --dump prints one JSON object per fragment. --preview plays the
script into this terminal with its real pacing.

Examples:
  streamcast script
  streamcast script --list
  streamcast script --dump ./demo.toml
  streamcast script --preview --speed 3`

const scriptShortDesc string = "Inspect or preview a script locally"

type scriptCommander struct {
	list    bool
	dump    bool
	preview bool
	speed   float64
}

// dumpLine is the JSON shape of one fragment in --dump output.
type dumpLine struct {
	Index   int    `json:"index"`
	DelayMS int64  `json:"delay_ms"`
	Data    string `json:"data"`
}

func NewScriptCmd() *cobra.Command {
	cmder := &scriptCommander{}

	cmd := &cobra.Command{
		Use:   "script [name-or-file]",
		Short: scriptShortDesc,
		Long:  scriptLongDesc,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := script.DefaultName
			if len(args) == 1 {
				name = args[0]
			}
			return cmder.run(cmd.Context(), cmd, name)
		},
	}

	cmd.Flags().BoolVar(&cmder.list, "list", false, "List built-in scripts")
	cmd.Flags().BoolVar(&cmder.dump, "dump", false, "Print every fragment as a JSON line")
	cmd.Flags().BoolVar(&cmder.preview, "preview", false, "Render the script to stdout")
	cmd.Flags().Float64Var(&cmder.speed, "speed", 1, "Preview speed multiplier (0 disables delays)")
	cmd.MarkFlagsMutuallyExclusive("list", "dump", "preview")

	return cmd
}

func (c *scriptCommander) run(ctx context.Context, cmd *cobra.Command, name string) error {
	w := cmd.OutOrStdout()

	if c.list {
		for _, n := range script.Names() {
			fmt.Fprintln(w, n)
		}
		return nil
	}

	s, err := script.Resolve(name)
	if err != nil {
		return err
	}

	switch {
	case c.dump:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		i := 0
		for f := range s {
			if err := enc.Encode(dumpLine{Index: i, DelayMS: f.Delay.Milliseconds(), Data: f.Data}); err != nil {
				return fmt.Errorf("could not write fragment %d: %w", i, err)
			}
			i++
		}
		return nil

	case c.preview:
		streamer := stream.New(&stream.WriterSender{W: w}, stream.WithPacer(stream.PacerFor(c.speed)))
		if _, err := streamer.Run(ctx, stream.Once(s)); err != nil {
			return fmt.Errorf("preview stopped: %w", err)
		}
		return nil
	}

	stats := stream.Measure(s)

	r := lipgloss.NewRenderer(w)
	label := r.NewStyle().Bold(true).Width(12)
	value := r.NewStyle().Foreground(lipgloss.Color("6"))

	rows := [][2]string{
		{"Script", name},
		{"Fragments", fmt.Sprintf("%d", stats.Fragments)},
		{"Payload", humanize.Bytes(uint64(stats.Bytes))},
		{"Duration", stats.TotalDelay.Round(time.Millisecond).String()},
	}
	for _, row := range rows {
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, label.Render(row[0]), value.Render(row[1])))
	}
	return nil
}
