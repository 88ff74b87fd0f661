package ui

import (
	"flume/port"
	"flume/seq"
	tea "github.com/charmbracelet/bubbletea"
)

// Start runs the stepper over sample ports of unequal lengths, so a few
// steps in one of them runs dry and the drained state shows up.
func Start() {
	stepper := CreateFoldStepper(
		[]*port.Queue[float64]{
			port.Of(seq.MakeRange(1.0, 5.0)...),
			port.Of(seq.MakeRange(10.0, 6.0)...),
			port.Of(seq.MakeRange(2.0, 20.0)...),
		},
	)
	if err := tea.NewProgram(&stepper).Start(); err != nil {
		panic(err)
	}
}
