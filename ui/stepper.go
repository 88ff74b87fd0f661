package ui

import (
	"fmt"
	"log"
	"strconv"

	"flume/fold"
	"flume/port"
	"flume/seq"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

const (
	FoldStateRunning = "running"
	FoldStateDrained = "drained"
)

type FoldStepper struct {
	ports   []*port.Queue[float64]
	results []float64
	state   string
}

func CreateFoldStepper(ports []*port.Queue[float64]) FoldStepper {
	return FoldStepper{
		ports:   ports,
		results: make([]float64, 0),
		state:   FoldStateRunning,
	}
}

// Step pops the head off every port and records the sum. Once any port
// runs dry the stepper stays drained.
func (r *FoldStepper) Step() {
	ports := lo.Map(
		r.ports,
		func(queue *port.Queue[float64], _ int) port.Port[float64] {
			return queue
		},
	)
	result, err := fold.Sum(ports...)
	if err != nil {
		r.state = FoldStateDrained
		return
	}
	r.results = append(r.results, result)
}

func (r *FoldStepper) View() string {
	output := "FLUME FOLD STEPPER\n\n"
	for i, queue := range r.ports {
		output += "Port " + strconv.Itoa(i) + ": " + seq.FormatValues(queue.Values()) + "\n"
	}
	output += "Step sums: " + seq.FormatValues(r.results) + "\n\n"

	switch r.state {
	case FoldStateRunning:
		output += "Press space to pop the head off every port and sum the values; q to quit"
	case FoldStateDrained:
		output += "A port ran dry; q to quit"
	default:
		err := fmt.Sprintf(`FoldStepper.View unreachable code: invalid state "%s"`, r.state)
		log.Panic(err)
	}

	return output
}

func (r *FoldStepper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return r, tea.Quit
		case " ", "enter":
			if r.state == FoldStateRunning {
				r.Step()
			}
		}
	}
	return r, nil
}

func (r *FoldStepper) Init() tea.Cmd {
	return nil
}
