package cli

import (
	"strconv"
	"strings"

	"flume/fold"
	"flume/port"
	"flume/seq"
	"flume/ui"
	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
)

type (
	Args struct {
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
		Range       *RangeCmd       `arg:"subcommand:range"`
		Sum         *FoldCmd        `arg:"subcommand:sum"`
		Mult        *FoldCmd        `arg:"subcommand:mult"`
	}
	InteractiveCmd struct{}
	RangeCmd       struct {
		From float64 `arg:"required" help:"start of the range, inclusive" placeholder:"1"`
		To   float64 `arg:"required" help:"end of the range, inclusive" placeholder:"5"`
		Step float64 `default:"1" help:"distance between consecutive values" placeholder:"1"`
	}
	FoldCmd struct {
		Sources []string `arg:"positional,required" help:"comma-separated values; one port per argument" placeholder:"1,2,3"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"flume: helper utilities for stream processing.\n",
			"Generate inclusive numeric ranges, or pop the head off a set of",
			"FIFO ports and fold the values into a sum or a product.",
		},
		"\n",
	)
	des += "\n"
	return des
}

// ParseSource turns a comma-separated list of numbers into a queue port,
// head first.
func ParseSource(raw string) (*port.Queue[float64], error) {
	queue := port.NewQueue[float64]()
	for _, piece := range strings.Split(raw, ",") {
		value, err := strconv.ParseFloat(strings.TrimSpace(piece), 64)
		if err != nil {
			err := errors.Wrap(err, `ParseSource error: parse value "`+piece+`"`)
			return nil, err
		}
		queue.Push(value)
	}
	return queue, nil
}

func StartRange(from float64, to float64, step float64) {
	sequence, err := seq.MakeRangeStep(from, to, step)
	if err != nil {
		println("Invalid range arguments: " + err.Error())
		return
	}
	println(seq.FormatValues(sequence))
}

func StartFold(operation string, rawSources []string) {
	ports := make([]port.Port[float64], 0, len(rawSources))
	for _, raw := range rawSources {
		queue, err := ParseSource(raw)
		if err != nil {
			println(`Error happened parsing source "` + raw + `"`)
			return
		}
		ports = append(ports, queue)
	}

	result := float64(0)
	err := error(nil)
	switch operation {
	case "sum":
		result, err = fold.Sum(ports...)
	case "mult":
		result, err = fold.Mult(ports...)
	}
	if err != nil {
		println("Error happened folding sources: " + err.Error())
		return
	}
	println(strconv.FormatFloat(result, 'g', -1, 64))
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	switch {
	case args.Range != nil:
		StartRange(args.Range.From, args.Range.To, args.Range.Step)
	case args.Sum != nil:
		StartFold("sum", args.Sum.Sources)
	case args.Mult != nil:
		StartFold("mult", args.Mult.Sources)
	default:
		ui.Start()
	}
}
