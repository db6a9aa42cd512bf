package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/brightparty/signals/flare"
)

const (
	itersKey      = "iters"
	cpuProfileKey = "cpuprofile"
)

var conns = []int{1, 10, 100, 1_000}

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Benchmark signal dispatch",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Fires per scenario",
				Value: 1_000,
			},
			&cli.StringFlag{
				Name:  cpuProfileKey,
				Usage: "Write a CPU profile to this file",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type summary struct {
	scenario string
	conns    int
	fires    int64
	contexts int
	rate     float64
}

func run(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Uint(itersKey))

	if path := cmd.String(cpuProfileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	warmup := table.NewWriter()
	benchmarkScenario(warmup, "warmup", 100, syncSignal)

	tbl := table.NewWriter()
	tbl.SetTitle("Flare Signals")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	var summaries []summary
	summaries = append(summaries, benchmarkScenario(tbl, "fire sync", iters, syncSignal)...)
	summaries = append(summaries, benchmarkScenario(tbl, "fire bound", iters, boundSignal)...)
	summaries = append(summaries, benchmarkScenario(tbl, "fire detached", iters, detachedSignal)...)
	tbl.Render()

	renderSummary(summaries)
	return nil
}

// scenarioFunc builds a signal with n connections and returns it plus a
// teardown to run after the last fire.
type scenarioFunc func(n int) (*flare.Signal, func())

func benchmarkScenario(tbl table.Writer, name string, iters int, build scenarioFunc) []summary {
	var summaries []summary
	for _, n := range conns {
		sig, teardown := build(n)

		tach := tachymeter.New(&tachymeter.Config{Size: iters})
		start := time.Now()
		for i := 0; i < iters; i++ {
			fireStart := time.Now()
			sig.Fire(i)
			tach.AddTime(time.Since(fireStart))
		}
		elapsed := time.Since(start)
		teardown()

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("%s: %d conns", name, n),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})

		summaries = append(summaries, summary{
			scenario: name,
			conns:    n,
			fires:    int64(iters),
			contexts: sig.Pool().Created(),
			rate:     float64(iters*n) / elapsed.Seconds(),
		})
	}
	return summaries
}

func syncSignal(n int) (*flare.Signal, func()) {
	sig := flare.New()
	sink := 0
	for i := 0; i < n; i++ {
		sig.Connect(func(args ...any) {
			sink += args[0].(int)
		})
	}
	return sig, func() { _ = sink }
}

func boundSignal(n int) (*flare.Signal, func()) {
	sig := flare.New()
	sink := 0
	for i := 0; i < n; i++ {
		sig.Connect(func(args ...any) {
			sink += args[0].(int) + args[1].(int)
		}, i)
	}
	return sig, func() { _ = sink }
}

func detachedSignal(n int) (*flare.Signal, func()) {
	sig := flare.New()
	var sink atomic.Int64
	for i := 0; i < n; i++ {
		sig.ConnectDetached(func(args ...any) {
			sink.Add(int64(args[0].(int)))
		})
	}
	return sig, func() { _ = sink.Load() }
}

func renderSummary(summaries []summary) {
	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"scenario", "conns", "fires", "contexts", "deliveries/sec"})
	for _, s := range summaries {
		tbl.Append([]string{
			s.scenario,
			humanize.Comma(int64(s.conns)),
			humanize.Comma(s.fires),
			humanize.Comma(int64(s.contexts)),
			humanize.Comma(int64(s.rate)),
		})
	}
	tbl.Render()
}
