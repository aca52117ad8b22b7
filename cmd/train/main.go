package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/pkg/errors"

	"github.com/joelsearcy/micrograd-go/pkg/autograd"
	"github.com/joelsearcy/micrograd-go/pkg/data"
	"github.com/joelsearcy/micrograd-go/pkg/nn"
	"github.com/joelsearcy/micrograd-go/pkg/optim"
	"github.com/joelsearcy/micrograd-go/pkg/train"
)

const (
	// Training hyperparameters
	LearningRate  = 0.05
	LossThreshold = 1e-6
	MaxSteps      = 1_000_000
	Beta1         = 0.85
	Beta2         = 0.99
	EpsAdam       = 1e-8

	Seed = 42
)

func main() {
	var (
		lr         = flag.Float64("lr", LearningRate, "learning rate")
		threshold  = flag.Float64("threshold", LossThreshold, "stop when the loss falls below this")
		maxSteps   = flag.Int("steps", MaxSteps, "maximum number of updates (0 = unlimited)")
		seed       = flag.Uint64("seed", Seed, "seed for weight initialization")
		useAdam    = flag.Bool("adam", false, "use Adam instead of plain gradient descent")
		cpuProfile = flag.String("cpuprofile", "", "write a CPU profile to this file")
		memProfile = flag.String("memprofile", "", "write a heap profile to this file")
		verbose    = flag.Bool("v", false, "log training progress")
	)
	flag.Parse()

	if err := run(*lr, *threshold, *maxSteps, *seed, *useAdam, *cpuProfile, *memProfile, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(lr, threshold float64, maxSteps int, seed uint64, useAdam bool, cpuProfile, memProfile string, verbose bool) error {
	if cpuProfile != "" {
		cpuFile, err := os.Create(cpuProfile)
		if err != nil {
			return errors.Wrap(err, "creating CPU profile")
		}
		defer cpuFile.Close()

		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			return errors.Wrap(err, "starting CPU profile")
		}
		defer pprof.StopCPUProfile()
		fmt.Printf("CPU profiling enabled - writing to %s\n", cpuProfile)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ds := data.Reference()
	g := autograd.NewGraph()
	rng := rand.New(rand.NewPCG(seed, seed))
	model := nn.NewMLP(g, ds.Features(), []int{4, 4, 1}, rng)
	fmt.Printf("num samples: %d\n", ds.Len())
	fmt.Printf("num params: %d\n", len(model.Parameters()))

	cfg := train.DefaultConfig()
	cfg.LearningRate = lr
	cfg.LossThreshold = threshold
	cfg.MaxSteps = maxSteps

	tr := train.New(g, model, ds, cfg)
	tr.Logger = logger
	if useAdam {
		tr.Optimizer = optim.NewAdam(len(model.Parameters()), lr, Beta1, Beta2, EpsAdam)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := tr.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("steps %d | loss %.3g | converged %t\n", res.Steps, res.Loss, res.Converged)

	preds, err := tr.Predict()
	if err != nil {
		return err
	}
	for i, p := range preds {
		fmt.Printf("x=%v target=%+.1f pred=%+.6f\n", ds.Row(i), ds.Target(i), p)
	}

	if memProfile != "" {
		memFile, err := os.Create(memProfile)
		if err != nil {
			return errors.Wrap(err, "creating memory profile")
		}
		defer memFile.Close()

		if err := pprof.WriteHeapProfile(memFile); err != nil {
			return errors.Wrap(err, "writing memory profile")
		}
		fmt.Printf("Memory profile written to %s\n", memProfile)
	}
	return nil
}
