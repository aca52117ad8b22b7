// Package train runs gradient descent over a model built on an autograd graph.
//
// Every step rebuilds the loss expression on top of the model's parameter
// leaves. Nodes created after the parameters are discarded with
// Graph.Truncate and parameter gradients are zeroed before each backward
// pass, so gradients never carry over between steps.
package train

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/joelsearcy/micrograd-go/pkg/autograd"
	"github.com/joelsearcy/micrograd-go/pkg/data"
	"github.com/joelsearcy/micrograd-go/pkg/nn"
	"github.com/joelsearcy/micrograd-go/pkg/optim"
)

// Config controls a training run.
type Config struct {
	LearningRate  float64 // SGD step size when no optimizer is supplied
	LossThreshold float64 // stop once the loss falls below this
	MaxSteps      int     // give up after this many updates; 0 means no limit
	LogEvery      int     // log progress every N steps; 0 disables
}

// DefaultConfig returns the settings used for the reference network.
func DefaultConfig() Config {
	return Config{
		LearningRate:  0.05,
		LossThreshold: 1e-6,
		MaxSteps:      1_000_000,
		LogEvery:      1000,
	}
}

// Model is a network that maps one sample to predictions.
type Model interface {
	nn.Module
	Forward(x []autograd.Value) ([]autograd.Value, error)
}

// Result summarizes a finished run.
type Result struct {
	Steps     int     // parameter updates applied
	Loss      float64 // loss of the current parameters
	Converged bool    // Loss < LossThreshold
}

// Trainer fits Model to Data.
type Trainer struct {
	Graph     *autograd.Graph
	Model     Model
	Data      *data.Dataset
	Optimizer optim.Optimizer
	Logger    *slog.Logger
	Config    Config
}

// New returns a Trainer using SGD at cfg.LearningRate and a discarding logger.
func New(g *autograd.Graph, m Model, d *data.Dataset, cfg Config) *Trainer {
	return &Trainer{
		Graph:     g,
		Model:     m,
		Data:      d,
		Optimizer: optim.NewSGD(cfg.LearningRate),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config:    cfg,
	}
}

// Loss builds the summed squared error of the model over every sample.
// The returned node lives on t.Graph after the parameters.
func (t *Trainer) Loss() (autograd.Value, error) {
	n := t.Data.Len()
	preds := make([]autograd.Value, 0, n)
	targets := make([]autograd.Value, 0, n)
	for i := 0; i < n; i++ {
		out, err := t.Model.Forward(nn.Inputs(t.Graph, t.Data.Row(i)))
		if err != nil {
			return autograd.Value{}, errors.Wrapf(err, "sample %d", i)
		}
		if len(out) != 1 {
			return autograd.Value{}, errors.Wrapf(nn.ErrArity, "sample %d: model has %d outputs, want 1", i, len(out))
		}
		preds = append(preds, out[0])
		targets = append(targets, t.Graph.Scalar(t.Data.Target(i)))
	}
	return nn.SquaredError(preds, targets)
}

// Run trains until the loss drops below the threshold, MaxSteps updates
// have been applied, or ctx is done.
//
// The graph must hold only the model's parameters when Run is called; every
// node created during a step is dropped before the next one. An optimizer
// implementing optim.Resetter is reset first, so moment estimates from an
// earlier run never leak into this one.
func (t *Trainer) Run(ctx context.Context) (Result, error) {
	mark := t.Graph.Len()
	params := t.Model.Parameters()
	if r, ok := t.Optimizer.(optim.Resetter); ok {
		r.Reset()
	}
	log := t.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var res Result
	for {
		if err := ctx.Err(); err != nil {
			return res, errors.Wrapf(err, "training stopped after %d steps", res.Steps)
		}

		t.Graph.Truncate(mark)
		loss, err := t.Loss()
		if err != nil {
			return res, err
		}
		res.Loss = loss.Data()

		if t.Config.LogEvery > 0 && res.Steps%t.Config.LogEvery == 0 {
			log.Debug("training", "step", res.Steps, "loss", res.Loss, "nodes", t.Graph.Len())
		}

		if res.Loss < t.Config.LossThreshold {
			res.Converged = true
			break
		}
		if t.Config.MaxSteps > 0 && res.Steps >= t.Config.MaxSteps {
			break
		}

		t.Model.ZeroGrad()
		loss.Backward()
		t.Optimizer.Step(params)
		res.Steps++
	}

	t.Graph.Truncate(mark)
	log.Info("training finished", "steps", res.Steps, "loss", res.Loss, "converged", res.Converged)
	return res, nil
}

// Predict returns the model's first output for every sample. Nodes it
// creates are removed before returning.
func (t *Trainer) Predict() ([]float64, error) {
	mark := t.Graph.Len()
	defer t.Graph.Truncate(mark)

	preds := make([]float64, t.Data.Len())
	for i := range preds {
		out, err := t.Model.Forward(nn.Inputs(t.Graph, t.Data.Row(i)))
		if err != nil {
			return nil, errors.Wrapf(err, "sample %d", i)
		}
		if len(out) == 0 {
			return nil, errors.Wrapf(nn.ErrArity, "sample %d: model has no outputs", i)
		}
		preds[i] = out[0].Data()
	}
	return preds, nil
}
