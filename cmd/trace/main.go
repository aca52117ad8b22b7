package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joelsearcy/micrograd-go/pkg/autograd"
)

func main() {
	backward := flag.Bool("backward", true, "run backpropagation before printing")
	flag.Parse()

	// o = tanh(x1*w1 + x2*w2 + b)
	g := autograd.NewGraph()
	x1 := g.Named("x1", 2.0)
	x2 := g.Named("x2", 0.0)
	w1 := g.Named("w1", -3.0)
	w2 := g.Named("w2", 1.0)
	b := g.Named("b", 6.881373587019543)

	n := x1.Mul(w1).Add(x2.Mul(w2)).Add(b).SetLabel("n")
	o := n.Tanh().SetLabel("o")

	if *backward {
		o.Backward()
	}

	if err := autograd.Trace(os.Stdout, o); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
