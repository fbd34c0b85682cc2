// Package main provides the Spindle CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spindle-la/spindle/executor/host"
	"github.com/spindle-la/spindle/object"
	"github.com/spindle-la/spindle/op"
	"github.com/spindle-la/spindle/schedule"
	"github.com/spindle-la/spindle/types"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Spindle %s\n", version)
			return
		case "ops":
			listOps()
			return
		case "demo":
			if err := demo(); err != nil {
				fmt.Fprintf(os.Stderr, "demo: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Spindle - Sparse Linear Algebra Compute Core for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  ops        List the built-in operation catalog")
	fmt.Println("  demo       Run a small host-executor schedule")
}

func listOps() {
	registry := op.NewRegistry()
	for _, key := range registry.Keys() {
		o, err := registry.Lookup(key)
		if err != nil {
			continue
		}
		fmt.Printf("%-24s arity=%d  %s\n", key, o.Arity(), o.Result())
	}
}

// demo relaxes one shortest-path edge the way a BFS/SSSP kernel would:
// dist' = min_non_max(dist, dist_u + w), with the integer sentinel standing
// in for "unreached".
func demo() error {
	registry := op.NewRegistry()
	s, err := schedule.New(host.New())
	if err != nil {
		return err
	}

	distU := object.NewScalar[int32]("dist_u", 3)
	weight := object.NewScalar[int32]("weight", 4)
	candidate := object.NewScalar[int32]("candidate", 0)
	dist := object.NewScalar[int32]("dist", types.SentinelInt)
	reached := object.NewFlag("reached")

	relax, err := schedule.NewTask(registry.PlusInt, []object.Object{candidate, distU, weight}, nil)
	if err != nil {
		return err
	}
	update, err := schedule.NewTask(registry.MinNonMaxInt, []object.Object{dist, dist, candidate}, nil)
	if err != nil {
		return err
	}
	check, err := schedule.NewTask(registry.NqMaxInt, []object.Object{reached, dist}, nil)
	if err != nil {
		return err
	}

	for _, task := range []*schedule.Task{relax, update, check} {
		if err := s.StepTask(task); err != nil {
			return err
		}
	}
	if err := s.Submit(); err != nil {
		return err
	}

	fmt.Printf("dist_u=%d weight=%d -> dist=%d reached=%v\n",
		distU.Value(), weight.Value(), dist.Value(), reached.Value())
	return nil
}
