package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/wippyai/ssa-build/script"
	"github.com/wippyai/ssa-build/viz"
)

func main() {
	var (
		scriptFile  = flag.String("script", "", "Path to construction script (YAML)")
		dotFile     = flag.String("dot", "", "Write final CFG as Graphviz DOT to this file")
		dump        = flag.Bool("dump", false, "Print the final graph state")
		showLoops   = flag.Bool("loops", false, "Report loop candidates (strongly connected components)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *scriptFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: ssatrace -script <file.yaml> [-dump] [-dot out.dot] [-loops]")
		fmt.Fprintln(os.Stderr, "       ssatrace -script <file.yaml> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*scriptFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*scriptFile, *dotFile, *dump, *showLoops); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(scriptFile, dotFile string, dump, showLoops bool) error {
	data, err := os.ReadFile(scriptFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	prog, err := script.Parse(data)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	trace, err := script.Replay(prog)
	if trace != nil {
		fmt.Printf("Script: %s\n", prog.Name)
		fmt.Printf("Steps replayed: %d/%d\n", len(trace.Events), len(prog.Steps))
		for _, ev := range trace.Events {
			if ev.Result != "" {
				fmt.Printf("  %3d  %-30s -> %s\n", ev.Step, ev.Desc, ev.Result)
			} else {
				fmt.Printf("  %3d  %s\n", ev.Step, ev.Desc)
			}
		}
	}
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	if dump {
		fmt.Printf("\nFinal state:\n%s", trace.Graph.Dump())
	}

	if showLoops {
		loops := viz.Loops(trace.Graph)
		if len(loops) == 0 {
			fmt.Println("\nNo loops.")
		}
		for _, loop := range loops {
			names := make([]string, len(loop))
			for i, b := range loop {
				names[i] = b.Name()
			}
			fmt.Printf("\nLoop: %v\n", names)
		}
	}

	if dotFile != "" {
		out, err := viz.DOT(trace.Graph, prog.Name)
		if err != nil {
			return fmt.Errorf("render dot: %w", err)
		}
		if err := os.WriteFile(dotFile, out, 0o644); err != nil {
			return fmt.Errorf("write dot: %w", err)
		}
		fmt.Printf("\nWrote %s\n", dotFile)
	}

	return nil
}
