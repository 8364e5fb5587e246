package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"gobf/pkg/dump"
	"gobf/pkg/lexer"
	"gobf/pkg/machine"
)

func main() {
	inPath := flag.String("in", "", "input program file path")
	tapeSize := flag.Int("tape", 30000, "number of memory cells")
	startPtr := flag.Int("start", 0, "initial pointer position")
	optimize := flag.Bool("optimize", true, "merge repeated instructions before running")
	verbose := flag.Bool("verbose", false, "print instruction and action counts")
	dumpMem := flag.String("dump-mem", "", "write a memory dump to this file after the run")
	dumpInst := flag.String("dump-inst", "", "write the translated instruction listing to this file")
	flag.Parse()

	path := *inPath
	if path == "" && flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "usage: console [flags] program.bf")
		flag.PrintDefaults()
		os.Exit(2)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read source file: %v", err)
	}

	prog := lexer.Parse(string(source), *optimize)
	if *verbose {
		fmt.Printf("Translated program contains %d instructions\n", len(prog))
	}

	if *tapeSize <= 0 {
		log.Fatalf("Tape size must be positive, got %d", *tapeSize)
	}

	vm := machine.New(*tapeSize)
	vm.Pointer = ((*startPtr % *tapeSize) + *tapeSize) % *tapeSize

	if err := vm.Load(prog); err != nil {
		log.Fatalf("Cannot run %s: %v", path, err)
	}

	out := bufio.NewWriter(os.Stdout)
	vm.Input = bufio.NewReader(os.Stdin)
	vm.Output = out

	actions, pointer, err := vm.Run()
	if err != nil {
		log.Fatalf("Execution failed: %v", err)
	}
	if err := out.Flush(); err != nil {
		log.Fatalf("Failed to flush output: %v", err)
	}

	if *verbose {
		fmt.Printf("Performed %d actions, pointer left at 0x%04X\n", actions, pointer)
	}

	if *dumpMem != "" {
		writeDump(*dumpMem, func(f *os.File) error {
			return dump.Memory(f, vm.Tape, vm.Pointer)
		})
	}
	if *dumpInst != "" {
		writeDump(*dumpInst, func(f *os.File) error {
			return dump.Instructions(f, prog)
		})
	}
}

func writeDump(path string, render func(*os.File) error) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create dump file %q: %v", path, err)
	}
	defer f.Close()
	if err := render(f); err != nil {
		log.Fatalf("Failed to write dump file %q: %v", path, err)
	}
}
