/*
Copyright 2026 The sweetsourcod-go Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	humanize "github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	ssc "github.com/martiniani-lab/sweetsourcod-go"
	"github.com/martiniani-lab/sweetsourcod-go/entropy"
	"github.com/martiniani-lab/sweetsourcod-go/internal/sarray"
	"github.com/martiniani-lab/sweetsourcod-go/kkp"
)

const (
	_APP_HEADER = "sweetsourcod-go (c) The sweetsourcod-go Authors"

	_ARG_MODE     = "--mode="
	_ARG_INPUT    = "--input="
	_ARG_BLOCK    = "--block="
	_ARG_DICT     = "--dict="
	_ARG_JOBS     = "--jobs="
	_ARG_VERBOSE  = "--verbose="
	_ARG_EVENTS   = "--events="
	_ARG_HELP     = "--help"
)

var (
	mutex sync.Mutex
	log   = Printer{os: bufio.NewWriter(os.Stdout)}
)

// Printer is a buffered, mutex-guarded stdout writer so concurrent workers
// can log without interleaving each other's output.
type Printer struct {
	os *bufio.Writer
}

// Println writes msg, followed by a newline, if printFlag is true.
func (p *Printer) Println(msg string, printFlag bool) {
	if !printFlag {
		return
	}

	mutex.Lock()

	if w, _ := p.os.Write([]byte(msg + "\n")); w > 0 {
		_ = p.os.Flush()
	}

	mutex.Unlock()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	mode := ""
	var inputs []string
	blockSize := 6
	dict := ""
	jobs := runtime.NumCPU()
	verbose := true
	events := false

	for _, a := range args {
		switch {
		case a == _ARG_HELP || a == "-h":
			printUsage()
			return 0

		case strings.HasPrefix(a, _ARG_MODE):
			mode = strings.TrimPrefix(a, _ARG_MODE)

		case strings.HasPrefix(a, _ARG_INPUT):
			inputs = append(inputs, strings.TrimPrefix(a, _ARG_INPUT))

		case strings.HasPrefix(a, _ARG_BLOCK):
			v, err := strconv.Atoi(strings.TrimPrefix(a, _ARG_BLOCK))
			if err != nil {
				fmt.Printf("Invalid block size: %v\n", err)
				return ssc.ERR_INVALID_PARAM
			}

			blockSize = v

		case strings.HasPrefix(a, _ARG_DICT):
			dict = strings.TrimPrefix(a, _ARG_DICT)

		case strings.HasPrefix(a, _ARG_JOBS):
			v, err := strconv.Atoi(strings.TrimPrefix(a, _ARG_JOBS))
			if err != nil || v <= 0 {
				fmt.Printf("Invalid job count\n")
				return ssc.ERR_INVALID_PARAM
			}

			jobs = v

		case strings.HasPrefix(a, _ARG_VERBOSE):
			v, err := strconv.ParseBool(strings.TrimPrefix(a, _ARG_VERBOSE))
			if err != nil {
				fmt.Printf("Invalid verbosity flag\n")
				return ssc.ERR_INVALID_PARAM
			}

			verbose = v

		case strings.HasPrefix(a, _ARG_EVENTS):
			v, err := strconv.ParseBool(strings.TrimPrefix(a, _ARG_EVENTS))
			if err != nil {
				fmt.Printf("Invalid events flag\n")
				return ssc.ERR_INVALID_PARAM
			}

			events = v

		default:
			fmt.Printf("Unknown argument: %v\n", a)
			return ssc.ERR_INVALID_PARAM
		}
	}

	if mode == "" || len(inputs) == 0 {
		printUsage()
		return ssc.ERR_MISSING_PARAM
	}

	var dictBytes []byte

	if mode == "crossparse" {
		if dict == "" {
			fmt.Printf("crossparse mode requires %sFILE\n", _ARG_DICT)
			return ssc.ERR_MISSING_PARAM
		}

		b, err := os.ReadFile(dict)
		if err != nil {
			fmt.Printf("Failed to read dictionary %q: %v\n", dict, err)
			return ssc.ERR_OPEN_FILE
		}

		dictBytes = b
	}

	log.Println(_APP_HEADER, verbose)

	g := new(errgroup.Group)
	g.SetLimit(jobs)

	for _, path := range inputs {
		path := path

		g.Go(func() error {
			return processFile(mode, path, blockSize, dictBytes, verbose, events)
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return ssc.ERR_UNKNOWN
	}

	return 0
}

func processFile(mode, path string, blockSize int, dict []byte, verbose, events bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}

	var listeners []ssc.Listener

	if events {
		listeners = append(listeners, ssc.ListenerFunc(func(evt *ssc.Event) {
			log.Println(fmt.Sprintf("%s: %s", path, evt), true)
		}))
	}

	switch mode {
	case "kkp2", "kkp3":
		sa := sarray.Construct(data)
		sink := &kkp.CountingSink{}

		var n int
		var ferr error

		if mode == "kkp2" {
			n, ferr = kkp.FactorizeInMemory(data, sa, sink, listeners...)
		} else {
			n, ferr = kkp.FactorizeInMemoryDestructive(data, sa, sink, listeners...)
		}

		if ferr != nil {
			return fmt.Errorf("factorizing %q: %w", path, ferr)
		}

		log.Println(fmt.Sprintf("%s: %s -> %d phrases", path, humanize.Bytes(uint64(len(data))), n), verbose)

	case "block":
		ent := entropy.BlockEntropy(data, blockSize)
		log.Println(fmt.Sprintf("%s: %s, block-%d entropy = %.4f bits/block", path, humanize.Bytes(uint64(len(data))), blockSize, ent), verbose)

	case "bwt":
		ent := entropy.BlockSortingEntropy(data)
		log.Println(fmt.Sprintf("%s: %s, block-sorting entropy = %.4f bits/symbol", path, humanize.Bytes(uint64(len(data))), ent), verbose)

	case "lz76":
		n := entropy.LZ76Complexity(data)
		log.Println(fmt.Sprintf("%s: %s, LZ76 complexity = %d", path, humanize.Bytes(uint64(len(data))), n), verbose)

	case "lz78":
		n := entropy.LZ78Complexity(data)
		log.Println(fmt.Sprintf("%s: %s, LZ78 complexity = %d", path, humanize.Bytes(uint64(len(data))), n), verbose)

	case "lz77":
		n, sumlog, err := entropy.LZ77ComplexitySumLog(data, listeners...)
		if err != nil {
			return fmt.Errorf("LZ77 complexity of %q: %w", path, err)
		}

		log.Println(fmt.Sprintf("%s: %s, LZ77 complexity = %d, sumlog = %.2f bits", path, humanize.Bytes(uint64(len(data))), n, sumlog), verbose)

	case "crossparse":
		n, sumlog, err := entropy.CrossParsingComplexitySumLog(dict, data, listeners...)
		if err != nil {
			return fmt.Errorf("cross-parsing %q: %w", path, err)
		}

		log.Println(fmt.Sprintf("%s: %s, cross-parsing complexity = %d, sumlog = %.2f bits", path, humanize.Bytes(uint64(len(data))), n, sumlog), verbose)

	default:
		return fmt.Errorf("unknown mode %q", mode)
	}

	return nil
}

func printUsage() {
	fmt.Println(_APP_HEADER)
	fmt.Println()
	fmt.Println("Usage: sweetsourcod --mode=MODE --input=FILE [--input=FILE ...] [options]")
	fmt.Println()
	fmt.Println("Modes: kkp2, kkp3, block, bwt, lz76, lz78, lz77, crossparse")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --input=FILE    input file to process (repeatable)")
	fmt.Println("  --block=N       block size for the block-entropy estimator (default 6)")
	fmt.Println("  --dict=FILE     dictionary file for crossparse mode")
	fmt.Println("  --jobs=N        number of input files processed concurrently (default NumCPU)")
	fmt.Println("  --verbose=BOOL  print progress to stdout (default true)")
	fmt.Println("  --events=BOOL   print driver lifecycle events as they fire (default false)")
}
