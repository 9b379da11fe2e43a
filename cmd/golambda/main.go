package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/vic/golambda/pkg/lambda"
)

var (
	maxSteps = flag.Uint64("max-steps", 0, "abort after this many beta reductions (0 means no limit)")
	corpus   = flag.String("corpus", "", "run the reduction corpus at this path instead of evaluating a term")
)

func main() {
	flag.Parse()

	if *corpus != "" {
		os.Exit(runCorpus(*corpus))
	}

	var input []byte
	var err error

	if flag.NArg() > 0 {
		input, err = os.ReadFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
	} else {
		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
	}

	// The grammar gives line endings no meaning, so shells and editors
	// appending a final newline would otherwise break every input.
	source := strings.TrimRight(string(input), "\r\n")

	result, stats, elapsed, err := evalSource(source, *maxSteps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Println(result)

	seconds := elapsed.Seconds()
	fmt.Fprintf(os.Stderr, "\nStats:\n")
	fmt.Fprintf(os.Stderr, "Time: %v\n", elapsed)
	fmt.Fprintf(os.Stderr, "Beta reductions: %d", stats.Betas)
	if seconds > 0 {
		fmt.Fprintf(os.Stderr, " (%.2f ops/sec)", float64(stats.Betas)/seconds)
	}
	fmt.Fprintf(os.Stderr, "\n")
}

func evalSource(source string, maxSteps uint64) (lambda.Term, lambda.Stats, time.Duration, error) {
	term, err := lambda.Parse(source)
	if err != nil {
		return nil, lambda.Stats{}, 0, err
	}

	start := time.Now()
	result, stats, err := lambda.ReduceWithLimit(term, maxSteps)
	elapsed := time.Since(start)
	if err != nil {
		return nil, stats, elapsed, err
	}
	return result, stats, elapsed, nil
}

func runCorpus(path string) int {
	c, err := lambda.LoadCorpus(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	failed := 0
	for _, cs := range c.Cases {
		if err := cs.Check(); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %v\n", err)
			failed++
			continue
		}
		fmt.Printf("ok   %s\n", cs.Name)
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "\n%d of %d cases failed\n", failed, len(c.Cases))
		return 1
	}
	return 0
}
