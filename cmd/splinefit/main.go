// SPDX-License-Identifier: MIT

// Command splinefit reads a JSON fitting request, fits the curve with the
// named method and writes coefficients, optional Jacobians and evaluated
// values as JSON.
//
//	splinefit < request.json
//	splinefit -input request.json
//
// A JSON array of requests yields a JSON array of responses. Any failing
// request sets its "error" field and the exit status to 1.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole command: it parses args, reads requests from -input or
// stdin, writes responses to stdout and returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("splinefit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("input", "", "JSON input path (optional; if set, ignores stdin)")
	help := fs.Bool("h", false, "Show help")
	fs.BoolVar(help, "help", false, "Show help")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *help {
		usage(stdout)
		return 0
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" && isTerminal(stdin) {
		usage(stdout)
		return 2
	}

	raw, err := readInput(path, stdin)
	if err != nil {
		writeError(stdout, stderr, fmt.Sprintf("failed to read input: %v", err))
		return 1
	}

	requests, isArray, err := parseRequests(raw)
	if err != nil {
		writeError(stdout, stderr, fmt.Sprintf("failed to parse JSON input: %v", err))
		return 1
	}

	hadError := false
	responses := make([]Response, 0, len(requests))
	for _, req := range requests {
		resp, err := handle(req)
		if err != nil {
			hadError = true
			fmt.Fprintf(stderr, "splinefit: %s: %v\n", req.label(), err)
			responses = append(responses, Response{TaskID: req.TaskID, Error: err.Error()})
			continue
		}
		responses = append(responses, *resp)
	}

	var out []byte
	if isArray {
		out, _ = json.Marshal(responses)
	} else {
		out, _ = json.Marshal(responses[0])
	}
	fmt.Fprintln(stdout, string(out))

	if hadError {
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	lines := []string{
		"Usage:",
		"  splinefit < input.json",
		"  splinefit -input /path/to/input.json",
		"",
		"Read JSON input, fit a piecewise polynomial, output JSON to stdout.",
		"",
		"Example input:",
		`  {`,
		`    "task_id": "eur-zero",`,
		`    "method": "Monotone(NotAKnot)",`,
		`    "x": [0.25, 0.5, 1, 2, 5, 10],`,
		`    "y": [0.031, 0.032, 0.030, 0.029, 0.030, 0.033],`,
		`    "eval": [0.75, 3, 7],`,
		`    "sensitivity": true`,
		`  }`,
		"",
		`"rows" may replace "y" to fit several value rows against the same x.`,
		`Method names: Natural, NotAKnot, Clamped, Monotone, Nonnegative,`,
		`QuinticNonnegative, optionally with a primary in parentheses.`,
	}
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}

// isTerminal reports whether r is an interactive terminal, i.e. nothing
// was piped in.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	return err == nil && (stat.Mode()&os.ModeCharDevice) != 0
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(stdin)
}

func parseRequests(raw []byte) ([]Request, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}

	if trimmed[0] == '[' {
		var requests []Request
		if err := json.Unmarshal(trimmed, &requests); err != nil {
			return nil, true, err
		}
		if len(requests) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return requests, true, nil
	}

	var req Request
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return nil, false, err
	}
	return []Request{req}, false, nil
}

func writeError(stdout, stderr io.Writer, msg string) {
	fmt.Fprintln(stderr, "splinefit:", msg)
	out, _ := json.Marshal(Response{Error: msg})
	fmt.Fprintln(stdout, string(out))
}
