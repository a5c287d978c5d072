// Command romkan converts romaji to kana.
//
// Usage:
//
//	romkan [flags] [word ...]
//
// Words are taken from the command line, or line by line from stdin if no
// words are given. With --hint, words are kana readings and romkan prints
// romaji which types them.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/romkan"
	"github.com/npillmayer/romkan/kanadef"
	"github.com/npillmayer/romkan/tables"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "romkan: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := ff.NewFlagSet("romkan")
	var (
		katakana  = fs.BoolLong("katakana", "convert to katakana instead of hiragana")
		tableFile = fs.StringLong("table", "", "load syllable table from a kanadef file")
		check     = fs.StringLong("check", "", "report whether the input converts to this reading")
		hint      = fs.BoolLong("hint", "input is kana; print romaji typing it")
		trace     = fs.StringLong("trace", "error", "trace level (error, info, debug)")
	)
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("ROMKAN")); err != nil {
		fmt.Fprintf(stdout, "%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}
	if err := setupTracing(*trace); err != nil {
		return err
	}

	table, err := selectTable(*tableFile, *katakana)
	if err != nil {
		return err
	}

	mismatch := false
	process := func(line string) error {
		if *hint {
			romaji, err := hintLine(table, line)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, romaji)
			return nil
		}
		kana := convertLine(table, line)
		switch {
		case *check == "":
			fmt.Fprintln(stdout, kana)
		case kana == *check:
			fmt.Fprintf(stdout, "%s\tok\n", kana)
		default:
			fmt.Fprintf(stdout, "%s\tmismatch, want %s\n", kana, *check)
			mismatch = true
		}
		return nil
	}

	if words := fs.GetArgs(); len(words) > 0 {
		for _, w := range words {
			if err := process(w); err != nil {
				return err
			}
		}
	} else {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			if err := process(scanner.Text()); err != nil {
				return err
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
	if mismatch {
		return errors.New("input does not match reading")
	}
	return nil
}

// setupTracing routes tracing to the Go standard logger (stderr), with the
// romkan tracer at the given level.
func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"tracelevel.root":   "Error",
		"tracelevel.romkan": level,
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracing.Select("romkan").SetTraceLevel(tracing.TraceLevelFromString(level))
	return nil
}

func selectTable(file string, katakana bool) (*romkan.Table, error) {
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return kanadef.LoadTable(file, f)
	}
	if katakana {
		return tables.Load("katakana")
	}
	return tables.Load("hiragana")
}

// convertLine types every word of line into a fresh engine, the way an
// on-screen input field would receive it: letters are lowercased and keys
// which are not romaji are dropped.
func convertLine(table *romkan.Table, line string) string {
	words := strings.Fields(line)
	for i, w := range words {
		eng := romkan.NewEngine(table)
		for _, r := range strings.ToLower(w) {
			if romkan.IsKey(r) {
				eng.Append(r)
			}
		}
		words[i] = eng.Output()
	}
	return strings.Join(words, " ")
}

func hintLine(table *romkan.Table, line string) (string, error) {
	words := strings.Fields(line)
	for i, w := range words {
		romaji, err := table.Romanize(w)
		if err != nil {
			return "", err
		}
		words[i] = romaji
	}
	return strings.Join(words, " "), nil
}
