package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/limaJavier/sudokucnf/internal/config"
	"github.com/limaJavier/sudokucnf/pkg/board"
	"github.com/limaJavier/sudokucnf/pkg/cnf"
	"github.com/limaJavier/sudokucnf/pkg/sat"
	"github.com/samber/lo"
)

const usage = "Usage: cnfgen [flags] <count> <output-path>"

func main() {
	// Log to the Standard Error unless told otherwise
	flag.Set("logtostderr", "true")
	defer glog.Flush()

	cfg, count, outFile, err := parseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		glog.Exitf("%v", err)
	}
	glog.V(1).Infof("resolved config: %+v", cfg)

	// Encode and write
	variables, clauses, err := run(cfg, count, outFile)
	if err != nil {
		glog.Exitf("an error occurred while generating the CNF: %v", err)
	}

	glog.Infof("Variables: %v", variables)
	glog.Infof("Clauses: %v", clauses)
}

// parseArgs reads the flags and positional arguments. Flags given explicitly take precedence over the config file
func parseArgs(fs *flag.FlagSet, args []string) (cfg config.Config, count int, outFile string, err error) {
	// Define arguments
	modePtr := fs.String("mode", config.ModeFlat, `What to encode. Allowed values are:
- "flat" (a single exact-one group over the points 0..count-1) and
- "board" (every box, row and column of a count×count board), where "flat" is the default`)
	formatPtr := fs.String("format", config.FormatJSON, "Output format. Allowed values are: \"json\" and \"dimacs\", where \"json\" is the default")
	indentPtr := fs.Bool("indent", false, "Indent JSON output")
	configPathPtr := fs.String("config", "", "Path to a JSON config file; flags given explicitly override its values")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return config.Config{}, 0, "", err
	}

	// Validate arguments
	if fs.NArg() != 2 {
		return config.Config{}, 0, "", fmt.Errorf("expected 2 positional arguments, got %d\n%v", fs.NArg(), usage)
	}
	count, err = strconv.Atoi(fs.Arg(0))
	if err != nil || count < 0 {
		return config.Config{}, 0, "", fmt.Errorf("count must be a non-negative integer: %v", fs.Arg(0))
	}
	outFile = fs.Arg(1)

	// Resolve configuration
	cfg = config.Default()
	if *configPathPtr != "" {
		if cfg, err = config.Load(*configPathPtr); err != nil {
			return config.Config{}, 0, "", err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = *modePtr
		case "format":
			cfg.Format = *formatPtr
		case "indent":
			cfg.Indent = *indentPtr
		}
	})
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, 0, "", err
	}

	return cfg, count, outFile, nil
}

// run encodes count points (or a count×count board) and writes the result to outFile
func run(cfg config.Config, count int, outFile string) (variables uint64, clauses int, err error) {
	var (
		formula cnf.CNF[int]
		indexer sat.Indexer[int]
	)
	switch cfg.Mode {
	case config.ModeBoard:
		formula, err = board.EncodeBoard(count)
		indexer = sat.NewGridIndexer(uint64(count), uint64(count*count))
	case config.ModeFlat:
		formula, err = cnf.EncodeExactOne(lo.Range(count))
		indexer = sat.NewGridIndexer(uint64(count), uint64(count))
	default:
		return 0, 0, fmt.Errorf("%v is not a valid mode", cfg.Mode)
	}
	if err != nil {
		return 0, 0, err
	}

	var output []byte
	switch cfg.Format {
	case config.FormatJSON:
		if cfg.Indent {
			output, err = json.MarshalIndent(formula, "", "  ")
		} else {
			output, err = json.Marshal(formula)
		}
		if err != nil {
			return 0, 0, fmt.Errorf("an error occurred while building output json: %w", err)
		}
	case config.FormatDIMACS:
		instance, err := sat.FromCNF(formula, indexer)
		if err != nil {
			return 0, 0, err
		}
		output = []byte(instance.ToDIMACS())
	default:
		return 0, 0, fmt.Errorf("%v is not a valid format", cfg.Format)
	}

	if err := os.WriteFile(outFile, output, 0666); err != nil {
		return 0, 0, fmt.Errorf("an error occurred while writing to the output file: %w", err)
	}

	return indexer.Variables(), len(formula), nil
}
