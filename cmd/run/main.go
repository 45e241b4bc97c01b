package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/slightlynybbled/brainfuck/bfi"
	"github.com/slightlynybbled/brainfuck/engine"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to brainfuck source file")
		expr        = flag.String("e", "", "Inline program source")
		tape        = flag.Int("tape", 0, "Initial tape length (default 2000)")
		variant     = flag.String("variant", "", "Variant: classic, strict, wide, word, or ordinal 0-3")
		limit       = flag.Uint64("limit", 0, "Step limit, 0 = unlimited")
		stdin       = flag.String("stdin", "", "Input data consumed by ','")
		configPath  = flag.String("config", "", "TOML config file (tape_length, variant, step_limit)")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive playground")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		engine.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*file, *expr, *tape, *variant, *limit, *stdin, *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(file, expr string, tape int, variantStr string, limit uint64, stdinStr, configPath string) error {
	source, err := readSource(file, expr)
	if err != nil {
		return err
	}

	var opts []bfi.Option

	if configPath != "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		opts = append(opts, cfg.options()...)
	}

	// Flags override the config file.
	if tape > 0 {
		opts = append(opts, bfi.WithTapeLength(tape))
	}
	if variantStr != "" {
		v, err := engine.ParseVariant(variantStr)
		if err != nil {
			return err
		}
		opts = append(opts, bfi.WithVariant(v))
	}
	if limit > 0 {
		opts = append(opts, bfi.WithStepLimit(limit))
	}
	if stdinStr != "" {
		opts = append(opts, bfi.WithInput(strings.NewReader(stdinStr)))
	} else if !term.IsTerminal(int(os.Stdin.Fd())) && file != "" {
		// Piped stdin feeds ',' when the program came from elsewhere.
		opts = append(opts, bfi.WithInput(os.Stdin))
	}

	// Stream output as it is produced; long-running programs should not
	// buffer their whole life.
	opts = append(opts, bfi.WithOutput(os.Stdout))

	mod, err := bfi.New(opts...).Load(source)
	if err != nil {
		return err
	}

	_, err = mod.Evaluate()
	return err
}

// readSource picks the program source from -file, -e or piped stdin, in
// that order.
func readSource(file, expr string) (string, error) {
	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return string(data), nil

	case expr != "":
		return expr, nil

	case !term.IsTerminal(int(os.Stdin.Fd())):
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	fmt.Fprintln(os.Stderr, "Usage: run -file <source.bf> [-variant name] [-tape n] [-limit n] [-stdin data]")
	fmt.Fprintln(os.Stderr, "       run -e '<program>'")
	fmt.Fprintln(os.Stderr, "       run -i  (interactive playground)")
	os.Exit(1)
	return "", nil
}
