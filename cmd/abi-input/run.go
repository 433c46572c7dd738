package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"abi-input/abi"
	"abi-input/abi/layout"
	"abi-input/input"
	"abi-input/internal/config"
	"abi-input/witness"
)

const (
	exitOK       = 0
	exitError    = 1
	exitUsage    = 2
	exitProtocol = 3
)

const usage = `usage: abi-input <command> [flags]

Commands:
  encode   -abi FILE -inputs FILE [-return FILE] [-o FILE]
           write the witness map for the inputs and, if given, the return value
  decode   -abi FILE -witness FILE            print the inputs held by a witness map
`

// decodedOutput is the JSON document printed by the decode command.
type decodedOutput struct {
	Inputs      map[string]input.Value `json:"inputs"`
	ReturnValue *input.Value           `json:"return_value"`
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	cmd, rest := args[0], args[1:]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)

	abiPath := fs.String("abi", "", "path to the program ABI (JSON or YAML)")
	fs.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "maximum record nesting accepted in inputs")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	var inputsPath, returnPath, outPath, witnessPath string

	switch cmd {
	case "encode":
		fs.StringVar(&inputsPath, "inputs", "", "path to the inputs file (JSON, or YAML by extension)")
		fs.StringVar(&returnPath, "return", "", "path to a file holding the return value under the key \"return\"")
		fs.StringVar(&outPath, "o", "", "write the witness map here instead of stdout")
	case "decode":
		fs.StringVar(&witnessPath, "witness", "", "path to a witness map JSON file")
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", cmd, usage)
		return exitUsage
	}

	if err := fs.Parse(rest); err != nil {
		return exitUsage
	}

	logger, err := cfg.Logger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if *abiPath == "" {
		logger.Error("missing required flag", "flag", "abi")
		return exitUsage
	}

	a, err := loadAbi(logger, *abiPath)
	if err != nil {
		logger.Error("failed to load abi", "path", *abiPath, "err", err)
		return exitError
	}

	switch cmd {
	case "encode":
		if inputsPath == "" {
			logger.Error("missing required flag", "flag", "inputs")
			return exitUsage
		}

		err = encode(logger, cfg, a, encodeFiles{inputs: inputsPath, ret: returnPath, out: outPath}, stdout)
	case "decode":
		if witnessPath == "" {
			logger.Error("missing required flag", "flag", "witness")
			return exitUsage
		}

		err = decode(logger, a, witnessPath, stdout)
	}

	var pe *witness.ProtocolError

	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &pe):
		logger.Error("witness map violates the boundary contract", "key", pe.Key, "err", pe.Err)
		return exitProtocol
	default:
		logger.Error(cmd+" failed", "err", err)
		return exitError
	}
}

func loadAbi(logger *slog.Logger, path string) (*abi.Abi, error) {
	a, err := abi.LoadFile(path)
	if err != nil {
		return nil, err
	}

	diags := abi.Validate(a)
	for _, w := range diags.Warnings {
		logger.Warn(w.Message, "code", w.Code, "parameter", w.Parameter, "path", w.Path)
	}

	for _, i := range diags.Infos {
		logger.Debug(i.Message, "code", i.Code, "parameter", i.Parameter, "path", i.Path)
	}

	if err := diags.Error(); err != nil {
		return nil, err
	}

	logger.Debug("abi loaded", "path", path, "parameters", len(a.Parameters), "witnesses", a.FieldCount())

	return a, nil
}

// returnKey names the return value in a -return file.
const returnKey = "return"

type encodeFiles struct {
	inputs string
	ret    string
	out    string
}

func encode(logger *slog.Logger, cfg config.Config, a *abi.Abi, files encodeFiles, stdout io.Writer) error {
	opts := cfg.CoerceOptions()

	doc, err := input.LoadFileWithOptions(files.inputs, opts)
	if err != nil {
		return err
	}

	typed, err := layout.CoerceInputs(a, doc, opts)
	if err != nil {
		return err
	}

	ret, err := loadReturn(a, files.ret, opts)
	if err != nil {
		return err
	}

	m, err := layout.Encode(a, typed, ret)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(witness.ToForeign(m), "", "  ")
	if err != nil {
		return err
	}

	data = append(data, '\n')

	if files.out == "" {
		_, err = stdout.Write(data)
		return err
	}

	if err := os.WriteFile(files.out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write witness map %s: %w", files.out, err)
	}

	logger.Info("witness map written", "path", files.out, "witnesses", len(m))

	return nil
}

// loadReturn reads the return value from path, coercing it against the
// declared return type. An empty path means no return value.
func loadReturn(a *abi.Abi, path string, opts input.Options) (*input.Typed, error) {
	if path == "" {
		return nil, nil
	}

	if a.ReturnType == nil {
		return nil, layout.ErrUnexpectedReturn
	}

	doc, err := input.LoadFileWithOptions(path, opts)
	if err != nil {
		return nil, err
	}

	v, ok := doc[returnKey]
	if !ok {
		return nil, &input.Error{Kind: input.MissingArgument, Path: returnKey}
	}

	ret, err := input.CoerceWithOptions(v, a.ReturnType, returnKey, opts)
	if err != nil {
		return nil, err
	}

	return &ret, nil
}

func decode(logger *slog.Logger, a *abi.Abi, witnessPath string, stdout io.Writer) error {
	data, err := os.ReadFile(witnessPath)
	if err != nil {
		return fmt.Errorf("failed to read witness map %s: %w", witnessPath, err)
	}

	var fm witness.ForeignMap

	if err := json.Unmarshal(data, &fm); err != nil {
		return fmt.Errorf("failed to parse witness map %s: %w", witnessPath, err)
	}

	m, err := witness.FromForeignSafe(&fm)
	if err != nil {
		return err
	}

	logger.Debug("witness map read", "path", witnessPath, "witnesses", len(m))

	inputs, ret, err := layout.Decode(a, m)
	if err != nil {
		return err
	}

	out := decodedOutput{Inputs: make(map[string]input.Value, len(inputs))}
	for name, v := range inputs {
		out.Inputs[name] = input.FromTyped(v)
	}

	if ret != nil {
		rv := input.FromTyped(*ret)
		out.ReturnValue = &rv
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
