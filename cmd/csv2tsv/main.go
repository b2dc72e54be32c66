// Command csv2tsv converts CSV files to TSV.
//
//	csv2tsv [options] [file...]
//
// Files are converted in order and written to standard output. With no files,
// or a file named "-", standard input is read.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/oleg578/csv2tsv"
	"github.com/oleg578/csv2tsv/internal/envconfig"
)

var version = "0.1.0"

const defaultBufferSize = 1 << 20 // 1 MiB

var errc = color.New(color.BgRed, color.FgWhite).FprintfFunc()

type options struct {
	header      bool
	quote       string
	csvDelim    string
	tsvDelim    string
	tabRepl     string
	newlineRepl string
	keepBOM     bool
	bufferSize  int
	configPath  string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "csv2tsv [flags] [file...]",
		Short: "Convert comma-separated values to tab-separated values",
		Long: `csv2tsv converts CSV files to TSV. Fields containing the TSV delimiter or
newlines have them replaced, quotes are removed and escaped quotes collapsed.
Record terminators (CR, LF, CRLF) become LF. A UTF-8 byte order mark at the
start of a file is dropped unless --keep-bom is given.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: envconfig.LogLevel()})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts, args, stdin, stdout)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.header, "header", "H", false, "Treat the first line of each file as a header. Only the header of the first file is output.")
	flags.StringVarP(&opts.quote, "quote", "q", `"`, "Quoting character in CSV data.")
	flags.StringVarP(&opts.csvDelim, "csv-delim", "c", ",", "Field delimiter in CSV data.")
	flags.StringVarP(&opts.tsvDelim, "tsv-delim", "t", "\t", "Field delimiter in TSV output.")
	flags.StringVarP(&opts.tabRepl, "tab-replacement", "r", " ", "Replacement for TSV field delimiters found in CSV input.")
	flags.StringVarP(&opts.newlineRepl, "newline-replacement", "n", " ", "Replacement for newlines found in CSV input.")
	flags.BoolVar(&opts.keepBOM, "keep-bom", false, "Keep a leading UTF-8 byte order mark.")
	flags.IntVar(&opts.bufferSize, "buffer-size", defaultBufferSize, "Read buffer size in bytes.")
	flags.StringVar(&opts.configPath, "config", "", "YAML configuration file. Flags take precedence over its values.")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := opts.config(cmd)
	if err != nil {
		return err
	}

	bufSize := opts.bufferSize
	if !cmd.Flags().Changed("buffer-size") {
		bufSize = envconfig.BufferSize(defaultBufferSize)
	}
	if bufSize < 1 {
		return errors.Errorf("buffer size must be positive, got %d", bufSize)
	}

	if len(args) == 0 {
		args = []string{"-"}
	}

	conv := csv2tsv.NewConverter(stdout, bufSize)
	for i, name := range args {
		fileCfg := cfg
		if opts.header && i > 0 {
			fileCfg.SkipRecords = 1
		}

		before := conv.Stats()
		if err := convertFile(conv, stdin, name, fileCfg); err != nil {
			conv.Flush()
			return err
		}
		after := conv.Stats()
		slog.Debug("converted", "source", name,
			"records", after.Records-before.Records,
			"emitted", after.Emitted-before.Emitted,
			"bytes", after.Bytes-before.Bytes)
	}

	if err := conv.Flush(); err != nil {
		return errors.Wrap(err, "writing output")
	}
	st := conv.Stats()
	slog.Debug("done", "inputs", st.Inputs, "records", st.Records, "bytes", st.Bytes, "writes", st.Writes)
	return nil
}

func convertFile(conv *csv2tsv.Converter, stdin io.Reader, name string, cfg csv2tsv.Config) error {
	if name == "-" {
		return conv.Convert(stdin, name, cfg)
	}

	f, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "opening input")
	}
	defer f.Close()

	return conv.Convert(f, name, cfg)
}

// config merges defaults, the configuration file and explicitly set flags.
func (o *options) config(cmd *cobra.Command) (csv2tsv.Config, error) {
	cfg := csv2tsv.DefaultConfig()

	path := o.configPath
	if path == "" {
		path = envconfig.ConfigPath()
	}
	if path != "" {
		var err error
		if cfg, err = csv2tsv.LoadConfig(path); err != nil {
			return cfg, err
		}
		slog.Debug("loaded config", "path", path)
	}

	flags := cmd.Flags()
	chars := []struct {
		flag string
		val  string
		dst  *byte
	}{
		{"quote", o.quote, &cfg.Quote},
		{"csv-delim", o.csvDelim, &cfg.CSVDelim},
		{"tsv-delim", o.tsvDelim, &cfg.TSVDelim},
	}
	for _, ch := range chars {
		if !flags.Changed(ch.flag) {
			continue
		}
		if len(ch.val) != 1 {
			return cfg, errors.Errorf("--%s must be a single ASCII character, got %q", ch.flag, ch.val)
		}
		*ch.dst = ch.val[0]
	}
	if flags.Changed("tab-replacement") {
		cfg.TSVDelimReplacement = o.tabRepl
	}
	if flags.Changed("newline-replacement") {
		cfg.NewlineReplacement = o.newlineRepl
	}
	if flags.Changed("keep-bom") {
		cfg.DiscardBOM = !o.keepBOM
	}

	return cfg, cfg.Validate()
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		errc(os.Stderr, "Error [csv2tsv]: %v", err)
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}
}
