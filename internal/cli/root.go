// Package cli implements the tabulate command.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bjaus/tabulate"
	"github.com/bjaus/tabulate/internal/ingest"
	"github.com/bjaus/tabulate/internal/logger"
)

// ErrUsage marks invalid flag combinations.
var ErrUsage = errors.New("invalid usage")

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

type options struct {
	output      string
	header      bool
	format      string
	strAlign    tabulate.Align
	numAlign    tabulate.Align
	ansi        bool
	borderColor string
	color       string
	configPath  string
	debug       bool
}

func defaultOptions() options {
	return options{
		format:   tabulate.Simple.String(),
		strAlign: tabulate.AlignLeft,
		numAlign: tabulate.AlignDecimal,
		color:    colorAuto,
	}
}

func bindFlags(fs *pflag.FlagSet, opts *options) {
	styles := make([]string, 0, len(tabulate.Styles()))
	for _, s := range tabulate.Styles() {
		styles = append(styles, s.String())
	}
	fs.StringVarP(&opts.output, "output", "o", "", "write the table to this file instead of stdout")
	fs.BoolVarP(&opts.header, "header", "1", false, "use the first line of input as the table header")
	fs.StringVarP(&opts.format, "fmt", "f", opts.format, "table format: "+strings.Join(styles, ", "))
	fs.Var(&opts.strAlign, "align-str", "alignment of text columns: left, center, right")
	fs.Var(&opts.numAlign, "align-num", "alignment of numeric columns: left, center, right, decimal")
	fs.BoolVar(&opts.ansi, "ansi", false, "treat input tokens as text holding ANSI escape sequences")
	fs.StringVar(&opts.borderColor, "border-color", "", "color of the table borders (ANSI number or #rrggbb)")
	fs.StringVar(&opts.color, "color", opts.color, "when to color borders: auto, always, never")
	fs.StringVar(&opts.configPath, "config", "", "YAML config file")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")
}

// NewRootCommand returns the tabulate command.
func NewRootCommand() *cobra.Command {
	opts := defaultOptions()
	cmd := &cobra.Command{
		Use:   "tabulate [path]",
		Short: "Tabulate with style",
		Long: `Reads whitespace-separated values from a file (or stdin) and prints
them as a table. Integers and floats are aligned on the decimal point.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(cmd.ErrOrStderr(), opts.debug)
			defer func() { _ = log.Sync() }()
			cmd.SetContext(logger.WithLogger(cmd.Context(), log.Logger))
			return run(cmd, args, &opts)
		},
	}
	bindFlags(cmd.Flags(), &opts)
	return cmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	log := logger.FromContext(cmd.Context())

	if opts.configPath != "" {
		cfg, err := loadConfig(opts.configPath)
		if err != nil {
			return err
		}
		if err := cfg.apply(cmd.Flags(), opts); err != nil {
			return err
		}
		log.V(1).Info("loaded config", "path", opts.configPath)
	}

	style, err := tabulate.ParseStyle(opts.format)
	if err != nil {
		return err
	}
	if opts.strAlign == tabulate.AlignDecimal {
		return fmt.Errorf("%w: --align-str cannot be %s", ErrUsage, tabulate.AlignDecimal)
	}
	switch opts.color {
	case colorAuto, colorAlways, colorNever:
	default:
		return fmt.Errorf("%w: --color must be auto, always or never, got %q", ErrUsage, opts.color)
	}

	in, source, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	data, err := ingest.Read(in, ingest.Options{Header: opts.header, ANSI: opts.ansi})
	if err != nil {
		return fmt.Errorf("read %s: %w", source, err)
	}
	log.V(1).Info("read input", "source", source, "rows", len(data.Rows), "headers", len(data.Headers))

	out, closeOut, err := openOutput(cmd, opts.output)
	if err != nil {
		return err
	}

	table := tabulate.New(style, data.Rows, data.Headers)
	table.SetAlign(opts.strAlign, opts.numAlign)
	if border := borderStyle(out, opts); border != nil {
		table.SetBorderStyle(border)
	}
	log.V(1).Info("rendering", "style", style, "align-str", opts.strAlign, "align-num", opts.numAlign)

	rendered, err := table.Tabulate()
	if err != nil {
		_ = closeOut()
		return err
	}
	w := bufio.NewWriter(out)
	if _, err := fmt.Fprintln(w, rendered); err != nil {
		_ = closeOut()
		return fmt.Errorf("write table: %w", err)
	}
	if err := w.Flush(); err != nil {
		_ = closeOut()
		return fmt.Errorf("write table: %w", err)
	}
	return closeOut()
}

func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("could not read input file: %w", err)
	}
	return f, args[0], nil
}

func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not write to specified output file: %w", err)
	}
	return f, f.Close, nil
}

// borderStyle returns the border painter for opts, or nil when borders stay
// uncolored.
func borderStyle(out io.Writer, opts *options) func(string) string {
	if opts.borderColor == "" || opts.color == colorNever {
		return nil
	}
	if opts.color == colorAuto && !isTerminal(out) {
		return nil
	}
	r := lipgloss.NewRenderer(out)
	if opts.color == colorAlways {
		r.SetColorProfile(termenv.ANSI256)
	}
	return tabulate.LipglossBorder(r.NewStyle().Foreground(lipgloss.Color(opts.borderColor)))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
