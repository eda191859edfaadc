package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/eval-consolidator/internal/consolidator"
	"github.com/DjordjeVuckovic/eval-consolidator/internal/dto"
	"github.com/DjordjeVuckovic/eval-consolidator/internal/report"
	"github.com/DjordjeVuckovic/eval-consolidator/internal/settings"
)

// Output formats accepted by --format.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatJSON     = "json"
	FormatXLSX     = "xlsx"
	FormatTable    = "table"
)

// stdinArg reads one report from standard input.
const stdinArg = "-"

type RunOptions struct {
	// ConfigPath is an optional consolidation settings YAML file
	ConfigPath string

	Format string

	// Output is the destination file; empty means stdout
	Output string
}

func NewRunCmd(app *App) *cobra.Command {
	opts := RunOptions{}

	cmd := &cobra.Command{
		Use:   "run [files...]",
		Short: "Consolidate report files into one diagnosis",
		Long: `Run reads one evaluation report per file ("-" reads standard input)
and writes the consolidated diagnosis in the chosen format.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts, args, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to consolidation settings YAML")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", FormatMarkdown, "Output format: markdown, html, json, xlsx or table")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}

// Run consolidates the given report files and writes the result to opts.Output or stdout.
func (a *App) Run(ctx context.Context, opts RunOptions, files []string, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := validateFormat(opts); err != nil {
		return err
	}

	cfg, err := loadSettings(opts.ConfigPath)
	if err != nil {
		return err
	}

	messages, err := a.readReports(files)
	if err != nil {
		return err
	}

	res, err := consolidator.New(cfg).Consolidate(ctx, messages)
	if err != nil {
		return err
	}
	slog.Debug("Writing consolidated report", "format", opts.Format, "output", opts.Output)

	if opts.Output == "" {
		return writeResult(stdout, res, opts.Format, cfg.Render.Title)
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := writeResult(f, res, opts.Format, cfg.Render.Title); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func validateFormat(opts RunOptions) error {
	switch opts.Format {
	case FormatMarkdown, FormatHTML, FormatJSON, FormatTable:
		return nil
	case FormatXLSX:
		if opts.Output == "" {
			return errors.New("xlsx output requires --output")
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}
}

func loadSettings(path string) (*settings.Settings, error) {
	if path == "" {
		return settings.Default(), nil
	}
	return settings.LoadFromFile(path)
}

func (a *App) readReports(files []string) ([]string, error) {
	messages := make([]string, 0, len(files))
	stdinUsed := false

	for _, name := range files {
		if name == stdinArg {
			if stdinUsed {
				return nil, errors.New("standard input can only be read once")
			}
			stdinUsed = true

			data, err := io.ReadAll(a.stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			messages = append(messages, string(data))
			continue
		}

		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read report: %w", err)
		}
		messages = append(messages, string(data))
	}

	return messages, nil
}

func writeResult(w io.Writer, res *consolidator.Result, format, title string) error {
	switch format {
	case FormatHTML:
		_, err := w.Write(report.HTML(res.Markdown, title))
		return err
	case FormatJSON:
		return report.WriteJSON(w, dto.NewConsolidateResponse(res))
	case FormatXLSX:
		return report.WriteXLSX(res.Aggregate, w)
	case FormatTable:
		return report.WriteTable(res.Aggregate, w)
	default:
		_, err := io.WriteString(w, res.Markdown+"\n")
		return err
	}
}
