package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// VersionInfo is stamped at build time.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// App represents the CLI application with all wired dependencies
type App struct {
	rootCmd *cobra.Command

	verbose bool
	stdin   io.Reader

	versionInfo VersionInfo
}

// New creates a new CLI application
func New() *App {
	app := &App{stdin: os.Stdin}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

func (a *App) SetVersion(version, commit, date string) {
	a.versionInfo = VersionInfo{Version: version, Commit: commit, Date: date}
}

// SetIO redirects the streams used by every command.
func (a *App) SetIO(in io.Reader, out, errOut io.Writer) {
	a.stdin = in
	a.rootCmd.SetIn(in)
	a.rootCmd.SetOut(out)
	a.rootCmd.SetErr(errOut)
}

func (a *App) SetArgs(args []string) {
	a.rootCmd.SetArgs(args)
}

func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "consolidate",
		Short: "Consolidate free-text evaluation reports",
		Long: `consolidate merges several free-text evaluation reports of the same subject
into per-criterion statistics, recurring findings and a Markdown diagnosis.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}

	a.rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Verbose output")

	a.rootCmd.AddCommand(
		NewRunCmd(a),
		NewVersionCmd(a),
	)
}
