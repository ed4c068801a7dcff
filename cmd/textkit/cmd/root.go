package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/core/config"
	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/capturex"
	"github.com/msto63/textkit/foundation/utils/filex"
	"github.com/msto63/textkit/foundation/utils/prettyx"
	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
)

// app holds the state shared by all subcommands of one invocation.
type app struct {
	cfgFile    string
	verbose    bool
	logFormat  string
	inputFile  string
	saveFile   string
	appendSave bool

	cfg     *config.Config
	log     *mdwlog.Logger
	capture *capturex.Stdout
}

// Execute runs the textkit command line.
func Execute() error {
	a := &app{}
	err := newRootCmd(a).Execute()
	a.finish(os.Stdout)
	return err
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textkit",
		Short: "Textwerkzeuge für chinesisch-lateinischen Mischtext",
		Long: `textkit bündelt Werkzeuge für Text, der chinesische und lateinische
Zeichen mischt: Mehrfachsuche, Breitenmessung, Kürzen, Ausrichten und
Tabellen.

Konfiguration: textkit.toml oder textkit.yaml im aktuellen Verzeichnis
oder im Benutzer-Konfigurationsverzeichnis. Umgebungsvariablen mit dem
Präfix TEXTKIT_ überschreiben einzelne Werte, z.B. TEXTKIT_ALIGN_LEAST_BLANK.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "Config-Datei (default: ./textkit.toml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Verbose Output")
	flags.StringVar(&a.logFormat, "log-format", "", "Log-Format: text, json, logfmt, console")
	flags.StringVarP(&a.inputFile, "file", "f", "", "Eingabe aus Datei statt Argumenten oder stdin")
	flags.StringVar(&a.saveFile, "save", "", "Ausgabe zusätzlich in Datei schreiben")
	flags.BoolVar(&a.appendSave, "append", false, "Mit --save an die Datei anhängen")

	rootCmd.AddCommand(
		newFindCmd(a),
		newFuzzyCmd(a),
		newWidthCmd(a),
		newShortenCmd(a),
		newRealignCmd(a),
		newAlignCmd(a),
		newTableCmd(a),
		newSortCmd(a),
		newCountCmd(a),
		newExcelCmd(),
		newWeekdayCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads the configuration, configures logging and starts the output
// capture for --save.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(configRules()); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg, a.verbose, a.logFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = logger
	mdwlog.SetDefault(logger)

	fields := mdwlog.Fields{
		"command": cmd.CommandPath(),
		"config":  mdwstringx.FirstNonBlank(cfg.FilePath(), "<defaults>"),
	}
	if cmd.RunE != nil {
		fields["handler"] = prettyx.FuncMsg(cmd.RunE)
	}
	a.log.Debug("command started", fields)

	if a.saveFile != "" {
		mode := capturex.Truncate
		if a.appendSave {
			mode = capturex.Append
		}
		a.capture = capturex.NewStdout(a.saveFile, mode)
		if err := a.capture.Start(); err != nil {
			return err
		}
	}
	return nil
}

// finish stops a running capture and forwards the captured text to out.
func (a *app) finish(out io.Writer) {
	if a.capture == nil || !a.capture.IsActive() {
		return
	}
	text, err := a.capture.Stop()
	if err != nil && a.log != nil {
		a.log.LogError(err)
	}
	fmt.Fprint(out, text)
}

func newLogger(cfg *config.Config, verbose bool, format string, out io.Writer) (*mdwlog.Logger, error) {
	level, err := mdwlog.ParseLevel(cfg.GetString("log.level", "warn"))
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("cmd.setup")
	}
	if verbose {
		level = mdwlog.LevelDebug
	}

	logFormat, err := mdwlog.ParseFormat(mdwstringx.FirstNonBlank(format, cfg.GetString("log.format", "text")))
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.setup")
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: logFormat,
		Output: out,
		Name:   "textkit",
	}), nil
}

// readText returns the input of a command: the --file content, the
// arguments joined by spaces or stdin, in that order. A missing file
// yields NOT_FOUND.
func (a *app) readText(cmd *cobra.Command, args []string) (string, error) {
	if a.inputFile != "" {
		text, err := filex.ReadString(a.inputFile)
		if err != nil {
			return "", mdwerror.Wrap(err, "cannot read input file").
				WithOperation("cmd.readText")
		}
		return text, nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", mdwerror.Wrap(err, "cannot read stdin").
			WithCode(mdwerror.CodeIOError).
			WithOperation("cmd.readText")
	}
	return string(data), nil
}

// readLines is readText split into lines without the trailing line break.
// Arguments count as one line each.
func (a *app) readLines(cmd *cobra.Command, args []string) ([]string, error) {
	if a.inputFile == "" && len(args) > 0 {
		return args, nil
	}
	text, err := a.readText(cmd, nil)
	if err != nil {
		return nil, err
	}
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return nil, nil
	}
	return mdwstringx.SplitLines(text), nil
}
