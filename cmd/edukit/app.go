package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kbukum/edukit/config"
	"github.com/kbukum/edukit/errors"
	"github.com/kbukum/edukit/logger"
	"github.com/kbukum/edukit/util"
	"github.com/kbukum/edukit/validation"
)

const appName = "edukit"

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type passwordConfig struct {
	DefaultLength int `yaml:"default_length" mapstructure:"default_length" validate:"gte=8"`
}

type appConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Output               string         `yaml:"output" mapstructure:"output" validate:"oneof=text json yaml"`
	Password             passwordConfig `yaml:"password" mapstructure:"password"`
}

func (c *appConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = appName
	}
	c.ServiceConfig.ApplyDefaults()
	if c.Output == "" {
		c.Output = formatText
	}
	if c.Password.DefaultLength == 0 {
		c.Password.DefaultLength = util.DefaultPasswordLength
	}
}

func (c *appConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	return validation.Validate(c)
}

type app struct {
	stdout, stderr io.Writer

	cfgFile  string
	logLevel string
	output   string

	cfg appConfig
	log *logger.Logger
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(context.Background()); err != nil {
		a.fail(err)
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Grade reports, input validators and small math/string helpers",
		Long: `edukit runs a set of small, independent helpers:

  reporting   grade analysis, low-stock alerts, common list elements
  security    email validation, phone extraction, password scoring, card redaction
  helpers     parity, percentages, primes, password generation

Configuration is read from edukit.yml (or --config / EDUKIT_CONFIG_FILE),
an optional .env file and EDUKIT_* environment variables.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is edukit.yml, can also use EDUKIT_CONFIG_FILE env var)")
	flags.StringVarP(&a.logLevel, "log-level", "l", "info", "log level (debug, info, warn, error)")
	flags.StringVarP(&a.output, "output", "o", formatText, "output format (text, json, yaml)")

	root.AddCommand(
		a.demoCommand(),
		a.gradesCommand(),
		a.inventoryCommand(),
		a.commonCommand(),
		a.emailCommand(),
		a.phonesCommand(),
		a.censorCommand(),
		a.passwordCommand(),
		a.versionCommand(),
	)
	return root
}

// setup loads configuration and the logger before any subcommand runs.
// Flags override file and environment values.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfgFile := util.Coalesce(a.cfgFile, os.Getenv(config.EnvPrefix(appName)+"CONFIG_FILE"))

	var opts []config.LoaderOption
	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); err != nil {
			return errors.InvalidArgument("config", fmt.Sprintf("config file %s not found", cfgFile)).WithCause(err)
		}
		opts = append(opts, config.WithConfigFile(cfgFile))
	}
	if err := config.LoadConfig(appName, &a.cfg, opts...); err != nil {
		return errors.InvalidArgument("config", "cannot load configuration").WithCause(err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		a.cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("output") {
		a.cfg.Output = a.output
	}
	a.cfg.ApplyDefaults()
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	w := a.stderr
	if a.cfg.Logging.Output == "stdout" {
		w = a.stdout
	}
	base := logger.NewWithWriter(&a.cfg.Logging, appName, w)
	logger.SetGlobalLogger(base)

	ctx := logger.ContextWithRunID(cmd.Context(), uuid.NewString())
	cmd.SetContext(ctx)
	logger.Register("reporting", base.WithComponent("reporting").WithContext(ctx))
	a.log = base.WithComponent("cli").WithContext(ctx)
	a.log.Debug("command started", logger.Fields(
		"command", cmd.CommandPath(),
		"environment", a.cfg.Environment,
		"output", a.cfg.Output,
	))
	return nil
}

// render writes v in the configured structured format, or calls text for
// the plain text format.
func (a *app) render(w io.Writer, v any, text func(io.Writer) error) error {
	switch a.cfg.Output {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

// fail logs err and, for structured output, also prints it as an error
// document on stdout.
func (a *app) fail(err error) {
	log := a.log
	if log == nil {
		log = logger.NewWithWriter(&logger.Config{Level: "error", Format: logger.FormatConsole}, appName, a.stderr)
	}
	log.Error("command failed", logger.Fields(logger.FieldError, err.Error()))

	if a.cfg.Output == "" {
		a.cfg.Output = a.output
	}
	if a.cfg.Output != formatJSON && a.cfg.Output != formatYAML {
		return
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		appErr = errors.Internal(err)
	}
	if encErr := a.render(a.stdout, appErr.ToResponse(), nil); encErr != nil {
		log.Error("cannot encode error", logger.ErrorFields("fail", encErr))
	}
}

// loadFile opens path ("-" for stdin) and decodes it with load.
func loadFile[T any](cmd *cobra.Command, path string, load func(io.Reader) (T, error)) (T, error) {
	if path == "-" {
		return load(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, errors.InvalidArgument("file", fmt.Sprintf("cannot open %s", path)).WithCause(err)
	}
	defer f.Close()
	return load(f)
}

// formatList renders values as "[a, b, c]".
func formatList[T any](values []T) string {
	return "[" + strings.Join(util.Map(values, func(v T) string { return fmt.Sprint(v) }), ", ") + "]"
}
