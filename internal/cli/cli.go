// Package cli implements the recrypt command line: re-encrypting a file from
// one password to another and sealing plain files.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viant/recrypt"
	"github.com/viant/recrypt/model/job"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Exit codes returned by Run.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const envPrefix = "RECRYPT"

type app struct {
	viper    *viper.Viper
	stdout   io.Writer
	stderr   io.Writer
	exitCode int
}

// Run executes the command line with args (without the program name) and
// returns the process exit code. The job result line is written to stdout,
// logs go to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{viper: viper.New(), stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		fmt.Fprintln(stderr, "usage:", root.UseLine())
		return ExitUsage
	}
	return a.exitCode
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recrypt <fileName> <inputPassword> <outputPassword>",
		Short: "Re-encrypt a file from one password to another",
		Long: `recrypt opens a file encrypted with inputPassword and encrypts it again with
outputPassword, in place unless --dest is given. The outcome is printed as a
single line containing "status: SUCCESS" or "status: FAILURE".

Passwords may be literal values or viant/scy secret references of the form
scy:<URL>|<key>, e.g. scy:file:///etc/recrypt/in.enc|blowfish://default.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(ctx context.Context, srv *recrypt.Service) *job.Result {
				request := job.NewRequest(args[0], args[1], args[2])
				request.DestURL = a.viper.GetString("dest")
				return srv.Run(ctx, request)
			})
		},
	}
	flags := cmd.PersistentFlags()
	flags.String("dest", "", "destination file (defaults to the source file)")
	flags.StringP("config", "c", "", "configuration file URL (YAML or JSON)")
	flags.String("results", "", "result store URL; results are kept in memory when empty")
	flags.String("id-prefix", "", "job id prefix")
	flags.String("trace-file", "", "write OpenTelemetry spans to this file")
	flags.BoolP("verbose", "v", false, "verbose logging")
	for _, name := range []string{"dest", "config", "results", "id-prefix", "trace-file", "verbose"} {
		_ = a.viper.BindPFlag(name, flags.Lookup(name))
	}
	a.viper.SetEnvPrefix(envPrefix)
	a.viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.viper.AutomaticEnv()

	cmd.AddCommand(a.sealCmd())
	return cmd
}

func (a *app) sealCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "seal <fileName> <password>",
		Short:         "Encrypt a plain file with a password",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(ctx context.Context, srv *recrypt.Service) *job.Result {
				return srv.Seal(ctx, args[0], a.viper.GetString("dest"), args[1])
			})
		},
	}
}

// withService builds the service, runs fn and reports its result.
func (a *app) withService(ctx context.Context, fn func(ctx context.Context, srv *recrypt.Service) *job.Result) error {
	cfg, err := a.config(ctx)
	if err != nil {
		return err
	}
	logger := newLogger(a.stderr, a.viper.GetBool("verbose"))
	defer func() { _ = logger.Sync() }()

	srv, err := recrypt.New(ctx, recrypt.WithConfig(cfg), recrypt.WithLogger(logger))
	if err != nil {
		return err
	}
	defer func() {
		if err := srv.Close(ctx); err != nil {
			logger.Warn("failed to flush traces", zap.Error(err))
		}
	}()

	result := fn(ctx, srv)
	fmt.Fprintln(a.stdout, result.String())
	if result.Succeeded() {
		a.exitCode = ExitSuccess
	} else {
		a.exitCode = ExitFailure
	}
	return nil
}

func (a *app) config(ctx context.Context) (*recrypt.Config, error) {
	cfg := recrypt.DefaultConfig()
	if URL := a.viper.GetString("config"); URL != "" {
		loaded, err := recrypt.LoadConfig(ctx, URL)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if URL := a.viper.GetString("results"); URL != "" {
		cfg.Results.URL = URL
	}
	if prefix := a.viper.GetString("id-prefix"); prefix != "" {
		cfg.IDPrefix = prefix
	}
	if traceFile := a.viper.GetString("trace-file"); traceFile != "" {
		cfg.Tracing.Enabled = true
		cfg.Tracing.OutputFile = traceFile
	}
	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	encoderConfig := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderConfig)
	if verbose {
		level = zapcore.DebugLevel
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core).Named("recrypt")
}
