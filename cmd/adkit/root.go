package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/fluxweave-api/internal/bootstrap"
	"github.com/vfg2006/fluxweave-api/internal/config"
	"github.com/vfg2006/fluxweave-api/internal/usecases/branding"
	"github.com/vfg2006/fluxweave-api/internal/usecases/copywriting"
	"github.com/vfg2006/fluxweave-api/internal/usecases/generating"
	"github.com/vfg2006/fluxweave-api/internal/usecases/varying"
	"github.com/vfg2006/fluxweave-api/pkg/log"
	"github.com/vfg2006/fluxweave-api/pkg/utils"
)

// cliServices são os casos de uso acessíveis pela CLI
type cliServices struct {
	generator  generating.Generator
	varier     varying.Varier
	copywriter copywriting.Copywriter
	analyzer   branding.Analyzer
}

type serviceLoader func(ctx context.Context, logLevel string) (cliServices, error)

func loadServices(ctx context.Context, logLevel string) (cliServices, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return cliServices{}, err
	}

	level := cfg.App.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	log.Setup(level)

	providers, err := bootstrap.NewProviders(ctx, cfg)
	if err != nil {
		return cliServices{}, err
	}
	services := bootstrap.NewServices(cfg, providers)

	return cliServices{
		generator:  services.Generator,
		varier:     services.Varier,
		copywriter: services.Copywriter,
		analyzer:   services.Analyzer,
	}, nil
}

type cli struct {
	load     serviceLoader
	services cliServices
	logLevel string
	timeout  time.Duration
}

func newRootCmd(load serviceLoader) *cobra.Command {
	c := &cli{load: load}

	root := &cobra.Command{
		Use:           "adkit",
		Short:         "Generate platform-tailored ad creatives",
		Long:          `Runs the ad generation pipeline (copy, image, variations) against the configured text and image providers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			services, err := c.load(cmd.Context(), c.logLevel)
			if err != nil {
				return err
			}
			c.services = services
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 5*time.Minute, "overall timeout for the command")

	root.AddCommand(
		c.adCmd(),
		c.kitCmd(),
		c.varyCmd(),
		c.enhanceCmd(),
		c.hashtagsCmd(),
		c.captionCmd(),
		c.descriptionCmd(),
		c.brandCmd(),
	)

	return root
}

// context devolve o contexto do comando limitado pelo --timeout
func (c *cli) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func printJSON(w io.Writer, v any) error {
	_, err := fmt.Fprintln(w, utils.PrettyJson(v))
	return err
}
