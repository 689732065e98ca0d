package commands

import (
	"github.com/pkg/errors"
	"github.com/rancher/idp-client/pkg/settings"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var VERSION = "v0.0.0-dev"

func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "idpctl"
	app.Usage = "Inspect and check the identity provider client models"
	app.Version = VERSION
	app.Before = before
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:   "debug",
			Usage:  "Enable debug logs",
			EnvVar: "IDP_DEBUG",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "Log level (overridden by --debug)",
			EnvVar: settings.GetEnvKey(settings.LogLevel.Name),
		},
		cli.StringFlag{
			Name:   "output, o",
			Usage:  "Output format, yaml or json",
			EnvVar: settings.GetEnvKey(settings.OutputFormat.Name),
		},
	}
	app.Commands = []cli.Command{
		EnumsCommand(),
		ValuesCommand(),
		ParseCommand(),
		DecodeCommand(),
		ValidateCommand(),
		CheckCommand(),
		SettingsCommand(),
	}
	return app
}

func before(ctx *cli.Context) error {
	if err := settings.SetProvider(settings.NewEnvProvider()); err != nil {
		return err
	}
	if v := ctx.GlobalString("log-level"); v != "" {
		if err := settings.LogLevel.Set(v); err != nil {
			return err
		}
	}
	if v := ctx.GlobalString("output"); v != "" {
		if err := settings.OutputFormat.Set(v); err != nil {
			return err
		}
	}
	if err := checkOutputFormat(settings.OutputFormat.Get()); err != nil {
		return err
	}

	if err := settings.ApplyLogLevel(); err != nil {
		return err
	}
	if ctx.GlobalBool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return nil
}

func checkOutputFormat(format string) error {
	switch format {
	case formatYAML, formatJSON:
		return nil
	}
	return errors.Errorf("unsupported output format %q", format)
}
