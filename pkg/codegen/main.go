package main

import (
	"os"

	"github.com/rancher/idp-client/pkg/codegen/generator"
	"github.com/rancher/idp-client/pkg/settings"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "codegen"
	app.Usage = "Generate the client package from a service description"
	app.Before = func(ctx *cli.Context) error {
		if ctx.GlobalBool("debug") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return settings.SetProvider(settings.NewEnvProvider())
	}
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug",
		},
		cli.StringFlag{
			Name:  "catalog",
			Usage: "Service description to generate from (default: the catalog setting)",
		},
		cli.StringFlag{
			Name:  "output",
			Usage: "Directory receiving the generated package (default: the generated-path setting)",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func run(ctx *cli.Context) error {
	service, err := generator.LoadService(flagOrSetting(ctx.String("catalog"), settings.Catalog))
	if err != nil {
		return err
	}
	_, err = generator.Generate(service, flagOrSetting(ctx.String("output"), settings.GeneratedPath))
	return err
}

// flagOrSetting prefers an explicit flag over the registered setting.
func flagOrSetting(value string, s settings.Setting) string {
	if value != "" {
		return value
	}
	return s.Get()
}
