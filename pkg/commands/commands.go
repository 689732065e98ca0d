package commands

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/rancher/idp-client/pkg/awsconv"
	client "github.com/rancher/idp-client/pkg/client/generated/cognitoidp/v1"
	"github.com/rancher/idp-client/pkg/convert"
	"github.com/rancher/idp-client/pkg/enum"
	"github.com/rancher/idp-client/pkg/settings"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type valueEntry struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Value  string `json:"value" yaml:"value"`
}

type settingEntry struct {
	Name     string `json:"name" yaml:"name"`
	Value    string `json:"value" yaml:"value"`
	Env      string `json:"env" yaml:"env"`
	ReadOnly bool   `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
}

func EnumsCommand() cli.Command {
	return cli.Command{
		Name:   "enums",
		Usage:  "List the enumeration types",
		Action: listEnums,
	}
}

func ValuesCommand() cli.Command {
	return cli.Command{
		Name:      "values",
		Usage:     "List the values of an enumeration in declaration order",
		ArgsUsage: "TYPE",
		Action:    listValues,
	}
}

func ParseCommand() cli.Command {
	return cli.Command{
		Name:      "parse",
		Usage:     "Parse a wire string strictly and print its canonical form",
		ArgsUsage: "TYPE VALUE",
		Action:    parseValue,
	}
}

func DecodeCommand() cli.Command {
	return cli.Command{
		Name:      "decode",
		Usage:     "Decode a YAML or JSON document into a shape",
		ArgsUsage: "FILE",
		Flags:     []cli.Flag{shapeFlag()},
		Action:    decodeDocument,
	}
}

func ValidateCommand() cli.Command {
	return cli.Command{
		Name:      "validate",
		Usage:     "Decode a request document and check its required members",
		ArgsUsage: "FILE",
		Flags:     []cli.Flag{shapeFlag()},
		Action:    validateDocument,
	}
}

func CheckCommand() cli.Command {
	return cli.Command{
		Name:  "check",
		Usage: "Check every enumeration against its contract and the AWS SDK",
		Flags: []cli.Flag{
			cli.BoolFlag{
				Name:   "strict-sdk",
				Usage:  "Fail when a catalog defines values the AWS SDK does not know",
				EnvVar: settings.GetEnvKey(settings.StrictSDK.Name),
			},
		},
		Action: check,
	}
}

func SettingsCommand() cli.Command {
	return cli.Command{
		Name:   "settings",
		Usage:  "Show the effective settings",
		Action: listSettings,
	}
}

func shapeFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "shape, s",
		Usage: "Shape name, for example InitiateAuthOutput",
	}
}

func listEnums(ctx *cli.Context) error {
	names := make([]string, 0, len(client.Enums))
	for name := range client.Enums {
		names = append(names, name)
	}
	sort.Strings(names)
	return printOutput(ctx.App.Writer, names)
}

func listValues(ctx *cli.Context) error {
	if len(ctx.Args()) != 1 {
		return cli.ShowCommandHelp(ctx, "values")
	}
	vocabulary, err := lookupEnum(ctx.Args().First())
	if err != nil {
		return err
	}

	symbols := vocabulary.Symbols()
	var entries []valueEntry
	for i, s := range vocabulary.Strings() {
		entries = append(entries, valueEntry{Symbol: symbols[i], Value: s})
	}
	return printOutput(ctx.App.Writer, entries)
}

func parseValue(ctx *cli.Context) error {
	if len(ctx.Args()) != 2 {
		return cli.ShowCommandHelp(ctx, "parse")
	}
	vocabulary, err := lookupEnum(ctx.Args().Get(0))
	if err != nil {
		return err
	}

	canonical, err := vocabulary.ParseString(ctx.Args().Get(1))
	if err != nil {
		return errors.Wrapf(err, "parsing %s", vocabulary.TypeName())
	}
	_, err = fmt.Fprintln(ctx.App.Writer, canonical)
	return err
}

func decodeDocument(ctx *cli.Context) error {
	shape, err := readShape(ctx)
	if err != nil {
		return err
	}
	m, err := convert.ToMap(shape)
	if err != nil {
		return err
	}
	return printOutput(ctx.App.Writer, m)
}

func validateDocument(ctx *cli.Context) error {
	shape, err := readShape(ctx)
	if err != nil {
		return err
	}
	if err := convert.ValidateRequest(shape); err != nil {
		return err
	}
	_, err = fmt.Fprintf(ctx.App.Writer, "%s is valid\n", ctx.String("shape"))
	return err
}

func check(ctx *cli.Context) error {
	if ctx.Bool("strict-sdk") {
		if err := settings.StrictSDK.Set("true"); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(client.Enums))
	for name := range client.Enums {
		names = append(names, name)
	}
	sort.Strings(names)

	failed := 0
	for _, name := range names {
		if err := enum.Verify(client.Enums[name]); err != nil {
			logrus.Errorf("Contract check failed: %v", err)
			failed++
			continue
		}
		logrus.Debugf("Checked %s", name)
	}

	unknownToSDK := 0
	for _, drift := range awsconv.Compare(client.Enums) {
		if len(drift.Added) > 0 {
			logrus.Infof("%s: the AWS SDK also knows %v", drift.Type, drift.Added)
		}
		if len(drift.Missing) > 0 {
			logrus.Warnf("%s: values unknown to the AWS SDK: %v", drift.Type, drift.Missing)
			unknownToSDK++
		}
	}

	if failed > 0 {
		return errors.Errorf("%d of %d enumerations failed the contract check", failed, len(names))
	}
	if unknownToSDK > 0 && settings.StrictSDK.GetBool() {
		return errors.Errorf("%d enumerations define values unknown to the AWS SDK", unknownToSDK)
	}
	_, err := fmt.Fprintf(ctx.App.Writer, "checked %d enumerations\n", len(names))
	return err
}

func listSettings(ctx *cli.Context) error {
	var entries []settingEntry
	for _, s := range settings.All() {
		entries = append(entries, settingEntry{
			Name:     s.Name,
			Value:    s.Get(),
			Env:      settings.GetEnvKey(s.Name),
			ReadOnly: s.ReadOnly,
		})
	}
	return printOutput(ctx.App.Writer, entries)
}

func lookupEnum(name string) (enum.Vocabulary, error) {
	vocabulary, ok := client.Enums[name]
	if !ok {
		return nil, errors.Errorf("unknown enumeration %s", name)
	}
	return vocabulary, nil
}

func readShape(ctx *cli.Context) (interface{}, error) {
	name := ctx.String("shape")
	newShape, ok := client.Shapes[name]
	if !ok {
		return nil, errors.Errorf("unknown shape %q", name)
	}
	if len(ctx.Args()) != 1 {
		return nil, errors.New("expected exactly one file argument, use - for stdin")
	}

	data, err := readInput(ctx.Args().First())
	if err != nil {
		return nil, err
	}
	shape := newShape()
	if err := convert.DecodeYAML(data, shape); err != nil {
		return nil, err
	}
	return shape, nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return data, nil
}
