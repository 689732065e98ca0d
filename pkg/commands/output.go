package commands

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rancher/idp-client/pkg/settings"
	yaml "gopkg.in/yaml.v2"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func printOutput(w io.Writer, v interface{}) error {
	var (
		data []byte
		err  error
	)
	switch format := settings.OutputFormat.Get(); format {
	case formatYAML:
		data, err = yaml.Marshal(v)
	case formatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	default:
		return errors.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return errors.Wrap(err, "formatting output")
	}
	_, err = fmt.Fprint(w, string(data))
	return err
}
