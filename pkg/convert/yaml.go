package convert

import (
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// DecodeYAML accepts a YAML (or JSON) document and decodes it with the same
// strict enum handling as DecodeResponse.
func DecodeYAML(data []byte, out interface{}) error {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return errors.Wrap(err, "converting YAML document")
	}
	return DecodeResponse(jsonData, out)
}
