package settings

import (
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	settings = map[string]Setting{}
	provider Provider

	LogLevel      = newSetting("log-level", "info")
	OutputFormat  = newSetting("output-format", "yaml")
	Catalog       = newSetting("catalog", "pkg/codegen/catalog/cognitoidp.yaml")
	GeneratedPath = newSetting("generated-path", "pkg/client/generated/cognitoidp/v1")
	StrictSDK     = newSetting("strict-sdk", "false")
	Service       = newReadOnlySetting("service", "cognitoidp")
)

type Provider interface {
	Get(name string) string
	Set(name, value string) error
	SetAll(settings map[string]Setting) error
}

type Setting struct {
	Name     string
	Default  string
	ReadOnly bool
}

func (s Setting) Set(value string) error {
	if s.ReadOnly {
		return errors.Errorf("setting %s is read-only", s.Name)
	}
	if provider == nil {
		s, ok := settings[s.Name]
		if ok {
			s.Default = value
			settings[s.Name] = s
		}
	} else {
		return provider.Set(s.Name, value)
	}
	return nil
}

func (s Setting) Get() string {
	if provider == nil {
		s := settings[s.Name]
		return s.Default
	}
	return provider.Get(s.Name)
}

func SetProvider(p Provider) error {
	if err := p.SetAll(settings); err != nil {
		return err
	}
	provider = p
	return nil
}

// All returns the registered settings sorted by name.
func All() []Setting {
	result := make([]Setting, 0, len(settings))
	for _, s := range settings {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

func newSetting(name, def string) Setting {
	s := Setting{
		Name:    name,
		Default: def,
	}
	settings[s.Name] = s
	return s
}

func newReadOnlySetting(name, def string) Setting {
	s := newSetting(name, def)
	s.ReadOnly = true
	settings[s.Name] = s
	return s
}

// EnvProvider reads IDP_<NAME> from the environment, falling back to values
// set in process and then to the defaults.
type EnvProvider struct {
	values map[string]string
}

func NewEnvProvider() *EnvProvider {
	return &EnvProvider{values: map[string]string{}}
}

func (e *EnvProvider) Get(name string) string {
	if v, ok := e.values[name]; ok {
		return v
	}
	if v, ok := os.LookupEnv(GetEnvKey(name)); ok {
		return v
	}
	return settings[name].Default
}

func (e *EnvProvider) Set(name, value string) error {
	if _, ok := settings[name]; !ok {
		return errors.Errorf("unknown setting %s", name)
	}
	e.values[name] = value
	return nil
}

func (e *EnvProvider) SetAll(all map[string]Setting) error {
	for name, s := range all {
		if s.ReadOnly {
			continue
		}
		if v, ok := os.LookupEnv(GetEnvKey(name)); ok && v == "" {
			return errors.Errorf("%s is set but empty", GetEnvKey(name))
		}
	}
	return nil
}

func GetEnvKey(name string) string {
	return "IDP_" + strings.ToUpper(strings.Replace(name, "-", "_", -1))
}
