package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mogaika/cubeglb/mesh/cube"
)

const (
	DefaultOutput    = "assets/models/cube8.glb"
	DefaultGenerator = "cubeglb"
)

// Options of a single generator run. Zero fields in a config file keep defaults.
type Options struct {
	Output    string `yaml:"output"`
	Generator string `yaml:"generator"`
	Winding   string `yaml:"winding"`
}

func Default() Options {
	return Options{
		Output:    DefaultOutput,
		Generator: DefaultGenerator,
		Winding:   cube.WindingDefault.String(),
	}
}

// Load reads yaml options from path over defaults.
func Load(path string) (Options, error) {
	o := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return o, errors.Wrapf(err, "cannot read config %q", path)
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return o, errors.Wrapf(err, "cannot parse config %q", path)
	}
	if _, err := ParseWinding(o.Winding); err != nil {
		return o, errors.Wrapf(err, "config %q", path)
	}
	return o, nil
}

func ParseWinding(s string) (cube.Winding, error) {
	switch s {
	case "", "default":
		return cube.WindingDefault, nil
	case "flipped":
		return cube.WindingFlipped, nil
	}
	return cube.WindingDefault, errors.Errorf("unknown winding %q (use default or flipped)", s)
}
