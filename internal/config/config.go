package config

import (
	"fmt"
	"io/ioutil"

	"github.com/mmadfox/minigeo/internal/roistore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Logger   logger            `yaml:"logger"`
	Index    index             `yaml:"index"`
	Sources  []roistore.Source `yaml:"sources"`
	Snapshot snapshot          `yaml:"snapshot"`
}

type snapshot struct {
	Path  string `yaml:"path"`
	Write bool   `yaml:"write"`
}

func FromBytes(data []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, err
	}
	if err := conf.Index.validate(); err != nil {
		return nil, err
	}
	if len(conf.Sources) == 0 && len(conf.Snapshot.Path) == 0 {
		return nil, fmt.Errorf("minigeo/config: neither sources nor snapshot defined")
	}
	return &conf, nil
}

func FromFile(filename string) (*Config, error) {
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return FromBytes(raw)
}
