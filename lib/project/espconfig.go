package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vyPal/Espresso/util"
)

// FileName is the config file every Espresso project carries at its root.
const FileName = "espconf.yaml"

// EspConf describes a project: what it is called and which source file runs
// when no file is named on the command line.
type EspConf struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Main        string `yaml:"main"`
	SourceDir   string `yaml:"source"`
	Author      string `yaml:"author"`
	License     string `yaml:"license"`
}

// CreateDefault fills c for a fresh project called name.
func (c *EspConf) CreateDefault(name string) {
	if name == "." {
		name = "NewProject"
	}
	c.Name = name
	c.Description = "A new Espresso project"
	c.Version = "1.0.0"
	c.Main = "src/main.espr"
	c.SourceDir = "src"
	c.Author = "Anonymous"
	c.License = "MIT"
}

// Save writes c to path. An existing file is kept unless overwrite is set
// or the user confirms at the prompt.
func (c *EspConf) Save(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil {
		if !overwrite && !util.Default.YesNo(path+" already exists. Overwrite?", false) {
			return nil
		}
	}

	yml, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, yml, 0644)
}

// Load reads dir's espconf.yaml.
func Load(dir string) (EspConf, error) {
	file, err := os.Open(filepath.Join(dir, FileName))
	if err != nil {
		return EspConf{}, err
	}
	defer file.Close()

	var conf EspConf
	if err := yaml.NewDecoder(file).Decode(&conf); err != nil {
		return EspConf{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return conf, nil
}
