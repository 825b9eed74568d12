package buildplan

import (
	"io"

	"github.com/jamesrr39/directory-tree-creator/treebuilder"
	"github.com/jamesrr39/goutil/errorsx"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Plan is the file form of a build. JSON plans are accepted too, as JSON is valid YAML.
//
//	root: /tmp/tree
//	fanout: [2, 3, 4]
//	dirMode: "0755"
type Plan struct {
	Root    string `yaml:"root"`
	Fanout  []int  `yaml:"fanout"`
	DirMode string `yaml:"dirMode"`
}

// LoadPlan reads a plan file. Unknown keys are rejected, so that typos don't silently fall back to defaults.
func LoadPlan(fs afero.Fs, path string) (*Plan, errorsx.Error) {
	file, err := fs.Open(path)
	if nil != err {
		return nil, errorsx.Wrap(err, "path", path)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var plan *Plan
	err = decoder.Decode(&plan)
	if nil != err && io.EOF != err {
		return nil, errorsx.Wrap(err, "path", path)
	}

	if plan == nil {
		return nil, errorsx.Errorf("plan file %q is empty", path)
	}

	return plan, nil
}

// ToConfig creates the builder configuration. Missing roots are filled in with defaultRoot.
func (p *Plan) ToConfig(defaultRoot string) treebuilder.Config {
	root := p.Root
	if root == "" {
		root = defaultRoot
	}

	return treebuilder.NewConfig(root, p.Fanout)
}
