package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"todo-me/internal/model"
)

// fileSchema is the YAML layout of a catalog file:
//
//	projects:
//	  - name: work
//	    children:
//	      - name: reports
//	tags:
//	  - urgent
//	  - home
type fileSchema struct {
	Projects []projectNode `yaml:"projects"`
	Tags     []string      `yaml:"tags"`
}

type projectNode struct {
	Name     string        `yaml:"name"`
	Children []projectNode `yaml:"children"`
}

// LoadFile reads a project/tag catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %q: %w", path, err)
	}

	c := New()
	for _, node := range schema.Projects {
		if err := c.addTree(node, nil); err != nil {
			return nil, err
		}
	}
	for _, tag := range schema.Tags {
		if tag == "" {
			return nil, fmt.Errorf("catalog file %q contains an empty tag name", path)
		}
		c.AddTag(tag)
	}
	return c, nil
}

func (c *Catalog) addTree(node projectNode, parent *model.ProjectID) error {
	if node.Name == "" {
		return fmt.Errorf("catalog contains a project with no name")
	}
	id := c.AddProject(node.Name, parent)
	for _, child := range node.Children {
		if err := c.addTree(child, &id); err != nil {
			return err
		}
	}
	return nil
}
