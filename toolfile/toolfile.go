// Package toolfile loads tool declarations from YAML or JSON documents,
// producing validated chatwire.Tool values.
//
// A tool file looks like:
//
//	tools:
//	  - name: get_title
//	    description: Get the title of a website.
//	    parameters:
//	      type: object
//	      properties:
//	        url: {type: string}
//	      required: [url]
package toolfile

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tnglemongrass/chatwire"
)

type document struct {
	Tools []entry `yaml:"tools"`
}

type entry struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Parameters  map[string]any `yaml:"parameters"`
	Strict      *bool          `yaml:"strict"`
}

// Load reads and parses the tool file at path.
func Load(path string) ([]chatwire.Tool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tool file: %w", err)
	}
	tools, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return tools, nil
}

// Parse decodes a tool document. YAML is a superset of JSON, so both
// formats work.
func Parse(data []byte) ([]chatwire.Tool, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode tools: %w", err)
	}
	if len(doc.Tools) == 0 {
		return nil, fmt.Errorf("no tools declared")
	}

	tools := make([]chatwire.Tool, 0, len(doc.Tools))
	for _, e := range doc.Tools {
		fs := chatwire.FunctionSchema{
			Name:        e.Name,
			Description: e.Description,
			Strict:      e.Strict,
		}
		if e.Parameters != nil {
			b, err := json.Marshal(e.Parameters)
			if err != nil {
				return nil, fmt.Errorf("tool %q: marshal parameters: %w", e.Name, err)
			}
			fs.Parameters = json.RawMessage(b)
		}
		t := chatwire.Tool{Type: chatwire.ToolFunction, Function: fs}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("tool %q: %w", e.Name, err)
		}
		tools = append(tools, t)
	}
	return tools, nil
}
