package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

func badGameID(raw string) error {
	return fmt.Errorf("bad game id %q: only letters and underscores are allowed", raw)
}

// write печатает v в выбранном формате. YAML строится из JSON-представления,
// чтобы имена и порядок полей совпадали с ответами API.
func write(w io.Writer, format string, v any) error {
	if format == outputYAML {
		out, err := toYAML(v)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func toYAML(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, err
	}
	resetStyle(&node)
	return yaml.Marshal(&node)
}

// resetStyle убирает flow-стиль и кавычки, унаследованные от JSON.
func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		resetStyle(c)
	}
}
