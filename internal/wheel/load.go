package wheel

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a wheel definition from a YAML file and validates it.
//
// The file uses the same four keys as Definition:
//
//	core: [Joy, Fear]
//	middle:
//	  Joy: [Happy]
//	  Fear: [Anxious]
//	outer:
//	  Happy: [Elated]
//	  Anxious: [Worried]
//	advice:
//	  Fear: Breathe slowly.
func Load(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading wheel file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML wheel definition. Unknown keys are rejected.
func Parse(data []byte) (*Tree, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("parsing wheel file: %w", err)
	}
	return New(def)
}

// Marshal encodes t in the format read by Load.
func Marshal(t *Tree) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t.Definition()); err != nil {
		return nil, fmt.Errorf("encoding wheel: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding wheel: %w", err)
	}
	return buf.Bytes(), nil
}
