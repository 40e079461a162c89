package datasource

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/bind"
)

// Map is a DataAccess over an in-memory document.
type Map struct {
	values

	dataMu sync.RWMutex
	data   map[string]any
}

// Compile-time check that Map implements DataAccess.
var _ bind.DataAccess[string] = (*Map)(nil)

// NewMap returns a Map over data. Relative image paths are resolved from
// the working directory.
func NewMap(data map[string]any) *Map {
	if data == nil {
		data = make(map[string]any)
	}
	m := &Map{data: data}
	m.values.init(m, "")
	return m
}

// ParseMap decodes a YAML document into a Map.
func ParseMap(doc []byte) (*Map, error) {
	var data map[string]any
	if err := yaml.Unmarshal(doc, &data); err != nil {
		return nil, fmt.Errorf("datasource: %w", err)
	}
	return NewMap(data), nil
}

// LoadMap reads a YAML document. Relative image paths are resolved from
// the directory holding path.
func LoadMap(path string) (*Map, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("datasource: %w", err)
	}
	m, err := ParseMap(doc)
	if err != nil {
		return nil, err
	}
	m.dir = filepath.Dir(path)
	return m, nil
}

// Set replaces a top-level value. It is safe to call while a pass reads
// the Map.
func (m *Map) Set(name string, v any) {
	m.dataMu.Lock()
	defer m.dataMu.Unlock()
	m.data[name] = v
}

// Data returns the top-level values. The map must not be modified.
func (m *Map) Data() map[string]any {
	m.dataMu.RLock()
	defer m.dataMu.RUnlock()
	return m.data
}

func (m *Map) value(name string) (any, bool) {
	m.dataMu.RLock()
	defer m.dataMu.RUnlock()
	v, ok := m.data[name]
	return v, ok
}

func (m *Map) list(name string) ([]any, bool) {
	v, ok := m.value(name)
	if !ok {
		return nil, false
	}
	items, ok := v.([]any)
	return items, ok
}
