package extract

import (
	"strings"

	"productparser/internal/model"
)

// Characteristics maps characteristic names to values, keeping the order in
// which names were first seen. Setting an existing name replaces its value.
type Characteristics struct {
	names  []string
	values map[string]string
}

func NewCharacteristics() *Characteristics {
	return &Characteristics{values: make(map[string]string)}
}

func (c *Characteristics) Set(name, value string) {
	if _, ok := c.values[name]; !ok {
		c.names = append(c.names, name)
	}
	c.values[name] = value
}

func (c *Characteristics) Get(name string) (string, bool) {
	v, ok := c.values[name]
	return v, ok
}

func (c *Characteristics) Len() int { return len(c.names) }

func (c *Characteristics) Entries() []model.CharacteristicEntry {
	entries := make([]model.CharacteristicEntry, 0, len(c.names))
	for _, name := range c.names {
		entries = append(entries, model.CharacteristicEntry{Name: name, Value: c.values[name]})
	}
	return entries
}

func splitName(name string) []string {
	return strings.Fields(name)
}
