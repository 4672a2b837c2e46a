package parameter_bag

import (
	"iter"
	"maps"
	"slices"
)

// ParameterBag is an insertion-ordered mapping from string keys to arbitrary
// values. Keys are unique; setting an existing key overwrites its value
// without changing its position.
type ParameterBag struct {
	keys   []string
	values map[string]any
}

func New() *ParameterBag {
	return &ParameterBag{values: make(map[string]any)}
}

// NewFromMap creates a bag from an initial mapping. Go maps carry no order,
// so the initial keys are inserted in lexicographical order.
func NewFromMap(parameters map[string]any) *ParameterBag {
	parameterBag := New()
	for _, key := range slices.Sorted(maps.Keys(parameters)) {
		parameterBag.Set(key, parameters[key])
	}

	return parameterBag
}

// GetAll returns a snapshot copy of the backing mapping.
func (parameterBag *ParameterBag) GetAll() map[string]any {
	return maps.Clone(parameterBag.values)
}

func (parameterBag *ParameterBag) Get(key string) any {
	return parameterBag.values[key]
}

func (parameterBag *ParameterBag) GetWithDefault(key string, defaultValue any) any {
	if value, ok := parameterBag.values[key]; ok {
		return value
	}
	return defaultValue
}

func (parameterBag *ParameterBag) Has(key string) bool {
	_, ok := parameterBag.values[key]
	return ok
}

func (parameterBag *ParameterBag) Set(key string, value any) {
	if parameterBag.values == nil {
		parameterBag.values = make(map[string]any)
	}

	if _, ok := parameterBag.values[key]; !ok {
		parameterBag.keys = append(parameterBag.keys, key)
	}
	parameterBag.values[key] = value
}

func (parameterBag *ParameterBag) Remove(key string) {
	if _, ok := parameterBag.values[key]; !ok {
		return
	}

	delete(parameterBag.values, key)
	parameterBag.keys = slices.DeleteFunc(
		parameterBag.keys,
		func(presentKey string) bool {
			return presentKey == key
		},
	)
}

func (parameterBag *ParameterBag) Count() int {
	return len(parameterBag.values)
}

// Entries iterates over the entries in insertion order.
func (parameterBag *ParameterBag) Entries() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, key := range parameterBag.keys {
			if !yield(key, parameterBag.values[key]) {
				return
			}
		}
	}
}
