package parameter_bag

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetGetHasRemoveCount(t *testing.T) {
	t.Parallel()

	parameterBag := New()

	if count := parameterBag.Count(); count != 0 {
		t.Fatalf("expected an empty bag, got count %d", count)
	}

	parameterBag.Set("x", 1)

	if !parameterBag.Has("x") {
		t.Fatalf("expected the bag to have \"x\"")
	}

	if value := parameterBag.Get("x"); value != 1 {
		t.Fatalf("expected 1, got %v", value)
	}

	if count := parameterBag.Count(); count != 1 {
		t.Fatalf("expected count 1, got %d", count)
	}

	parameterBag.Remove("x")

	if parameterBag.Has("x") {
		t.Fatalf("expected the bag to no longer have \"x\"")
	}

	if value := parameterBag.Get("x"); value != nil {
		t.Fatalf("expected nil for a removed key, got %v", value)
	}

	if count := parameterBag.Count(); count != 0 {
		t.Fatalf("expected count 0, got %d", count)
	}
}

func TestSetOverwriteKeepsPosition(t *testing.T) {
	t.Parallel()

	parameterBag := New()
	parameterBag.Set("first", 1)
	parameterBag.Set("second", 2)
	parameterBag.Set("first", 3)

	var keys []string
	var values []any
	for key, value := range parameterBag.Entries() {
		keys = append(keys, key)
		values = append(values, value)
	}

	if diff := cmp.Diff([]string{"first", "second"}, keys); diff != "" {
		t.Fatalf("unexpected keys (-expected +got):\n%s", diff)
	}

	if diff := cmp.Diff([]any{3, 2}, values); diff != "" {
		t.Fatalf("unexpected values (-expected +got):\n%s", diff)
	}
}

func TestRemoveThenSetMovesToEnd(t *testing.T) {
	t.Parallel()

	parameterBag := New()
	parameterBag.Set("a", 1)
	parameterBag.Set("b", 2)
	parameterBag.Remove("a")
	parameterBag.Set("a", 3)

	var keys []string
	for key := range parameterBag.Entries() {
		keys = append(keys, key)
	}

	if diff := cmp.Diff([]string{"b", "a"}, keys); diff != "" {
		t.Fatalf("unexpected keys (-expected +got):\n%s", diff)
	}
}

func TestRemoveAbsentKey(t *testing.T) {
	t.Parallel()

	parameterBag := New()
	parameterBag.Set("a", 1)
	parameterBag.Remove("missing")

	if count := parameterBag.Count(); count != 1 {
		t.Fatalf("expected count 1, got %d", count)
	}
}

func TestNewFromMap(t *testing.T) {
	t.Parallel()

	parameterBag := NewFromMap(map[string]any{"b": 2, "a": 1, "c": 3})

	var keys []string
	for key := range parameterBag.Entries() {
		keys = append(keys, key)
	}

	if diff := cmp.Diff([]string{"a", "b", "c"}, keys); diff != "" {
		t.Fatalf("unexpected keys (-expected +got):\n%s", diff)
	}
}

func TestGetAllSnapshot(t *testing.T) {
	t.Parallel()

	parameterBag := New()
	parameterBag.Set("a", 1)

	snapshot := parameterBag.GetAll()
	snapshot["b"] = 2

	if parameterBag.Has("b") {
		t.Fatalf("expected mutation of the snapshot to not affect the bag")
	}

	if diff := cmp.Diff(map[string]any{"a": 1}, parameterBag.GetAll()); diff != "" {
		t.Fatalf("unexpected entries (-expected +got):\n%s", diff)
	}
}

func TestGetWithDefault(t *testing.T) {
	t.Parallel()

	parameterBag := New()
	parameterBag.Set("present", 1)
	parameterBag.Set("explicitNil", nil)

	testCases := []struct {
		name          string
		key           string
		defaultValue  any
		expectedValue any
	}{
		{name: "present key", key: "present", defaultValue: 99, expectedValue: 1},
		{name: "absent key", key: "absent", defaultValue: 99, expectedValue: 99},
		{name: "explicit nil value", key: "explicitNil", defaultValue: 99, expectedValue: nil},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value := parameterBag.GetWithDefault(testCase.key, testCase.defaultValue)
			if diff := cmp.Diff(testCase.expectedValue, value); diff != "" {
				t.Fatalf("unexpected value (-expected +got):\n%s", diff)
			}
		})
	}
}
