package utils

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// Ternary returns a if cond else b.
func Ternary(cond bool, a, b any) any {
	if cond {
		return a
	}
	return b
}

// ArrayContains checks if an element exists in the array based on the
// provided condition function, returning its index.
func ArrayContains[T any](set []T, match func(elem T) bool) (int, bool) {
	for idx, elem := range set {
		if match(elem) {
			return idx, true
		}
	}
	return -1, false
}

// ForEach runs fn over the set sequentially, stopping at the first error.
func ForEach[T any](set []T, fn func(elem T) error) error {
	for _, elem := range set {
		if err := fn(elem); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalFile reads a JSON file into dest.
func UnmarshalFile(filePath string, dest any) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %s", filePath, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal file %s: %s", filePath, err)
	}
	return nil
}

// WriteFile atomically replaces filePath with the JSON serialization of v.
func WriteFile(filePath string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal content for %s: %s", filePath, err)
	}

	tmp := filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %s", tmp, err)
	}
	return os.Rename(tmp, filePath)
}

func IsValidSubcommand(available []*cobra.Command, sub string) bool {
	for _, command := range available {
		if sub == command.Use {
			return true
		}
	}
	return false
}
