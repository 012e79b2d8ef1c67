package teamcode

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	t.Run("length", func(t *testing.T) {
		for _, length := range []int{4, 6, 8, 12} {
			code := Generate(length)
			assert.Len(t, code, length)
		}
	})

	t.Run("alphabet only", func(t *testing.T) {
		code := Generate(64)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q", c)
		}
	})

	t.Run("no ambiguous characters", func(t *testing.T) {
		code := Generate(256)
		for _, c := range []string{"0", "O", "1", "I", "L"} {
			assert.NotContains(t, code, c)
		}
	})

	t.Run("codes differ", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			seen[Generate(8)] = true
		}
		assert.Greater(t, len(seen), 90)
	})

	t.Run("safe under concurrent handlers", func(t *testing.T) {
		var wg sync.WaitGroup
		codes := make([][]string, 8)
		for i := range codes {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					codes[i] = append(codes[i], Generate(6))
				}
			}(i)
		}
		wg.Wait()

		for _, batch := range codes {
			for _, code := range batch {
				assert.Len(t, code, 6)
			}
		}
	})
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already normalized", "ABC234", "ABC234"},
		{"lowercase", "abc234", "ABC234"},
		{"surrounding whitespace", "  abc234\n", "ABC234"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}
