package sqlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	cases := map[string]string{
		"agave":     "%agave%",
		"100%":      `%100\%%`,
		"blue_ag":   `%blue\_ag%`,
		`back\path`: `%back\\path%`,
		"":          "%%",
	}
	for in, want := range cases {
		assert.Equal(t, want, Contains(in), in)
	}
}
