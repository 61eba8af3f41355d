package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	base := fmt.Errorf("base error")

	wrapped := Wrap(base, "context")
	assert.EqualError(t, wrapped, "context: base error")
	assert.True(t, errors.Is(wrapped, base))

	assert.NoError(t, Wrap(nil, "context"))
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrManifestParse, "file %s", "manifest.json")
	assert.EqualError(t, wrapped, "file manifest.json: failed to parse manifest")
	assert.True(t, errors.Is(wrapped, ErrManifestParse))

	assert.NoError(t, Wrapf(nil, "file %s", "manifest.json"))
}
