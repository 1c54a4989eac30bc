// SPDX-License-Identifier: MIT
package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	var c Clipboard = &Memory{}
	require.NoError(t, c.Copy(":root {}"))
	assert.Equal(t, ":root {}", c.(*Memory).Text)

	failing := &Memory{Err: errors.New("denied")}
	require.Error(t, failing.Copy("x"))
	assert.Empty(t, failing.Text)
}

func TestNoop(t *testing.T) {
	assert.NoError(t, Noop{}.Copy("anything"))
}
