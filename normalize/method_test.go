// SPDX-License-Identifier: MIT

package normalize_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/exprnorm/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]normalize.Method{
		"cpm":       normalize.MethodCPM,
		" CPM ":     normalize.MethodCPM,
		"log2cpm":   normalize.MethodLog2CPM,
		"Log2CPM\n": normalize.MethodLog2CPM,
	} {
		got, err := normalize.ParseMethod(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got)
	}

	_, err := normalize.ParseMethod("tpm")
	require.ErrorIs(t, err, normalize.ErrUnknownMethod)
}

func TestMethod_StringAndText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cpm", normalize.MethodCPM.String())
	assert.Equal(t, "log2cpm", normalize.MethodLog2CPM.String())
	assert.Equal(t, "Method(7)", normalize.Method(7).String())

	type config struct {
		Method normalize.Method `json:"method"`
	}
	raw, err := json.Marshal(config{Method: normalize.MethodLog2CPM})
	require.NoError(t, err)
	assert.JSONEq(t, `{"method":"log2cpm"}`, string(raw))

	var c config
	require.NoError(t, json.Unmarshal([]byte(`{"method":"CPM"}`), &c))
	assert.Equal(t, normalize.MethodCPM, c.Method)

	require.Error(t, json.Unmarshal([]byte(`{"method":"rpkm"}`), &c))
	_, err = json.Marshal(config{Method: normalize.Method(-1)})
	require.Error(t, err)
}
