// Copyright (c) 2022 The Keymaker Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/Oshelle/keymakercoin/chaincfg"
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

func parseOptions(t *testing.T, args ...string) *options {
	t.Helper()
	var opts options
	_, err := flags.ParseArgs(&opts, args)
	require.NoError(t, err)
	return &opts
}

func TestRunCompiledIn(t *testing.T) {
	tests := []struct {
		args []string
		hash string
	}{
		{nil, "0a003e4519bf91f168721877a8228c9ccd6fcbb2da5ee3303217004b1fd37366"},
		{[]string{"-n", "testnet"}, "2cfbac6535b95560d5d319a7a6450377c72b00ff78d3ee2fb75c7aae0c948b69"},
		{[]string{"--network=regtest"}, "998540c3bbb4d09d9f4526676083fbd557aad9a634da67570a32510036837443"},
	}

	for _, test := range tests {
		opts := parseOptions(t, test.args...)
		require.False(t, opts.overridden())

		var out bytes.Buffer
		require.NoError(t, run(opts, &out))
		require.Contains(t, out.String(), test.hash, "%v", test.args)
		require.Contains(t, out.String(), "status      verified", "%v", test.args)
		require.NotContains(t, out.String(), "raw", "%v", test.args)
	}
}

func TestRunOverrides(t *testing.T) {
	// Overriding with the compiled-in values reproduces the genesis block.
	opts := parseOptions(t, "--nonce=500002008", "--bits=1f00ffff",
		"--timestamp=1667184351", "--version=1", "--reward=0")
	require.True(t, opts.overridden())
	require.Equal(t, uint32(0x1f00ffff), *opts.Bits)

	var out bytes.Buffer
	require.NoError(t, run(opts, &out))
	require.Contains(t, out.String(), "matches compiled-in main genesis")

	out.Reset()
	opts = parseOptions(t, "--nonce=1", "--raw")
	require.NoError(t, run(opts, &out))
	require.Contains(t, out.String(), "differs from compiled-in main genesis")
	require.Contains(t, out.String(), "nonce       1\n")
	require.Contains(t, out.String(), "raw         01000000")

	out.Reset()
	opts = parseOptions(t, "-n", "regtest", "--message=hello")
	require.NoError(t, run(opts, &out))
	require.Contains(t, out.String(), "68656c6c6f")
	require.Contains(t, out.String(), "differs from compiled-in regtest genesis")
}

func TestRunUnknownNetwork(t *testing.T) {
	opts := parseOptions(t, "--network=simnet")
	err := run(opts, &bytes.Buffer{})
	require.True(t, chaincfg.IsErrorCode(err, chaincfg.ErrUnknownNetwork), "got %v", err)
}
