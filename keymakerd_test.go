// Copyright (c) 2022 The Keymaker Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Oshelle/keymakercoin/chaincfg"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKeymakerdMain(t *testing.T) {
	confFile := writeConfigFile(t, "")
	logDir := t.TempDir()

	registry, err := keymakerdMain([]string{"--configfile=" + confFile,
		"--logdir=" + logDir, "--regtest", "--debuglevel=debug"})
	require.NoError(t, err)
	defer setLogLevels(defaultLogLevel)

	require.Equal(t, chaincfg.RegressionNet, registry.Net())
	require.Equal(t, "32421", registry.Current().DefaultPort)

	logged, err := os.ReadFile(filepath.Join(logDir, "regtest", "keymakerd.log"))
	require.NoError(t, err)
	require.Contains(t, string(logged), "Using regtest network parameters")
}

func TestKeymakerdMainConfigError(t *testing.T) {
	confFile := writeConfigFile(t, "")
	_, err := keymakerdMain([]string{"--configfile=" + confFile, "--testnet",
		"--regtest"})
	require.Error(t, err)
}

func TestSelectNetwork(t *testing.T) {
	registry := chaincfg.NewRegistry()
	require.NoError(t, selectNetwork(registry, chaincfg.TestNet))
	require.Equal(t, chaincfg.TestNet, registry.Net())

	err := selectNetwork(registry, "simnet")
	require.True(t, chaincfg.IsErrorCode(err, chaincfg.ErrUnknownNetwork), "got %v", err)
	require.Equal(t, chaincfg.TestNet, registry.Net())
}

func TestRecoverIntegrity(t *testing.T) {
	builder := chaincfg.DefaultGenesisBuilder()
	builder.Message = "tampered"

	build := func() (err error) {
		defer recoverIntegrity(&err)
		_, err = chaincfg.NewWithBuilder(chaincfg.RegressionNet, builder)
		return err
	}
	err := build()
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), integrityFailureMsg), "got %v", err)

	var ie *chaincfg.IntegrityError
	require.True(t, errors.As(err, &ie), "got %v", err)
	require.Equal(t, chaincfg.RegressionNet, ie.Net)
	require.Equal(t, "merkle root", ie.What)

	// Unrelated panics are not swallowed.
	require.PanicsWithValue(t, "boom", func() {
		var err error
		defer recoverIntegrity(&err)
		panic("boom")
	})
}

func TestWriteParamsSummary(t *testing.T) {
	tests := []struct {
		net      chaincfg.Net
		contains []string
		prefixes [3]string
	}{
		{
			net: chaincfg.MainNet,
			contains: []string{"mainnet", "318ca259", "12421",
				"0a003e4519bf91f168721877a8228c9ccd6fcbb2da5ee3303217004b1fd37366",
				"0x1f00ffff", "seeder.keymaker.cc", "2022-10-31T02:45:51Z"},
			prefixes: [3]string{"K", "W", "key1"},
		},
		{
			net:      chaincfg.TestNet,
			contains: []string{"testnet", "f411f3be", "22421", "dns seeds", "none"},
			prefixes: [3]string{"K", "X", "tkey1"},
		},
		{
			net:      chaincfg.RegressionNet,
			contains: []string{"regtest", "b24e5e4f", "32421", "0x1f0fffff"},
			prefixes: [3]string{"C", "M", "rtkey1"},
		},
	}

	for _, test := range tests {
		p, err := chaincfg.New(test.net)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, writeParamsSummary(&buf, p))
		out := buf.String()
		for _, want := range test.contains {
			require.Contains(t, out, want, test.net)
		}

		pkh, sh, segwit, err := sampleAddresses(p)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(pkh, test.prefixes[0]), "%s: %s", test.net, pkh)
		require.True(t, strings.HasPrefix(sh, test.prefixes[1]), "%s: %s", test.net, sh)
		require.True(t, strings.HasPrefix(segwit, test.prefixes[2]), "%s: %s", test.net, segwit)
	}
}
