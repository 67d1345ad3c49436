// Copyright (c) 2022 The Keymaker Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Oshelle/keymakercoin/chaincfg"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// writeConfigFile writes contents to a config file in a fresh directory and
// returns its path.
func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keymakerd.conf")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestResolveNetwork(t *testing.T) {
	tests := []struct {
		name    string
		flags   NetworkFlags
		want    chaincfg.Net
		wantErr bool
	}{
		{"default", NetworkFlags{}, chaincfg.MainNet, false},
		{"testnet", NetworkFlags{TestNet: true}, chaincfg.TestNet, false},
		{"regtest", NetworkFlags{RegressionTest: true}, chaincfg.RegressionNet, false},
		{"by name", NetworkFlags{Network: "testnet"}, chaincfg.TestNet, false},
		{"name agrees", NetworkFlags{RegressionTest: true, Network: "regtest"}, chaincfg.RegressionNet, false},
		{"testnet and regtest", NetworkFlags{TestNet: true, RegressionTest: true}, "", true},
		{"name disagrees", NetworkFlags{TestNet: true, Network: "main"}, "", true},
		{"unknown name", NetworkFlags{Network: "simnet"}, "", true},
	}

	for _, test := range tests {
		got, err := test.flags.resolveNetwork()
		if test.wantErr {
			require.Error(t, err, test.name)
			continue
		}
		require.NoError(t, err, test.name)
		require.Equal(t, test.want, got, test.name)
	}
}

func TestLoadConfigNetwork(t *testing.T) {
	confFile := writeConfigFile(t, "")
	logDir := t.TempDir()

	tests := []struct {
		args []string
		want chaincfg.Net
	}{
		{nil, chaincfg.MainNet},
		{[]string{"--testnet"}, chaincfg.TestNet},
		{[]string{"--regtest"}, chaincfg.RegressionNet},
		{[]string{"--network=regtest"}, chaincfg.RegressionNet},
		{[]string{"--network", "mainnet"}, chaincfg.MainNet},
	}

	for _, test := range tests {
		args := append([]string{"--configfile=" + confFile, "--logdir=" + logDir},
			test.args...)
		cfg, _, err := loadConfig(args, io.Discard)
		require.NoError(t, err, "%v", test.args)
		require.Equal(t, test.want, cfg.net, "%v", test.args)
		require.Equal(t, filepath.Join(logDir, test.want.String()), cfg.LogDir)
		require.Equal(t, filepath.Join(logDir, test.want.String(), "keymakerd.log"),
			cfg.logFile())
	}
}

func TestLoadConfigRejectsTwoNetworks(t *testing.T) {
	confFile := writeConfigFile(t, "")
	_, _, err := loadConfig([]string{"--configfile=" + confFile, "--testnet",
		"--regtest"}, io.Discard)
	require.Error(t, err)

	_, _, err = loadConfig([]string{"--configfile=" + confFile,
		"--network=signet"}, io.Discard)
	require.True(t, chaincfg.IsErrorCode(err, chaincfg.ErrUnknownNetwork), "got %v", err)
}

func TestLoadConfigFile(t *testing.T) {
	confFile := writeConfigFile(t, "testnet=1\ndebuglevel=debug\n")

	cfg, _, err := loadConfig([]string{"--configfile=" + confFile}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, chaincfg.TestNet, cfg.net)
	require.Equal(t, "debug", cfg.DebugLevel)

	// The command line takes precedence over the file.
	cfg, _, err = loadConfig([]string{"--configfile=" + confFile,
		"--debuglevel=warn"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.DebugLevel)

	// A network chosen in the file conflicts with another on the command
	// line.
	_, _, err = loadConfig([]string{"--configfile=" + confFile, "--regtest"},
		io.Discard)
	require.Error(t, err)
}

func TestLoadConfigErrors(t *testing.T) {
	confFile := writeConfigFile(t, "")

	missing := filepath.Join(t.TempDir(), "absent.conf")
	_, _, err := loadConfig([]string{"--configfile=" + missing}, io.Discard)
	require.Error(t, err)
	require.True(t, os.IsNotExist(errors.Cause(err)), "got %v", err)

	bad := writeConfigFile(t, "nosuchoption=1\n")
	_, _, err = loadConfig([]string{"--configfile=" + bad}, io.Discard)
	require.Error(t, err)

	_, _, err = loadConfig([]string{"--configfile=" + confFile,
		"--debuglevel=loud"}, io.Discard)
	require.Error(t, err)

	_, _, err = loadConfig([]string{"--configfile=" + confFile, "--nosuchflag"},
		io.Discard)
	require.Error(t, err)

	_, _, err = loadConfig([]string{"-h"}, io.Discard)
	flagsErr, ok := err.(*flags.Error)
	require.True(t, ok, "got %v", err)
	require.Equal(t, flags.ErrHelp, flagsErr.Type)
}

func TestParseAndSetDebugLevels(t *testing.T) {
	defer setLogLevels(defaultLogLevel)

	tests := []struct {
		level   string
		wantErr bool
	}{
		{"info", false},
		{"trace", false},
		{"off", false},
		{"CFG=debug", false},
		{"KMKD=warn,CFG=trace", false},
		{"loud", true},
		{"CFG", true},
		{"CFG=loud", true},
		{"NOPE=info", true},
		{"KMKD=info,", true},
	}

	for _, test := range tests {
		err := parseAndSetDebugLevels(test.level)
		if test.wantErr {
			require.Error(t, err, test.level)
			continue
		}
		require.NoError(t, err, test.level)
	}

	require.Equal(t, []string{"CFG", "KMKD"}, supportedSubsystems())
}

func TestCleanAndExpandPath(t *testing.T) {
	os.Setenv("KEYMAKERD_TEST_DIR", "/tmp/keymaker")
	defer os.Unsetenv("KEYMAKERD_TEST_DIR")

	require.Equal(t, "/tmp/keymaker/logs", cleanAndExpandPath("$KEYMAKERD_TEST_DIR/logs/"))
	require.Equal(t, filepath.Join(filepath.Dir(defaultHomeDir), "x"),
		cleanAndExpandPath("~/x"))
}
