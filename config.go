// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2022 The Keymaker Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Oshelle/keymakercoin/chaincfg"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	defaultConfigFilename = "keymakerd.conf"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "keymakerd.log"
)

var (
	defaultHomeDir    = btcutil.AppDataDir("keymakerd", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// NetworkFlags holds the options that choose the network.
type NetworkFlags struct {
	TestNet        bool   `long:"testnet" description:"Use the test network"`
	RegressionTest bool   `long:"regtest" description:"Use the regression test network"`
	Network        string `long:"network" description:"Network to use by name {main, test, regtest}"`
}

// resolveNetwork returns the network the flags select, main when none is
// given.  Naming more than one network is an error.
func (nf *NetworkFlags) resolveNetwork() (chaincfg.Net, error) {
	net := chaincfg.MainNet

	// Count number of network flags passed; assign the network while we're
	// at it.
	numNets := 0
	if nf.TestNet {
		numNets++
		net = chaincfg.TestNet
	}
	if nf.RegressionTest {
		numNets++
		net = chaincfg.RegressionNet
	}
	if nf.Network != "" {
		parsed, err := chaincfg.ParseNet(nf.Network)
		if err != nil {
			return "", err
		}
		if numNets == 0 || parsed != net {
			numNets++
		}
		net = parsed
	}
	if numNets > 1 {
		return "", errors.New("multiple networks (testnet, regtest, " +
			"network) cannot be used together -- please choose only one " +
			"network")
	}
	return net, nil
}

// config defines the configuration options for keymakerd.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	LogDir     string `long:"logdir" description:"Directory to log output"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical, off} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	ShowParams bool   `long:"showparams" description:"Print the parameters of the selected network and exit"`
	NetworkFlags

	// net is the network resolved from the network flags.
	net chaincfg.Net
}

// logFile returns the path of the log file for the selected network.
func (c *config) logFile() string {
	return filepath.Join(c.LogDir, defaultLogFilename)
}

// newConfigParser returns a new command line parser for cfg.
func newConfigParser(cfg *config, options flags.Options) *flags.Parser {
	return flags.NewParser(cfg, options)
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in keymakerd functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options.  Command line options always take precedence.
func loadConfig(args []string, stderr io.Writer) (*config, []string, error) {
	// Default config.
	cfg := config{
		ConfigFile: defaultConfigFile,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}

	// Pre-parse the command line options to see if an alternative config
	// file was specified.  Any errors aside from the help message error can
	// be ignored here since they will be caught by the final parse below.
	preCfg := cfg
	preParser := newConfigParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(stderr, err)
			return nil, nil, err
		}
	}

	// Load additional config from file.  A missing default config file is
	// not an error.
	parser := newConfigParser(&cfg, flags.Default&^flags.PrintErrors)
	err = flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
	if err != nil {
		_, missing := err.(*os.PathError)
		if !missing || preCfg.ConfigFile != defaultConfigFile {
			fmt.Fprintf(stderr, "Error parsing config file: %v\n", err)
			return nil, nil, errors.Wrapf(err, "config file %s",
				preCfg.ConfigFile)
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return nil, nil, err
	}

	cfg.net, err = cfg.resolveNetwork()
	if err != nil {
		fmt.Fprintln(stderr, err)
		parser.WriteHelp(stderr)
		return nil, nil, err
	}

	// Append the network type to the log directory so it is "namespaced"
	// per network.
	cfg.LogDir = filepath.Join(cleanAndExpandPath(cfg.LogDir),
		cfg.net.String())

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err = errors.Wrap(err, "loadConfig")
		fmt.Fprintln(stderr, err)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if len(path) > 0 && path[0] == '~' {
		homeDir := filepath.Dir(defaultHomeDir)
		path = filepath.Join(homeDir, path[1:])
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}
