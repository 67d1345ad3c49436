// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022 The Keymaker Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/Oshelle/keymakercoin/chaincfg"
	"github.com/pkg/errors"
)

// integrityFailureMsg prefixes the error returned when the compiled-in
// network parameters fail their self-check.
const integrityFailureMsg = "compiled-in network parameters are inconsistent, refusing to start"

var (
	cfg *config
)

// recoverIntegrity turns a panic carrying a *chaincfg.IntegrityError into an
// error stored in errp.  Any other panic is re-raised.  It must be deferred.
func recoverIntegrity(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	ie, ok := r.(*chaincfg.IntegrityError)
	if !ok {
		panic(r)
	}
	kmkdLog.Criticalf("%s: %v", integrityFailureMsg, ie)
	*errp = errors.Wrap(ie, integrityFailureMsg)
}

// selectNetwork selects net in registry.  Broken compiled-in constants are
// reported as an error instead of a panic.
func selectNetwork(registry *chaincfg.Registry, net chaincfg.Net) (err error) {
	defer recoverIntegrity(&err)
	return registry.Select(net)
}

// keymakerdMain is the real main function for keymakerd.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.  The registry is returned so callers can hand it to subsystems.
func keymakerdMain(args []string) (*chaincfg.Registry, error) {
	// Load configuration and parse command line.  This function also
	// sets the requested log levels.
	tcfg, _, err := loadConfig(args, os.Stderr)
	if err != nil {
		return nil, err
	}
	cfg = tcfg

	if err := initLogRotator(cfg.logFile()); err != nil {
		errorf("%v", err)
		return nil, err
	}
	defer logRotator.Close()

	// Select the network parameters every subsystem will read.
	registry := chaincfg.NewRegistry()
	if err := selectNetwork(registry, cfg.net); err != nil {
		kmkdLog.Errorf("Unable to select network %s: %v", cfg.net, err)
		return nil, err
	}
	params := registry.Current()
	kmkdLog.Infof("Using %s network parameters (port %s, magic %x)",
		params.Name, params.DefaultPort, params.MessageStart())

	if latest := params.LatestCheckpoint(); latest != nil {
		kmkdLog.Debugf("Latest checkpoint at height %d (%v)", latest.Height,
			latest.Hash)
	}

	if cfg.ShowParams {
		if err := writeParamsSummary(os.Stdout, params); err != nil {
			kmkdLog.Errorf("Unable to print parameters: %v", err)
			return nil, err
		}
	}

	return registry, nil
}

func main() {
	// Work around defer not working after os.Exit()
	if _, err := keymakerdMain(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
