// Copyright (c) 2022 The Keymaker Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Oshelle/keymakercoin/chaincfg"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// options are the command line options of genesisinfo.  Unset overrides keep
// the network's compiled-in seed value.
type options struct {
	Network   string  `short:"n" long:"network" default:"main" description:"Network whose genesis seed to start from {main, test, regtest}"`
	Timestamp *int64  `long:"timestamp" description:"Override the block timestamp (unix seconds)"`
	Nonce     *uint32 `long:"nonce" description:"Override the block nonce"`
	Bits      *uint32 `long:"bits" base:"16" description:"Override the difficulty bits (hex)"`
	Version   *int32  `long:"version" description:"Override the block version"`
	Reward    *int64  `long:"reward" description:"Override the coinbase reward in atoms"`
	Message   string  `long:"message" description:"Override the coinbase message"`
	Raw       bool    `long:"raw" description:"Also print the serialized block in hex"`
}

// overridden reports whether any option changes the compiled-in genesis.
func (o *options) overridden() bool {
	return o.Timestamp != nil || o.Nonce != nil || o.Bits != nil ||
		o.Version != nil || o.Reward != nil || o.Message != ""
}

// seed returns the compiled-in seed of net with the overrides applied.
func (o *options) seed(net chaincfg.Net) (chaincfg.GenesisSeed, error) {
	seed, err := chaincfg.GenesisSeedFor(net)
	if err != nil {
		return seed, err
	}
	if o.Timestamp != nil {
		seed.Timestamp = time.Unix(*o.Timestamp, 0)
	}
	if o.Nonce != nil {
		seed.Nonce = *o.Nonce
	}
	if o.Bits != nil {
		seed.Bits = *o.Bits
	}
	if o.Version != nil {
		seed.Version = *o.Version
	}
	if o.Reward != nil {
		seed.Reward = *o.Reward
	}
	return seed, nil
}

// run builds the genesis block described by opts and prints it to w.
func run(opts *options, w io.Writer) error {
	net, err := chaincfg.ParseNet(opts.Network)
	if err != nil {
		return err
	}
	seed, err := opts.seed(net)
	if err != nil {
		return err
	}

	builder := chaincfg.DefaultGenesisBuilder()
	if opts.Message != "" {
		builder.Message = opts.Message
	}
	block, err := builder.BuildGenesis(seed)
	if err != nil {
		return errors.Wrap(err, "building genesis block")
	}

	fmt.Fprintf(w, "network     %s\n", net)
	fmt.Fprintf(w, "hash        %v\n", block.BlockHash())
	fmt.Fprintf(w, "merkle root %v\n", block.Header.MerkleRoot)
	fmt.Fprintf(w, "timestamp   %d (%s)\n", block.Header.Timestamp.Unix(),
		block.Header.Timestamp.UTC().Format(time.RFC1123))
	fmt.Fprintf(w, "nonce       %d\n", block.Header.Nonce)
	fmt.Fprintf(w, "bits        %08x\n", block.Header.Bits)
	fmt.Fprintf(w, "version     %d\n", block.Header.Version)
	fmt.Fprintf(w, "coinbase    %x\n", block.Transactions[0].TxIn[0].SignatureScript)

	if opts.overridden() {
		params, err := chaincfg.New(net)
		if err != nil {
			return err
		}
		if block.BlockHash() == params.GenesisHash {
			fmt.Fprintf(w, "status      matches compiled-in %s genesis\n", net)
		} else {
			fmt.Fprintf(w, "status      differs from compiled-in %s genesis %v\n",
				net, params.GenesisHash)
		}
	} else if err := chaincfg.Verify(net, builder); err != nil {
		fmt.Fprintf(w, "status      %v\n", err)
	} else {
		fmt.Fprintf(w, "status      verified\n")
	}

	if opts.Raw {
		var buf bytes.Buffer
		if err := block.Serialize(&buf); err != nil {
			return err
		}
		fmt.Fprintf(w, "raw         %s\n", hex.EncodeToString(buf.Bytes()))
	}
	return nil
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := run(&opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "genesisinfo: %v\n", err)
		os.Exit(1)
	}
}
