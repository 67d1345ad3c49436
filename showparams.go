// Copyright (c) 2022 The Keymaker Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Oshelle/keymakercoin/chaincfg"
	"github.com/btcsuite/btcd/btcutil"
)

// sampleAddresses encodes the all-zero hash160 with every address prefix of
// p, which shows the leading characters users will see for that network.
func sampleAddresses(p *chaincfg.Params) (pkh, sh, segwit string, err error) {
	bp := p.BtcParams()
	var zero [20]byte

	pkhAddr, err := btcutil.NewAddressPubKeyHash(zero[:], bp)
	if err != nil {
		return "", "", "", err
	}
	shAddr, err := btcutil.NewAddressScriptHashFromHash(zero[:], bp)
	if err != nil {
		return "", "", "", err
	}
	wpkhAddr, err := btcutil.NewAddressWitnessPubKeyHash(zero[:], bp)
	if err != nil {
		return "", "", "", err
	}
	return pkhAddr.EncodeAddress(), shAddr.EncodeAddress(),
		wpkhAddr.EncodeAddress(), nil
}

// writeParamsSummary prints the values operators most often need to check
// against another node.
func writeParamsSummary(w io.Writer, p *chaincfg.Params) error {
	pkh, sh, segwit, err := sampleAddresses(p)
	if err != nil {
		return err
	}

	seeds := make([]string, 0, len(p.DNSSeeds))
	for _, s := range p.DNSSeeds {
		seeds = append(seeds, s.String())
	}
	if len(seeds) == 0 {
		seeds = append(seeds, "none")
	}

	c := p.Consensus
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	rows := []struct {
		name  string
		value interface{}
	}{
		{"network", p.Name},
		{"magic", fmt.Sprintf("%x", p.MessageStart())},
		{"port", p.DefaultPort},
		{"genesis hash", p.GenesisHash},
		{"genesis merkle root", p.GenesisBlock.Header.MerkleRoot},
		{"genesis time", p.GenesisBlock.Header.Timestamp.UTC().Format(time.RFC3339)},
		{"pow limit bits", fmt.Sprintf("%#08x", c.PowLimitBits)},
		{"target timespan", c.TargetTimespan},
		{"block spacing", c.PowTargetSpacing},
		{"coinbase maturity", c.CoinbaseMaturity},
		{"stake confirmations", c.StakeMinConfirmations},
		{"dgw window", c.DGWPastBlocks},
		{"start mining", c.StartMiningTime.UTC().Format(time.RFC3339)},
		{"p2pkh sample", pkh},
		{"p2sh sample", sh},
		{"bech32 sample", segwit},
		{"dns seeds", strings.Join(seeds, ", ")},
		{"checkpoints", len(p.Checkpoints)},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%v\n", row.name, row.value)
	}
	return tw.Flush()
}
