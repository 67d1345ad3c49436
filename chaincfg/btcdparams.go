// Copyright (c) 2022 The Keymaker Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	btcchaincfg "github.com/btcsuite/btcd/chaincfg"
)

// BtcParams expresses the parameters in the form the btcd and btcutil
// libraries consume, so their address, WIF and extended key encoders produce
// Keymaker strings.  The result is not registered with btcd's chaincfg
// package; callers that need btcutil address decoding must register it
// themselves.
func (p *Params) BtcParams() *btcchaincfg.Params {
	cp := p.Copy()
	c := cp.Consensus

	seeds := make([]btcchaincfg.DNSSeed, 0, len(cp.DNSSeeds))
	for _, s := range cp.DNSSeeds {
		seeds = append(seeds, btcchaincfg.DNSSeed{
			Host:         s.Host,
			HasFiltering: s.HasFiltering,
		})
	}

	checkpoints := make([]btcchaincfg.Checkpoint, 0, len(cp.Checkpoints))
	for i := range cp.Checkpoints {
		checkpoints = append(checkpoints, btcchaincfg.Checkpoint{
			Height: cp.Checkpoints[i].Height,
			Hash:   &cp.Checkpoints[i].Hash,
		})
	}

	return &btcchaincfg.Params{
		Name:        cp.Name,
		Net:         cp.NetMagic,
		DefaultPort: cp.DefaultPort,
		DNSSeeds:    seeds,

		// Chain parameters
		GenesisBlock:        cp.GenesisBlock,
		GenesisHash:         &cp.GenesisHash,
		PowLimit:            c.PowLimit,
		PowLimitBits:        c.PowLimitBits,
		PoWNoRetargeting:    c.PowNoRetargeting,
		BIP0034Height:       c.BIP0034Height,
		CoinbaseMaturity:    c.CoinbaseMaturity,
		TargetTimespan:      c.TargetTimespan,
		TargetTimePerBlock:  c.PowTargetSpacing,
		ReduceMinDifficulty: c.PowAllowMinDifficultyBlocks,
		GenerateSupported:   cp.MineBlocksOnDemand,
		Checkpoints:         checkpoints,

		// Mempool parameters
		RelayNonStdTxs: !cp.RequireStandard,

		// Human-readable part for Bech32 encoded segwit addresses.
		Bech32HRPSegwit: cp.Bech32HRP,

		// Address encoding magics
		PubKeyHashAddrID: cp.AddressPrefixes.PubKeyHashAddrID,
		ScriptHashAddrID: cp.AddressPrefixes.ScriptHashAddrID,
		PrivateKeyID:     cp.AddressPrefixes.PrivateKeyID,

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: cp.AddressPrefixes.HDPrivateKeyID,
		HDPublicKeyID:  cp.AddressPrefixes.HDPublicKeyID,
	}
}
