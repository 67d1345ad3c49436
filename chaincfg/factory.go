// Copyright (c) 2022 The Keymaker Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"strconv"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// variant bundles the literal values of one network with the genesis block
// they must produce.
type variant struct {
	params            Params
	genesis           GenesisSeed
	genesisHash       chainhash.Hash
	genesisMerkleRoot chainhash.Hash
}

// variants maps every known network to the function returning its literal
// values.  A fresh variant is built on every call so no two Params ever share
// memory.
var variants = map[Net]func() *variant{
	MainNet:       mainNetVariant,
	TestNet:       testNetVariant,
	RegressionNet: regNetVariant,
}

// Nets returns the known networks in a stable order.
func Nets() []Net {
	return []Net{MainNet, TestNet, RegressionNet}
}

// GenesisSeedFor returns the seed the genesis block of net is built from.
func GenesisSeedFor(net Net) (GenesisSeed, error) {
	newVariant, ok := variants[net]
	if !ok {
		return GenesisSeed{}, paramsError(ErrUnknownNetwork,
			"GenesisSeedFor", "unknown network "+strconv.Quote(string(net)))
	}
	return newVariant().genesis, nil
}

// New constructs the parameters of the given network using the default
// genesis builder.
//
// An unknown network results in a ParamsError with the ErrUnknownNetwork code.
// Inconsistent compiled-in constants are not reported as an error: New panics
// with an *IntegrityError, because a node built from them would silently fork
// off its network.
func New(net Net) (*Params, error) {
	return NewWithBuilder(net, DefaultGenesisBuilder())
}

// NewWithBuilder is New with a caller supplied genesis builder.
func NewWithBuilder(net Net, builder GenesisBuilder) (*Params, error) {
	params, err := build(net, builder)
	if err != nil {
		if ie, ok := err.(*IntegrityError); ok {
			log.Criticalf("Refusing to start: %v", ie)
			panic(ie)
		}
		return nil, err
	}
	return params, nil
}

// Verify builds the parameters of net with builder and reports whether they
// are consistent.  Unlike New it returns integrity failures instead of
// panicking, which makes it suitable for diagnostics.
func Verify(net Net, builder GenesisBuilder) error {
	_, err := build(net, builder)
	return err
}

// build runs the construction steps shared by every network: look up the
// literal values, derive and verify the genesis block, then fill in the
// values that depend on it.
func build(net Net, builder GenesisBuilder) (*Params, error) {
	newVariant, ok := variants[net]
	if !ok {
		return nil, paramsError(ErrUnknownNetwork, "New",
			"unknown network "+strconv.Quote(string(net)))
	}
	if builder == nil {
		return nil, paramsError(ErrNilBuilder, "New", "no genesis builder")
	}
	v := newVariant()

	genesis, err := builder.BuildGenesis(v.genesis)
	if err != nil {
		return nil, integrityError(net, "genesis block", "cannot build: %v", err)
	}
	err = verifyGenesis(net, genesis, v.genesisHash, v.genesisMerkleRoot)
	if err != nil {
		return nil, err
	}
	if _, err := v.params.AlertKey(); err != nil {
		return nil, integrityError(net, "alert key", "%v", err)
	}

	params := v.params
	params.GenesisBlock = genesis
	params.GenesisHash = v.genesisHash
	params.Consensus.GenesisHash = v.genesisHash
	params.Consensus.PowLimitBits = blockchain.BigToCompact(params.Consensus.PowLimit)
	genesisCheckpoint := Checkpoint{Height: 0, Hash: v.genesisHash}
	params.Checkpoints = append([]Checkpoint{genesisCheckpoint}, params.Checkpoints...)
	if err := checkCheckpoints(&params); err != nil {
		return nil, err
	}

	log.Debugf("Built %s parameters (genesis %v, magic %#08x)", params.Name,
		params.GenesisHash, uint32(params.NetMagic))
	return &params, nil
}

// checkCheckpoints ensures the checkpoint table starts at the genesis block
// and that heights strictly increase.
func checkCheckpoints(p *Params) error {
	if len(p.Checkpoints) == 0 || p.Checkpoints[0].Height != 0 ||
		p.Checkpoints[0].Hash != p.GenesisHash {

		return integrityError(p.Net, "checkpoints", "first checkpoint "+
			"is not the genesis block")
	}
	for i := 1; i < len(p.Checkpoints); i++ {
		prev, cur := p.Checkpoints[i-1], p.Checkpoints[i]
		if cur.Height <= prev.Height {
			return integrityError(p.Net, "checkpoints", "height %d "+
				"follows height %d", cur.Height, prev.Height)
		}
	}
	return nil
}
