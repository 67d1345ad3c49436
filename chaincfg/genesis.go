// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2022 The Keymaker Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

const (
	// genesisMessage is embedded in the signature script of every
	// network's genesis coinbase.
	genesisMessage = "Keymaker Coin genesis 31 Oct 2022"

	// genesisBitsPush is the legacy difficulty value pushed at the start
	// of the genesis coinbase script.
	genesisBitsPush = 486604799
)

// genesisOutputKey is the uncompressed public key the genesis coinbase pays.
var genesisOutputKey = hexDecode("04678afdb0fe5548271967f1a67130b7105cd6a8" +
	"28e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba" +
	"0b8d578a4c702b6bf11d5f")

// GenesisSeed holds the values a genesis block is derived from.
type GenesisSeed struct {
	Timestamp time.Time
	Nonce     uint32
	Bits      uint32
	Version   int32

	// Reward is the value of the genesis coinbase output in atoms.
	Reward int64
}

// GenesisBuilder derives a genesis block from its seed.  Implementations must
// be deterministic: equal seeds produce byte-identical blocks.
type GenesisBuilder interface {
	BuildGenesis(seed GenesisSeed) (*wire.MsgBlock, error)
}

// CoinbaseGenesisBuilder builds a genesis block holding a single coinbase
// transaction whose signature script carries Message and whose only output
// pays Reward to OutputKey.
type CoinbaseGenesisBuilder struct {
	Message   string
	OutputKey []byte
}

// DefaultGenesisBuilder returns the builder every Keymaker network uses.
func DefaultGenesisBuilder() *CoinbaseGenesisBuilder {
	return &CoinbaseGenesisBuilder{
		Message:   genesisMessage,
		OutputKey: genesisOutputKey,
	}
}

// BuildGenesis assembles the genesis block for seed.  The coinbase signature
// script ends with the seed timestamp so the merkle root commits to it.
func (b *CoinbaseGenesisBuilder) BuildGenesis(seed GenesisSeed) (*wire.MsgBlock, error) {
	sigScript, err := txscript.NewScriptBuilder().
		AddInt64(genesisBitsPush).
		AddOps([]byte{txscript.OP_DATA_1, 4}). // non-minimal push of 4
		AddData([]byte(b.Message)).
		AddInt64(seed.Timestamp.Unix()).
		Script()
	if err != nil {
		return nil, err
	}
	pkScript, err := txscript.NewScriptBuilder().
		AddData(b.OutputKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		return nil, err
	}

	coinbase := wire.NewMsgTx(wire.TxVersion)
	coinbase.AddTxIn(&wire.TxIn{
		// Fully null.
		PreviousOutPoint: wire.OutPoint{
			Hash:  chainhash.Hash{},
			Index: wire.MaxPrevOutIndex,
		},
		SignatureScript: sigScript,
		Sequence:        wire.MaxTxInSequenceNum,
	})
	coinbase.AddTxOut(wire.NewTxOut(seed.Reward, pkScript))

	block := wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:   seed.Version,
			PrevBlock: chainhash.Hash{}, // All zero.
			Timestamp: seed.Timestamp,
			Bits:      seed.Bits,
			Nonce:     seed.Nonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
	block.Header.MerkleRoot = merkleRoot(&block)
	return &block, nil
}

// merkleRoot calculates the transaction merkle root of block.
func merkleRoot(block *wire.MsgBlock) chainhash.Hash {
	txns := make([]*btcutil.Tx, 0, len(block.Transactions))
	for _, tx := range block.Transactions {
		txns = append(txns, btcutil.NewTx(tx))
	}
	return blockchain.CalcMerkleRoot(txns, false)
}

// verifyGenesis checks a freshly built genesis block against the values the
// network is known to have.  The merkle root is recomputed from the
// transactions rather than taken from the header.
func verifyGenesis(net Net, block *wire.MsgBlock, wantHash, wantMerkleRoot chainhash.Hash) error {
	if block == nil || len(block.Transactions) == 0 {
		return integrityError(net, "genesis block", "builder produced no transactions")
	}

	root := merkleRoot(block)
	if root != wantMerkleRoot {
		return integrityError(net, "merkle root", "got %v, want %v",
			root, wantMerkleRoot)
	}
	if block.Header.MerkleRoot != root {
		return integrityError(net, "merkle root", "header commits to %v, "+
			"transactions hash to %v", block.Header.MerkleRoot, root)
	}

	hash := block.BlockHash()
	if hash != wantHash {
		return integrityError(net, "genesis hash", "got %v, want %v",
			hash, wantHash)
	}
	return nil
}
