// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2022 The Keymaker Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"
)

// testNetVariant returns the literal values of the public Keymaker test
// network.
func testNetVariant() *variant {
	// testNetPowLimit is the highest proof of work value a Keymaker block
	// can have for the test network.  It is the value 2^244 - 1.
	testNetPowLimit := newBigFromHex("000fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	return &variant{
		genesis: GenesisSeed{
			Timestamp: time.Unix(1660653600, 0), // Tue, 16 Aug 2022 12:40:00 UTC
			Nonce:     500021210,
			Bits:      0x1f0fffff,
			Version:   1,
			Reward:    0,
		},
		genesisHash:       newHashFromStr("2cfbac6535b95560d5d319a7a6450377c72b00ff78d3ee2fb75c7aae0c948b69"),
		genesisMerkleRoot: newHashFromStr("0f3b4ccf1fef30c8e2df0f39716504db531a0391b3f82e3a168a4ef1e7388236"),

		params: Params{
			Net:  TestNet,
			Name: "testnet",
			Consensus: ConsensusParams{
				PowLimit:              testNetPowLimit,
				TargetTimespan:        time.Minute * 24, // 24 minutes
				StakeTargetSpacing:    time.Minute,      // 1-minute block spacing
				PowTargetSpacing:      time.Minute,      // StakeTargetSpacing
				TargetSpacingWorkMax:  time.Minute,      // 1 * StakeTargetSpacing
				StakeMinConfirmations: 1,
				CoinbaseMaturity:      6,
				DGWPastBlocks:         30,
				BIP0016Height:         0, // Always active
				BIP0034Height:         0, // Always active
				StartMiningTime:       time.Unix(1605440641, 0),

				PowAllowMinDifficultyBlocks: false,
				PowNoRetargeting:            false,

				MinimumChainWork:   new(big.Int),
				DefaultAssumeValid: newHashFromStr("00"),
			},

			NetMagic:    0xbef311f4, // f4 11 f3 be on the wire
			DefaultPort: "22421",
			AlertPubKey: hexDecode("048ce4dedd28c868cb39555c94575e92bdd8feba3407eb1f1" +
				"d4910a01274366e00cf25e6396b7b9e3f12f6bbc0aa6c3530178e91c181c4506bbf" +
				"cf33e359004b22"),
			DNSSeeds:   []DNSSeed{},
			FixedSeeds: []FixedSeed{},

			AddressPrefixes: AddressPrefixes{
				PubKeyHashAddrID: 46, // starts with K
				ScriptHashAddrID: 76, // starts with X
				PrivateKeyID:     63, // starts with 3 (uncompressed) or A (compressed)

				// BIP32 hierarchical deterministic extended key magics
				HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
				HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
			},
			Bech32HRP: "tkey",

			// Height 0 is filled in once the genesis block is verified.
			Checkpoints: []Checkpoint{},

			ChainTxData: ChainTxData{
				Time:    time.Unix(1660653600, 0),
				TxCount: 0,
				TxRate:  0,
			},

			MiningRequiresPeers:      true,
			DefaultConsistencyChecks: false,
			RequireStandard:          false,
			MineBlocksOnDemand:       true,
		},
	}
}
