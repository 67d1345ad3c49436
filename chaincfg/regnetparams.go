// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2022 The Keymaker Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// regNetVariant returns the literal values of the regression test network.
// Not to be confused with the public test network, this network is meant for
// private use by automated tests and has no seeds of any kind.
func regNetVariant() *variant {
	// regNetPowLimit is the highest proof of work value a Keymaker block
	// can have for the regression test network.  It is the value 2^244 - 1.
	regNetPowLimit := newBigFromHex("000fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	return &variant{
		genesis: GenesisSeed{
			Timestamp: time.Unix(1660653000, 0), // Tue, 16 Aug 2022 12:30:00 UTC
			Nonce:     500010257,
			Bits:      0x1f0fffff,
			Version:   1,
			Reward:    0,
		},
		genesisHash:       newHashFromStr("998540c3bbb4d09d9f4526676083fbd557aad9a634da67570a32510036837443"),
		genesisMerkleRoot: newHashFromStr("7f3ef8d75c625c54983133a6c79708905a968ba37e6d75c7968d765cd189cd79"),

		params: Params{
			Net:  RegressionNet,
			Name: "regtest",
			Consensus: ConsensusParams{
				PowLimit:              regNetPowLimit,
				TargetTimespan:        time.Hour * 24 * 3, // 3 days
				StakeTargetSpacing:    time.Minute,        // 1-minute block spacing
				PowTargetSpacing:      time.Minute,        // StakeTargetSpacing
				TargetSpacingWorkMax:  time.Minute,        // 1 * StakeTargetSpacing
				StakeMinConfirmations: 1,
				CoinbaseMaturity:      2,
				DGWPastBlocks:         3,
				BIP0016Height:         0, // Always enforce P2SH on regtest
				BIP0034Height:         0, // Always active
				BIP0034Hash:           chainhash.Hash{},
				StartMiningTime:       time.Unix(1605440641, 0),

				PowAllowMinDifficultyBlocks: true,
				PowNoRetargeting:            true,

				MinimumChainWork:   new(big.Int),
				DefaultAssumeValid: newHashFromStr("00"),
			},

			NetMagic:    0x4f5e4eb2, // b2 4e 5e 4f on the wire
			DefaultPort: "32421",
			AlertPubKey: hexDecode("0406e2cfe8d4858168dac6ed66b84a7a3b44a23180bc1188b" +
				"0bfdd43b0be91637298897059bf7735b2c9db56d9b49797b7e373067710f49b4ae9" +
				"c6a51646ea6b3a"),
			DNSSeeds:   []DNSSeed{}, // NOTE: There must NOT be any seeds.
			FixedSeeds: []FixedSeed{},

			AddressPrefixes: AddressPrefixes{
				PubKeyHashAddrID: 28,  // starts with C
				ScriptHashAddrID: 50,  // starts with M
				PrivateKeyID:     156, // starts with 6 (uncompressed) or Q (compressed)

				// BIP32 hierarchical deterministic extended key magics
				HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
				HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
			},
			Bech32HRP: "rtkey",

			// Height 0 is filled in once the genesis block is verified.
			Checkpoints: []Checkpoint{},

			ChainTxData: ChainTxData{
				Time:    time.Unix(1605440641, 0),
				TxCount: 0,
				TxRate:  0,
			},

			MiningRequiresPeers:      false,
			DefaultConsistencyChecks: false,
			RequireStandard:          false,
			MineBlocksOnDemand:       true,
		},
	}
}
