// Copyright 2024 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package method defines the transaction Method enum shared by the root
// signercore package, ctxstore, decoder, and render — split out so those
// packages can depend on the method identity without depending on each
// other's package (avoiding an import cycle back through signercore).
package method

// Method identifies the staking or registry operation a transaction body
// belongs to.
type Method uint8

const (
	Unknown Method = iota
	StakingTransfer
	StakingBurn
	StakingAddEscrow
	StakingReclaimEscrow
	StakingAmendCommissionSchedule
	RegistryDeregisterEntity
	RegistryUnfreezeNode
)

var wireNames = map[Method]string{
	StakingTransfer:                "staking.Transfer",
	StakingBurn:                    "staking.Burn",
	StakingAddEscrow:               "staking.AddEscrow",
	StakingReclaimEscrow:           "staking.ReclaimEscrow",
	StakingAmendCommissionSchedule: "staking.AmendCommissionSchedule",
	RegistryDeregisterEntity:       "registry.DeregisterEntity",
	RegistryUnfreezeNode:           "registry.UnfreezeNode",
}

var fromWireName = func() map[string]Method {
	m := make(map[string]Method, len(wireNames))
	for method, name := range wireNames {
		m[name] = method
	}
	return m
}()

// WireName returns the method's canonical CBOR text-string tag, or "" for
// Unknown.
func (m Method) WireName() string {
	return wireNames[m]
}

// FromWireName maps a decoded "method" text string to a Method, returning
// Unknown for anything unrecognized.
func FromWireName(name string) Method {
	if m, ok := fromWireName[name]; ok {
		return m
	}
	return Unknown
}

// DisplayLabel is the fixed "Type" row value shown for each method.
func (m Method) DisplayLabel() string {
	switch m {
	case StakingTransfer:
		return "Transfer"
	case StakingBurn:
		return "Burn"
	case StakingAddEscrow:
		return "Add escrow"
	case StakingReclaimEscrow:
		return "Reclaim escrow"
	case StakingAmendCommissionSchedule:
		return "Amend commission schedule"
	case RegistryDeregisterEntity:
		return "Deregister entity"
	case RegistryUnfreezeNode:
		return "Unfreeze node"
	default:
		return "Unknown"
	}
}

// HasBody reports whether the method carries a "body" map in the wire
// format. DeregisterEntity is the sole exception.
func (m Method) HasBody() bool {
	return m != RegistryDeregisterEntity
}
