// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
)

// RewardsOwner (type_id=11 in PVM context, SECP256K1OutputOwnersOutput) is
// the address set staking rewards are paid to: an OutputOwners tail with
// no amount field, parsed directly rather than through the generic output
// dispatcher since this context always fixes its type.
type RewardsOwner struct {
	avax.OutputOwners
}

func (o *RewardsOwner) TypeID() uint32 { return codec.TypeOutputOwners }

func (o *RewardsOwner) Marshal(p *wrappers.Packer)   { o.OutputOwners.Marshal(p) }
func (o *RewardsOwner) Unmarshal(p *wrappers.Packer) { o.OutputOwners.Unmarshal(p) }
