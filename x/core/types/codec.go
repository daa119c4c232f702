package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterLegacyAminoCodec registers the tagged variants and call messages
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterInterface((*SegmentData)(nil), nil)
	cdc.RegisterInterface((*SegmentProof)(nil), nil)
	cdc.RegisterInterface((*CallMessage)(nil), nil)

	cdc.RegisterConcrete(&GithubSegment{}, "core/GithubSegment", nil)
	cdc.RegisterConcrete(&PlainSegment{}, "core/PlainSegment", nil)
	cdc.RegisterConcrete(&Ed25519Signature{}, "core/Ed25519Signature", nil)

	cdc.RegisterConcrete(&MsgCreateCampaign{}, "core/MsgCreateCampaign", nil)
	cdc.RegisterConcrete(&MsgOpenCriteria{}, "core/MsgOpenCriteria", nil)
	cdc.RegisterConcrete(&MsgProposeCriteria{}, "core/MsgProposeCriteria", nil)
	cdc.RegisterConcrete(&MsgConfirmCriteria{}, "core/MsgConfirmCriteria", nil)
	cdc.RegisterConcrete(&MsgRejectCampaign{}, "core/MsgRejectCampaign", nil)
	cdc.RegisterConcrete(&MsgCancelCampaign{}, "core/MsgCancelCampaign", nil)
	cdc.RegisterConcrete(&MsgAssignIndexer{}, "core/MsgAssignIndexer", nil)
	cdc.RegisterConcrete(&MsgIndexCampaign{}, "core/MsgIndexCampaign", nil)
	cdc.RegisterConcrete(&MsgPostSegment{}, "core/MsgPostSegment", nil)
	cdc.RegisterConcrete(&MsgEvictDelegate{}, "core/MsgEvictDelegate", nil)
	cdc.RegisterConcrete(&MsgSettleCampaign{}, "core/MsgSettleCampaign", nil)
	cdc.RegisterConcrete(&MsgFinalizeCampaign{}, "core/MsgFinalizeCampaign", nil)
	cdc.RegisterConcrete(&MsgRegisterIndexer{}, "core/MsgRegisterIndexer", nil)
	cdc.RegisterConcrete(&MsgUnregisterIndexer{}, "core/MsgUnregisterIndexer", nil)
	cdc.RegisterConcrete(&MsgRegisterRelayer{}, "core/MsgRegisterRelayer", nil)
	cdc.RegisterConcrete(&MsgUnregisterRelayer{}, "core/MsgUnregisterRelayer", nil)
	cdc.RegisterConcrete(&MsgUpdateVotingPower{}, "core/MsgUpdateVotingPower", nil)
}

// ModuleCdc is the codec for persisted state, events payloads and genesis of this module.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	ModuleCdc.Seal()
}
