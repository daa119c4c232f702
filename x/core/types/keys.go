package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName is the name of the campaign core module
	ModuleName = "core"

	// StoreKey is the string store representation
	StoreKey = ModuleName

	// QuerierRoute is the querier route for the module
	QuerierRoute = ModuleName

	// RouterKey is the msg router key for the module
	RouterKey = ModuleName
)

var (
	AdminKey                       = []byte{0x01}
	NextCampaignIDKey              = []byte{0x02}
	CampaignsKeyPrefix             = []byte{0x03}
	CampaignsByOriginKeyPrefix     = []byte{0x04}
	CampaignsByCampaignerKeyPrefix = []byte{0x05}
	NextProposalIDKeyPrefix        = []byte{0x06}
	CriteriaProposalsKeyPrefix     = []byte{0x07}
	SegmentsKeyPrefix              = []byte{0x08}
	DelegatesKeyPrefix             = []byte{0x09}
	IndexersKeyPrefix              = []byte{0x0a}
	IndexerAliasesKeyPrefix        = []byte{0x0b}
	RelayersKeyPrefix              = []byte{0x0c}
	RelayerAliasesKeyPrefix        = []byte{0x0d}
	PowersKeyPrefix                = []byte{0x0e}
	PowerRankingKeyPrefix          = []byte{0x0f}
	TotalPowerKey                  = []byte{0x10}
	EthAddressesKeyPrefix          = []byte{0x11}
)

// CampaignKey is the key of a campaign within the campaigns prefix
func CampaignKey(id uint64) []byte {
	return sdk.Uint64ToBigEndian(id)
}

// OriginKey indexes a campaign by the chain it was imported from and its id there.
func OriginKey(origin string, originID uint64) []byte {
	return append(address.MustLengthPrefix([]byte(origin)), sdk.Uint64ToBigEndian(originID)...)
}

// CampaignerIndexKey groups campaign ids by their campaigner, ordered by id.
func CampaignerIndexKey(campaigner sdk.AccAddress, campaignID uint64) []byte {
	return append(CampaignerIndexPrefix(campaigner), sdk.Uint64ToBigEndian(campaignID)...)
}

// CampaignerIndexPrefix is the iteration prefix for all campaigns of one campaigner
func CampaignerIndexPrefix(campaigner sdk.AccAddress) []byte {
	return address.MustLengthPrefix(campaigner)
}

// ProposalKey is the key of a criteria proposal: campaign id followed by proposal id
func ProposalKey(campaignID, proposalID uint64) []byte {
	return append(ProposalsPrefix(campaignID), sdk.Uint64ToBigEndian(proposalID)...)
}

// ProposalsPrefix is the iteration prefix for all proposals of a campaign
func ProposalsPrefix(campaignID uint64) []byte {
	return sdk.Uint64ToBigEndian(campaignID)
}
