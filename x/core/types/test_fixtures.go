package types

import (
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

func CriterionFixture(mutators ...func(*Criterion)) Criterion {
	r := Criterion{
		Name:      "holders",
		Category:  CategoryBalance,
		DatasetID: "erc20-balances",
		Parameters: []Parameter{
			{Field: "token", Predicate: "eq:0xdead"},
			{Field: "balance", Predicate: "gt:100"},
		},
		Weight: 10,
	}
	for _, m := range mutators {
		m(&r)
	}
	return r
}

func PlaybookFixture(mutators ...func(*Playbook)) Playbook {
	r := Playbook{
		Budget: Budget{
			Fee:        sdk.NewCoins(sdk.NewInt64Coin("ufila", 100)),
			Incentives: sdk.NewCoins(sdk.NewInt64Coin("ufila", 10000)),
		},
		SegmentDescription: SegmentDescription{
			Kind:    SegmentKindGithubTopNContributors,
			TopN:    10,
			Sources: []string{"github.com/filament-network/hub"},
			Proof:   ProofMechanismEd25519,
		},
		ConversionDescription: ConversionDescription{
			Kind:  ConversionKindSocial,
			Auth:  ConversionAuthGithub,
			Proof: ProofMechanismEd25519,
		},
		Payout: PayoutProportionalPerConversion,
		EndsAt: sdk.NewUint(1700000000),
	}
	for _, m := range mutators {
		m(&r)
	}
	return r
}

func CampaignFixture(mutators ...func(*Campaign)) Campaign {
	delegates := RandomDelegates(2)
	r := Campaign{
		ID:                0,
		Campaigner:        RandomAccAddress(),
		Phase:             PhaseInit,
		Title:             "Contributors of the hub",
		Description:       "reward the top contributors",
		Criteria:          Criteria{CriterionFixture()},
		ProposedDelegates: delegates,
		Delegates:         delegates,
	}
	for _, m := range mutators {
		m(&r)
	}
	return r
}

func MsgCreateCampaignFixture(mutators ...func(*MsgCreateCampaign)) *MsgCreateCampaign {
	r := &MsgCreateCampaign{
		Title:       "Contributors of the hub",
		Description: "reward the top contributors",
		Criteria:    Criteria{CriterionFixture()},
	}
	for _, m := range mutators {
		m(r)
	}
	return r
}

func GithubSegmentFixture(mutators ...func(*GithubSegment)) *GithubSegment {
	r := &GithubSegment{Entries: []GithubEntry{
		{ExternalID: 42, Payout: sdk.NewCoins(sdk.NewInt64Coin("ufila", 1000))},
		{ExternalID: 7, Payout: sdk.NewCoins(sdk.NewInt64Coin("ufila", 500))},
	}}
	for _, m := range mutators {
		m(r)
	}
	return r
}

// SignedSegmentFixture returns a segment signed with a fresh ed25519 key
func SignedSegmentFixture(mutators ...func(*Segment)) Segment {
	r, err := NewEd25519Segment(ed25519.GenPrivKey(), GithubSegmentFixture(), sdk.NewUint(1700000000))
	if err != nil {
		panic(err)
	}
	for _, m := range mutators {
		m(&r)
	}
	return r
}

func GenesisStateFixture(mutators ...func(*GenesisState)) GenesisState {
	r := DefaultGenesisState()
	r.Admin = RandomAccAddress()
	r.Delegates = RandomDelegates(3)
	r.Indexers = []Indexer{{Address: RandomAccAddress(), Alias: "idx1"}}
	r.Relayers = []Relayer{{Address: RandomAccAddress(), Alias: "relayer1"}}
	r.Powers = []PowerEntry{{Address: r.Relayers[0].Address, Power: 100}}
	r.EthAddresses = []EthAddress{{Address: r.Relayers[0].Address, ExternalID: "0x52908400098527886E0F7030069857D2E4169EE7"}}
	for _, m := range mutators {
		m(&r)
	}
	return r
}
