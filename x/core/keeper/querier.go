package keeper

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/filament-network/hub/x/core/types"
)

// NewLegacyQuerier routes path based queries to the query server and returns amino JSON
func NewLegacyQuerier(keeper ViewKeeper) sdk.Querier {
	q := NewQuerier(keeper)
	return func(ctx sdk.Context, path []string, _ abci.RequestQuery) ([]byte, error) {
		if len(path) == 0 {
			return nil, sdkerrors.Wrap(sdkerrors.ErrUnknownRequest, "empty query path")
		}
		c := sdk.WrapSDKContext(ctx)
		var (
			rsp interface{}
			err error
		)
		switch path[0] {
		case types.QueryAdmin:
			rsp, err = q.Admin(c, &types.QueryAdminRequest{})
		case types.QueryCampaign:
			var id uint64
			if id, err = uint64Arg(path, 1); err == nil {
				rsp, err = q.Campaign(c, &types.QueryCampaignRequest{CampaignID: id})
			}
		case types.QueryCampaignsByCampaigner:
			var addr sdk.AccAddress
			if addr, err = addressArg(path, 1); err == nil {
				rsp, err = q.CampaignsByCampaigner(c, &types.QueryCampaignsByCampaignerRequest{Campaigner: addr})
			}
		case types.QueryCriteriaProposal:
			var campaignID, proposalID uint64
			if campaignID, err = uint64Arg(path, 1); err == nil {
				if proposalID, err = uint64Arg(path, 2); err == nil {
					rsp, err = q.CriteriaProposal(c, &types.QueryCriteriaProposalRequest{CampaignID: campaignID, ProposalID: proposalID})
				}
			}
		case types.QueryCriteriaProposals:
			var id uint64
			if id, err = uint64Arg(path, 1); err == nil {
				rsp, err = q.CriteriaProposals(c, &types.QueryCriteriaProposalsRequest{CampaignID: id})
			}
		case types.QuerySegment:
			var id uint64
			if id, err = uint64Arg(path, 1); err == nil {
				rsp, err = q.Segment(c, &types.QuerySegmentRequest{CampaignID: id})
			}
		case types.QueryIndexer:
			var addr sdk.AccAddress
			if addr, err = addressArg(path, 1); err == nil {
				rsp, err = q.Indexer(c, &types.QueryAddressRequest{Address: addr})
			}
		case types.QueryIndexers:
			rsp, err = q.Indexers(c, &types.QueryListRequest{})
		case types.QueryRelayer:
			var addr sdk.AccAddress
			if addr, err = addressArg(path, 1); err == nil {
				rsp, err = q.Relayer(c, &types.QueryAddressRequest{Address: addr})
			}
		case types.QueryRelayers:
			rsp, err = q.Relayers(c, &types.QueryListRequest{})
		case types.QueryDelegates:
			rsp, err = q.Delegates(c, &types.QueryListRequest{})
		case types.QueryPower:
			var addr sdk.AccAddress
			if addr, err = addressArg(path, 1); err == nil {
				rsp, err = q.Power(c, &types.QueryAddressRequest{Address: addr})
			}
		case types.QueryRanking:
			rsp, err = q.Ranking(c, &types.QueryListRequest{})
		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unknown %s query path: %s", types.ModuleName, path[0])
		}
		if err != nil {
			return nil, fromStatusError(err)
		}
		bz, err := types.ModuleCdc.MarshalJSON(rsp)
		if err != nil {
			return nil, sdkerrors.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
		}
		return bz, nil
	}
}

func uint64Arg(path []string, pos int) (uint64, error) {
	if len(path) <= pos {
		return 0, sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "missing path argument %d", pos)
	}
	v, err := strconv.ParseUint(path[pos], 10, 64)
	if err != nil {
		return 0, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}
	return v, nil
}

func addressArg(path []string, pos int) (sdk.AccAddress, error) {
	if len(path) <= pos {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "missing path argument %d", pos)
	}
	addr, err := sdk.AccAddressFromBech32(path[pos])
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}
	return addr, nil
}

// fromStatusError maps grpc status errors back to registered errors
func fromStatusError(err error) error {
	s, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch s.Code() {
	case codes.NotFound:
		return sdkerrors.Wrap(types.ErrNotFound, s.Message())
	case codes.InvalidArgument:
		return sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, s.Message())
	default:
		return err
	}
}
