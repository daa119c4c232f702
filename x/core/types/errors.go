package types

import sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

var (
	// ErrAdminNotSet is returned when an admin gated operation runs before genesis set an admin
	ErrAdminNotSet = sdkerrors.Register(ModuleName, 2, "admin not set")

	// ErrSenderNotAdmin error when the sender is not the module admin
	ErrSenderNotAdmin = sdkerrors.Register(ModuleName, 3, "sender not admin")

	ErrCampaignNotFound = sdkerrors.Register(ModuleName, 4, "campaign not found")

	// ErrCampaignExists error when the same origin campaign is imported twice
	ErrCampaignExists = sdkerrors.Register(ModuleName, 5, "campaign exists")

	// ErrIDExists error when the next campaign id is already occupied. This is a bug.
	ErrIDExists = sdkerrors.Register(ModuleName, 6, "id exists")

	ErrInvalidTransition = sdkerrors.Register(ModuleName, 7, "invalid phase transition")

	ErrInvalidCriteriaProposal = sdkerrors.Register(ModuleName, 8, "invalid criteria proposal")

	// ErrIndexerMismatch error when the sender is not the indexer assigned to the campaign
	ErrIndexerMismatch = sdkerrors.Register(ModuleName, 9, "indexer mismatch")

	ErrIndexerNotRegistered = sdkerrors.Register(ModuleName, 10, "indexer not registered")

	ErrRelayerNotRegistered = sdkerrors.Register(ModuleName, 11, "relayer not registered")

	ErrInvalidEviction = sdkerrors.Register(ModuleName, 12, "invalid eviction")

	// ErrSegmentExists error when a segment was already posted for the campaign
	ErrSegmentExists = sdkerrors.Register(ModuleName, 13, "segment exists")

	ErrSenderNotCampaigner = sdkerrors.Register(ModuleName, 14, "sender not campaigner")

	// ErrInvalidProposer error when the proposer is not a delegate of the campaign
	ErrInvalidProposer = sdkerrors.Register(ModuleName, 15, "invalid proposer")

	ErrMissingCriteria = sdkerrors.Register(ModuleName, 16, "missing criteria")

	// ErrNextIDMissing error when the campaign counter was never initialized by genesis
	ErrNextIDMissing = sdkerrors.Register(ModuleName, 17, "next id missing")

	ErrProposalNotFound = sdkerrors.Register(ModuleName, 18, "criteria proposal not found")

	ErrInvalidSegment = sdkerrors.Register(ModuleName, 19, "invalid segment")

	ErrUnsupportedSegment = sdkerrors.Register(ModuleName, 20, "unsupported segment data")

	ErrUnsupportedProof = sdkerrors.Register(ModuleName, 21, "unsupported segment proof")

	// ErrProofVerification error when a segment signature does not verify against its data
	ErrProofVerification = sdkerrors.Register(ModuleName, 22, "segment proof verification failed")

	ErrIndexerAssigned = sdkerrors.Register(ModuleName, 23, "indexer already assigned")

	ErrUnauthorized = sdkerrors.Register(ModuleName, 24, "unauthorized")

	ErrInvalid = sdkerrors.Register(ModuleName, 25, "invalid")

	ErrEmpty = sdkerrors.Register(ModuleName, 26, "empty")

	ErrNotFound = sdkerrors.Register(ModuleName, 27, "not found")
)
