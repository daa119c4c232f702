package types

import (
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	Ed25519PubKeySize    = 32
	Ed25519SignatureSize = 64
)

// SegmentData is the evidence payload of a segment. New payload kinds are
// added as concrete types registered with the module codec.
type SegmentData interface {
	ValidateBasic() error
}

// SegmentProof ties segment data to its submitter
type SegmentProof interface {
	Mechanism() ProofMechanism
	ValidateBasic() error
	Verify(signBytes []byte) error
}

var (
	_ SegmentData  = &GithubSegment{}
	_ SegmentData  = &PlainSegment{}
	_ SegmentProof = &Ed25519Signature{}
)

// GithubEntry is the payout for one github account
type GithubEntry struct {
	ExternalID uint64    `json:"external_id" yaml:"external_id"`
	Payout     sdk.Coins `json:"payout" yaml:"payout"`
}

// GithubSegment lists payouts per github id
type GithubSegment struct {
	Entries []GithubEntry `json:"entries" yaml:"entries"`
}

// ValidateBasic performs stateless checks
func (g GithubSegment) ValidateBasic() error {
	if len(g.Entries) == 0 {
		return sdkerrors.Wrap(ErrEmpty, "entries")
	}
	seen := make(map[uint64]struct{}, len(g.Entries))
	for i, e := range g.Entries {
		if _, exists := seen[e.ExternalID]; exists {
			return sdkerrors.Wrapf(ErrInvalidSegment, "duplicate external id %d", e.ExternalID)
		}
		seen[e.ExternalID] = struct{}{}
		if err := e.Payout.Validate(); err != nil {
			return sdkerrors.Wrapf(err, "entry %d payout", i)
		}
	}
	return nil
}

// Allocation assigns an amount to a recipient identifier
type Allocation struct {
	Recipient string `json:"recipient" yaml:"recipient"`
	Amount    uint64 `json:"amount" yaml:"amount"`
}

// PlainSegment is a list of allocations without a specific data source
type PlainSegment struct {
	Allocations []Allocation `json:"allocations" yaml:"allocations"`
}

// ValidateBasic performs stateless checks
func (p PlainSegment) ValidateBasic() error {
	if len(p.Allocations) == 0 {
		return sdkerrors.Wrap(ErrEmpty, "allocations")
	}
	for i, a := range p.Allocations {
		if a.Recipient == "" {
			return sdkerrors.Wrapf(ErrEmpty, "allocation %d recipient", i)
		}
	}
	return nil
}

// Ed25519Signature is a detached signature over the canonical segment data bytes
type Ed25519Signature struct {
	PublicKey []byte `json:"public_key" yaml:"public_key"`
	Signature []byte `json:"signature" yaml:"signature"`
}

func (e Ed25519Signature) Mechanism() ProofMechanism {
	return ProofMechanismEd25519
}

// ValidateBasic checks key and signature sizes
func (e Ed25519Signature) ValidateBasic() error {
	if len(e.PublicKey) != Ed25519PubKeySize {
		return sdkerrors.Wrapf(ErrInvalidSegment, "public key size %d", len(e.PublicKey))
	}
	if len(e.Signature) != Ed25519SignatureSize {
		return sdkerrors.Wrapf(ErrInvalidSegment, "signature size %d", len(e.Signature))
	}
	return nil
}

// Verify the signature over the given bytes with the embedded public key
func (e Ed25519Signature) Verify(signBytes []byte) error {
	if err := e.ValidateBasic(); err != nil {
		return sdkerrors.Wrap(ErrProofVerification, err.Error())
	}
	pubKey := ed25519.PubKey{Key: e.PublicKey}
	if !pubKey.VerifySignature(signBytes, e.Signature) {
		return sdkerrors.Wrap(ErrProofVerification, "invalid ed25519 signature")
	}
	return nil
}

// Segment is a signed bundle of off-chain evidence for a campaign
type Segment struct {
	Data        SegmentData  `json:"data" yaml:"data"`
	Proof       SegmentProof `json:"proof" yaml:"proof"`
	RetrievedAt sdk.Uint     `json:"retrieved_at" yaml:"retrieved_at"`
}

// ValidateBasic checks that data and proof are of a supported kind and well formed.
func (s Segment) ValidateBasic() error {
	switch s.Data.(type) {
	case *GithubSegment, *PlainSegment:
	case nil:
		return sdkerrors.Wrap(ErrEmpty, "segment data")
	default:
		return sdkerrors.Wrapf(ErrUnsupportedSegment, "%T", s.Data)
	}
	if err := s.Data.ValidateBasic(); err != nil {
		return sdkerrors.Wrap(err, "segment data")
	}
	switch s.Proof.(type) {
	case *Ed25519Signature:
	case nil:
		return sdkerrors.Wrap(ErrEmpty, "segment proof")
	default:
		return sdkerrors.Wrapf(ErrUnsupportedProof, "%T", s.Proof)
	}
	if err := s.Proof.ValidateBasic(); err != nil {
		return sdkerrors.Wrap(err, "segment proof")
	}
	if s.RetrievedAt == (sdk.Uint{}) {
		return sdkerrors.Wrap(ErrEmpty, "retrieved at")
	}
	return nil
}

// Verify checks the proof against the canonical bytes of the data.
func (s Segment) Verify() error {
	if err := s.ValidateBasic(); err != nil {
		return err
	}
	signBytes, err := SegmentSignBytes(s.Data)
	if err != nil {
		return sdkerrors.Wrap(ErrProofVerification, err.Error())
	}
	return s.Proof.Verify(signBytes)
}

// SegmentSignBytes is the canonical encoding of segment data that proofs are created for:
// the module's amino JSON with sorted keys.
func SegmentSignBytes(data SegmentData) ([]byte, error) {
	bz, err := ModuleCdc.MarshalJSON(data)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "marshal segment data")
	}
	return sdk.SortJSON(bz)
}

// NewEd25519Segment signs the data with the given key
func NewEd25519Segment(key *ed25519.PrivKey, data SegmentData, retrievedAt sdk.Uint) (Segment, error) {
	signBytes, err := SegmentSignBytes(data)
	if err != nil {
		return Segment{}, err
	}
	sig, err := key.Sign(signBytes)
	if err != nil {
		return Segment{}, sdkerrors.Wrap(err, "sign")
	}
	return Segment{
		Data: data,
		Proof: &Ed25519Signature{
			PublicKey: key.PubKey().Bytes(),
			Signature: sig,
		},
		RetrievedAt: retrievedAt,
	}, nil
}
