package rest

import (
	"context"
	"net/http"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/rest"
	"github.com/gorilla/mux"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/filament-network/hub/x/core/types"
)

// ContextFn returns a read only context on the latest committed state
type ContextFn func() (sdk.Context, error)

// RegisterRoutes registers the read only module routes
func RegisterRoutes(r *mux.Router, q types.QueryServer, ctxFn ContextFn) {
	s := server{q: q, ctxFn: ctxFn}
	prefix := "/" + types.ModuleName
	r.HandleFunc(prefix+"/admin", s.admin).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/campaigns/{id}", s.campaign).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/campaigns/{id}/proposals", s.proposals).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/campaigns/{id}/proposals/{pid}", s.proposal).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/campaigns/{id}/segment", s.segment).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/campaigners/{addr}/campaigns", s.campaignsByCampaigner).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/indexers", s.indexers).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/indexers/{addr}", s.indexer).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/relayers", s.relayers).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/relayers/{addr}", s.relayer).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/delegates", s.delegates).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/powers", s.ranking).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/powers/{addr}", s.power).Methods(http.MethodGet)
}

type server struct {
	q     types.QueryServer
	ctxFn ContextFn
}

// query runs fn on a fresh read context and writes the amino JSON result
func (s server) query(w http.ResponseWriter, fn func(c context.Context) (interface{}, error)) {
	ctx, err := s.ctxFn()
	if err != nil {
		rest.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	rsp, err := fn(sdk.WrapSDKContext(ctx))
	if err != nil {
		rest.WriteErrorResponse(w, httpStatus(err), err.Error())
		return
	}
	bz, err := types.ModuleCdc.MarshalJSON(rsp)
	if err != nil {
		rest.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(bz)
}

func httpStatus(err error) int {
	switch status.Code(err) {
	case codes.NotFound:
		return http.StatusNotFound
	case codes.InvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func uint64Var(w http.ResponseWriter, r *http.Request, name string) (uint64, bool) {
	v, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil {
		rest.WriteErrorResponse(w, http.StatusBadRequest, name+": "+err.Error())
		return 0, false
	}
	return v, true
}

func addressVar(w http.ResponseWriter, r *http.Request) (sdk.AccAddress, bool) {
	addr, err := sdk.AccAddressFromBech32(mux.Vars(r)["addr"])
	if err != nil {
		rest.WriteErrorResponse(w, http.StatusBadRequest, "addr: "+err.Error())
		return nil, false
	}
	return addr, true
}

func (s server) admin(w http.ResponseWriter, _ *http.Request) {
	s.query(w, func(c context.Context) (interface{}, error) {
		return s.q.Admin(c, &types.QueryAdminRequest{})
	})
}

func (s server) campaign(w http.ResponseWriter, r *http.Request) {
	id, ok := uint64Var(w, r, "id")
	if !ok {
		return
	}
	s.query(w, func(c context.Context) (interface{}, error) {
		return s.q.Campaign(c, &types.QueryCampaignRequest{CampaignID: id})
	})
}

func (s server) proposals(w http.ResponseWriter, r *http.Request) {
	id, ok := uint64Var(w, r, "id")
	if !ok {
		return
	}
	s.query(w, func(c context.Context) (interface{}, error) {
		return s.q.CriteriaProposals(c, &types.QueryCriteriaProposalsRequest{CampaignID: id})
	})
}

func (s server) proposal(w http.ResponseWriter, r *http.Request) {
	id, ok := uint64Var(w, r, "id")
	if !ok {
		return
	}
	pid, ok := uint64Var(w, r, "pid")
	if !ok {
		return
	}
	s.query(w, func(c context.Context) (interface{}, error) {
		return s.q.CriteriaProposal(c, &types.QueryCriteriaProposalRequest{CampaignID: id, ProposalID: pid})
	})
}

func (s server) segment(w http.ResponseWriter, r *http.Request) {
	id, ok := uint64Var(w, r, "id")
	if !ok {
		return
	}
	s.query(w, func(c context.Context) (interface{}, error) {
		return s.q.Segment(c, &types.QuerySegmentRequest{CampaignID: id})
	})
}

func (s server) campaignsByCampaigner(w http.ResponseWriter, r *http.Request) {
	addr, ok := addressVar(w, r)
	if !ok {
		return
	}
	s.query(w, func(c context.Context) (interface{}, error) {
		return s.q.CampaignsByCampaigner(c, &types.QueryCampaignsByCampaignerRequest{Campaigner: addr})
	})
}

func (s server) indexers(w http.ResponseWriter, _ *http.Request) {
	s.query(w, func(c context.Context) (interface{}, error) {
		return s.q.Indexers(c, &types.QueryListRequest{})
	})
}

func (s server) indexer(w http.ResponseWriter, r *http.Request) {
	addr, ok := addressVar(w, r)
	if !ok {
		return
	}
	s.query(w, func(c context.Context) (interface{}, error) {
		return s.q.Indexer(c, &types.QueryAddressRequest{Address: addr})
	})
}

func (s server) relayers(w http.ResponseWriter, _ *http.Request) {
	s.query(w, func(c context.Context) (interface{}, error) {
		return s.q.Relayers(c, &types.QueryListRequest{})
	})
}

func (s server) relayer(w http.ResponseWriter, r *http.Request) {
	addr, ok := addressVar(w, r)
	if !ok {
		return
	}
	s.query(w, func(c context.Context) (interface{}, error) {
		return s.q.Relayer(c, &types.QueryAddressRequest{Address: addr})
	})
}

func (s server) delegates(w http.ResponseWriter, _ *http.Request) {
	s.query(w, func(c context.Context) (interface{}, error) {
		return s.q.Delegates(c, &types.QueryListRequest{})
	})
}

func (s server) ranking(w http.ResponseWriter, _ *http.Request) {
	s.query(w, func(c context.Context) (interface{}, error) {
		return s.q.Ranking(c, &types.QueryListRequest{})
	})
}

func (s server) power(w http.ResponseWriter, r *http.Request) {
	addr, ok := addressVar(w, r)
	if !ok {
		return
	}
	s.query(w, func(c context.Context) (interface{}, error) {
		return s.q.Power(c, &types.QueryAddressRequest{Address: addr})
	})
}
