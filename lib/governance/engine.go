package governance

import (
	"sync"
	"time"

	logging "github.com/inconshreveable/log15"

	"github.com/anunayjoshi29/ethvault/lib/common"
	"github.com/anunayjoshi29/ethvault/lib/common/observer"
	"github.com/anunayjoshi29/ethvault/lib/errors"
	"github.com/anunayjoshi29/ethvault/lib/metrics"
	"github.com/anunayjoshi29/ethvault/lib/storage"
)

var log logging.Logger = logging.New("module", "governance")

func SetLogging(level logging.Lvl, handler logging.Handler) {
	log.SetHandler(logging.LvlFilterHandler(level, handler))
}

// events go out on the named condition and on the wildcard, so a
// subscriber can follow one kind of transition or all of them
func triggerProposalEvent(condition string, p *Proposal) {
	observer.ProposalObserver.Trigger(observer.NewEvent(observer.ResourceProposal, condition, "").String(), p)
	observer.ProposalObserver.Trigger(observer.NewEvent(observer.ResourceProposal, observer.ConditionAll, "").String(), p)
}

// VoteCast is the payload of vote events.
type VoteCast struct {
	ProposalId uint64        `json:"proposal_id"`
	Voter      string        `json:"voter"`
	Ballot     Ballot        `json:"ballot"`
	Weight     common.Weight `json:"weight"`
}

// Engine orchestrates every governance operation. All mutations run under a
// single writer lock and inside one storage transaction, so each top-level
// call is atomic and totally ordered against every other call; a failed
// precondition or target invocation leaves no partial writes behind.
type Engine struct {
	sync.Mutex

	st       *storage.LevelDBBackend
	conf     common.Config
	oracle   WeightOracle
	executor Executor

	now func() time.Time
}

func NewEngine(st *storage.LevelDBBackend, conf common.Config, oracle WeightOracle, executor Executor) (*Engine, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		st:       st,
		conf:     conf,
		oracle:   oracle,
		executor: executor,
		now:      time.Now,
	}

	// the persisted record wins over the genesis values once it exists
	exists, err := ExistsParameters(st)
	if err != nil {
		return nil, err
	}
	if !exists {
		p := NewParameters(conf.VotingPeriod, conf.ExecutionDelay, conf.Quorum)
		if err := p.Save(st); err != nil {
			return nil, err
		}
		log.Info("governance parameters seeded", "params", p)
	}

	return e, nil
}

// CreateProposal allocates the next id and stores the immutable fields. The
// proposer must hold at least `common.MinProposerWeight`; the target must be
// a well-formed address other than the governance address itself.
func (e *Engine) CreateProposal(proposer, description, target string, callData []byte) (id uint64, err error) {
	e.Lock()
	defer e.Unlock()

	var w common.Weight
	if w, err = e.oracle.WeightOf(proposer); err != nil {
		return
	}
	if w < common.MinProposerWeight {
		err = errors.InsufficientWeight.Clone().SetData("weight", w)
		return
	}

	if !common.IsValidAddress(target) {
		err = errors.InvalidTarget.Clone().SetData("target", target)
		return
	}
	if target == e.conf.GovernanceAddress {
		err = errors.SelfTarget
		return
	}

	ts, err := e.st.OpenTransaction()
	if err != nil {
		return
	}

	var p *Proposal
	if id, p, err = e.createProposal(ts, proposer, description, target, callData); err != nil {
		ts.Discard()
		return
	}

	if err = ts.Commit(); err != nil {
		ts.Discard()
		return
	}

	metrics.Governance.AddProposalsCreated()
	log.Info("proposal created", "id", id, "proposer", proposer, "target", target, "payload-hash", p.PayloadHash)
	triggerProposalEvent(observer.ConditionCreated, p)

	return
}

func (e *Engine) createProposal(ts *storage.LevelDBBackend, proposer, description, target string, callData []byte) (id uint64, p *Proposal, err error) {
	if id, err = GetProposalSequence(ts); err != nil {
		return
	}
	if id >= common.MaxProposals {
		err = errors.ProposalCapacityExceeded
		return
	}

	p = NewProposal(id, proposer, description, target, callData, e.now())
	if err = p.Save(ts); err != nil {
		return
	}
	if err = SetProposalSequence(ts, id+1); err != nil {
		return
	}

	return
}

// CastVote records the caller's choice and adds its live weight to the
// matching accumulator. A voter's entry transitions away from `BallotNone`
// at most once.
func (e *Engine) CastVote(voter string, id uint64, support bool) (err error) {
	e.Lock()
	defer e.Unlock()

	ts, err := e.st.OpenTransaction()
	if err != nil {
		return
	}

	var cast VoteCast
	if cast, err = e.castVote(ts, voter, id, support); err != nil {
		ts.Discard()
		return
	}

	if err = ts.Commit(); err != nil {
		ts.Discard()
		return
	}

	metrics.Governance.AddVotesCast()
	log.Info("vote cast", "id", id, "voter", voter, "ballot", cast.Ballot, "weight", cast.Weight)
	observer.VoteObserver.Trigger(observer.NewEvent(observer.ResourceVote, observer.ConditionVoter, voter).String(), &cast)
	observer.VoteObserver.Trigger(observer.NewEvent(observer.ResourceVote, observer.ConditionAll, "").String(), &cast)

	return
}

func (e *Engine) castVote(ts *storage.LevelDBBackend, voter string, id uint64, support bool) (cast VoteCast, err error) {
	var p *Proposal
	if p, err = GetProposal(ts, id); err != nil {
		return
	}

	var params *Parameters
	if params, err = GetParameters(ts); err != nil {
		return
	}

	now := e.now()
	if state := DeriveState(p, params, now); state != StateActive {
		err = errors.ProposalNotActive.Clone().SetData("state", state)
		return
	}

	if p.BallotOf(voter) != BallotNone {
		err = errors.AlreadyVoted
		return
	}

	var w common.Weight
	if w, err = e.oracle.WeightOf(voter); err != nil {
		return
	}
	if w < 1 {
		err = errors.NoVotingPower
		return
	}

	if now.Before(p.CreatedTime().Add(common.MinVoteDelay)) {
		err = errors.VotingTooEarly
		return
	}

	ballot := BallotAgainst
	if support {
		ballot = BallotFor
	}

	if support {
		if p.VotesFor, err = p.VotesFor.Add(w); err != nil {
			return
		}
	} else {
		if p.VotesAgainst, err = p.VotesAgainst.Add(w); err != nil {
			return
		}
	}
	p.Votes[voter] = ballot

	if err = p.Save(ts); err != nil {
		return
	}

	cast = VoteCast{ProposalId: id, Voter: voter, Ballot: ballot, Weight: w}

	return
}

// ExecuteProposal invokes the stored target with the stored payload. The
// `Executed` flag is committed and the lock released before the invocation,
// so a target calling back into the engine observes `EXECUTED` and is
// rejected by the state checks instead of blocking; a failing invocation
// undoes the flag, leaving the proposal `SUCCEEDED` and retryable.
func (e *Engine) ExecuteProposal(id uint64) (err error) {
	e.Lock()
	var p *Proposal
	if p, err = e.markExecuted(id); err != nil {
		e.Unlock()
		return
	}
	e.Unlock()

	if ierr := e.executor.Invoke(p.Target, p.CallData); ierr != nil {
		log.Error("target invocation failed", "id", id, "target", p.Target, "err", ierr)
		err = errors.ExecutionFailed.Clone().SetData("cause", ierr.Error())

		if uerr := e.unmarkExecuted(id); uerr != nil {
			log.Error("failed to undo the executed flag", "id", id, "err", uerr)
		}
		return
	}

	metrics.Governance.AddProposalsExecuted()
	log.Info("proposal executed", "id", id, "target", p.Target)
	triggerProposalEvent(observer.ConditionExecuted, p)

	return
}

// markExecuted validates the execution preconditions and commits the
// `Executed` flag as its own transaction. The caller holds the lock.
func (e *Engine) markExecuted(id uint64) (p *Proposal, err error) {
	ts, err := e.st.OpenTransaction()
	if err != nil {
		return
	}

	if p, err = e.executeProposal(ts, id); err != nil {
		ts.Discard()
		return
	}

	if err = ts.Commit(); err != nil {
		ts.Discard()
		return
	}

	return
}

// unmarkExecuted is the undo path of a failed target invocation; it
// re-acquires the lock the invocation ran without.
func (e *Engine) unmarkExecuted(id uint64) (err error) {
	e.Lock()
	defer e.Unlock()

	ts, err := e.st.OpenTransaction()
	if err != nil {
		return
	}

	var p *Proposal
	if p, err = GetProposal(ts, id); err != nil {
		ts.Discard()
		return
	}

	p.Executed = false
	if err = p.Save(ts); err != nil {
		ts.Discard()
		return
	}

	if err = ts.Commit(); err != nil {
		ts.Discard()
		return
	}

	return
}

func (e *Engine) executeProposal(ts *storage.LevelDBBackend, id uint64) (p *Proposal, err error) {
	if p, err = GetProposal(ts, id); err != nil {
		return
	}

	var params *Parameters
	if params, err = GetParameters(ts); err != nil {
		return
	}

	now := e.now()
	switch state := DeriveState(p, params, now); state {
	case StateSucceeded:
	case StateExpired:
		err = errors.ProposalExpired
		return
	default:
		err = errors.NotSucceeded.Clone().SetData("state", state)
		return
	}

	// the derivation above already encodes the execution deadline; this
	// duplicate guard keeps execute safe against any future divergence
	// between the two
	deadline := p.CreatedTime().Add(params.VotingPeriod).Add(params.ExecutionDelay)
	if now.After(deadline) {
		err = errors.ProposalExpired
		return
	}

	p.Executed = true
	if err = p.Save(ts); err != nil {
		return
	}

	return
}

// CancelProposal marks the proposal canceled. Only the original proposer or
// the admin may cancel; the accumulators stay as a historical record until
// cleanup.
func (e *Engine) CancelProposal(caller string, id uint64) (err error) {
	e.Lock()
	defer e.Unlock()

	ts, err := e.st.OpenTransaction()
	if err != nil {
		return
	}

	var p *Proposal
	if p, err = e.cancelProposal(ts, caller, id); err != nil {
		ts.Discard()
		return
	}

	if err = ts.Commit(); err != nil {
		ts.Discard()
		return
	}

	metrics.Governance.AddProposalsCanceled()
	log.Info("proposal canceled", "id", id, "caller", caller)
	triggerProposalEvent(observer.ConditionCanceled, p)

	return
}

func (e *Engine) cancelProposal(ts *storage.LevelDBBackend, caller string, id uint64) (p *Proposal, err error) {
	if p, err = GetProposal(ts, id); err != nil {
		return
	}

	if p.Executed {
		err = errors.AlreadyExecuted
		return
	}
	if p.Canceled {
		err = errors.AlreadyCanceled
		return
	}
	if caller != p.Proposer && caller != e.conf.AdminAddress {
		err = errors.Unauthorized
		return
	}

	p.Canceled = true
	if err = p.Save(ts); err != nil {
		return
	}

	return
}

// CleanupProposals erases finished records, ballot tables included. The
// whole batch is one transaction; one bad id aborts all of it.
func (e *Engine) CleanupProposals(caller string, ids []uint64) (err error) {
	e.Lock()
	defer e.Unlock()

	if caller != e.conf.AdminAddress {
		return errors.Unauthorized
	}

	ts, err := e.st.OpenTransaction()
	if err != nil {
		return
	}

	var removed []*Proposal
	if removed, err = e.cleanupProposals(ts, ids); err != nil {
		ts.Discard()
		return
	}

	if err = ts.Commit(); err != nil {
		ts.Discard()
		return
	}

	for _, p := range removed {
		metrics.Governance.AddProposalsCleaned()
		log.Info("proposal cleaned up", "id", p.Id)
		triggerProposalEvent(observer.ConditionCleaned, p)
	}

	return
}

func (e *Engine) cleanupProposals(ts *storage.LevelDBBackend, ids []uint64) (removed []*Proposal, err error) {
	var params *Parameters
	if params, err = GetParameters(ts); err != nil {
		return
	}

	now := e.now()
	for _, id := range ids {
		var p *Proposal
		if p, err = GetProposal(ts, id); err != nil {
			return
		}

		// the flags are checked next to the derived state on purpose;
		// both must agree that nothing further can happen to the record
		if !DeriveState(p, params, now).IsTerminal() && !p.Executed && !p.Canceled {
			err = errors.NotFinished.Clone().SetData("id", id)
			return
		}

		if err = RemoveProposal(ts, id); err != nil {
			return
		}
		removed = append(removed, p)
	}

	return
}

// UpdateParameters replaces the global tunables. Takes effect for the state
// derivation of every proposal, existing ones included.
func (e *Engine) UpdateParameters(caller string, votingPeriod, executionDelay time.Duration, quorum common.Weight) (err error) {
	e.Lock()
	defer e.Unlock()

	if caller != e.conf.AdminAddress {
		return errors.Unauthorized
	}

	p := NewParameters(votingPeriod, executionDelay, quorum)
	if err = p.Validate(); err != nil {
		return
	}

	ts, err := e.st.OpenTransaction()
	if err != nil {
		return
	}

	if err = p.Save(ts); err != nil {
		ts.Discard()
		return
	}

	if err = ts.Commit(); err != nil {
		ts.Discard()
		return
	}

	log.Info("governance parameters updated", "caller", caller, "params", p)

	return
}

// Proposal returns the stored record.
func (e *Engine) Proposal(id uint64) (*Proposal, error) {
	return GetProposal(e.st, id)
}

// State derives the current state of the proposal.
func (e *Engine) State(id uint64) (State, error) {
	p, err := GetProposal(e.st, id)
	if err != nil {
		return "", err
	}

	params, err := GetParameters(e.st)
	if err != nil {
		return "", err
	}

	return DeriveState(p, params, e.now()), nil
}

// Tallies returns the running accumulators.
func (e *Engine) Tallies(id uint64) (votesFor, votesAgainst common.Weight, err error) {
	p, err := GetProposal(e.st, id)
	if err != nil {
		return
	}

	return p.VotesFor, p.VotesAgainst, nil
}

// VoterBallot returns the recorded choice of address on the proposal.
func (e *Engine) VoterBallot(id uint64, address string) (Ballot, error) {
	p, err := GetProposal(e.st, id)
	if err != nil {
		return BallotNone, err
	}

	return p.BallotOf(address), nil
}

// Count returns the number of proposals ever created; cleanup never lowers
// it.
func (e *Engine) Count() (uint64, error) {
	return GetProposalSequence(e.st)
}

// Parameters returns the current global tunables.
func (e *Engine) Parameters() (*Parameters, error) {
	return GetParameters(e.st)
}

// Storage exposes the backend for the read-only API surface.
func (e *Engine) Storage() *storage.LevelDBBackend {
	return e.st
}

// GovernanceAddress is this module's own address; used by the API layer and
// by the self-target check.
func (e *Engine) GovernanceAddress() string {
	return e.conf.GovernanceAddress
}
