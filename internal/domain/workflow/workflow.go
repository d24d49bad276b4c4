package workflow

import (
	"errors"
	"time"

	"floorcraft/internal/domain/entities"
)

// ErrAlreadySigned is returned when a party attempts to sign a contract
// whose slot for that party is already occupied. Signatures are immutable
// once set; silently overwriting one would corrupt the contract's legal
// meaning.
var ErrAlreadySigned = errors.New("contract already signed by this party")

// MarkQuoted promotes a freshly priced draft to quoted. A no-op for any
// other status or while the cost is still zero.
func MarkQuoted(p entities.Project) entities.Project {
	if p.Status == entities.ProjectStatusDraft && p.EstimatedCost > 0 {
		p.Status = entities.ProjectStatusQuoted
	}
	return p
}

// MarkSent records an estimate-email event. Re-sending is idempotent: the
// send counter always increments, but a status already beyond sent never
// regresses.
func MarkSent(p entities.Project, when time.Time) entities.Project {
	p.SendCount++
	p.SentAt = &when
	switch p.Status {
	case entities.ProjectStatusDraft, entities.ProjectStatusQuoted:
		p.Status = entities.ProjectStatusSent
	}
	return p
}

// SubmitSignature sets the signature slot for party and evaluates the
// approval guard. Fails with ErrAlreadySigned when the slot is occupied;
// the stored signature and timestamp are left untouched in that case.
//
// The persistence layer must back this check with a conditional write so a
// double-submit race cannot overwrite a signature.
func SubmitSignature(p entities.Project, party entities.SignatureParty, blob string, when time.Time) (entities.Project, error) {
	if p.Signed(party) {
		return p, ErrAlreadySigned
	}
	switch party {
	case entities.PartyCustomer:
		p.CustomerSignature = blob
		p.CustomerSignedAt = &when
	case entities.PartyContractor:
		p.ContractorSignature = blob
		p.ContractorSignedAt = &when
	}
	return EvaluateApproval(p), nil
}

// EvaluateApproval promotes the project to approved exactly when both
// signatures are present. Unreachable with one signature; idempotent once
// reached; statuses past approved are untouched.
func EvaluateApproval(p entities.Project) entities.Project {
	if !p.FullySigned() {
		return p
	}
	switch p.Status {
	case entities.ProjectStatusDraft, entities.ProjectStatusQuoted, entities.ProjectStatusSent:
		p.Status = entities.ProjectStatusApproved
	}
	return p
}

// StartWork flips an approved project to in_progress. No-op otherwise.
func StartWork(p entities.Project) entities.Project {
	if p.Status == entities.ProjectStatusApproved {
		p.Status = entities.ProjectStatusInProgress
	}
	return p
}

// CompleteWork flips an in_progress project to completed. No-op otherwise.
func CompleteWork(p entities.Project) entities.Project {
	if p.Status == entities.ProjectStatusInProgress {
		p.Status = entities.ProjectStatusCompleted
	}
	return p
}
