package domain_test

import (
	"testing"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestProposalStatus_CanTransitionTo(t *testing.T) {
	allStatuses := []domain.ProposalStatus{
		domain.ProposalDraft, domain.ProposalSent, domain.ProposalAccepted,
		domain.ProposalRejected, domain.ProposalArchived,
	}
	allowed := map[domain.ProposalStatus][]domain.ProposalStatus{
		domain.ProposalDraft:    {domain.ProposalSent},
		domain.ProposalSent:     {domain.ProposalAccepted, domain.ProposalRejected},
		domain.ProposalAccepted: {domain.ProposalArchived},
		domain.ProposalRejected: {domain.ProposalArchived},
		domain.ProposalArchived: {},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestProposalStatus_IsValid(t *testing.T) {
	assert.True(t, domain.ProposalDraft.IsValid())
	assert.True(t, domain.ProposalArchived.IsValid())
	assert.False(t, domain.ProposalStatus("PENDING").IsValid())
	assert.False(t, domain.ProposalStatus("").IsValid())
}

func TestDeliverableStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.DeliverableStatus
		to   domain.DeliverableStatus
		want bool
	}{
		{"pending to delivered", domain.DeliverablePending, domain.DeliverableDelivered, true},
		{"pending straight to approved", domain.DeliverablePending, domain.DeliverableApproved, false},
		{"delivered to approved", domain.DeliverableDelivered, domain.DeliverableApproved, true},
		{"delivered to rejected", domain.DeliverableDelivered, domain.DeliverableRejected, true},
		{"delivered to revision", domain.DeliverableDelivered, domain.DeliverableRevision, true},
		{"approved reverts to delivered", domain.DeliverableApproved, domain.DeliverableDelivered, true},
		{"rejected reverts to delivered", domain.DeliverableRejected, domain.DeliverableDelivered, true},
		{"revision back to delivered", domain.DeliverableRevision, domain.DeliverableDelivered, true},
		{"approved to rejected directly", domain.DeliverableApproved, domain.DeliverableRejected, false},
		{"delivered back to pending", domain.DeliverableDelivered, domain.DeliverablePending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestDeliverableStatus_IsReviewVerdict(t *testing.T) {
	assert.True(t, domain.DeliverableApproved.IsReviewVerdict())
	assert.True(t, domain.DeliverableRejected.IsReviewVerdict())
	assert.True(t, domain.DeliverableRevision.IsReviewVerdict())
	assert.False(t, domain.DeliverablePending.IsReviewVerdict())
	assert.False(t, domain.DeliverableDelivered.IsReviewVerdict())
}

func TestContractStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.ContractStatus
		to   domain.ContractStatus
		want bool
	}{
		{"draft to sent", domain.ContractDraft, domain.ContractSent, true},
		{"draft straight to signed", domain.ContractDraft, domain.ContractSigned, false},
		{"sent to signed", domain.ContractSent, domain.ContractSigned, true},
		{"sent to expired", domain.ContractSent, domain.ContractExpired, true},
		{"signed to expired", domain.ContractSigned, domain.ContractExpired, true},
		{"expired is terminal", domain.ContractExpired, domain.ContractSent, false},
		{"signed back to sent", domain.ContractSigned, domain.ContractSent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestProjectStatus_IsClosed(t *testing.T) {
	assert.True(t, domain.ProjectCompleted.IsClosed())
	assert.True(t, domain.ProjectCancelled.IsClosed())
	assert.False(t, domain.ProjectPlanning.IsClosed())
	assert.False(t, domain.ProjectActive.IsClosed())
	assert.False(t, domain.ProjectPaused.IsClosed())
}
