// Copyright (c) 2025 Marco Profi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - LoginRequest: username, password
  - InitBudgetRequest: amount
  - CreateProposalRequest: description, cost
  - UpdateProposalRequest: description, cost
  - CastVoteRequest: proposal_id, score

# Response Types

Types for JSON responses:

  - CreateProposalResponse: proposal_id
  - ApprovalSummaryResponse: approved_count, total_cost, budget, display
  - MessageResponse: message
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - BudgetCycle: singleton budget amount and phase
  - Proposal: member proposal with cost and approval flag
  - Vote: one voter's score for one proposal
  - User: stored user row, credentials included
  - PublicUser: user shape returned to clients

# View Types

Query results joining multiple tables:

  - ProposalScore: proposal plus aggregated vote score
  - RankedProposal: listing row with author display name and score
  - VotePreference: a voter's own vote joined with the proposal

# Constants

Roles:

	RoleAdmin  = "Admin"
	RoleMember = "Member"

Phases:

	PhaseBudgetSetup = 0
	PhaseProposals   = 1
	PhaseVoting      = 2
	PhaseClosed      = 3

Limits:

	MaxProposalsPerAuthor = 3
	MaxDescriptionLen     = 50
*/
package models
