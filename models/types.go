package models

// User roles
const (
	RoleAdmin  = "Admin"
	RoleMember = "Member"
)

// Budget process phases
const (
	PhaseBudgetSetup = 0
	PhaseProposals   = 1
	PhaseVoting      = 2
	PhaseClosed      = 3
)

// CycleID is the fixed primary key of the singleton budget cycle row.
const CycleID = "current"

// MaxProposalsPerAuthor caps how many live proposals one member may hold.
const MaxProposalsPerAuthor = 3

// MaxDescriptionLen bounds proposal descriptions.
const MaxDescriptionLen = 50

// Request types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type InitBudgetRequest struct {
	Amount float64 `json:"amount"`
}

type CreateProposalRequest struct {
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

type UpdateProposalRequest struct {
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

type CastVoteRequest struct {
	ProposalID string `json:"proposal_id"`
	Score      int    `json:"score"`
}

// Response types

type CreateProposalResponse struct {
	ProposalID string `json:"proposal_id"`
}

type ApprovalSummaryResponse struct {
	ApprovedCount int     `json:"approved_count"`
	TotalCost     float64 `json:"total_cost"`
	Budget        float64 `json:"budget"`
	Display       string  `json:"display"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

type BudgetCycle struct {
	ID     string  `json:"-"`
	Amount float64 `json:"amount"`
	Phase  int     `json:"phase"`
}

type Proposal struct {
	ID          string  `json:"id"`
	AuthorID    string  `json:"author_id"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Approved    bool    `json:"approved"`
}

type Vote struct {
	VoterID    string `json:"voter_id"`
	ProposalID string `json:"proposal_id"`
	Score      int    `json:"score"`
}

// User is the stored user row. Credentials never leave the store layer.
type User struct {
	ID           string
	Name         string
	Surname      string
	Role         string
	Username     string
	PasswordHash string
	Salt         string
}

// PublicUser is the user shape returned to clients after authentication.
type PublicUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

// View types

// ProposalScore is a proposal joined with its aggregated vote score.
type ProposalScore struct {
	Proposal
	TotalScore int `json:"total_score"`
}

// RankedProposal is an approved/not-approved listing row: proposal plus
// author display name and aggregated score.
type RankedProposal struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Author      string  `json:"author"`
	TotalScore  int     `json:"total_score"`
}

// VotePreference is one of a voter's own votes joined with the proposal.
type VotePreference struct {
	ProposalID  string  `json:"proposal_id"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Score       int     `json:"score"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
