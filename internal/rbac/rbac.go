package rbac

import "github.com/creator-marketplace/backend/internal/models"

// Permission constants
const (
	PermCreateCampaign  = "create_campaign"
	PermManageCampaign  = "manage_campaign"
	PermSubmitProposal  = "submit_proposal"
	PermDecideProposal  = "decide_proposal"
	PermReviewProposals = "review_proposals"
)

// RolePermissions defines what each role can do.
var RolePermissions = map[string][]string{
	models.RoleBrand: {
		PermCreateCampaign, PermManageCampaign, PermDecideProposal, PermReviewProposals,
	},
	models.RoleCreator: {
		PermSubmitProposal, PermReviewProposals,
	},
}

// HasPermission checks if a role has a specific permission.
func HasPermission(role, permission string) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
