// Package access centralizes the assistant's role gates. Both gates are
// closed sets: adding a role to a gate is a single declarative update here.
package access

// RoleKey is the machine key of a business role on a project.
type RoleKey string

const (
	RoleProjectManager RoleKey = "PROJECT_MANAGER"
	RoleArchitect      RoleKey = "ARCHITECT"
	RoleEngineer       RoleKey = "ENGINEER"
	RoleForeman        RoleKey = "FOREMAN"
	RoleEstimator      RoleKey = "ESTIMATOR"
	RoleSurveyor       RoleKey = "SURVEYOR"
	RoleTradePartner   RoleKey = "TRADE_PARTNER"
	RoleHomeowner      RoleKey = "HOMEOWNER"
)

var costDetailRoles = map[RoleKey]bool{
	RoleProjectManager: true,
	RoleEstimator:      true,
}

var fullTeamRoles = map[RoleKey]bool{
	RoleProjectManager: true,
}

// MayViewCostDetail reports whether a role receives computed cost estimates.
// An absent/unknown role is denied.
func MayViewCostDetail(role string) bool {
	return costDetailRoles[RoleKey(role)]
}

// MayViewFullTeam reports whether a role sees the full per-member list in the
// project overview.
func MayViewFullTeam(role string) bool {
	return fullTeamRoles[RoleKey(role)]
}
