package access

import "testing"

func TestMayViewCostDetail(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{string(RoleProjectManager), true},
		{string(RoleEstimator), true},
		{string(RoleArchitect), false},
		{string(RoleEngineer), false},
		{string(RoleForeman), false},
		{string(RoleSurveyor), false},
		{string(RoleTradePartner), false},
		{string(RoleHomeowner), false},
		{"", false},
		{"project_manager", false},
	}

	for _, tt := range tests {
		if got := MayViewCostDetail(tt.role); got != tt.want {
			t.Errorf("MayViewCostDetail(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestMayViewFullTeam(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{string(RoleProjectManager), true},
		{string(RoleEstimator), false},
		{string(RoleHomeowner), false},
		{"", false},
	}

	for _, tt := range tests {
		if got := MayViewFullTeam(tt.role); got != tt.want {
			t.Errorf("MayViewFullTeam(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}
