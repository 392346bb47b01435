package authz

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestDecideTable(t *testing.T) {
	cases := []struct {
		hasSession  bool
		roleMatches bool
		want        Outcome
	}{
		{hasSession: false, roleMatches: false, want: RedirectLogin},
		{hasSession: false, roleMatches: true, want: RedirectLogin},
		{hasSession: true, roleMatches: false, want: RedirectDashboard},
		{hasSession: true, roleMatches: true, want: Render},
	}
	for _, tc := range cases {
		if got := Decide(tc.hasSession, tc.roleMatches); got != tc.want {
			t.Fatalf("decide(%v,%v) want %s got %s", tc.hasSession, tc.roleMatches, tc.want, got)
		}
	}
}

// 任意会话与角色组合下：有会话且（无角色要求或角色一致）才渲染
func TestGuardRendersIffSessionAndRoleMatch(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapPagePolicies(); err != nil {
		t.Fatalf("bootstrap page policies failed: %v", err)
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("guard outcome follows session and role", prop.ForAll(
		func(hasSession bool, role, required string) bool {
			matches, err := svc.RoleMatches(role, required, "/users", "GET")
			if err != nil {
				return false
			}
			got := Decide(hasSession, matches)
			expectMatch := required == "" || strings.EqualFold(role, required)
			switch {
			case !hasSession:
				return got == RedirectLogin
			case expectMatch:
				return got == Render
			default:
				return got == RedirectDashboard
			}
		},
		gen.Bool(),
		gen.OneConstOf("", "STAFF", "MANAGER", "staff", "manager"),
		gen.OneConstOf("", "MANAGER"),
	))

	properties.TestingRun(t)
}
