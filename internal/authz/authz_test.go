package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acme/dashboard/internal/authz"
)

func TestDecide(t *testing.T) {
	type testCase struct {
		name          string
		authenticated bool
		path          string
		want          authz.Decision
	}

	tests := []testCase{
		{
			name:          "DashboardAuthenticated",
			authenticated: true,
			path:          "/dashboard",
			want:          authz.Allow,
		},
		{
			name:          "DashboardUnauthenticated",
			authenticated: false,
			path:          "/dashboard",
			want:          authz.RedirectToLogin,
		},
		{
			name:          "OutsideDashboardAuthenticated",
			authenticated: true,
			path:          "/login",
			want:          authz.RedirectToDashboard,
		},
		{
			name:          "OutsideDashboardUnauthenticated",
			authenticated: false,
			path:          "/login",
			want:          authz.Allow,
		},
		{
			name:          "NestedDashboardPageUnauthenticated",
			authenticated: false,
			path:          "/dashboard/invoices",
			want:          authz.RedirectToLogin,
		},
		{
			name:          "NestedDashboardPageAuthenticated",
			authenticated: true,
			path:          "/dashboard/invoices/create",
			want:          authz.Allow,
		},
		{
			name:          "RootAuthenticated",
			authenticated: true,
			path:          "/",
			want:          authz.RedirectToDashboard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authz.Decide(tt.authenticated, tt.path))
		})
	}
}
