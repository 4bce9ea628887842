package model

import (
	"context"
	"slices"

	"github.com/secmon-lab/qmsboard/pkg/domain/types"
)

// Permission is a named capability granted to a role
type Permission string

const (
	PermRisksView       Permission = "risks.view"
	PermRisksCreate     Permission = "risks.create"
	PermKPIsView        Permission = "kpis.view"
	PermDocumentsView   Permission = "documents.view"
	PermDashboardView   Permission = "dashboard.view"
	PermQualityAll      Permission = "quality.all"
	PermDepartmentView  Permission = "department.view"
	PermIncidentsCreate Permission = "incidents.create"
)

var rolePermissions = map[types.Role][]Permission{
	types.RoleCEO: {
		PermDashboardView, PermRisksView, PermKPIsView, PermDocumentsView,
	},
	types.RoleQualityAdmin: {
		PermQualityAll, PermDashboardView, PermRisksView, PermRisksCreate, PermKPIsView, PermDocumentsView,
	},
	types.RoleHOD: {
		PermDepartmentView, PermDashboardView, PermRisksView, PermRisksCreate, PermKPIsView, PermDocumentsView,
	},
	types.RoleStaff: {
		PermDocumentsView, PermRisksView, PermIncidentsCreate,
	},
}

// Permissions returns the permissions of a role
func Permissions(role types.Role) []Permission {
	return slices.Clone(rolePermissions[role])
}

// HasPermission reports whether the role grants the permission
func HasPermission(role types.Role, perm Permission) bool {
	return slices.Contains(rolePermissions[role], perm)
}

// Actor is the role-tagged caller of an operation. There is no credential;
// the role is taken as declared by the client.
type Actor struct {
	UserID types.UserID
	Role   types.Role
}

type actorKey struct{}

// WithActor stores the actor in the context
func WithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor in the context, defaulting to anonymous staff
func ActorFromContext(ctx context.Context) *Actor {
	if actor, ok := ctx.Value(actorKey{}).(*Actor); ok && actor != nil {
		return actor
	}
	return &Actor{Role: types.RoleStaff}
}
