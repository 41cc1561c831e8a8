package user

type Permission string

const (
	// Overtime
	PermissionOvertimeViewOwn Permission = "overtime.view_own"
	PermissionOvertimeCreate  Permission = "overtime.create"
	PermissionOvertimeApprove Permission = "overtime.approve"
	PermissionOvertimeExport  Permission = "overtime.export"

	// Team
	PermissionTeamView           Permission = "team.view"
	PermissionTeamAttendanceView Permission = "team.attendance_view"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner: {
		PermissionOvertimeViewOwn,
		PermissionOvertimeCreate,
		PermissionOvertimeApprove,
		PermissionOvertimeExport,
		PermissionTeamView,
		PermissionTeamAttendanceView,
	},
	RoleManager: {
		// Supervisors decide on their department's requests
		PermissionOvertimeViewOwn,
		PermissionOvertimeCreate,
		PermissionOvertimeApprove,
		PermissionOvertimeExport,
		PermissionTeamView,
		PermissionTeamAttendanceView,
	},
	RoleEmployee: {
		PermissionOvertimeViewOwn,
		PermissionOvertimeCreate,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
