// Package view maps (role, view) pairs onto render targets. The mapping
// is pure: handlers ask it which screen is active, nothing here touches
// state.
package view

import "github.com/educonnect/educonnect-api/internal/models"

// Identifiers for the known views.
const (
	Home             = "home"
	TeacherDashboard = "teacher-dashboard"
	TeacherProfile   = "teacher-profile"
	TeacherBrowse    = "teacher-browse"
	ParentDashboard  = "parent-dashboard"
	ParentBrowse     = "parent-browse"
	SchoolDashboard  = "school-dashboard"
	SchoolJobs       = "school-jobs"
)

// renderTargets lists which views each role may render. The home screen
// is reachable from every role, including NONE.
var renderTargets = map[models.Role]map[string]string{
	models.RoleNone: {
		Home: "Home",
	},
	models.RoleTeacher: {
		Home:             "Home",
		TeacherDashboard: "TeacherDashboard",
		TeacherProfile:   "MyProfile",
		TeacherBrowse:    "BrowseSchools",
	},
	models.RoleParent: {
		Home:            "Home",
		ParentDashboard: "ParentDashboard",
		ParentBrowse:    "BrowseSchools",
	},
	models.RoleSchool: {
		Home:            "Home",
		SchoolDashboard: "SchoolDashboard",
		SchoolJobs:      "JobForm",
	},
}

// Resolve returns the active render target for a role and view. An
// unrecognized combination resolves to the empty target: the main area
// renders blank. That is tolerated, not an error.
func Resolve(role models.Role, view string) string {
	targets, ok := renderTargets[role]
	if !ok {
		return ""
	}
	return targets[view]
}

// DefaultView returns the landing view for a role after login.
func DefaultView(role models.Role) string {
	switch role {
	case models.RoleTeacher:
		return TeacherDashboard
	case models.RoleParent:
		return ParentDashboard
	case models.RoleSchool:
		return SchoolDashboard
	}
	return Home
}
