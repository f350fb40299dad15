package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/educonnect/educonnect-api/internal/models"
)

func TestResolveKnownViews(t *testing.T) {
	assert.Equal(t, "Home", Resolve(models.RoleNone, Home))
	assert.Equal(t, "TeacherDashboard", Resolve(models.RoleTeacher, TeacherDashboard))
	assert.Equal(t, "BrowseSchools", Resolve(models.RoleParent, ParentBrowse))
	assert.Equal(t, "JobForm", Resolve(models.RoleSchool, SchoolJobs))
}

func TestResolveUnknownViewRendersBlank(t *testing.T) {
	assert.Empty(t, Resolve(models.RoleTeacher, "nonsense"))
	assert.Empty(t, Resolve(models.RoleNone, TeacherDashboard))
	assert.Empty(t, Resolve(models.Role("GHOST"), Home))
}

func TestDefaultView(t *testing.T) {
	assert.Equal(t, TeacherDashboard, DefaultView(models.RoleTeacher))
	assert.Equal(t, ParentDashboard, DefaultView(models.RoleParent))
	assert.Equal(t, SchoolDashboard, DefaultView(models.RoleSchool))
	assert.Equal(t, Home, DefaultView(models.RoleNone))
}
