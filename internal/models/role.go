package models

import "fmt"

// Role identifies the actor type driving a session.
type Role string

const (
	RoleNone    Role = "NONE"
	RoleTeacher Role = "TEACHER"
	RoleSchool  Role = "SCHOOL"
	RoleParent  Role = "PARENT"
)

// ParseRole converts a raw string to a Role, returning an error for
// unknown values. NONE is not a loginable role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	switch r {
	case RoleTeacher, RoleSchool, RoleParent:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}
