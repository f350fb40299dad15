package models

// TeacherProfile represents an educator's portfolio record. Profiles are
// value records: updates replace the whole struct, fields are never
// mutated in place.
type TeacherProfile struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Subject         string   `json:"subject"`
	ExperienceYears int      `json:"experience_years"`
	Education       string   `json:"education"`
	Location        string   `json:"location"`
	Bio             string   `json:"bio"`
	Skills          []string `json:"skills"`
	Avatar          string   `json:"avatar"`
}

// WithSummary returns a copy with the bio replaced and the skill list
// merged as a set union. First-seen order is preserved, duplicates are
// suppressed.
func (p TeacherProfile) WithSummary(bio string, skills []string) TeacherProfile {
	out := p
	out.Bio = bio
	out.Skills = MergeSkills(p.Skills, skills)
	return out
}

// MergeSkills unions two skill lists keeping first-seen order.
func MergeSkills(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	merged := make([]string, 0, len(existing)+len(incoming))
	for _, lists := range [][]string{existing, incoming} {
		for _, skill := range lists {
			if _, ok := seen[skill]; ok {
				continue
			}
			seen[skill] = struct{}{}
			merged = append(merged, skill)
		}
	}
	return merged
}

// ParentProfile represents a guardian account record.
type ParentProfile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	ChildName  string `json:"child_name"`
	ChildGrade string `json:"child_grade"`
	Avatar     string `json:"avatar"`
}

// SchoolProfile represents an institution record.
type SchoolProfile struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Location  string       `json:"location"`
	Type      string       `json:"type"`
	Bio       string       `json:"bio"`
	Logo      string       `json:"logo"`
	OpenRoles []JobListing `json:"open_roles"`
}

// SchoolFilter captures search options for browsing the directory.
type SchoolFilter struct {
	Search   string
	Category string
	Page     int
	PageSize int
}
