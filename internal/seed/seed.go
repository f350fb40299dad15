// Package seed holds the canned marketplace records loaded at startup.
// There is no persistence layer behind them: the stores start from these
// values and live in memory for the lifetime of the process.
package seed

import "github.com/educonnect/educonnect-api/internal/models"

// Jobs returns the initial job board content.
func Jobs() []models.JobListing {
	return []models.JobListing{
		{ID: "j1", SchoolID: "s1", Title: "Senior Physics Lead", Subject: "Science", GradeLevel: "High School", SalaryRange: "$60k - $85k", PostedAt: "2 days ago", Description: "Seeking a dynamic Physics teacher for our advanced placement program."},
		{ID: "j2", SchoolID: "s2", Title: "Creative Arts Coordinator", Subject: "Art", GradeLevel: "Middle School", SalaryRange: "$55k - $70k", PostedAt: "1 week ago", Description: "Lead our arts department across multiple campuses."},
		{ID: "j3", SchoolID: "s1", Title: "Math Instructor", Subject: "Mathematics", GradeLevel: "Secondary", SalaryRange: "$58k - $75k", PostedAt: "5 hours ago", Description: "Looking for experts in Calculus and Statistics."},
		{ID: "j4", SchoolID: "s3", Title: "Early Years Lead", Subject: "Primary", GradeLevel: "Pre-K", SalaryRange: "$45k - $60k", PostedAt: "3 days ago", Description: "Join our award-winning early childhood center."},
	}
}

// Teachers returns the canned teacher accounts. Login as TEACHER selects
// the first entry.
func Teachers() []models.TeacherProfile {
	return []models.TeacherProfile{
		{ID: "t1", Name: "Dr. Sarah Jenkins", Subject: "Physics", ExperienceYears: 12, Education: "PhD in Theoretical Physics", Location: "London, UK", Bio: "Passionate about making complex science accessible to all students.", Skills: []string{"Physics", "Python", "Curriculum Design"}, Avatar: "https://picsum.photos/seed/sarah/200"},
		{ID: "t2", Name: "James Wilson", Subject: "English", ExperienceYears: 5, Education: "MA in Creative Writing", Location: "Austin, TX", Bio: "Focus on modern literature and debate.", Skills: []string{"Literature", "Public Speaking", "ESL"}, Avatar: "https://picsum.photos/seed/james/200"},
	}
}

// Parents returns the canned parent accounts. Login as PARENT selects the
// first entry.
func Parents() []models.ParentProfile {
	return []models.ParentProfile{
		{ID: "p1", Name: "Mark Stevenson", Location: "London, UK", ChildName: "Leo Stevenson", ChildGrade: "Grade 5", Avatar: "https://picsum.photos/seed/parent/200"},
	}
}

// Schools returns the institution directory.
func Schools() []models.SchoolProfile {
	return []models.SchoolProfile{
		{ID: "s1", Name: "Oxford International Academy", Location: "London, UK", Type: "IB World School", Bio: "A premier institution focused on global citizenship and academic excellence.", Logo: "https://picsum.photos/seed/oxford/200", OpenRoles: []models.JobListing{}},
		{ID: "s2", Name: "Austin Creative Arts School", Location: "Austin, TX", Type: "Private Charter", Bio: "Nurturing creativity and innovation in the heart of Texas.", Logo: "https://picsum.photos/seed/austin/200", OpenRoles: []models.JobListing{}},
		{ID: "s3", Name: "Greenwood Montessori", Location: "San Francisco, CA", Type: "Montessori", Bio: "Holistic education following the traditional Montessori method.", Logo: "https://picsum.photos/seed/greenwood/200", OpenRoles: []models.JobListing{}},
		{ID: "s4", Name: "St. Andrews Preparatory", Location: "Edinburgh, UK", Type: "Private Primary", Bio: "Traditional values with a modern, technology-driven approach.", Logo: "https://picsum.photos/seed/andrew/200", OpenRoles: []models.JobListing{}},
	}
}
