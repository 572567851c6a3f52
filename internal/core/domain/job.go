package domain

import (
	"errors"
	"time"
)

// EmploymentType classifies how a position is contracted.
type EmploymentType string

const (
	EmploymentFullTime  EmploymentType = "full-time"
	EmploymentPartTime  EmploymentType = "part-time"
	EmploymentContract  EmploymentType = "contract"
	EmploymentFreelance EmploymentType = "freelance"
)

// ExperienceLevel classifies the seniority a posting asks for.
type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

// SalaryPeriod is the unit a salary range is quoted in.
type SalaryPeriod string

const (
	PeriodHour  SalaryPeriod = "hour"
	PeriodDay   SalaryPeriod = "day"
	PeriodMonth SalaryPeriod = "month"
	PeriodYear  SalaryPeriod = "year"
)

var ErrJobNotFound = errors.New("job posting not found")
var ErrJobExpired = errors.New("job posting expired")
var ErrForbidden = errors.New("access forbidden")

const (
	// hoursPerMonth estimates a full-time month: 40 hours/week × 4 weeks.
	hoursPerMonth = 160
	// manwon is the unit salary filters are expressed in (10,000 KRW).
	manwon = 10000
)

// Salary is a posting's advertised pay range. Min <= Max.
type Salary struct {
	Min      float64      `json:"min" bson:"min"`
	Max      float64      `json:"max" bson:"max"`
	Currency string       `json:"currency" bson:"currency"`
	Period   SalaryPeriod `json:"period" bson:"period"`
}

// MonthlyMinimum converts the range minimum to 만원 per month for range
// filtering. Hourly pay is extrapolated with hoursPerMonth; every other
// period is treated as a monthly figure.
func (s Salary) MonthlyMinimum() float64 {
	if s.Period == PeriodHour {
		return s.Min * hoursPerMonth / manwon
	}
	return s.Min / manwon
}

// ContactInfo holds optional ways to reach the posting's company.
type ContactInfo struct {
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Website string `json:"website,omitempty" bson:"website,omitempty"`
}

// JobPosting is one job listing. Postings are supplied by the data source at
// startup and never modified afterwards.
type JobPosting struct {
	ID             string          `json:"id" bson:"_id"`
	Title          string          `json:"title" bson:"title"`
	Company        string          `json:"company" bson:"company"`
	Location       string          `json:"location" bson:"location"`
	EmploymentType EmploymentType  `json:"employment_type" bson:"employment_type"`
	Salary         *Salary         `json:"salary,omitempty" bson:"salary,omitempty"`
	Description    string          `json:"description" bson:"description"`
	Requirements   []string        `json:"requirements" bson:"requirements"`
	Benefits       []string        `json:"benefits" bson:"benefits"`
	PostedAt       time.Time       `json:"posted_at" bson:"posted_at"`
	ExpiresAt      time.Time       `json:"expires_at" bson:"expires_at"`
	Category       string          `json:"category" bson:"category"`
	Experience     ExperienceLevel `json:"experience" bson:"experience"`
	Urgent         bool            `json:"is_urgent,omitempty" bson:"is_urgent,omitempty"`
	CompanyLogo    string          `json:"company_logo,omitempty" bson:"company_logo,omitempty"`
	Contact        ContactInfo     `json:"contact_info" bson:"contact_info"`
}

// Expired reports whether the posting's application window has closed.
func (j *JobPosting) Expired(now time.Time) bool {
	return !j.ExpiresAt.IsZero() && now.After(j.ExpiresAt)
}
