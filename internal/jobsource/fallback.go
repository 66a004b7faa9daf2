package jobsource

import (
	"time"

	"github.com/gigsterhq/gigster/pkg/models"
)

// FallbackJobs returns the built-in job list served when the remote
// store is unreachable. Returns a fresh copy each call so callers can't
// mutate the catalog.
func FallbackJobs() []models.Job {
	out := make([]models.Job, len(fallbackJobs))
	copy(out, fallbackJobs)
	return out
}

func postedOn(date string) *time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil
	}
	return &t
}

var fallbackJobs = []models.Job{
	{
		ID:                  "1",
		Title:               "Senior React Developer",
		Company:             "TechCorp",
		CompanyLogo:         "https://images.unsplash.com/photo-1560472355-109703aa3edc?w=100&h=100&fit=crop&crop=center",
		Location:            "Tel Aviv, Israel",
		CommuteEstimate:     "15 min drive",
		Salary:              "₪25,000 - ₪35,000",
		CompellingHighlight: "Generous Stock Options",
		Description:         "We are looking for a skilled React developer to join our dynamic team. You will be responsible for developing and maintaining web applications using React, Redux, and modern JavaScript.",
		Requirements:        []string{"5+ years React experience", "TypeScript", "Redux/Zustand", "Testing (Jest/RTL)"},
		Benefits:            []string{"Health insurance", "Stock options", "Flexible hours", "Remote work", "Professional development budget"},
		AboutCompany:        "TechCorp is a leading technology company focused on building innovative web solutions. We foster a culture of creativity and continuous learning.",
		Tags:                []string{"React", "TypeScript", "Frontend"},
		Image:               "https://images.unsplash.com/photo-1549923746-c502d488b3ea?w=800&h=600&fit=crop",
		WorkLocation:        models.WorkRemote,
		IsResumeRequired:    true,
		PostedAt:            postedOn("2024-01-01"),
	},
	{
		ID:                  "2",
		Title:               "Full Stack Developer",
		Company:             "StartupXYZ",
		CompanyLogo:         "https://images.unsplash.com/photo-1572021335469-31706a17aaef?w=100&h=100&fit=crop&crop=center",
		Location:            "Haifa, Israel",
		CommuteEstimate:     "25 min drive",
		Salary:              "₪18,000 - ₪28,000",
		CompellingHighlight: "Equity Package",
		Description:         "Join our fast-growing startup as a Full Stack Developer. Work with modern technologies including Node.js, React, and MongoDB.",
		Requirements:        []string{"3+ years experience", "Node.js", "React", "MongoDB", "RESTful APIs"},
		Benefits:            []string{"Equity package", "Flexible hours", "Learning budget", "Free lunch", "Startup culture"},
		AboutCompany:        "StartupXYZ is disrupting the fintech space with innovative solutions. Join our growing team and make a real impact.",
		Tags:                []string{"JavaScript", "Node.js", "MongoDB"},
		Image:               "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=800&h=600&fit=crop",
		WorkLocation:        models.WorkHybrid,
		IsResumeRequired:    true,
		PostedAt:            postedOn("2024-01-02"),
	},
	{
		ID:                  "3",
		Title:               "DevOps Engineer",
		Company:             "CloudTech",
		CompanyLogo:         "https://images.unsplash.com/photo-1567069981692-5d3f4ba7154c?w=100&h=100&fit=crop&crop=center",
		Location:            "Jerusalem, Israel",
		CommuteEstimate:     "30 min drive",
		Salary:              "₪22,000 - ₪32,000",
		CompellingHighlight: "Cloud-First Culture",
		Description:         "Looking for a DevOps Engineer to help us scale our infrastructure. Experience with AWS, Docker, and Kubernetes required.",
		Requirements:        []string{"AWS/Azure experience", "Docker & Kubernetes", "CI/CD pipelines", "Infrastructure as Code"},
		Benefits:            []string{"Cloud infrastructure budget", "Remote work", "Certification sponsorship", "Cutting-edge tech stack"},
		AboutCompany:        "CloudTech specializes in cloud infrastructure solutions for enterprise clients. We work with the latest technologies.",
		Tags:                []string{"DevOps", "AWS", "Docker"},
		Image:               "https://images.unsplash.com/photo-1518770660439-4636190af475?w=800&h=600&fit=crop",
		WorkLocation:        models.WorkRemote,
		IsResumeRequired:    true,
		PostedAt:            postedOn("2024-01-03"),
	},
	{
		ID:               "4",
		Title:            "Junior Frontend Developer",
		Company:          "WebStudio",
		Location:         "Beer Sheva, Israel",
		Salary:           "₪12,000 - ₪18,000",
		Description:      "Great opportunity for a junior developer to grow their skills in a supportive environment. Work with HTML, CSS, JavaScript, and React.",
		Requirements:     []string{"HTML/CSS/JavaScript", "Basic React knowledge", "Git", "Responsive design"},
		Tags:             []string{"JavaScript", "CSS", "React"},
		Image:            "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=800&h=600&fit=crop",
		WorkLocation:     models.WorkOffice,
		IsResumeRequired: true,
		PostedAt:         postedOn("2024-01-04"),
	},
	{
		ID:               "5",
		Title:            "Backend Developer",
		Company:          "DataFlow",
		Location:         "Netanya, Israel",
		Salary:           "₪20,000 - ₪30,000",
		Description:      "Backend developer needed for building scalable APIs and microservices. Python and Django experience preferred.",
		Requirements:     []string{"Python/Django", "PostgreSQL", "REST APIs", "Microservices"},
		Tags:             []string{"Python", "Django", "API"},
		Image:            "https://images.unsplash.com/photo-1515879218367-8466d910aaa4?w=800&h=600&fit=crop",
		WorkLocation:     models.WorkHybrid,
		IsResumeRequired: true,
		PostedAt:         postedOn("2024-01-05"),
	},
	{
		ID:               "6",
		Title:            "Elementary School Teacher",
		Company:          "Sunshine Elementary",
		Location:         "Tel Aviv, Israel",
		Salary:           "₪8,000 - ₪12,000",
		Description:      "Passionate teacher needed to inspire young minds. Experience with modern teaching methods and classroom management required.",
		Requirements:     []string{"Teaching certificate", "Bachelor degree", "Classroom management", "Patience with children"},
		Tags:             []string{"Education", "Children", "Teaching"},
		Image:            "https://images.unsplash.com/photo-1580582932707-520aed937b7b?w=800&h=600&fit=crop",
		WorkLocation:     models.WorkOffice,
		IsResumeRequired: true,
		PostedAt:         postedOn("2024-01-06"),
	},
	{
		ID:               "7",
		Title:            "Registered Nurse",
		Company:          "City Medical Center",
		Location:         "Jerusalem, Israel",
		Salary:           "₪14,000 - ₪20,000",
		Description:      "Compassionate nurse needed for our medical center. Provide excellent patient care in a fast-paced environment.",
		Requirements:     []string{"Nursing license", "Hospital experience", "Patient care skills", "Medical knowledge"},
		Tags:             []string{"Healthcare", "Medical", "Patient Care"},
		Image:            "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=800&h=600&fit=crop",
		WorkLocation:     models.WorkOffice,
		IsResumeRequired: true,
		PostedAt:         postedOn("2024-01-08"),
	},
	{
		ID:                  "8",
		Title:               "Delivery Driver",
		Company:             "Express Delivery",
		CompanyLogo:         "https://images.unsplash.com/photo-1614265068243-2dffbdc25ac3?w=100&h=100&fit=crop&crop=center",
		Location:            "Ashdod, Israel",
		CommuteEstimate:     "20 min drive",
		Salary:              "₪6,000 - ₪10,000",
		CompellingHighlight: "Flexible Hours",
		Description:         "Reliable driver needed for package delivery throughout the city. Flexible hours and competitive pay.",
		Requirements:        []string{"Valid driving license", "Clean driving record", "Customer service skills", "Physical fitness"},
		Benefits:            []string{"Flexible schedule", "Fuel allowance", "Performance bonuses", "Health insurance"},
		AboutCompany:        "Express Delivery is the leading package delivery service in Israel, known for fast and reliable service.",
		Tags:                []string{"Driving", "Delivery", "Customer Service"},
		Image:               "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=800&h=600&fit=crop",
		WorkLocation:        models.WorkOffice,
		PostedAt:            postedOn("2024-01-10"),
	},
}
