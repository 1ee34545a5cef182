package store

import "time"

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// defaultJobs is the fixed catalog the microsite launches with.
var defaultJobs = []Job{
	{
		ID:       1,
		Title:    "Digital Marketing Manager",
		Location: "Austin, Texas, USA",
		Description: []string{
			"Develop and implement digital marketing strategies for WhatsApp Business",
			"Manage advertising campaigns across digital platforms",
			"Analyze data and report on marketing performance",
			"Optimize user experience on the WhatsApp Business platform",
		},
		Requirements: []string{
			"Minimum 3 years experience in digital marketing",
			"Deep knowledge of SEO, SEM, and data analytics",
			"Strong project management and teamwork skills",
			"Professional English communication skills",
		},
		Benefits: []string{
			"Salary: $8,000 - $12,000/month (based on experience)",
			"Quarterly performance bonuses",
			"Premium health insurance",
			"Flexible vacation policy",
		},
	},
	{
		ID:       2,
		Title:    "Content Marketing Specialist",
		Location: "Seattle, Washington, USA",
		Description: []string{
			"Develop and produce content for WhatsApp's blog and social media",
			"Build content plans aligned with marketing strategy",
			"Optimize content for SEO and increase traffic",
			"Monitor content performance and suggest improvements",
		},
		Requirements: []string{
			"2+ years experience in content marketing",
			"Ability to write engaging marketing content",
			"Understanding of SEO and digital content trends",
			"Strong time management and organizational skills",
		},
		Benefits: []string{
			"Salary: $5,000 - $7,500/month (based on experience)",
			"Project and achievement bonuses",
			"Comprehensive health insurance",
			"International work environment",
		},
	},
	{
		ID:       3,
		Title:    "Social Media Marketing Lead",
		Location: "New York City, New York, USA",
		Description: []string{
			"Develop and execute WhatsApp's social media strategy",
			"Manage the social media team and plan monthly content",
			"Analyze data and optimize social media campaigns",
			"Collaborate with other departments to keep messaging consistent",
		},
		Requirements: []string{
			"4+ years experience managing social media",
			"Experience leading a marketing team",
			"Deep understanding of social platforms and emerging trends",
			"Strong data analysis skills",
		},
		Benefits: []string{
			"Salary: $7,000 - $10,000/month (based on experience)",
			"Quarterly performance bonuses",
			"Comprehensive health insurance",
			"International training and development opportunities",
		},
	},
}
