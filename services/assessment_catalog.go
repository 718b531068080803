package services

// Option is one selectable choice on an assessment question.
type Option struct {
	Value  string `json:"value"`
	Text   string `json:"text"`
	Points int    `json:"points"`
}

// Question is one entry in the fixed NIRF readiness questionnaire.
type Question struct {
	ID       int      `json:"id"`
	Category string   `json:"category"`
	Prompt   string   `json:"question"`
	Options  []Option `json:"options"`
}

// The canonical 10-question catalog on the 100-point scale. Every question
// offers A/B/C/D worth 10/8/5/2 points.
var questionCatalog = []Question{
	{
		ID:       1,
		Category: "Faculty–Student Ratio & Qualification",
		Prompt:   "What best describes your faculty profile?",
		Options: []Option{
			{Value: "A", Text: "Faculty–student ratio ≤1:10 and >80% Ph.D. holders", Points: 10},
			{Value: "B", Text: "Ratio 1:11–15 and 60–80% Ph.D. holders", Points: 8},
			{Value: "C", Text: "Ratio 1:16–20 and 40–60% Ph.D. holders", Points: 5},
			{Value: "D", Text: "Ratio >1:20 and <40% Ph.D. holders", Points: 2},
		},
	},
	{
		ID:       2,
		Category: "Research & Publications",
		Prompt:   "How active is your research and publication output?",
		Options: []Option{
			{Value: "A", Text: ">1.5 publications per faculty/year, patents filed, funded projects", Points: 10},
			{Value: "B", Text: "1–1.5 publications per faculty/year, some projects/patents", Points: 8},
			{Value: "C", Text: "<1 publication per faculty/year, limited research", Points: 5},
			{Value: "D", Text: "Minimal or no research output", Points: 2},
		},
	},
	{
		ID:       3,
		Category: "Placement & Higher Studies",
		Prompt:   "How strong are your placement and higher-study outcomes?",
		Options: []Option{
			{Value: "A", Text: ">85% of eligible students placed or pursuing higher studies", Points: 10},
			{Value: "B", Text: "70–85% placed or higher studies", Points: 8},
			{Value: "C", Text: "50–70% placed or higher studies", Points: 5},
			{Value: "D", Text: "<50% placed or higher studies", Points: 2},
		},
	},
	{
		ID:       4,
		Category: "Industry Collaboration",
		Prompt:   "How strong is your connection with industry?",
		Options: []Option{
			{Value: "A", Text: ">15 active MoUs, funded consultancy, internships, startup tie-ups", Points: 10},
			{Value: "B", Text: "8–15 MoUs, some internships and live projects", Points: 8},
			{Value: "C", Text: "3–7 MoUs, limited collaboration", Points: 5},
			{Value: "D", Text: "Very few or no industry collaborations", Points: 2},
		},
	},
	{
		ID:       5,
		Category: "Infrastructure & Learning Resources",
		Prompt:   "How modern and accessible are your academic facilities?",
		Options: []Option{
			{Value: "A", Text: "Smart classrooms, 100% ICT-enabled labs, digital library access", Points: 10},
			{Value: "B", Text: "75–99% ICT-enabled, good maintenance", Points: 8},
			{Value: "C", Text: "50–75% ICT-enabled, moderate upkeep", Points: 5},
			{Value: "D", Text: "Limited smart facilities, outdated resources", Points: 2},
		},
	},
	{
		ID:       6,
		Category: "Research & Innovation Ecosystem",
		Prompt:   "How strong is your innovation and R&D culture?",
		Options: []Option{
			{Value: "A", Text: "Recognized research centers, incubation hub, consistent IPR", Points: 10},
			{Value: "B", Text: "Active innovation cell, startup activities, few patents/projects", Points: 8},
			{Value: "C", Text: "Basic innovation cell, limited initiatives", Points: 5},
			{Value: "D", Text: "No structured R&D or innovation ecosystem", Points: 2},
		},
	},
	{
		ID:       7,
		Category: "Inclusivity & Diversity",
		Prompt:   "How inclusive is your campus in terms of gender, region, and support?",
		Options: []Option{
			{Value: "A", Text: ">40% female students, >20% from other states, 50% scholarship coverage", Points: 10},
			{Value: "B", Text: "30–40% female, 10–20% other states, 25–50% scholarships", Points: 8},
			{Value: "C", Text: "Limited diversity, <25% scholarships", Points: 5},
			{Value: "D", Text: "Very low diversity or inclusivity measures", Points: 2},
		},
	},
	{
		ID:       8,
		Category: "Teaching & Learning Practices",
		Prompt:   "How effective are your teaching and evaluation systems?",
		Options: []Option{
			{Value: "A", Text: "Outcome-Based Education (OBE) fully implemented, regular review", Points: 10},
			{Value: "B", Text: "OBE partially implemented, moderate feedback system", Points: 8},
			{Value: "C", Text: "Traditional teaching, limited feedback", Points: 5},
			{Value: "D", Text: "No structured learning outcome system", Points: 2},
		},
	},
	{
		ID:       9,
		Category: "Alumni & Employer Perception",
		Prompt:   "How strong is your alumni and employer reputation?",
		Options: []Option{
			{Value: "A", Text: "Active alumni network, strong employer participation", Points: 10},
			{Value: "B", Text: "Moderately active alumni & good recruiter relations", Points: 8},
			{Value: "C", Text: "Limited alumni connection, average recruiter engagement", Points: 5},
			{Value: "D", Text: "Weak alumni network, poor employer perception", Points: 2},
		},
	},
	{
		ID:       10,
		Category: "Digital Presence & Institutional Visibility",
		Prompt:   "How visible is your institution in media and online platforms?",
		Options: []Option{
			{Value: "A", Text: "High online visibility, active website, awards/rankings covered", Points: 10},
			{Value: "B", Text: "Good website & moderate social media presence", Points: 8},
			{Value: "C", Text: "Basic online visibility, minimal outreach", Points: 5},
			{Value: "D", Text: "Outdated website, poor online presence", Points: 2},
		},
	},
}

var questionIndex = func() map[int]Question {
	idx := make(map[int]Question, len(questionCatalog))
	for _, q := range questionCatalog {
		idx[q.ID] = q
	}
	return idx
}()

// MaxScore is the highest achievable total across the whole catalog.
var MaxScore = func() int {
	total := 0
	for _, q := range questionCatalog {
		best := 0
		for _, opt := range q.Options {
			if opt.Points > best {
				best = opt.Points
			}
		}
		total += best
	}
	return total
}()

// QuestionCatalog returns the ordered questionnaire.
func QuestionCatalog() []Question {
	return questionCatalog
}
