package extract

import "regexp"

type categoryPattern struct {
	Category string
	re       *regexp.Regexp
}

// Technical vocabularies, one alternation per category. Matching is
// case-insensitive and word-bounded; each match is canonicalized on insertion
// (see normalize.go and the skill taxonomy).
var technicalPatterns = []categoryPattern{
	// C++ and C# end in non-word characters, so they carry no trailing \b.
	{"languages", regexp.MustCompile(`(?i)\b(?:(?:Python|JavaScript|Java|TypeScript|Golang|Go|Rust|Ruby|PHP|Swift|Kotlin|Scala)\b|C\+\+|C#)`)},
	{"frameworks", regexp.MustCompile(`(?i)\b(?:React\.js|ReactJS|React|Angular|Vue\.js|VueJS|Vue|Django|Flask|FastAPI|Spring|Express|Rails|Next\.js|Nest\.js|NestJS|Node\.js|NodeJS|Laravel)\b`)},
	{"databases", regexp.MustCompile(`(?i)\b(?:PostgreSQL|Postgres|MySQL|MongoDB|Redis|Elasticsearch|SQLite|Cassandra|DynamoDB)\b`)},
	{"cloud_devops", regexp.MustCompile(`(?i)\b(?:AWS|Azure|GCP|Docker|Kubernetes|K8s|Terraform|Ansible|Jenkins|Git|CI/CD)\b`)},
	{"ml", regexp.MustCompile(`(?i)\b(?:Machine Learning|Deep Learning|TensorFlow|PyTorch|Pandas|NumPy|Scikit-learn|NLP)\b`)},
	{"testing", regexp.MustCompile(`(?i)\b(?:Selenium|Cypress|Jest|JUnit|Pytest|TDD|Unit Testing)\b`)},
	{"general", regexp.MustCompile(`(?i)\b(?:REST|GraphQL|gRPC|Microservices|Kafka|RabbitMQ|Linux|Agile|Scrum)\b`)},
}

type softSkillGroup struct {
	Group   string
	Phrases []string
}

// Soft skills are matched as whole phrases on word boundaries and reported
// title-cased. Grouping is informational only; matches are not deduplicated
// across synonyms.
var softSkillGroups = []softSkillGroup{
	{"communication", []string{"communication", "presentation", "writing"}},
	{"leadership", []string{"leadership", "mentoring", "decision making", "ownership"}},
	{"collaboration", []string{"teamwork", "collaboration", "stakeholder management"}},
	{"problem_solving", []string{"problem solving", "critical thinking", "creativity"}},
	{"work_ethic", []string{"self-starter", "attention to detail", "adaptability"}},
	{"organization", []string{"time management", "organization"}},
	{"learning", []string{"continuous learning", "curiosity"}},
	{"conflict_resolution", []string{"negotiation", "conflict resolution"}},
	{"customer_facing", []string{"customer service", "client management"}},
}

type softSkillPattern struct {
	Phrase string
	re     *regexp.Regexp
}

var softSkillPatterns = buildSoftSkillPatterns()

func buildSoftSkillPatterns() []softSkillPattern {
	out := make([]softSkillPattern, 0, 32)
	for _, g := range softSkillGroups {
		for _, p := range g.Phrases {
			out = append(out, softSkillPattern{
				Phrase: p,
				re:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p) + `\b`),
			})
		}
	}
	return out
}
