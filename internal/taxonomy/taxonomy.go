package taxonomy

import (
	"sort"
	"strings"
)

// Taxonomy maps a category name to the keyword terms it contains.
type Taxonomy map[string][]string

// Categories returns the category names in sorted order.
func (t Taxonomy) Categories() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Terms returns every term across all categories, lowercased, de-duplicated
// and sorted. A term listed under several categories appears once.
func (t Taxonomy) Terms() []string {
	seen := make(map[string]bool)
	var terms []string
	for _, list := range t {
		for _, term := range list {
			term = strings.ToLower(strings.TrimSpace(term))
			if term == "" || seen[term] {
				continue
			}
			seen[term] = true
			terms = append(terms, term)
		}
	}
	sort.Strings(terms)
	return terms
}

// Default returns a fresh copy of the built-in skill dictionary.
func Default() Taxonomy {
	t := make(Taxonomy, len(defaultTaxonomy))
	for name, terms := range defaultTaxonomy {
		t[name] = append([]string(nil), terms...)
	}
	return t
}

var defaultTaxonomy = Taxonomy{
	"programming_languages": {
		"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift",
		"kotlin", "go", "rust", "typescript", "scala", "r", "matlab", "perl",
		"shell", "assembly", "dart",
	},
	"web_technologies": {
		"html", "css", "react", "angular", "vue.js", "node.js", "django",
		"flask", "spring", "asp.net", "jquery", "bootstrap", "rest", "api",
		"graphql", "sass", "less", "webpack", "tailwind css", "next.js",
		"nuxt.js",
	},
	"databases": {
		"sql", "mysql", "postgresql", "mongodb", "oracle", "redis", "cassandra",
		"elasticsearch", "dynamodb", "firebase", "sqlite", "mariadb",
		"amazon redshift", "neo4j", "hbase", "snowflake",
	},
	"cloud_platforms": {
		"aws", "azure", "google cloud", "heroku", "docker", "kubernetes",
		"jenkins", "ci/cd", "devops", "terraform", "openshift", "ibm cloud",
		"cloudflare", "ansible", "vagrant", "openstack", "cloudformation",
	},
	"machine_learning": {
		"machine learning", "ai", "deep learning", "tensorflow", "pytorch",
		"scikit-learn", "nlp", "computer vision", "neural networks", "keras",
		"reinforcement learning", "xgboost", "lightgbm", "hugging face",
		"data science", "feature engineering", "model deployment",
		"anomaly detection", "time series analysis",
	},
	"data_processing": {
		"pandas", "numpy", "matplotlib", "seaborn", "plotly", "excel",
		"tableau", "power bi", "dask", "apache spark", "hadoop", "airflow",
		"etl", "bigquery", "snowflake",
	},
	"networking": {
		"tcp/ip", "http/https", "ftp", "ssh", "dns", "load balancing",
		"firewall configuration", "network security", "vpn", "proxy servers",
	},
	"cybersecurity": {
		"penetration testing", "vulnerability assessment", "siem", "soc",
		"firewalls", "intrusion detection systems", "owasp", "encryption",
		"risk assessment", "incident response", "zero trust", "pki",
		"identity access management",
	},
	"testing": {
		"unit testing", "integration testing", "system testing",
		"automation testing", "selenium", "junit", "testng", "postman",
		"cucumber", "load testing", "performance testing", "penetration testing",
	},
	"soft_skills": {
		"communication", "leadership", "teamwork", "problem solving",
		"analytical", "agile", "scrum", "project management", "time management",
		"negotiation", "adaptability", "critical thinking", "creativity",
		"conflict resolution",
	},
	"version_control": {
		"git", "github", "gitlab", "bitbucket", "svn", "mercurial",
		"version control best practices",
	},
	"mobile_development": {
		"android", "ios", "flutter", "react native", "xamarin", "swiftui",
		"kotlin multiplatform mobile", "cordova", "ionic", "firebase",
	},
}
