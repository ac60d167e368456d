package extract

// commonSkills is the fixed vocabulary of technology and skill tokens matched
// against the full resume text. Matching is case-insensitive substring; the
// canonical form listed here is what ends up in the skill set.
var commonSkills = []string{
	"Python", "Java", "JavaScript", "C++", "C#", "SQL", "PHP", "Ruby", "Go", "Rust",
	"React", "Vue", "Angular", "Node.js", "Express", "Django", "Flask", "Spring", "ASP.NET",
	"Docker", "Kubernetes", "AWS", "Azure", "GCP", "Linux", "Windows", "macOS",
	"数据分析", "机器学习", "深度学习", "人工智能", "TensorFlow", "PyTorch", "Keras",
	"Git", "Jenkins", "CI/CD", "DevOps", "Agile", "Scrum", "JIRA",
	"MySQL", "PostgreSQL", "MongoDB", "Redis", "Oracle", "SQL Server",
	"HTML", "CSS", "Bootstrap", "jQuery", "TypeScript", "RESTful", "API",
	"数据科学", "统计学", "R语言", "Tableau", "Power BI",
}

// chineseStopwords filters noise tokens out of bullet and delimiter-separated
// skill extraction.
var chineseStopwords = map[string]struct{}{
	"的": {}, "了": {}, "在": {}, "是": {}, "我": {}, "有": {}, "和": {}, "就": {},
	"不": {}, "人": {}, "都": {}, "一": {}, "一个": {}, "上": {}, "也": {}, "很": {},
	"到": {}, "说": {}, "要": {}, "去": {}, "你": {}, "会": {}, "着": {}, "没有": {},
	"看": {}, "好": {}, "自己": {}, "这": {},
}

// englishStopwords is a compact stopword list standing in for a full corpus;
// skill tokens this short and common are never useful matches.
var englishStopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {}, "but": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "have": {}, "in": {}, "is": {}, "it": {},
	"its": {}, "of": {}, "on": {}, "or": {}, "that": {}, "the": {}, "their": {},
	"this": {}, "to": {}, "was": {}, "were": {}, "will": {}, "with": {}, "other": {},
	"such": {}, "etc": {}, "more": {}, "some": {}, "very": {}, "can": {}, "all": {},
}

// degreeTokens are checked in order against an institution line; the first
// token present becomes the degree, otherwise "unknown".
var degreeTokens = []string{
	"学士", "硕士", "博士", "本科", "研究生",
	"Bachelor", "Master", "PhD", "Degree",
}

// knownInstitutions short-circuits institution detection for well-known
// universities that may appear without an institution-type word.
var knownInstitutions = []string{"清华", "北大", "复旦", "交大", "浙大"}

// companySuffixes mark lines that look like an organization name; used as the
// degraded-mode experience fallback when no date ranges are found.
var companySuffixes = []string{"有限公司", "公司", "Company", "Corp", "LLC"}

// certKeywords and certAuthorities mark certificate lines.
var (
	certKeywords    = []string{"认证", "证书", "Certified", "Certificate"}
	certAuthorities = []string{"Cisco", "Microsoft", "Oracle", "AWS", "Google", "PMP", "CCNA", "CCNP"}
)
