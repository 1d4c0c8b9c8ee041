package trust

// Curated domain tables. Compiled in so the classifier stays pure and needs no
// synchronization; matching is subdomain-inclusive exact-suffix (see matchEntry).

// Tier-1 institutions: core government / intergovernmental bodies whose
// non-gov hostnames would otherwise slip past the suffix rules.
var coreInstitutions = []string{
	"who.int",
	"un.org",
	"worldbank.org",
	"imf.org",
	"oecd.org",
	"europa.eu",
	"ecdc.europa.eu",
	"reliefweb.int",
	"paho.org",
	"unicef.org",
	"wto.org",
	"adb.org",
	"ourworldindata.org",
}

// Scholarly indexes: DOI resolvers, open indexes, preprint and literature
// search services.
var scholarlyIndexes = []string{
	"doi.org",
	"crossref.org",
	"openalex.org",
	"semanticscholar.org",
	"scholar.google.com",
	"arxiv.org",
	"jstor.org",
	"core.ac.uk",
	"doaj.org",
	"ssrn.com",
	"researchgate.net",
	"ncbi.nlm.nih.gov",
}

// Major academic publishers and journals.
var majorPublishers = []string{
	"nature.com",
	"sciencedirect.com",
	"springer.com",
	"link.springer.com",
	"wiley.com",
	"onlinelibrary.wiley.com",
	"tandfonline.com",
	"sagepub.com",
	"elsevier.com",
	"cambridge.org",
	"academic.oup.com",
	"bmj.com",
	"thelancet.com",
	"nejm.org",
	"plos.org",
	"frontiersin.org",
	"mdpi.com",
	"jamanetwork.com",
}

// institutionalSuffixes always pass regardless of scope. ".gov.ph" covers
// Philippine government agencies whose hosts do not end in a bare ".gov".
var institutionalSuffixes = []string{
	".gov",
	".edu",
	".int",
	".gov.ph",
}
