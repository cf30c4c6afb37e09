package main

import (
	"time"

	"career-compass-be/internal/entity"
)

var seedModules = []entity.KnowledgeModule{
	{Name: "career_profiles", Priority: 3},
	{Name: "no_matric_pathways", Priority: 2},
	{Name: "funding_options", Priority: 2},
	{Name: "decision_frameworks", Priority: 1},
	{Name: "career_frameworks", Priority: 1},
	{Name: "tvet_pathways", Priority: 1},
}

func careerChunk(careerName, module, text string) entity.KnowledgeChunk {
	return entity.KnowledgeChunk{
		ChunkText:        text,
		Metadata:         map[string]interface{}{"career_name": careerName},
		ModuleName:       module,
		SourceEntityType: "seed",
	}
}

func moduleChunk(module, text string) entity.KnowledgeChunk {
	return entity.KnowledgeChunk{
		ChunkText:        text,
		Metadata:         map[string]interface{}{},
		ModuleName:       module,
		SourceEntityType: "seed",
	}
}

var seedChunks = []entity.KnowledgeChunk{
	careerChunk("Software Developer", "career_profiles",
		"Software Developer: builds applications and systems. Typical route is a BSc Computer Science (APS 30+, Mathematics 60%+) or an accredited bootcamp plus a portfolio. Strong demand in the South African job market, with remote work for international clients increasingly common. Entry salaries R25k-R40k per month; self-taught entry possible within 12-18 months of focused practice."),
	careerChunk("Data Scientist", "career_profiles",
		"Data Scientist: analyses data to guide decisions. Requires strong Mathematics (70%+ recommended) and usually a BSc in statistics, computer science or applied maths (APS 32+). There is a scarce skill shortage in South Africa. Not suitable for students who struggle with Mathematics; consider data-adjacent roles like analytics translator instead."),
	careerChunk("UX/UI Designer", "career_profiles",
		"UX/UI Designer: designs digital product experiences. No university degree strictly required; a strong portfolio plus short courses can lead to employment. Mathematics is not a core requirement, making it a good tech option for creative students. Growing demand as South African companies digitise; entry salaries R18k-R30k per month."),
	careerChunk("Graphic Designer", "career_profiles",
		"Graphic Designer: creates visual communication for brands and media. Routes include a design diploma at a TVET college or university of technology, or a self-built portfolio. Mathematics is not required. Freelance and remote work are common; income varies widely with portfolio strength."),
	careerChunk("Digital Marketer", "career_profiles",
		"Digital Marketer: grows audiences and sales online. Certificates (Google, Meta) plus demonstrable campaign results matter more than a degree. No Mathematics requirement beyond basic numeracy. Fast entry: many juniors start within 6-12 months of study. Remote roles paying in dollars exist for experienced specialists."),
	careerChunk("Content Creator", "career_profiles",
		"Content Creator: produces video, writing or audio for platforms and brands. No formal qualification required; consistency and niche selection drive income. Unstable early earnings - treat it as a build-while-you-earn path alongside other work. Brand partnerships and international audiences can pay in dollars."),
	careerChunk("Mechanical Engineer", "career_profiles",
		"Mechanical Engineer: designs machines and processes. Requires BEng (APS 35+, Mathematics 70%+, Physical Science 70%+), a four-year degree plus professional registration. Bursaries from mining and manufacturing companies are common. Not viable without strong Mathematics."),
	careerChunk("Electrical Engineer", "career_profiles",
		"Electrical Engineer: works on power systems and electronics. BEng entry needs APS 35+ with strong Mathematics and Physical Science. Eskom and renewable energy firms fund bursaries; demand is high in the energy sector. A TVET electrician route is an alternative for hands-on students."),
	careerChunk("Civil Engineer", "career_profiles",
		"Civil Engineer: designs infrastructure. BEng requires APS 35+, Mathematics 70%+. Government infrastructure programmes sustain demand. BTech and technician routes via universities of technology accept lower APS (28+) with N-diploma bridging possible from TVET."),
	careerChunk("Electrician", "tvet_pathways",
		"Electrician: installs and maintains electrical systems. Route: N1-N3 at a TVET college (no matric required to start N1), then an apprenticeship and trade test. Earn while you learn through learnerships. Qualified electricians earn R15k-R35k per month and can run their own businesses. High demand, especially with solar installations growing."),
	careerChunk("Plumber", "tvet_pathways",
		"Plumber: installs and repairs water systems. TVET N-courses plus apprenticeship and trade test; no matric required to begin. Consistent demand in every town. Self-employment is the norm after qualification, with income scaling with reputation."),
	careerChunk("Doctor", "career_profiles",
		"Doctor (MBChB): requires APS 38+, Mathematics 70%+, Physical Science 70%+ and Life Sciences. Six-year degree plus internship and community service. Extremely competitive entry; have a backup plan such as nursing, physiotherapy or biomedical science. NSFAS covers medicine at public universities for qualifying households."),
	careerChunk("Nurse", "career_profiles",
		"Nurse: four-year BNursing (APS 28+, Life Sciences recommended) or a one-year auxiliary certificate to start working sooner. Public sector posts and bursaries exist; demand is steady. A practical helping profession with clear advancement levels."),
	careerChunk("Pharmacist", "career_profiles",
		"Pharmacist: BPharm requires APS 33+, Mathematics and Physical Science 60%+. Four years plus internship. Retail, hospital and industry roles; steady demand. Pharmacist assistant is a faster-entry alternative via learnership."),
	careerChunk("Physiotherapist", "career_profiles",
		"Physiotherapist: BSc Physiotherapy requires APS 32+ with Life Sciences. Four-year degree, limited intake. Private practice potential after community service. Good fit for students drawn to health and sport who want patient contact."),
	careerChunk("Lawyer", "career_profiles",
		"Lawyer: LLB requires APS 30+ with strong languages. Four-year degree plus articles and admission. Oversupplied at entry level - distinguish with commercial or tech-law specialisation. No Mathematics requirement beyond matric pass."),
	careerChunk("Accountant", "career_profiles",
		"Accountant: BCom Accounting requires APS 30+ and Mathematics 60%+ (not Maths Literacy for CA stream). SAICA-accredited degree plus articles for chartered status. Bursaries from audit firms are plentiful. A stable, examinable path with clear milestones."),
	careerChunk("Entrepreneur", "career_profiles",
		"Entrepreneur: no qualification gate - start with a small trading, service or digital business while at school. SEDA and NYDA offer free support and grants for youth businesses. Treat formal study as risk reduction, not a prerequisite. Income is unstable early; pair with a skill that pays."),
	careerChunk("Chef", "career_profiles",
		"Chef: culinary diploma at a hotel school or TVET hospitality programme, or work up from a kitchen junior post. No matric barrier at many employers. Hours are long; progression to sous chef within 3-5 years. Cruise ships and international hotels recruit South African chefs."),
	moduleChunk("no_matric_pathways",
		"Options without matric: TVET N1 entry (age 16+), SETA learnerships that pay a stipend while training, recognised trade tests, and the Amended Senior Certificate for adults who want to complete matric later. Leaving school before matric narrows options sharply - completing matric first is almost always the stronger move."),
	moduleChunk("funding_options",
		"NSFAS funds public university and TVET study for households earning under R350,000 per year: tuition, accommodation and a living allowance. Applications open around September and close around January; apply online with certified ID and proof of income. NSFAS is not a loan - no repayment is required."),
	moduleChunk("funding_options",
		"Beyond NSFAS: Funza Lushaka for teaching, company bursaries (Sasol, Eskom, audit firms), and the ISFAP programme for missing-middle households. Bursaries usually bind you to work-back years. Never pay an agent to apply for a bursary - legitimate funders never charge application fees."),
	moduleChunk("decision_frameworks",
		"The V.I.S. Model scores each option on Viability (can you meet entry requirements?), Income (will it sustain the life you want?) and Satisfaction (will you still want this in ten years?). Score each 1-5 and compare totals before deciding."),
	moduleChunk("decision_frameworks",
		"The Three-Question Career Filter: 1) Would I do this for free? 2) Will someone pay me well for it? 3) Can I reach the entry bar from my current marks? An honest no on any question means look at adjacent options."),
	moduleChunk("career_frameworks",
		"The APS Ladder maps your admission points to realistic tiers: below 20 look at TVET and learnerships; 20-27 universities of technology; 28-34 most degree programmes; 35+ competitive professional degrees. Climb one rung with a bridging year rather than abandoning the ladder."),
	moduleChunk("career_frameworks",
		"The Earn-While-You-Learn Route pairs paid learnerships or part-time work with evening or distance study. It trades speed for zero debt and real experience - strongest where trades, retail management or bookkeeping qualifications stack."),
	moduleChunk("career_frameworks",
		"The Backup Pathway Matrix: for your target career list one lateral backup (same field, lower entry bar), one transferable backup (same skills, different field) and one income backup (pays bills within a year). Apply to all three tiers in the same season."),
}

func deadline(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 23, 59, 0, 0, time.UTC)
}

var seedBursaries = []entity.Bursary{
	{
		Name:           "NSFAS",
		Provider:       "Department of Higher Education",
		CitizenshipReq: "ZA",
		MinAPS:         20,
		IncomeCeiling:  350000,
		Deadline:       deadline(2027, time.January, 31),
		Fields:         nil, // any field at a public institution
		Amount:         "Full tuition, accommodation and living allowance",
	},
	{
		Name:             "Sasol Bursary",
		Provider:         "Sasol",
		CitizenshipReq:   "ZA",
		MinAPS:           35,
		RequiredSubjects: []string{"mathematics", "physical_science"},
		Deadline:         deadline(2027, time.April, 30),
		Fields:           []string{"engineering", "science", "chemistry"},
		Amount:           "Full cost of study plus vacation work",
	},
	{
		Name:             "Eskom Bursary",
		Provider:         "Eskom",
		CitizenshipReq:   "ZA",
		MinAPS:           32,
		RequiredSubjects: []string{"mathematics", "physical_science"},
		Deadline:         deadline(2027, time.May, 31),
		Fields:           []string{"electrical engineering", "engineering", "energy"},
		Amount:           "Tuition, books and accommodation with work-back agreement",
	},
	{
		Name:           "Funza Lushaka",
		Provider:       "Department of Basic Education",
		CitizenshipReq: "ZA",
		MinAPS:         26,
		Deadline:       deadline(2027, time.January, 15),
		Fields:         []string{"teaching", "education"},
		Amount:         "Full cost of a teaching degree with placement obligation",
	},
	{
		Name:             "SAICA Thuthuka",
		Provider:         "SAICA",
		CitizenshipReq:   "ZA",
		MinAPS:           30,
		RequiredSubjects: []string{"mathematics"},
		IncomeCeiling:    600000,
		Deadline:         deadline(2027, time.June, 30),
		Fields:           []string{"accounting", "commerce"},
		Amount:           "Full support toward the CA(SA) route",
	},
	{
		Name:           "NYDA Grant",
		Provider:       "National Youth Development Agency",
		CitizenshipReq: "ZA",
		Deadline:       deadline(2027, time.December, 31),
		Fields:         []string{"entrepreneurship", "business"},
		Amount:         "Business grants R10k-R200k for youth-owned enterprises",
	},
}
