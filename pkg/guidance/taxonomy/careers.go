// Package taxonomy holds the career-guidance reference tables: the career
// taxonomy with its surface-form aliases, intent-category career lists,
// subject mappings and the named-framework dictionary. Everything here is
// data; new careers and intents are added by extending the tables.
package taxonomy

import "regexp"

// Career identifiers. These are the canonical ids the pipeline matches,
// retrieves and ranks against.
const (
	CareerSoftwareDeveloper  = "software_developer"
	CareerDataScientist      = "data_scientist"
	CareerUXUIDesigner       = "ux_ui_designer"
	CareerGraphicDesigner    = "graphic_designer"
	CareerDigitalMarketer    = "digital_marketer"
	CareerContentCreator     = "content_creator"
	CareerMechanicalEngineer = "mechanical_engineer"
	CareerElectricalEngineer = "electrical_engineer"
	CareerCivilEngineer      = "civil_engineer"
	CareerElectrician        = "electrician"
	CareerPlumber            = "plumber"
	CareerDoctor             = "doctor"
	CareerNurse              = "nurse"
	CareerPharmacist         = "pharmacist"
	CareerPhysiotherapist    = "physiotherapist"
	CareerLawyer             = "lawyer"
	CareerAccountant         = "accountant"
	CareerEntrepreneur       = "entrepreneur"
	CareerChef               = "chef"
)

// Alias is a surface form a student may use for a career. Substring aliases
// match anywhere in the lower-cased query; pattern aliases are word-boundary
// regexes for short or ambiguous forms.
type Alias struct {
	Substring string
	Pattern   *regexp.Regexp
}

func sub(s string) Alias  { return Alias{Substring: s} }
func word(s string) Alias { return Alias{Pattern: regexp.MustCompile(`(?i)\b` + s + `\b`)} }

// CareerEntry binds a career id to its display name and aliases.
type CareerEntry struct {
	Id      string
	Display string
	Aliases []Alias
}

// Careers is the fixed taxonomy, in stable order. Alias matching is
// case-insensitive; a career is recognized when ANY alias matches.
var Careers = []CareerEntry{
	{CareerSoftwareDeveloper, "Software Developer", []Alias{
		sub("software developer"), sub("software engineer"), sub("programmer"),
		sub("web developer"), word("coder"), word("coding"), word("dev")}},
	{CareerDataScientist, "Data Scientist", []Alias{
		sub("data scientist"), sub("data science"), sub("data analyst"),
		sub("machine learning"), word("ai engineer")}},
	{CareerUXUIDesigner, "UX/UI Designer", []Alias{
		sub("ux designer"), sub("ui designer"), sub("ux/ui"), sub("user experience"),
		sub("product designer"), word("ux"), word("ui design")}},
	{CareerGraphicDesigner, "Graphic Designer", []Alias{
		sub("graphic design"), sub("graphic designer"), sub("visual designer"),
		sub("illustrator")}},
	{CareerDigitalMarketer, "Digital Marketer", []Alias{
		sub("digital marketing"), sub("digital marketer"), sub("social media manager"),
		sub("seo specialist"), sub("marketing online")}},
	{CareerContentCreator, "Content Creator", []Alias{
		sub("content creator"), sub("content creation"), word("youtuber"),
		word("influencer"), sub("video editor"), sub("copywriter")}},
	{CareerMechanicalEngineer, "Mechanical Engineer", []Alias{
		sub("mechanical engineer"), sub("mechanical engineering")}},
	{CareerElectricalEngineer, "Electrical Engineer", []Alias{
		sub("electrical engineer"), sub("electrical engineering")}},
	{CareerCivilEngineer, "Civil Engineer", []Alias{
		sub("civil engineer"), sub("civil engineering")}},
	{CareerElectrician, "Electrician", []Alias{
		word("electrician"), sub("electrical trade")}},
	{CareerPlumber, "Plumber", []Alias{
		word("plumber"), word("plumbing")}},
	{CareerDoctor, "Medical Doctor", []Alias{
		word("doctor"), sub("medicine"), sub("medical doctor"), word("surgeon"),
		word("gp")}},
	{CareerNurse, "Nurse", []Alias{
		word("nurse"), word("nursing")}},
	{CareerPharmacist, "Pharmacist", []Alias{
		word("pharmacist"), word("pharmacy")}},
	{CareerPhysiotherapist, "Physiotherapist", []Alias{
		sub("physiotherap"), word("physio")}},
	{CareerLawyer, "Lawyer", []Alias{
		word("lawyer"), word("attorney"), word("advocate"), sub("law degree"),
		sub("legal career")}},
	{CareerAccountant, "Accountant", []Alias{
		word("accountant"), sub("accounting"), word("ca"), sub("chartered accountant"),
		word("auditor")}},
	{CareerEntrepreneur, "Entrepreneur", []Alias{
		sub("entrepreneur"), sub("own business"), sub("start a business"),
		sub("my own company"), sub("startup")}},
	{CareerChef, "Chef", []Alias{
		word("chef"), sub("culinary"), sub("professional cook")}},
}

// DisplayName returns the human-readable name for a career id.
func DisplayName(id string) string {
	for _, c := range Careers {
		if c.Id == id {
			return c.Display
		}
	}
	return id
}

// IsKnownCareer reports whether the id belongs to the taxonomy.
func IsKnownCareer(id string) bool {
	for _, c := range Careers {
		if c.Id == id {
			return true
		}
	}
	return false
}
