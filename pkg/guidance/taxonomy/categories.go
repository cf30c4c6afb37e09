package taxonomy

// Category labels for the primary intent. Precedence between them is decided
// by the intent extractor, not here.
const (
	CategoryNoMatricPathways        = "no_matric_pathways"
	CategoryIncomeWithoutUniversity = "income_without_university"
	CategoryCreativeTech            = "creative_tech"
	CategoryRemoteDollarIncome      = "remote_dollar_income"
	CategoryFastEntry               = "fast_entry"
	CategoryBioTech                 = "bio_tech"
	CategoryHandsOnTrades           = "hands_on_trades"
	CategoryHelpingProfessions      = "helping_professions"
	CategoryGeneral                 = "general"
)

// CategoryCareers maps each intent category to the ordered career list the
// intent-based retrieval channel fetches.
var CategoryCareers = map[string][]string{
	CategoryNoMatricPathways: {
		CareerElectrician, CareerPlumber, CareerChef,
		CareerContentCreator, CareerEntrepreneur,
	},
	CategoryIncomeWithoutUniversity: {
		CareerSoftwareDeveloper, CareerDigitalMarketer, CareerElectrician,
		CareerEntrepreneur, CareerContentCreator,
	},
	CategoryCreativeTech: {
		CareerUXUIDesigner, CareerGraphicDesigner, CareerContentCreator,
		CareerSoftwareDeveloper, CareerDigitalMarketer,
	},
	CategoryRemoteDollarIncome: {
		CareerSoftwareDeveloper, CareerDigitalMarketer, CareerContentCreator,
		CareerUXUIDesigner, CareerDataScientist,
	},
	CategoryFastEntry: {
		CareerElectrician, CareerPlumber, CareerDigitalMarketer,
		CareerContentCreator, CareerChef,
	},
	CategoryBioTech: {
		CareerDataScientist, CareerPharmacist, CareerPhysiotherapist,
		CareerSoftwareDeveloper,
	},
	CategoryHandsOnTrades: {
		CareerElectrician, CareerPlumber, CareerMechanicalEngineer,
		CareerChef, CareerCivilEngineer,
	},
	CategoryHelpingProfessions: {
		CareerNurse, CareerDoctor, CareerPhysiotherapist,
		CareerPharmacist, CareerLawyer,
	},
	CategoryGeneral: {
		CareerSoftwareDeveloper, CareerDataScientist,
		CareerAccountant, CareerNurse, CareerMechanicalEngineer,
		CareerEntrepreneur, CareerDigitalMarketer,
	},
}

// CareersForCategory returns the category's career list, falling back to the
// general list for unknown labels. The returned slice is a copy.
func CareersForCategory(category string) []string {
	list, ok := CategoryCareers[category]
	if !ok {
		list = CategoryCareers[CategoryGeneral]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
