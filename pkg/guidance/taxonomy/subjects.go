package taxonomy

// Canonical subject keys used across intent signals, profiles and bursary
// requirements.
const (
	SubjectMaths   = "mathematics"
	SubjectPhysics = "physical_science"
	SubjectBiology = "life_science"
)

// Subjects in stable evaluation order.
var Subjects = []string{SubjectMaths, SubjectPhysics, SubjectBiology}

// SubjectCareers maps a subject to the careers it feeds. Matched (non-negated)
// subjects promote these careers to the front of a candidate list.
var SubjectCareers = map[string][]string{
	SubjectMaths: {
		CareerSoftwareDeveloper, CareerDataScientist, CareerAccountant,
		CareerElectricalEngineer, CareerMechanicalEngineer,
	},
	SubjectPhysics: {
		CareerMechanicalEngineer, CareerElectricalEngineer,
		CareerCivilEngineer, CareerElectrician,
	},
	SubjectBiology: {
		CareerDoctor, CareerNurse, CareerPharmacist, CareerPhysiotherapist,
	},
}

// AvoidOnNegation maps a negated subject to the careers removed from
// candidate lists when the student rejects that subject.
var AvoidOnNegation = map[string][]string{
	SubjectMaths: {
		CareerDataScientist, CareerMechanicalEngineer,
		CareerElectricalEngineer, CareerCivilEngineer, CareerAccountant,
	},
	SubjectPhysics: {
		CareerMechanicalEngineer, CareerElectricalEngineer, CareerCivilEngineer,
	},
	SubjectBiology: {
		CareerDoctor, CareerNurse, CareerPharmacist, CareerPhysiotherapist,
	},
}

// LowMathTech is the back-fill set for students who want tech but reject
// mathematics: digital careers with no heavy maths entry requirement.
var LowMathTech = []string{
	CareerUXUIDesigner, CareerGraphicDesigner,
	CareerDigitalMarketer, CareerContentCreator,
}

// CareerImpliesSubject maps careers to the subject their study routes assume.
// The re-ranker penalizes chunks for these careers when the subject is negated.
var CareerImpliesSubject = map[string][]string{
	CareerDataScientist:      {SubjectMaths},
	CareerSoftwareDeveloper:  {SubjectMaths},
	CareerAccountant:         {SubjectMaths},
	CareerMechanicalEngineer: {SubjectMaths, SubjectPhysics},
	CareerElectricalEngineer: {SubjectMaths, SubjectPhysics},
	CareerCivilEngineer:      {SubjectMaths, SubjectPhysics},
	CareerDoctor:             {SubjectBiology, SubjectPhysics},
	CareerNurse:              {SubjectBiology},
	CareerPharmacist:         {SubjectBiology},
	CareerPhysiotherapist:    {SubjectBiology},
}
