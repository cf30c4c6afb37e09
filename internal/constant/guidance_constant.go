package constant

// Validation statuses produced by the aggregator.
const (
	StatusApproved           = "approved"
	StatusNeedsEnhancement   = "needs_enhancement"
	StatusRequiresCorrection = "requires_correction"
	StatusRejected           = "rejected"
)

// Footers appended by the enhancer. VerificationFooter doubles as the safety
// criterion's verification marker.
const (
	VerificationFooter = "\n\n⚠️ Please verify this information with your school counselor or the institution's official channels before making any decisions."
	AIDisclaimer       = "\n\nThis guidance is AI-generated and may not reflect the latest admission requirements or deadlines."
	ConfidenceNote     = "\n\nThis recommendation was checked against our career knowledge base for your grade and subject profile."
)

// Grade-keyed static fallback responses for a fully failed pipeline. The
// student never sees a raw error.
var FallbackResponses = map[int]string{
	10: "I couldn't generate a personalized recommendation right now. In Grade 10 your subject choices matter most: please speak to your school counselor about keeping your options open, especially Mathematics and Physical Science if you are considering technical fields.",
	11: "I couldn't generate a personalized recommendation right now. In Grade 11 it's a good time to shortlist study directions and compare entry requirements: please discuss your marks and interests with your school counselor.",
	12: "I couldn't generate a personalized recommendation right now. Because you are in Grade 12, applications and funding deadlines are urgent: please see your school counselor this week and check university and NSFAS closing dates directly.",
}

// FallbackDefault covers profiles without a recognized grade.
const FallbackDefault = "I couldn't generate a personalized recommendation right now. Please speak to your school counselor about your career options and try again later."
