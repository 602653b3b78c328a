package corpus

import "babysteps/internal/domain"

// Builtin returns the default reference document set. Order matters: it is
// the tie-break order for equal relevance scores.
func Builtin() *Corpus {
	c, err := New(builtinDocs)
	if err != nil {
		// builtinDocs is static; a validation failure here is a programming error.
		panic(err)
	}
	return c
}

var builtinDocs = []domain.Document{
	{
		ID:       "dev-0-3",
		Title:    "Baby Development 0-3 Months",
		Content:  "In the first three months your baby learns to lift their head, follow faces with their eyes and respond to familiar voices. Expect early social smiles around six to eight weeks. Tummy time for short periods each day builds the neck and shoulder strength needed for later milestones.",
		URL:      "https://www.qld.gov.au/health/condition/child-health/babies-and-toddlers/how-your-baby-develops-from-0-to-3-months",
		Category: domain.CategoryDevelopment,
		AgeRange: "0-3 months",
	},
	{
		ID:       "dev-3-6",
		Title:    "Baby Development 3-6 Months",
		Content:  "Between three and six months babies start rolling over, reaching for toys and babbling back when you talk. Many begin to laugh out loud and recognise their own name. Offer plenty of supervised floor play to encourage rolling and early sitting.",
		URL:      "https://www.qld.gov.au/health/condition/child-health/babies-and-toddlers/how-your-baby-develops-3-6-months",
		Category: domain.CategoryDevelopment,
		AgeRange: "3-6 months",
	},
	{
		ID:       "dev-6-9",
		Title:    "Baby Development 6-9 Months",
		Content:  "From six to nine months most babies sit without support, pass objects between hands and may start crawling. Babbling becomes more varied and tuneful. Separation anxiety often appears as your baby learns that you can leave the room.",
		URL:      "https://www.qld.gov.au/health/condition/child-health/babies-and-toddlers/how-your-baby-develops-6-9-months",
		Category: domain.CategoryDevelopment,
		AgeRange: "6-9 months",
	},
	{
		ID:       "dev-9-12",
		Title:    "Baby Development 9-12 Months",
		Content:  "Approaching the first birthday babies pull to stand, cruise along furniture and may take first steps. First words like mama or dada often arrive now. Simple games such as peekaboo and pointing at pictures support language and memory.",
		URL:      "https://www.qld.gov.au/health/condition/child-health/babies-and-toddlers/how-your-baby-develops-9-12-months",
		Category: domain.CategoryDevelopment,
		AgeRange: "9-12 months",
	},
	{
		ID:       "health-teething",
		Title:    "Teething Guide",
		Content:  "Teething usually starts between four and ten months and can make babies dribble, chew and grizzle more than usual. Offer a chilled teething ring and extra comfort. See a doctor if your baby has a fever or seems sick, as teething does not cause high temperatures.",
		URL:      "https://www.qld.gov.au/health/condition/child-health/babies-and-toddlers/teething",
		Category: domain.CategoryHealth,
		AgeRange: "3+ months",
	},
	{
		ID:       "feeding-breastfeeding",
		Title:    "Breastfeeding Support",
		Content:  "Breastfeeding on demand helps establish supply and lets your baby feed when hungry rather than to a schedule. Newborns commonly feed eight to twelve times in 24 hours. Lactation consultants and child health nurses can help with attachment and positioning.",
		URL:      "https://www.health.nsw.gov.au/kidsfamilies/MCFhealth/child/Pages/breastfeeding.aspx",
		Category: domain.CategoryFeeding,
		AgeRange: "0+ months",
	},
	{
		ID:       "health-immunisation",
		Title:    "Immunization Schedule",
		Content:  "Routine immunisations protect babies against serious diseases and are scheduled at birth, two, four, six and twelve months. Keeping to the schedule gives the best protection. Mild fever or fussiness after a vaccine is common and passes quickly.",
		URL:      "https://www.health.gov.au/topics/immunisation/when-to-get-vaccinated/immunisation-for-infants-and-children",
		Category: domain.CategoryHealth,
		AgeRange: "0+ months",
	},
	{
		ID:       "sleep-safe-sleep",
		Title:    "Safe Sleep for Babies",
		Content:  "Always place your baby on their back to sleep, in their own safe cot with a firm flat mattress and no loose bedding. A consistent bedtime routine helps babies settle and sleep for longer stretches. Room-sharing for the first six to twelve months lowers the risk of sudden unexpected death in infancy.",
		URL:      "https://rednose.org.au/section/safe-sleeping",
		Category: domain.CategorySleep,
		AgeRange: "0+ months",
	},
	{
		ID:       "feeding-solids",
		Title:    "Starting Solid Foods",
		Content:  "Around six months babies show signs they are ready for solid food: good head control, sitting with support and interest in what you are eating. Start with iron-rich foods and keep offering a variety of textures. Milk remains the main source of nutrition until twelve months.",
		URL:      "https://raisingchildren.net.au/babies/breastfeeding-bottle-feeding-solids/solids-drinks/introducing-solids",
		Category: domain.CategoryFeeding,
		AgeRange: "4+ months",
	},
	{
		ID:       "safety-home",
		Title:    "Home Safety Checklist",
		Content:  "Once babies move, home safety matters: anchor furniture, fit safety gates on stairs, keep cords and small objects out of reach and set the hot water below 50 degrees. Never leave a baby alone in the bath. Check toys for loose parts that could be a choking hazard.",
		URL:      "https://raisingchildren.net.au/babies/safety/home-pets/home-safety",
		Category: domain.CategorySafety,
		AgeRange: "6+ months",
	},
	{
		ID:       "language-early-talk",
		Title:    "Early Language Development",
		Content:  "Talking, singing and reading with your baby from birth builds language long before first words. Respond to coos and babble as if they were conversation. By twelve months many babies understand simple requests and use a word or two with meaning.",
		URL:      "https://raisingchildren.net.au/babies/development/language-development/language-development-0-8",
		Category: domain.CategoryLanguage,
		AgeRange: "0+ months",
	},
}
