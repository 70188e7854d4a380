package court

import "github.com/legal-suite/backend/internal/models"

// The fixed training-game scenario set. Every scenario must keep at
// least one strong defense (pleading) and one true error (procedural),
// the scorers rely on it.

var accusationScenarios = []models.AccusationScenario{
	{
		ID:          "scenario_1",
		Title:       "The Electronics Store Theft",
		CaseSummary: "An electronics store in the Al-Malaz district reported a break-in overnight. Several laptops and phones are missing and the rear lock was forced.",
		CrimeType:   "theft",
		Difficulty:  models.DifficultyBeginner,
		Points:      100,
		TimeLimit:   15,
		Evidence: []models.EvidenceItem{
			{ID: "e1", Type: "video", Description: "Security camera footage showing a man forcing the rear door", Relevance: "high"},
			{ID: "e2", Type: "physical", Description: "Stolen devices recovered from the suspect's car", Relevance: "high"},
			{ID: "e3", Type: "witness", Description: "Store owner's statement about a recent dispute with a former employee", Relevance: "medium"},
			{ID: "e4", Type: "document", Description: "A supplier invoice from last month", Relevance: "none"},
		},
		Suspects: []models.Suspect{
			{ID: "s1", Name: "Khalid Mohammed", Description: "Former employee dismissed two weeks earlier", IsCulprit: true},
			{ID: "s2", Name: "Ahmed Ali", Description: "Regular customer seen at the store that afternoon", IsCulprit: false},
			{ID: "s3", Name: "Saad Omar", Description: "Delivery driver for the neighboring shop", IsCulprit: false},
		},
		CorrectAccusation: "aggravated theft with breaking",
		CorrectArticles:   []string{"Penal Code Article 321", "Penal Code Article 325"},
	},
	{
		ID:          "scenario_2",
		Title:       "The Forged Power of Attorney",
		CaseSummary: "A real-estate transfer was executed using a power of attorney the alleged principal says he never signed. The property sold well below market value.",
		CrimeType:   "forgery",
		Difficulty:  models.DifficultyAdvanced,
		Points:      150,
		TimeLimit:   20,
		Evidence: []models.EvidenceItem{
			{ID: "e1", Type: "document", Description: "Handwriting analysis showing the signature does not match the principal", Relevance: "high"},
			{ID: "e2", Type: "digital", Description: "Notary office logs showing the document was registered after hours", Relevance: "high"},
			{ID: "e3", Type: "financial", Description: "Bank records of an unexplained transfer to the agent's account", Relevance: "medium"},
			{ID: "e4", Type: "witness", Description: "Neighbor's statement that the buyer visited the property twice", Relevance: "none"},
			{ID: "e5", Type: "document", Description: "The property's original title deed", Relevance: "none"},
		},
		Suspects: []models.Suspect{
			{ID: "s1", Name: "Fahad Abdullah", Description: "The agent named in the disputed power of attorney", IsCulprit: true},
			{ID: "s2", Name: "Majed Saleh", Description: "Notary clerk on duty that week", IsCulprit: true},
			{ID: "s3", Name: "Nasser Ibrahim", Description: "The buyer of the property", IsCulprit: false},
		},
		CorrectAccusation: "forgery of an official document and fraudulent conveyance",
		CorrectArticles:   []string{"Forgery Law Article 5", "Forgery Law Article 9", "Penal Code Article 210"},
	},
}

var pleadingScenarios = []models.PleadingScenario{
	{
		ID:         "pleading_1",
		Title:      "Defending a Shoplifting Charge",
		CaseType:   "criminal",
		Difficulty: models.DifficultyBeginner,
		Situation:  "Your client is accused of stealing a mobile phone from a shopping-mall store. The prosecution relies mainly on a short camera clip.",
		YourRole:   "defense counsel",
		OpponentArguments: []string{
			"The camera recording clearly shows the defendant near the shelf.",
			"The defendant left the store minutes before the phone was reported missing.",
		},
		AvailableDefenses: []models.Defense{
			{ID: "d1", Text: "The camera footage is low quality and does not show the defendant's face", Score: 25, IsStrong: true},
			{ID: "d2", Text: "Two witnesses place the defendant at the food court at the time of the theft", Score: 30, IsStrong: true},
			{ID: "d3", Text: "The store's inventory count has a history of clerical errors", Score: 25, IsStrong: true},
			{ID: "d4", Text: "The defendant is a respected member of the community", Score: 5, IsStrong: false},
			{ID: "d5", Text: "The phone was not expensive", Score: 5, IsStrong: false},
		},
		WinningThreshold: 70,
		Points:           100,
		TimeLimit:        10,
	},
	{
		ID:         "pleading_2",
		Title:      "Contesting a Commercial Contract Termination",
		CaseType:   "commercial",
		Difficulty: models.DifficultyIntermediate,
		Situation:  "Your client's distribution contract was terminated without notice. The supplier claims repeated late payments justified immediate termination.",
		YourRole:   "claimant's counsel",
		OpponentArguments: []string{
			"The contract allows termination for material breach.",
			"Three invoices were paid after their due dates.",
		},
		AvailableDefenses: []models.Defense{
			{ID: "d1", Text: "The contract requires thirty days written notice before termination for any breach", Score: 35, IsStrong: true},
			{ID: "d2", Text: "The supplier accepted the late payments without objection, waiving the breach", Score: 30, IsStrong: true},
			{ID: "d3", Text: "The delays were caused by the supplier's own invoicing errors", Score: 20, IsStrong: true},
			{ID: "d4", Text: "The client has been a loyal distributor for ten years", Score: 5, IsStrong: false},
			{ID: "d5", Text: "The termination caused the client financial hardship", Score: 5, IsStrong: false},
		},
		WinningThreshold: 60,
		Points:           120,
		TimeLimit:        12,
	},
}

var proceduralScenarios = []models.ProceduralScenario{
	{
		ID:              "error_1",
		Title:           "Trial Without Counsel",
		Difficulty:      models.DifficultyBeginner,
		CaseDescription: "A defendant charged with theft was tried and convicted in a single session. Review the proceedings and flag every procedural error.",
		CourtProceedings: []string{
			"The judge opened the session and verified the defendant's identity.",
			"The defendant requested time to appoint a lawyer.",
			"The judge denied the request and ordered the trial to proceed immediately.",
			"The prosecution presented its evidence.",
			"The defendant was not given the opportunity to respond to the evidence.",
			"The judge pronounced the verdict in open court.",
		},
		Errors: []models.ProceedingError{
			{ID: "e1", Description: "Denying the defendant's request to appoint a lawyer", IsError: true, Explanation: "The right to counsel in criminal proceedings is guaranteed and a request to appoint a lawyer must be granted reasonable time."},
			{ID: "e2", Description: "Opening the session and verifying identity", IsError: false, Explanation: "Standard opening procedure."},
			{ID: "e3", Description: "Proceeding without hearing the defendant's response to the evidence", IsError: true, Explanation: "The defendant must be given the opportunity to rebut every piece of evidence presented against him."},
			{ID: "e4", Description: "Pronouncing the verdict in open court", IsError: false, Explanation: "Verdicts are pronounced publicly."},
		},
		Points:    100,
		TimeLimit: 8,
	},
	{
		ID:              "error_2",
		Title:           "The Hasty Appeal Hearing",
		Difficulty:      models.DifficultyIntermediate,
		CaseDescription: "An appellate panel heard a commercial appeal. Several steps deviated from proper appellate procedure.",
		CourtProceedings: []string{
			"The appeal was filed forty days after the judgment was served.",
			"The panel accepted the appeal for review.",
			"One of the three judges had ruled on the case at first instance.",
			"The panel heard oral argument from the appellant only.",
			"The respondent's written reply was added to the record.",
			"The panel issued a reasoned decision.",
		},
		Errors: []models.ProceedingError{
			{ID: "e1", Description: "Accepting an appeal filed after the thirty-day deadline", IsError: true, Explanation: "Appeals filed after the statutory deadline must be dismissed as inadmissible unless a lawful excuse is proven."},
			{ID: "e2", Description: "A first-instance judge sitting on the appellate panel", IsError: true, Explanation: "A judge who ruled on a case may not hear its appeal. The panel is improperly constituted."},
			{ID: "e3", Description: "Hearing oral argument from the appellant without inviting the respondent", IsError: true, Explanation: "Both parties must be given an equal opportunity to be heard."},
			{ID: "e4", Description: "Adding the respondent's written reply to the record", IsError: false, Explanation: "Written replies are part of the appellate record."},
			{ID: "e5", Description: "Issuing a reasoned decision", IsError: false, Explanation: "Appellate decisions must state their reasons."},
		},
		Points:    120,
		TimeLimit: 10,
	},
}
