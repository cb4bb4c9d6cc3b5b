// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package facet

// Topics is the subject-matter facet.
var Topics = Dictionary{
	Name: "topics",
	Labels: []Label{
		{Name: "Longevity", Phrases: []string{"longevity", "lifespan", "healthspan", "anti-aging", "aging", "ageing", "senescence"}},
		{Name: "Chronic Disease", Phrases: []string{"chronic disease", "diabetes", "hypertension", "obesity", "arthritis", "copd"}},
		{Name: "Cancer", Phrases: []string{"cancer", "oncology", "tumor", "tumour", "carcinoma", "chemotherapy"}},
		{Name: "Cardiovascular", Phrases: []string{"cardiovascular", "heart disease", "stroke", "blood pressure", "cholesterol", "cardiac"}},
		{Name: "Microbiome", Phrases: []string{"microbiome", "gut bacteria", "gut flora", "probiotic", "prebiotic", "microbiota"}},
		{Name: "Nutrition", Phrases: []string{"nutrition", "diet", "fasting", "supplement", "vitamin", "caloric restriction"}},
		{Name: "Mental Health", Phrases: []string{"mental health", "depression", "anxiety", "dementia", "alzheimer", "cognitive decline"}},
		{Name: "Infectious Disease", Phrases: []string{"infection", "vaccine", "virus", "antibiotic", "pandemic", "pathogen"}},
		{Name: "Metabolic Health", Phrases: []string{"metabolism", "metabolic", "insulin", "glucose", "mitochondri"}},
		{Name: "Sleep", Phrases: []string{"sleep", "circadian", "insomnia", "melatonin"}},
		{Name: "Exercise", Phrases: []string{"exercise", "physical activity", "fitness", "strength training", "aerobic"}},
	},
}

// Disciplines is the research-method facet.
var Disciplines = Dictionary{
	Name: "disciplines",
	Labels: []Label{
		{Name: "Clinical Trials", Phrases: []string{"clinical trial", "randomized controlled trial", "randomised controlled trial", "rct", "placebo", "phase 3", "phase iii", "double-blind"}},
		{Name: "Epidemiology", Phrases: []string{"epidemiolog", "cohort study", "population study", "case-control", "prevalence", "incidence"}},
		{Name: "Genetics", Phrases: []string{"genetic", "genom", "dna", "crispr", "gene therapy", "epigenetic"}},
		{Name: "Neuroscience", Phrases: []string{"neuroscience", "neural", "neuron", "brain imaging", "neurodegenerat"}},
		{Name: "Immunology", Phrases: []string{"immune", "immunolog", "antibod", "inflammation", "autoimmune"}},
		{Name: "Pharmacology", Phrases: []string{"drug", "pharmac", "compound", "therapeutic", "fda approval"}},
		{Name: "Biotechnology", Phrases: []string{"biotech", "cell therapy", "stem cell", "bioengineering", "organoid"}},
		{Name: "Public Health", Phrases: []string{"public health", "health policy", "who ", "screening program", "health system"}},
	},
}

// Areas is the application-area facet.
var Areas = Dictionary{
	Name: "areas",
	Labels: []Label{
		{Name: "Prevention", Phrases: []string{"prevention", "preventive", "screening", "risk reduction", "early detection"}},
		{Name: "Treatment", Phrases: []string{"treatment", "therapy", "intervention", "cure", "remission"}},
		{Name: "Diagnostics", Phrases: []string{"diagnos", "biomarker", "test ", "imaging", "detection"}},
		{Name: "Research", Phrases: []string{"study", "research", "trial", "findings", "evidence", "preprint"}},
		{Name: "Technology", Phrases: []string{"artificial intelligence", "machine learning", " ai ", "wearable", "digital health", "sensor"}},
		{Name: "Policy", Phrases: []string{"policy", "regulation", "guideline", "approval", "legislation"}},
	},
}
