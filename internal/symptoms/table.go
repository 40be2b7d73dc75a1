package symptoms

// Entry maps a lowercase keyword phrase to the conditions it suggests,
// the advice to give, and whether the symptom warrants urgent care.
type Entry struct {
	Keyword    string
	Conditions []string
	Advice     string
	Urgent     bool
}

// table is the full set of recognized symptom phrases. It is a slice, not a
// map: matching iterates in declaration order and the combined advice string
// depends on that order. Read-only after init; handlers share it without
// locking.
var table = []Entry{
	// Headache-related conditions
	{
		Keyword:    "headache",
		Conditions: []string{"Tension Headache", "Migraine", "Sinus Headache"},
		Advice:     "Rest in a quiet, dark room. Stay hydrated. Consider over-the-counter pain relievers like ibuprofen or acetaminophen.",
	},
	{
		Keyword:    "migraine",
		Conditions: []string{"Migraine", "Cluster Headache"},
		Advice:     "Lie down in a dark, quiet room. Apply cold compress to forehead. Avoid bright lights and loud noises.",
	},

	// Fever-related conditions
	{
		Keyword:    "fever",
		Conditions: []string{"Common Cold", "Flu", "COVID-19", "Bacterial Infection"},
		Advice:     "Rest, stay hydrated, and monitor temperature. Take acetaminophen or ibuprofen for fever. Seek medical attention if fever persists above 103°F (39.4°C).",
	},
	{
		Keyword:    "high fever",
		Conditions: []string{"Severe Infection", "COVID-19", "Bacterial Infection"},
		Advice:     "Seek immediate medical attention. High fever can be dangerous, especially in children and elderly.",
		Urgent:     true,
	},

	// Chest pain - always urgent
	{
		Keyword:    "chest pain",
		Conditions: []string{"Heart Attack", "Angina", "Pneumonia", "Costochondritis"},
		Advice:     "This is a medical emergency. Call emergency services immediately. Do not drive yourself to the hospital.",
		Urgent:     true,
	},
	{
		Keyword:    "chest tightness",
		Conditions: []string{"Heart Attack", "Angina", "Anxiety", "Asthma"},
		Advice:     "Seek immediate medical attention. Chest tightness can indicate serious heart or lung problems.",
		Urgent:     true,
	},

	// Respiratory symptoms
	{
		Keyword:    "shortness of breath",
		Conditions: []string{"Asthma", "Pneumonia", "COVID-19", "Anxiety", "Heart Problem"},
		Advice:     "Seek medical attention immediately. Difficulty breathing is a serious symptom that requires prompt evaluation.",
		Urgent:     true,
	},
	{
		Keyword:    "cough",
		Conditions: []string{"Common Cold", "Flu", "COVID-19", "Bronchitis", "Pneumonia"},
		Advice:     "Stay hydrated, rest, and monitor symptoms. Seek medical attention if cough is severe or accompanied by fever.",
	},

	// Abdominal symptoms
	{
		Keyword:    "stomach pain",
		Conditions: []string{"Gastritis", "Food Poisoning", "Appendicitis", "Irritable Bowel Syndrome"},
		Advice:     "Rest, stay hydrated, and avoid solid foods initially. Seek medical attention if pain is severe or persistent.",
	},
	{
		Keyword:    "severe abdominal pain",
		Conditions: []string{"Appendicitis", "Gallbladder Disease", "Bowel Obstruction", "Kidney Stones"},
		Advice:     "Seek immediate medical attention. Severe abdominal pain can indicate a serious condition requiring surgery.",
		Urgent:     true,
	},

	// Dizziness and neurological symptoms
	{
		Keyword:    "dizziness",
		Conditions: []string{"Vertigo", "Dehydration", "Low Blood Pressure", "Inner Ear Problem"},
		Advice:     "Sit or lie down to prevent falls. Stay hydrated. Seek medical attention if dizziness is severe or accompanied by other symptoms.",
	},
	{
		Keyword:    "nausea",
		Conditions: []string{"Food Poisoning", "Gastritis", "Migraine", "Pregnancy", "Viral Infection"},
		Advice:     "Stay hydrated with small sips of water. Rest and avoid solid foods. Seek medical attention if severe or persistent.",
	},
}

// Keywords returns the recognized symptom phrases in table order.
func Keywords() []string {
	out := make([]string, len(table))
	for i, e := range table {
		out[i] = e.Keyword
	}
	return out
}

// Count reports how many symptom phrases the table holds.
func Count() int {
	return len(table)
}
