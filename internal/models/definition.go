package models

// WordForms lists derived forms of a word by part of speech
type WordForms struct {
	Adjective string `json:"adjective,omitempty"`
	Noun      string `json:"noun,omitempty"`
	Verb      string `json:"verb,omitempty"`
	Adverb    string `json:"adverb,omitempty"`
}

// WordDefinition is a learner-friendly rendering of a dictionary entry
type WordDefinition struct {
	Word                    string    `json:"word"`
	PartOfSpeech            string    `json:"partOfSpeech"`
	PartOfSpeechExplanation string    `json:"partOfSpeechExplanation"`
	SimpleMeaning           string    `json:"simpleMeaning"`
	ELI5                    string    `json:"eli5"`
	ExampleSentences        []string  `json:"exampleSentences"`
	WordForms               WordForms `json:"wordForms"`
	UsagePatterns           []string  `json:"usagePatterns"`
	Synonyms                []string  `json:"synonyms"`
	Opposites               []string  `json:"opposites"`
}

// LookupResult is returned by the word lookup endpoint
type LookupResult struct {
	Definition *WordDefinition `json:"definition"`
	Save       SaveResult      `json:"save"`
}

// DictionaryEntry is the part of a dictionary API response used to build a definition
type DictionaryEntry struct {
	Word         string
	PartOfSpeech string
	Definition   string
	Example      string
	Synonyms     []string
	Antonyms     []string
}
