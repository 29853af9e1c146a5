package course

// Outline is the high-level course plan produced by the outline stage.
// It is immutable once the stage completes; the module expander only
// reads from it.
type Outline struct {
	Topic         string       `json:"topic" yaml:"topic"`
	Language      string       `json:"language" yaml:"language"`
	Description   string       `json:"description" yaml:"description"`
	Prerequisites []string     `json:"prerequisites" yaml:"prerequisites"`
	Modules       []ModuleStub `json:"modules" yaml:"modules"`
}

// ModuleStub is the outline-level view of a module, before expansion.
type ModuleStub struct {
	Number      string   `json:"number" yaml:"number"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Objectives  []string `json:"objectives" yaml:"objectives"`
	Exercises   []string `json:"exercises" yaml:"exercises"`
}

// SessionStub is the outline-level view of a session within a module.
type SessionStub struct {
	Number         string   `json:"session_number" yaml:"session_number"`
	Title          string   `json:"title" yaml:"title"`
	Description    string   `json:"description" yaml:"description"`
	KeyConcepts    []string `json:"key_concepts,omitempty" yaml:"key_concepts,omitempty"`
	VisualElements []string `json:"visual_elements,omitempty" yaml:"visual_elements,omitempty"`
	Resources      []string `json:"resources,omitempty" yaml:"resources,omitempty"`
}

// Subsection is a titled block of text nested inside a Section.
type Subsection struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// Section is one titled block of instructional content. A section whose
// body came out empty after parsing is dropped, never emitted empty.
type Section struct {
	Title       string       `json:"title" yaml:"title"`
	Content     string       `json:"content" yaml:"content"`
	Subsections []Subsection `json:"subsections,omitempty" yaml:"subsections,omitempty"`
}

// QuestionType distinguishes the two assessment question shapes.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	FreeForm       QuestionType = "free_form"
)

// Question is a single assessment item. Options is only populated for
// multiple-choice questions, which carry at least two of them.
type Question struct {
	Type           QuestionType `json:"type" yaml:"type"`
	Text           string       `json:"text" yaml:"text"`
	Options        []string     `json:"options,omitempty" yaml:"options,omitempty"`
	CorrectAnswer  string       `json:"correct_answer,omitempty" yaml:"correct_answer,omitempty"`
	CorrectAnswers []string     `json:"correct_answers,omitempty" yaml:"correct_answers,omitempty"`
	Explanation    string       `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// Assessment is the ordered set of questions closing a session.
type Assessment struct {
	Questions []Question `json:"questions" yaml:"questions"`
}

// SessionContent is a fully expanded session.
type SessionContent struct {
	Number       string     `json:"session_number" yaml:"session_number"`
	Title        string     `json:"title" yaml:"title"`
	ModuleNumber string     `json:"module_number" yaml:"module_number"`
	Language     string     `json:"language" yaml:"language"`
	Sections     []Section  `json:"sections" yaml:"sections"`
	Assessment   Assessment `json:"assessment" yaml:"assessment"`
}

// ModulePlan is a module after expansion: the stub fields, the parsed
// overview sections, the session outline and (after the session stage)
// the expanded sessions. The outline and the overview sections come from
// two independent backend calls, so they are not guaranteed to agree.
type ModulePlan struct {
	Number      string           `json:"module_number" yaml:"module_number"`
	Title       string           `json:"title" yaml:"title"`
	Description string           `json:"description" yaml:"description"`
	Objectives  []string         `json:"objectives" yaml:"objectives"`
	Exercises   []string         `json:"exercises,omitempty" yaml:"exercises,omitempty"`
	Sections    []Section        `json:"sections" yaml:"sections"`
	Outline     []SessionStub    `json:"session_outline,omitempty" yaml:"session_outline,omitempty"`
	Sessions    []SessionContent `json:"sessions" yaml:"sessions"`
}

// Document is the terminal artifact of one pipeline run. It is never
// mutated after the finalize stage emits it.
type Document struct {
	Topic         string       `json:"topic" yaml:"topic"`
	Language      string       `json:"language" yaml:"language"`
	Description   string       `json:"description" yaml:"description"`
	Prerequisites []string     `json:"prerequisites" yaml:"prerequisites"`
	Modules       []ModulePlan `json:"modules" yaml:"modules"`
}
