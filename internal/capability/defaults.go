package capability

// Page views that hold an identified note on screen.
const (
	ViewNote       = "note"
	ViewNoteEditor = "note_editor"
)

// Registered capability ids. IntentNone lives in internal/intent; these are
// the dispatchable actions.
const (
	IDFlashcard    = "flashcard"
	IDTest         = "test"
	IDCourseSearch = "course_search"
	IDCareerPath   = "career_path"
)

// DefaultRegistry builds the production capability set. Registration order
// matters: it is the documented tie-break for keyword recovery.
func DefaultRegistry() (*Registry, error) {
	r := NewRegistry()

	capabilities := []Capability{
		{
			ID:          IDFlashcard,
			Description: "Create a flashcard deck from a specific note the user identifies. Requires an identified note: an explicit @-mention or a note currently open on screen.",
			Keywords:    []string{"flashcard", "flashcards", "flash card", "deck"},
			Examples: []string{
				"turn this note into flashcards",
				"make a flashcard deck from @Biology Chapter 3",
			},
			Parameters: []ParamSpec{
				{Name: "note_id", Type: "string", Hint: "identifier of the source note; leave empty when the user points at a note only by mention or by the open page"},
				{Name: "count", Type: "integer", Hint: "requested number of cards, if the user states one"},
				{Name: "title", Type: "string", Hint: "deck title, if the user states one"},
			},
			RequiredContext: []Requirement{RequireContentRef},
			CompatibleViews: []string{ViewNote, ViewNoteEditor},
		},
		{
			ID:          IDTest,
			Description: "Generate a practice test or quiz from a specific note the user identifies. Requires an identified note: an explicit @-mention or a note currently open on screen.",
			Keywords:    []string{"test", "quiz", "exam", "practice questions"},
			Examples: []string{
				"make a quiz from my note",
				"create a 10 question test on @Linear Algebra",
			},
			Parameters: []ParamSpec{
				{Name: "note_id", Type: "string", Hint: "identifier of the source note; leave empty when the user points at a note only by mention or by the open page"},
				{Name: "question_count", Type: "integer", Hint: "requested number of questions, if the user states one"},
				{Name: "difficulty", Type: "string", Hint: "easy, medium or hard, if the user states one"},
			},
			RequiredContext: []Requirement{RequireContentRef},
			CompatibleViews: []string{ViewNote, ViewNoteEditor},
		},
		{
			ID:          IDCourseSearch,
			Description: "Search the course catalog for something the user wants to learn. Works from the message alone; no note is needed.",
			Keywords:    []string{"course", "courses", "class", "lesson", "learn about"},
			Examples: []string{
				"find me a course on statistics",
				"what classes do you have about machine learning",
			},
			Parameters: []ParamSpec{
				{Name: "query", Type: "string", Required: true, Hint: "what the user wants to learn, in their own words"},
				{Name: "level", Type: "string", Hint: "beginner, intermediate or advanced, if the user states one"},
			},
		},
		{
			ID:          IDCareerPath,
			Description: "Build a learning roadmap toward a career goal the user names. Works from the message alone; no note is needed.",
			Keywords:    []string{"career", "roadmap", "become a", "career path"},
			Examples: []string{
				"what should I learn to become a data engineer",
				"build me a roadmap to frontend developer",
			},
			Parameters: []ParamSpec{
				{Name: "goal", Type: "string", Required: true, Hint: "the target role or skill the user wants to reach"},
				{Name: "experience", Type: "string", Hint: "the user's current level or background, if stated"},
			},
		},
	}

	for _, c := range capabilities {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}
