package types

// Closed option sets offered by the create-course form.
var (
	Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

	Categories = []string{
		"Web Development",
		"Programming",
		"Design",
		"Data Science",
		"Business",
		"Marketing",
		"Other",
	}

	Durations = []string{
		"1 Week", "2 Weeks", "3 Weeks", "4 Weeks", "5 Weeks",
		"6 Weeks", "8 Weeks", "10 Weeks", "12 Weeks",
	}

	Images = []string{"📘", "⚛️", "🟨", "🎨", "🐍", "🚀", "💡", "🔥", "🌐", "🤖", "📊", "🛠️"}
)

// IsLevel reports whether s names one of Levels.
func IsLevel(s string) bool {
	for _, l := range Levels {
		if string(l) == s {
			return true
		}
	}
	return false
}

// IsCategory reports whether s is one of Categories.
func IsCategory(s string) bool { return contains(Categories, s) }

// IsDuration reports whether s is one of Durations.
func IsDuration(s string) bool { return contains(Durations, s) }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
