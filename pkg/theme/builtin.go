package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thDefaultTheme(),
		thGruvboxTheme(),
		thNordTheme(),
		thCatppuccinTheme(),
		thDraculaTheme(),
		thTokyoNightTheme(),
	} {
		thRegister(t)
	}
}

// thDefaultTheme matches the built-in scale of package temperature, so
// applying it changes nothing.
func thDefaultTheme() Theme {
	return Theme{
		Name:      "default",
		VeryCold:  "#94A3B8",
		Cold:      "#7DD3FC",
		Cool:      "#A5F3FC",
		Mild:      "#A7F3D0",
		Warm:      "#FCD34D",
		Hot:       "#F87171",
		TextDark:  "#0F172A",
		TextLight: "#F8FAFC",
	}
}

// thGruvboxTheme returns the warm retro Gruvbox ramp.
func thGruvboxTheme() Theme {
	return Theme{
		Name:      "gruvbox",
		VeryCold:  "#928374",
		Cold:      "#83a598",
		Cool:      "#8ec07c",
		Mild:      "#b8bb26",
		Warm:      "#fabd2f",
		Hot:       "#fb4934",
		TextDark:  "#282828",
		TextLight: "#ebdbb2",
	}
}

// thNordTheme returns the arctic Nord ramp.
func thNordTheme() Theme {
	return Theme{
		Name:      "nord",
		VeryCold:  "#4c566a",
		Cold:      "#5e81ac",
		Cool:      "#88c0d0",
		Mild:      "#a3be8c",
		Warm:      "#ebcb8b",
		Hot:       "#bf616a",
		TextDark:  "#2e3440",
		TextLight: "#eceff4",
	}
}

// thCatppuccinTheme returns the Catppuccin Mocha ramp.
func thCatppuccinTheme() Theme {
	return Theme{
		Name:      "catppuccin",
		VeryCold:  "#7f849c",
		Cold:      "#89b4fa",
		Cool:      "#94e2d5",
		Mild:      "#a6e3a1",
		Warm:      "#f9e2af",
		Hot:       "#f38ba8",
		TextDark:  "#1e1e2e",
		TextLight: "#cdd6f4",
	}
}

// thDraculaTheme returns the Dracula ramp.
func thDraculaTheme() Theme {
	return Theme{
		Name:      "dracula",
		VeryCold:  "#6272a4",
		Cold:      "#8be9fd",
		Cool:      "#bd93f9",
		Mild:      "#50fa7b",
		Warm:      "#f1fa8c",
		Hot:       "#ff5555",
		TextDark:  "#282a36",
		TextLight: "#f8f8f2",
	}
}

// thTokyoNightTheme returns the Tokyo Night ramp.
func thTokyoNightTheme() Theme {
	return Theme{
		Name:      "tokyo-night",
		VeryCold:  "#565f89",
		Cold:      "#7aa2f7",
		Cool:      "#7dcfff",
		Mild:      "#9ece6a",
		Warm:      "#e0af68",
		Hot:       "#f7768e",
		TextDark:  "#1a1b26",
		TextLight: "#c0caf5",
	}
}
