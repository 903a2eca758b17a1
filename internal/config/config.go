package config

import "os"

const (
	DefaultRoot      = "~/projects"
	DefaultIndexFile = "projects_index.json"
	DefaultOllamaURL = "http://localhost:11434"
	DefaultModel     = "gemma3:1b"
)

// Root returns the projects root from PROJDEX_ROOT, falling back to
// DefaultRoot.
func Root() string {
	if env := os.Getenv("PROJDEX_ROOT"); env != "" {
		return env
	}
	return DefaultRoot
}

// IndexFile returns the index path from PROJDEX_INDEX, falling back
// to DefaultIndexFile.
func IndexFile() string {
	if env := os.Getenv("PROJDEX_INDEX"); env != "" {
		return env
	}
	return DefaultIndexFile
}

// OllamaURL returns the Ollama endpoint from PROJDEX_OLLAMA_URL,
// falling back to DefaultOllamaURL.
func OllamaURL() string {
	if env := os.Getenv("PROJDEX_OLLAMA_URL"); env != "" {
		return env
	}
	return DefaultOllamaURL
}

// Model returns the tag model from PROJDEX_MODEL, falling back to
// DefaultModel.
func Model() string {
	if env := os.Getenv("PROJDEX_MODEL"); env != "" {
		return env
	}
	return DefaultModel
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home + path[1:]
	}
	return path
}
