package cli

import (
	"github.com/spf13/viper"

	"codeberg.org/snonux/decktrans/internal/translation"
)

// Backends accepted by --backend
const (
	BackendNone   = "none"
	BackendOpenAI = "openai"
	BackendGemini = "gemini"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	OutputDir  string
	From       string
	To         string
	Backend    string
	Source     string
	ListModels bool
	Archive    bool

	// Dictionary flags
	GlobalDictionary string
	Dictionary       string
	RemoveUnused     bool

	// Document flags
	RemoveColor string

	// Backend flags
	OpenAIModel string
	GeminiModel string
	Breaker     bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		OutputDir:        "translated",
		From:             "en",
		To:               "de",
		Backend:          BackendOpenAI,
		GlobalDictionary: "dictionary_global.csv",
		OpenAIModel:      "gpt-4o-mini",
		GeminiModel:      translation.DefaultGeminiModel,
	}
}

// ApplyConfig overwrites the flag values with the merged view of flags,
// environment and config file held by viper
func (f *Flags) ApplyConfig() {
	f.OutputDir = viper.GetString("translate.output")
	f.From = viper.GetString("translate.from")
	f.To = viper.GetString("translate.to")
	f.Backend = viper.GetString("translate.backend")
	f.RemoveColor = viper.GetString("translate.remove_color")
	f.Breaker = viper.GetBool("translate.breaker")
	f.GlobalDictionary = viper.GetString("dictionary.global")
	f.Dictionary = viper.GetString("dictionary.job")
	f.RemoveUnused = viper.GetBool("dictionary.remove_unused")
	f.OpenAIModel = viper.GetString("openai.model")
	f.GeminiModel = viper.GetString("gemini.model")
}
