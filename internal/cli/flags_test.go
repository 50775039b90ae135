package cli

import (
	"reflect"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"OutputDir", flags.OutputDir, "translated"},
		{"From", flags.From, "en"},
		{"To", flags.To, "de"},
		{"Backend", flags.Backend, BackendOpenAI},
		{"GlobalDictionary", flags.GlobalDictionary, "dictionary_global.csv"},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o-mini"},
		{"GeminiModel", flags.GeminiModel, "gemini-2.5-flash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"ListModels", flags.ListModels},
		{"Archive", flags.Archive},
		{"RemoveUnused", flags.RemoveUnused},
		{"Breaker", flags.Breaker},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"Source", flags.Source},
		{"Dictionary", flags.Dictionary},
		{"RemoveColor", flags.RemoveColor},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %q, want empty", tt.name, tt.value)
			}
		})
	}
}

func TestApplyConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// A changed flag wins over the config file
	cmd.Flags().Set("to", "et")
	viper.Set("dictionary.job", "talk.csv")
	viper.Set("gemini.model", "gemini-2.5-pro")

	flags.ApplyConfig()

	if flags.To != "et" {
		t.Errorf("To = %q, want et", flags.To)
	}
	if flags.Dictionary != "talk.csv" {
		t.Errorf("Dictionary = %q, want talk.csv", flags.Dictionary)
	}
	if flags.GeminiModel != "gemini-2.5-pro" {
		t.Errorf("GeminiModel = %q, want gemini-2.5-pro", flags.GeminiModel)
	}
	if flags.From != "en" {
		t.Errorf("From = %q, want default en", flags.From)
	}
}
