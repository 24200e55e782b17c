package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"accents stripped", "São Paulo Tech Week", "sao-paulo-tech-week"},
		{"punctuation removed", "Go Conf: 2024 Edition!", "go-conf-2024-edition"},
		{"whitespace runs collapse", "Dev   Fest\t\nRio", "dev-fest-rio"},
		{"hyphens kept", "pre-conf meetup", "pre-conf-meetup"},
		{"underscore is a word char", "node_js day", "node_js-day"},
		{"cedilla and tilde", "Ação Conexão", "acao-conexao"},
		{"no-break space", "Tech\u00a0Week", "tech-week"},
		{"vertical tab", "Tech\vWeek", "tech-week"},
		{"em space", "Tech\u2003Week", "tech-week"},
		{"ideographic space run", "Tech\u3000 \u2009Week", "tech-week"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.in))
		})
	}
}

func TestGenerateIdempotent(t *testing.T) {
	inputs := []string{
		"São Paulo Tech Week",
		"DevFest 2024",
		"  leading and trailing  ",
		"Überraschung Événement",
	}
	for _, in := range inputs {
		once := Generate(in)
		assert.Equal(t, once, Generate(once), "input %q", in)
	}
}
