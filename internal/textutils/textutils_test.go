package textutils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fbarbosa/invest-recon/internal/textutils"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Tesouro IPCA", "tesouro ipca"},
		{"trims edges", "  cdb di  ", "cdb di"},
		{"collapses runs of whitespace", "pix    recebido", "pix recebido"},
		{"collapses tabs and newlines", "pix\t\nrecebido", "pix recebido"},
		{"keeps accents", "Aplicação Automática", "aplicação automática"},
		{"empty", "", ""},
		{"whitespace only", " \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textutils.Normalize(tt.input))
		})
	}
}
