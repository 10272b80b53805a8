package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel_ToleranteAEntradaSucia(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"Error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseLevel(tc.in), "nivel %q", tc.in)
	}
}

func TestNew_NoFallaConConfigVacia(t *testing.T) {
	l := New(Config{})
	assert.NotNil(t, l)
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}
