package crawler

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simulationAbstract = `Simulation parameters:
    tdiv  = 500
    Nmax  = 128
    beta  = 1
    gamma = 1
    dt    = 0.01
    D     = [0.1,0.2,0.3,0.4,0.5]
    sigma = 0.1
    theta = [-0.01,-0.03,0.02,0.01,-0.02]

Gene Regulatory Network:
[0,1,-1,0,0]
[1,0,0,-1,0]
[0,0,0,1,1]
[-1,0,1,0,0]
[0,1,0,0,-1]
`

func TestParseAbstract(t *testing.T) {
	tests := map[string]struct {
		input string
		want  map[string]string
	}{
		"flat key value file": {
			input: "Nmax = 500\ntheta = 0.1,0.2,0.3\ntdiv = 1000\ndt = 0.01\n",
			want: map[string]string{
				"Nmax":  "500",
				"theta": "0.1,0.2,0.3",
				"tdiv":  "1000",
				"dt":    "0.01",
			},
		},
		"simulation output with headers and matrix": {
			input: simulationAbstract,
			want: map[string]string{
				"Nmax":  "128",
				"theta": "[-0.01,-0.03,0.02,0.01,-0.02]",
				"tdiv":  "500",
				"dt":    "0.01",
			},
		},
		"crlf line endings": {
			input: "Nmax=1\r\ndt = 0.5\r\n",
			want:  map[string]string{"Nmax": "1", "dt": "0.5"},
		},
		"last assignment wins": {
			input: "tdiv = 1\ntdiv = 2\n",
			want:  map[string]string{"tdiv": "2"},
		},
		"unknown keys ignored": {
			input: "beta = 1\nNmaxx = 3\nsigma=0.1=0.2\n",
			want:  map[string]string{},
		},
		"empty input": {
			input: "",
			want:  map[string]string{},
		},
		"missing final newline": {
			input: "dt = 0.25",
			want:  map[string]string{"dt": "0.25"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAbstract(strings.NewReader(tc.input), recognizedKeys)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseAbstractMalformedLine(t *testing.T) {
	tests := map[string]struct {
		input    string
		wantLine int
	}{
		"recognized key without value": {
			input:    "Nmax = 5\ntdiv\n",
			wantLine: 2,
		},
		"two assignments on one line": {
			input:    "# header\ndt = 0.01 = 0.02\n",
			wantLine: 2,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAbstract(strings.NewReader(tc.input), recognizedKeys)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedLine)

			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr))
			assert.Equal(t, tc.wantLine, syntaxErr.Line)
		})
	}
}

func TestStripLine(t *testing.T) {
	assert.Equal(t, "Nmax=500", stripLine("  Nmax  =  500 \r\n"))
	assert.Equal(t, "a\tb", stripLine("a\tb"))
}
