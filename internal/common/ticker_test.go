package common

import "testing"

func TestParseTicker(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantExchange string
		wantCode     string
	}{
		{
			name:         "colon separated",
			input:        "NYSE:XOM",
			wantExchange: "NYSE",
			wantCode:     "XOM",
		},
		{
			name:         "dot separated known exchange",
			input:        "NASDAQ.FANG",
			wantExchange: "NASDAQ",
			wantCode:     "FANG",
		},
		{
			name:         "bare code uses default exchange",
			input:        "XOM",
			wantExchange: "NYSE",
			wantCode:     "XOM",
		},
		{
			name:         "lowercase normalized",
			input:        "fang",
			wantExchange: "NYSE",
			wantCode:     "FANG",
		},
		{
			name:         "lowercase with exchange",
			input:        "asx:sto",
			wantExchange: "ASX",
			wantCode:     "STO",
		},
		{
			name:         "whitespace trimmed",
			input:        "  XOM  ",
			wantExchange: "NYSE",
			wantCode:     "XOM",
		},
		{
			name:         "empty string",
			input:        "",
			wantExchange: "",
			wantCode:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTicker(tt.input)
			if got.Exchange != tt.wantExchange {
				t.Errorf("ParseTicker(%q).Exchange = %q, want %q", tt.input, got.Exchange, tt.wantExchange)
			}
			if got.Code != tt.wantCode {
				t.Errorf("ParseTicker(%q).Code = %q, want %q", tt.input, got.Code, tt.wantCode)
			}
		})
	}
}

func TestEODHDSymbol(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "NYSE maps to US", input: "NYSE:XOM", want: "XOM.US"},
		{name: "NASDAQ maps to US", input: "NASDAQ:FANG", want: "FANG.US"},
		{name: "ASX maps to AU", input: "ASX:STO", want: "STO.AU"},
		{name: "unknown exchange defaults to US", input: "FOO:BAR", want: "BAR.US"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseTicker(tt.input).EODHDSymbol(); got != tt.want {
				t.Errorf("EODHDSymbol() = %q, want %q", got, tt.want)
			}
		})
	}
}
