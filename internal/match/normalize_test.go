package match

import "testing"

func TestKey(t *testing.T) {
	cases := map[string]string{
		"Región Metropolitana":  "regionmetropolitana",
		" region-metropolitana": "regionmetropolitana",
		"Operador Logístico":    "operadorlogistico",
		"L/XL":                  "lxl",
		"Súper Grande":          "supergrande",
		"":                      "",
	}
	for input, want := range cases {
		if got := Key(input); got != want {
			t.Fatalf("Key(%q) = %q, want %q", input, got, want)
		}
	}
}
