package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer

	err := PrintJSON(&buf, map[string]int{"total_products": 6})
	if err != nil {
		t.Fatalf("PrintJSON: %v", err)
	}

	want := "{\n\t\"total_products\": 6\n}\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrintJSONUnsupportedValue(t *testing.T) {
	var buf bytes.Buffer

	err := PrintJSON(&buf, map[string]any{"fn": func() {}})
	if err == nil || !strings.Contains(err.Error(), "marshalling json") {
		t.Fatalf("err = %v, want marshalling error", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("wrote %q on failure", buf.String())
	}
}
