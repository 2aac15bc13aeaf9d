package loader_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/idleberg/bun-plugin-coffeescript/internal/loader"
	"github.com/idleberg/bun-plugin-coffeescript/pluginapi"
)

func TestSanitizeOptions(t *testing.T) {
	input := pluginapi.CompilerOptions{
		"bare":      true,
		"header":    false,
		"inlineMap": true,
	}

	got := loader.SanitizeOptions(input)

	want := pluginapi.CompilerOptions{
		"bare":   true,
		"header": false,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SanitizeOptions() mismatch (-want +got):\n%s", diff)
	}
}

func TestSanitizeOptions_InputUntouched(t *testing.T) {
	input := pluginapi.CompilerOptions{"inlineMap": true, "bare": true}

	_ = loader.SanitizeOptions(input)

	if len(input) != 2 {
		t.Errorf("SanitizeOptions() mutated its input: %v", input)
	}
	if _, ok := input["inlineMap"]; !ok {
		t.Error("SanitizeOptions() removed inlineMap from its input")
	}
}

func TestSanitizeOptions_UnknownKeysSurvive(t *testing.T) {
	input := pluginapi.CompilerOptions{"inlineMap": false, "sourceMap": true, "filename": "x.coffee"}

	got := loader.SanitizeOptions(input)

	want := pluginapi.CompilerOptions{"sourceMap": true, "filename": "x.coffee"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SanitizeOptions() mismatch (-want +got):\n%s", diff)
	}
}

func TestSanitizeOptions_Empty(t *testing.T) {
	got := loader.SanitizeOptions(nil)
	if got == nil {
		t.Fatal("SanitizeOptions(nil) = nil, want empty bag")
	}
	if len(got) != 0 {
		t.Errorf("SanitizeOptions(nil) = %v, want empty bag", got)
	}
}
