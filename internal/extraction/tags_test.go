package extraction_test

import (
	"reflect"
	"testing"

	"voiceinbox/internal/extraction"
)

func TestInferTags(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		want    []string
	}{
		{
			name:    "Shopping via buy",
			segment: "I need to buy milk",
			want:    []string{"shopping"},
		},
		{
			name:    "Finance via invoice",
			segment: "note that the invoice was paid",
			want:    []string{"finance"},
		},
		{
			name:    "Health via dentist",
			segment: "call the dentist tomorrow",
			want:    []string{"health"},
		},
		{
			name:    "Multiple tags in table order",
			segment: "pay the gym bill from home",
			want:    []string{"home", "health", "finance"},
		},
		{
			name:    "Work keywords",
			segment: "prepare for the project meeting at the office",
			want:    []string{"work"},
		},
		{
			name:    "No match is absent not empty",
			segment: "call mom",
			want:    nil,
		},
		{
			name:    "Case-insensitive",
			segment: "Buy GROCERIES",
			want:    []string{"shopping"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := extraction.InferTags(tc.segment)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("InferTags(%q) = %v, want %v", tc.segment, got, tc.want)
			}
		})
	}
}

func TestInferTagsNoDuplicates(t *testing.T) {
	// Several shopping keywords in one segment still yield the tag once.
	got := extraction.InferTags("buy the shopping list groceries order")

	seen := map[string]bool{}
	for _, tag := range got {
		if seen[tag] {
			t.Fatalf("duplicate tag %q in %v", tag, got)
		}
		seen[tag] = true
	}
}
