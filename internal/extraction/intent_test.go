package extraction_test

import (
	"testing"

	"voiceinbox/internal/extraction"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name           string
		segment        string
		wantKind       extraction.IntentKind
		wantConfidence float64
	}{
		{
			name:           "Note phrase",
			segment:        "note that the invoice was paid",
			wantKind:       extraction.IntentNote,
			wantConfidence: 0.85,
		},
		{
			name:           "Remember that",
			segment:        "Remember that the wifi password changed",
			wantKind:       extraction.IntentNote,
			wantConfidence: 0.85,
		},
		{
			name:           "Task phrase",
			segment:        "remind me to call the dentist",
			wantKind:       extraction.IntentTask,
			wantConfidence: 0.85,
		},
		{
			name:           "I need to",
			segment:        "I need to buy milk",
			wantKind:       extraction.IntentTask,
			wantConfidence: 0.85,
		},
		{
			name:           "Task verb at start",
			segment:        "call mom about the weekend",
			wantKind:       extraction.IntentTask,
			wantConfidence: 0.7,
		},
		{
			name:           "Task verb as standalone word",
			segment:        "maybe schedule a checkup",
			wantKind:       extraction.IntentTask,
			wantConfidence: 0.7,
		},
		{
			name:           "Note phrase wins over task phrase",
			segment:        "note that i need to rest more",
			wantKind:       extraction.IntentNote,
			wantConfidence: 0.85,
		},
		{
			name:           "Task phrase wins over task verb",
			segment:        "i should call the bank",
			wantKind:       extraction.IntentTask,
			wantConfidence: 0.85,
		},
		{
			name:           "Verb embedded in another word does not count",
			segment:        "the recall happened last year",
			wantKind:       extraction.IntentNote,
			wantConfidence: 0.55,
		},
		{
			name:           "Default is a low-confidence note",
			segment:        "the sky was very clear this morning",
			wantKind:       extraction.IntentNote,
			wantConfidence: 0.55,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := extraction.ClassifyIntent(tc.segment)
			if got.Kind != tc.wantKind {
				t.Errorf("Kind = %q, want %q", got.Kind, tc.wantKind)
			}
			if got.Confidence != tc.wantConfidence {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tc.wantConfidence)
			}
		})
	}
}
