package classifier

import (
	"reflect"
	"testing"

	"campus-assistant/internal/agent"
)

func newTestClassifier() *Classifier {
	return New(agent.Profiles())
}

func TestClassify_EmailOnlyKeywords(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify("compose draft email professor")
	if res.Kind != agent.KindEmail {
		t.Fatalf("Kind = %q, want email", res.Kind)
	}
	if res.Confidence <= 0 {
		t.Errorf("Confidence = %f, want > 0", res.Confidence)
	}
}

func TestClassify_ComposeEmailToProfessor(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify("Help me compose a professional email to my professor")
	if res.Kind != agent.KindEmail {
		t.Fatalf("Kind = %q, want email", res.Kind)
	}

	want := map[string]bool{"compose": true, "email": true, "professor": true}
	got := map[string]bool{}
	for _, k := range res.MatchedKeywords {
		got[k] = true
	}
	for k := range want {
		if !got[k] {
			t.Errorf("matched keywords missing %q: %v", k, res.MatchedKeywords)
		}
	}
	// "help" is not in the email bag; matched keywords come from the winner only
	if got["help"] {
		t.Errorf("matched keywords should not include tokens outside the winner's bag: %v", res.MatchedKeywords)
	}
}

func TestClassify_DegenerateInputRoutesToGeneral(t *testing.T) {
	c := newTestClassifier()

	for _, msg := range []string{"", "   ", "\t\n", "日本語のメッセージ", "zzzz qqqq xxxx"} {
		res := c.Classify(msg)
		if res.Kind != agent.KindGeneral {
			t.Errorf("Classify(%q).Kind = %q, want general", msg, res.Kind)
		}
		if res.Confidence != 0 {
			t.Errorf("Classify(%q).Confidence = %f, want 0", msg, res.Confidence)
		}
		if len(res.MatchedKeywords) != 0 {
			t.Errorf("Classify(%q) matched keywords = %v, want none", msg, res.MatchedKeywords)
		}
	}
}

func TestClassify_PriorityBiasBreaksNearTies(t *testing.T) {
	c := newTestClassifier()

	// "information" appears in both the redirect and general bags. The
	// smaller general bag gives it the higher raw cosine, but the
	// priority adjustment routes the ambiguity to the specialized agent.
	res := c.Classify("information")
	if res.Kind != agent.KindRedirect {
		t.Fatalf("Kind = %q, want redirect", res.Kind)
	}
}

func TestClassify_AlternativesBounded(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify("research paper citation methodology")
	if res.Kind != agent.KindResearch {
		t.Fatalf("Kind = %q, want research", res.Kind)
	}
	if len(res.Alternatives) > 2 {
		t.Errorf("got %d alternatives, want at most 2", len(res.Alternatives))
	}
	for _, alt := range res.Alternatives {
		if alt.Kind == res.Kind {
			t.Errorf("winner repeated in alternatives: %v", res.Alternatives)
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := newTestClassifier()

	first := c.Classify("where can I find the library building")
	for i := 0; i < 10; i++ {
		again := c.Classify("where can I find the library building")
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("classification not deterministic:\nfirst %+v\nagain %+v", first, again)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("Hello, World! e-mail 123")
	want := []string{"hello", "world", "e", "mail", "123"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenize = %v, want %v", got, want)
	}
}
