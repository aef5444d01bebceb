package entsent

import (
	"errors"
	"testing"
)

func TestNormalizeSentiment(t *testing.T) {
	expected := map[int]Polarity{1: Negative, 2: Negative, 3: Neutral, 4: Positive, 5: Positive}
	for rating, label := range expected {
		if got := NormalizeSentiment(rating); got != label {
			t.Errorf("Rating %d: expected %s, got %s", rating, label, got)
		}
	}
}

func TestPunctuationPredicates(t *testing.T) {
	sents := []Sentence{sentence(0, "Really", "?"), sentence(9, "Yes", ".")}
	if !HasQuestion(sents) {
		t.Error("Expected a question mark")
	}
	if HasExclaim(sents) {
		t.Error("Did not expect an exclamation mark")
	}
	if HasQuestion(nil) || HasExclaim(nil) {
		t.Error("Empty context has no punctuation")
	}
}

func TestFeatures(t *testing.T) {
	// "John is great ! Is John bad ?"
	doc := NewDocumentFromSentences("7", "John is great ! Is John bad ?", English, []Sentence{
		sentence(0, "John", "is", "great", "!"),
		sentence(16, "Is", "John", "bad", "?"),
	})
	e := Entity{
		ID:       "3",
		Name:     "John",
		Type:     PersonEntity,
		Mentions: []Span{{0, 4}, {19, 23}},
		Rating:   4,
	}

	eng := newTestEngine(setStopwords{"is": true})
	rec, err := eng.Features(e, doc)
	if err != nil {
		t.Fatalf("Features failed: %v", err)
	}

	expected := FeatureRecord{
		ID:          "7-3",
		Name:        "John",
		Type:        PersonEntity,
		Context:     "John is great ! Is John bad ?",
		IsPerson:    true,
		IsSubObj:    false,
		HasQuestion: true,
		HasExclaim:  true,
		NumPos:      1,
		NumNeg:      1,
		PosVsNeg:    1,
		Len:         2,
		Min:         -1,
		Max:         1,
		Avg:         0,
		Var:         2,
		Sentiment:   Positive,
	}
	if rec != expected {
		t.Errorf("Unexpected record:\nexpected %+v\ngot      %+v", expected, rec)
	}
}

func TestFeaturesErrors(t *testing.T) {
	doc := NewDocumentFromSentences("1", "Janez Novak is great", English, []Sentence{
		sentence(0, "Janez", "Novak", "is", "great"),
	})
	eng := newTestEngine(nil)

	multiWord := Entity{ID: "1", Name: "Janez Novak", Type: PersonEntity, Mentions: []Span{{0, 11}}, Rating: 5}
	if _, err := eng.Features(multiWord, doc); !errors.Is(err, ErrNoScorableMentions) {
		t.Errorf("Expected ErrNoScorableMentions, got %v", err)
	}

	unrated := Entity{ID: "2", Name: "Janez", Type: PersonEntity, Mentions: []Span{{0, 5}}}
	if _, err := eng.Features(unrated, doc); !errors.Is(err, ErrUnscorableEntity) {
		t.Errorf("Expected ErrUnscorableEntity, got %v", err)
	}

	untyped := Entity{ID: "3", Name: "Janez", Mentions: []Span{{0, 5}}, Rating: 3}
	if _, err := eng.Features(untyped, doc); !errors.Is(err, ErrUnscorableEntity) {
		t.Errorf("Expected ErrUnscorableEntity, got %v", err)
	}

	foreign := NewDocumentFromSentences("2", "Janez", Language("xx"), []Sentence{sentence(0, "Janez")})
	rated := Entity{ID: "4", Name: "Janez", Type: PersonEntity, Mentions: []Span{{0, 5}}, Rating: 3}
	if _, err := eng.Features(rated, foreign); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("Expected ErrUnsupportedLanguage, got %v", err)
	}
}

func TestFeaturesOrganization(t *testing.T) {
	doc := NewDocumentFromSentences("9", "Acme is bad", English, []Sentence{
		sentence(0, "Acme", "is", "bad"),
	})
	e := Entity{ID: "1", Name: "Acme", Type: OrganizationEntity, Mentions: []Span{{0, 4}}, Rating: 1}

	rec, err := newTestEngine(nil).Features(e, doc)
	if err != nil {
		t.Fatalf("Features failed: %v", err)
	}
	if rec.IsPerson || !rec.IsSubObj {
		t.Errorf("Expected a non-person subject, got is_person=%v is_sub_obj=%v", rec.IsPerson, rec.IsSubObj)
	}
	if rec.Sentiment != Negative || rec.Avg != -1 || rec.PosVsNeg != 0.5 {
		t.Errorf("Unexpected record: %+v", rec)
	}
}
