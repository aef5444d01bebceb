package webanno

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/entsent"
)

const sample = "#FORMAT=WebAnno TSV 3.2\n" +
	"#Text=Janez je dober. Vlada RS in Janez.\n" +
	"1-1\t0-5\tJanez\tPER\t4\t*->1-1\n" +
	"1-2\t6-8\tje\t_\t_\t_\n" +
	"1-3\t9-14\tdober\t_\t_\t_\n" +
	"1-4\t14-15\t.\t_\t_\t_\n" +
	"\n" +
	"2-1\t16-21\tVlada\tORG[2]\t2[2]\t_\n" +
	"2-2\t22-24\tRS\tORG[2]\t2[2]\t_\n" +
	"2-3\t25-27\tin\t_\t_\t_\n" +
	"2-4\t28-33\tJanez\tPER\t_\t*->1-2\n" +
	"2-5\t33-34\t.\t_\t_\t_\n"

func TestParse(t *testing.T) {
	file, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if file.Text != "Janez je dober. Vlada RS in Janez." {
		t.Errorf("Unexpected text %q", file.Text)
	}
	if len(file.Tokens) != 9 {
		t.Fatalf("Expected 9 tokens, got %d", len(file.Tokens))
	}
	tok := file.Tokens[4]
	if tok.ID != "2-1" || tok.Text != "Vlada" || tok.Span != (entsent.Span{Start: 16, End: 21}) {
		t.Errorf("Unexpected token %+v", tok)
	}
}

func TestEntities(t *testing.T) {
	file, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := []entsent.Entity{
		{
			ID:       "1",
			Name:     "Janez",
			Type:     entsent.PersonEntity,
			Mentions: []entsent.Span{{Start: 0, End: 5}, {Start: 28, End: 33}},
			Rating:   4,
		},
		{
			ID:       "m2",
			Name:     "Vlada RS",
			Type:     entsent.OrganizationEntity,
			Mentions: []entsent.Span{{Start: 16, End: 24}},
			Rating:   2,
		},
	}
	if got := file.Entities(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Unexpected entities:\nexpected %+v\ngot      %+v", expected, got)
	}
}

func TestEntitiesStackedAnnotations(t *testing.T) {
	doc := "#Text=Žiga Novak\n" +
		"1-1\t0-4\tŽiga\tPER[1]|PER\t3[1]|5\t*->1-1|*->2-1\n" +
		"1-2\t5-10\tNovak\tPER[1]\t3[1]\t*->1-1\n"
	file, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	entities := file.Entities()
	if len(entities) != 2 {
		t.Fatalf("Expected 2 entities, got %+v", entities)
	}
	full, first := entities[0], entities[1]
	if full.ID != "1" || full.Name != "Žiga Novak" || full.Rating != 3 {
		t.Errorf("Unexpected full-name entity %+v", full)
	}
	if first.ID != "2" || first.Name != "Žiga" || first.Rating != 5 {
		t.Errorf("Unexpected first-name entity %+v", first)
	}
}

func TestEntitiesWithoutRating(t *testing.T) {
	doc := "#Text=Bob ran.\n" +
		"1-1\t0-3\tBob\tMISC\t_\t_\n" +
		"1-2\t4-7\tran\t_\t_\t_\n"
	file, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	entities := file.Entities()
	if len(entities) != 1 || entities[0].Scorable() {
		t.Errorf("Expected one unscorable entity, got %+v", entities)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"No text":          "1-1\t0-5\tJanez\t_\t_\t_\n",
		"Short row":        "#Text=Janez\n1-1\t0-5\n",
		"Bad offsets":      "#Text=Janez\n1-1\t0+5\tJanez\t_\t_\t_\n",
		"Inverted offsets": "#Text=Janez\n1-1\t5-0\tJanez\t_\t_\t_\n",
	}
	for desc, doc := range tests {
		if _, err := Parse(strings.NewReader(doc)); err == nil {
			t.Errorf("%s: expected an error", desc)
		}
	}
}

func TestParseMultipleTextLines(t *testing.T) {
	doc := "#Text=Prvi stavek.\n#Text=Drugi stavek.\n"
	file, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if file.Text != "Prvi stavek.\nDrugi stavek." {
		t.Errorf("Unexpected text %q", file.Text)
	}
}

func TestParseRating(t *testing.T) {
	tests := map[string]int{
		"4":                 4,
		"5 - very positive": 5,
		" 1":                1,
		"positive":          0,
		"":                  0,
	}
	for label, expected := range tests {
		if got := parseRating(label); got != expected {
			t.Errorf("parseRating(%q): expected %d, got %d", label, expected, got)
		}
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1.tsv")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	file, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(file.Entities()) != 2 {
		t.Errorf("Expected 2 entities, got %d", len(file.Entities()))
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.tsv")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
