// Package webanno reads documents and entity annotations from WebAnno TSV
// files.
//
// A file holds one or more "#Text=" lines followed by token rows:
//
//	#Text=John is great.
//	1-1	0-4	John	PER[1]	5[1]	*->1-1
//	1-2	5-7	is	_	_	_
//
// The columns after the token are the named-entity layer, the entity
// sentiment layer and the coreference layer. Cells hold '_' when empty and
// stack several annotations with '|'. A "[n]" suffix ties the rows of a
// multi-token mention together.
package webanno

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/entsent"
)

const (
	colID = iota
	colOffsets
	colToken
	colNER
	colSentiment
	colCoref
)

// A Token is one token row of a WebAnno TSV file.
type Token struct {
	ID    string      // Sentence and token number, e.g. "1-3"
	Span  entsent.Span
	Text  string
	Cells []string // Annotation cells after the token column
}

// A File is a parsed WebAnno TSV file.
type File struct {
	Text   string
	Tokens []Token
}

// ReadFile parses the WebAnno TSV file at path.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Parse reads a WebAnno TSV document from r.
func Parse(r io.Reader) (*File, error) {
	var (
		file  File
		texts []string
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		switch {
		case strings.HasPrefix(line, "#Text="):
			texts = append(texts, strings.TrimPrefix(line, "#Text="))
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		default:
			tok, err := parseToken(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			file.Tokens = append(file.Tokens, tok)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("no #Text= line")
	}

	file.Text = strings.Join(texts, "\n")
	return &file, nil
}

func parseToken(line string) (Token, error) {
	cols := strings.Split(line, "\t")
	if len(cols) < 3 {
		return Token{}, fmt.Errorf("expected at least 3 columns, got %d", len(cols))
	}

	begin, end, ok := strings.Cut(cols[colOffsets], "-")
	if !ok {
		return Token{}, fmt.Errorf("malformed offsets %q", cols[colOffsets])
	}
	start, err := strconv.Atoi(begin)
	if err != nil {
		return Token{}, fmt.Errorf("malformed offsets %q: %w", cols[colOffsets], err)
	}
	stop, err := strconv.Atoi(end)
	if err != nil {
		return Token{}, fmt.Errorf("malformed offsets %q: %w", cols[colOffsets], err)
	}
	span := entsent.Span{Start: start, End: stop}
	if !span.Valid() {
		return Token{}, fmt.Errorf("offsets %q end before they start", cols[colOffsets])
	}

	return Token{
		ID:    cols[colID],
		Span:  span,
		Text:  cols[colToken],
		Cells: cols[colNER:],
	}, nil
}

// cell returns the annotation cell at column col, or "" when absent.
func (t Token) cell(col int) string {
	if i := col - colNER; i < len(t.Cells) {
		return t.Cells[i]
	}
	return ""
}

// An annotation is one '|' separated entry of a cell.
type annotation struct {
	Label string
	Key   string // Disambiguator between brackets, "" for single tokens
}

func parseCell(cell string) []annotation {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == "_" {
		return nil
	}
	var anns []annotation
	for _, entry := range strings.Split(cell, "|") {
		var ann annotation
		if open := strings.LastIndex(entry, "["); open >= 0 && strings.HasSuffix(entry, "]") {
			ann.Label = entry[:open]
			ann.Key = entry[open+1 : len(entry)-1]
		} else {
			ann.Label = entry
		}
		if ann.Label == "_" || ann.Label == "*" {
			ann.Label = ""
		}
		anns = append(anns, ann)
	}
	return anns
}

// parseRating returns the leading integer of a sentiment label such as
// "4 - positive".
func parseRating(label string) int {
	label = strings.TrimSpace(label)
	end := 0
	for end < len(label) && label[end] >= '0' && label[end] <= '9' {
		end++
	}
	rating, err := strconv.Atoi(label[:end])
	if err != nil {
		return 0
	}
	return rating
}

// parseChain returns the chain number of a coreference entry such as
// "*->3-1" or "3-1".
func parseChain(label string) string {
	label = label[strings.LastIndex(label, ">")+1:]
	chain, _, _ := strings.Cut(label, "-")
	if _, err := strconv.Atoi(chain); err != nil {
		return ""
	}
	return chain
}

type mention struct {
	key    string
	span   entsent.Span
	label  string
	rating int
	chain  string
}

// mentions collects the named-entity mentions of the file in document
// order, merging the rows of multi-token mentions.
func (f *File) mentions() []*mention {
	var (
		order []*mention
		byKey = make(map[string]*mention)
	)
	for _, tok := range f.Tokens {
		ners := parseCell(tok.cell(colNER))
		sentiments := parseCell(tok.cell(colSentiment))
		corefs := parseCell(tok.cell(colCoref))

		for i, ner := range ners {
			key := "m" + ner.Key
			if ner.Key == "" {
				key = fmt.Sprintf("t%s.%d", tok.ID, i)
			}

			m, seen := byKey[key]
			if !seen {
				m = &mention{key: key, span: tok.Span, label: ner.Label}
				byKey[key] = m
				order = append(order, m)
			}
			m.span.End = max(m.span.End, tok.Span.End)
			if m.label == "" {
				m.label = ner.Label
			}
			if s, ok := matchAnnotation(sentiments, ner.Key, i); ok && m.rating == 0 {
				m.rating = parseRating(s.Label)
			}
			if c, ok := matchAnnotation(corefs, ner.Key, i); ok && m.chain == "" {
				m.chain = parseChain(c.Label)
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].span.Start < order[j].span.Start
	})
	return order
}

// matchAnnotation finds the entry of another layer that belongs to the
// named-entity entry with the given key, falling back to its position.
func matchAnnotation(anns []annotation, key string, pos int) (annotation, bool) {
	if key != "" {
		for _, a := range anns {
			if a.Key == key {
				return a, true
			}
		}
	}
	if pos < len(anns) {
		return anns[pos], true
	}
	return annotation{}, false
}

// Entities groups the file's mentions into entities by coreference chain.
// Mentions outside any chain form an entity of their own. Entities are
// ordered by their first mention; an entity's name is the text of that
// mention, its type and rating come from the first mention carrying them.
func (f *File) Entities() []entsent.Entity {
	var (
		order []string
		byID  = make(map[string]*entsent.Entity)
	)
	for _, m := range f.mentions() {
		id := m.chain
		if id == "" {
			id = m.key
		}

		e, seen := byID[id]
		if !seen {
			e = &entsent.Entity{ID: id, Name: f.substring(m.span)}
			byID[id] = e
			order = append(order, id)
		}
		e.Mentions = append(e.Mentions, m.span)
		if e.Type == "" && m.label != "" {
			e.Type = entsent.EntityType(m.label)
		}
		if e.Rating == 0 {
			e.Rating = m.rating
		}
	}

	entities := make([]entsent.Entity, 0, len(order))
	for _, id := range order {
		entities = append(entities, *byID[id])
	}
	return entities
}

// substring returns the text covered by a rune span.
func (f *File) substring(span entsent.Span) string {
	start, end := -1, len(f.Text)
	runeIdx := 0
	for byteIdx := range f.Text {
		if runeIdx == span.Start {
			start = byteIdx
		}
		if runeIdx == span.End {
			end = byteIdx
			break
		}
		runeIdx++
	}
	if start < 0 {
		if span.Start != utf8.RuneCountInString(f.Text) {
			return ""
		}
		start = len(f.Text)
	}
	return f.Text[start:end]
}
