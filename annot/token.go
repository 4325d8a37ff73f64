// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of SUBCOMP.
//
//  SUBCOMP is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  SUBCOMP is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with SUBCOMP.  If not, see <https://www.gnu.org/licenses/>.

package annot

// Token is a single parsed word of a sentence. Tokens are produced
// by an external dependency parser and are read-only afterwards.
// The syntactic head is stored as an index into the owning Sentence
// (the root token points to itself) so the whole tree stays a flat
// arena without any ownership between tokens.
type Token struct {
	Idx    int                 `json:"idx"`
	Form   string              `json:"form"`
	Lemma  string              `json:"lemma"`
	UPOS   string              `json:"upos"`
	Deprel string              `json:"deprel"`
	Head   int                 `json:"head"`
	Feats  map[string][]string `json:"feats,omitempty"`
}

// Feat returns all values of a morphological category
// (e.g. "Person" -> ["First"]) or nil if unmarked.
func (t *Token) Feat(name string) []string {
	return t.Feats[name]
}

// FirstFeat returns the first value of a morphological category
// or dflt if the category is unmarked. Parsers may attach multiple
// values to a single category; only the first one is authoritative
// for our purposes.
func (t *Token) FirstFeat(name, dflt string) string {
	if vals := t.Feats[name]; len(vals) > 0 {
		return vals[0]
	}
	return dflt
}

// Sentence is an ordered sequence of tokens with the head relation
// forming a rooted tree. The tree shape is an invariant guaranteed
// by the upstream parser; we do not validate it here.
type Sentence struct {
	Text   string   `json:"text"`
	Tokens []*Token `json:"tokens"`
}

func (s *Sentence) Len() int {
	return len(s.Tokens)
}

// HeadOf returns the syntactic head of tok. For the sentence root
// the token itself is returned.
func (s *Sentence) HeadOf(tok *Token) *Token {
	if tok.Head < 0 || tok.Head >= len(s.Tokens) {
		return tok
	}
	return s.Tokens[tok.Head]
}

func (s *Sentence) IsRoot(tok *Token) bool {
	return tok.Head == tok.Idx
}

// ChildrenOf returns direct syntactic dependents of tok
// in linear order.
func (s *Sentence) ChildrenOf(tok *Token) []*Token {
	ans := make([]*Token, 0, 4)
	for _, t2 := range s.Tokens {
		if t2 != tok && s.HeadOf(t2) == tok {
			ans = append(ans, t2)
		}
	}
	return ans
}

// AncestorsOf returns the chain of heads from tok's head up to the
// sentence root (root excluded from the self-loop). The walk is
// capped by the sentence length so a malformed tree cannot cycle
// forever.
func (s *Sentence) AncestorsOf(tok *Token) []*Token {
	ans := make([]*Token, 0, 8)
	curr := tok
	for i := 0; i < len(s.Tokens); i++ {
		next := s.HeadOf(curr)
		if next == curr {
			break
		}
		ans = append(ans, next)
		curr = next
	}
	return ans
}
