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

package openapi

func jsonResponse(description string, schema ObjectProperty) MethodResponses {
	return MethodResponses{
		200: MethodResponse{
			Description: description,
			Content: map[string]MethodResponseContent{
				"application/json": {
					Schema: MethodResponseSchema{
						Type:       schema.Type,
						Properties: schema.Properties,
					},
				},
			},
		},
	}
}

func NewResponse(ver, url string) *APIResponse {
	schemas := createSchemas()
	paths := make(map[string]Methods)

	paths["/annotate"] = Methods{
		Get: &Method{
			Description: "Parse a sentence and annotate the relation between the target verb and the predicate of its subordinate clause (negation, tense, subject person and number, aspect, linking conjunction).",
			OperationID: "AnnotateSentence",
			Parameters: []Parameter{
				{
					Name:        "verb",
					In:          "query",
					Description: "Lemma of the target verb",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
				{
					Name:        "text",
					In:          "query",
					Description: "The sentence to annotate",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
			},
			Responses: jsonResponse(
				"Annotation of the sentence. Values unresolvable from the sentence are `-`.",
				schemas["SentenceAnnotation"],
			),
		},
	}

	paths["/analyze"] = Methods{
		Get: &Method{
			Description: "Morphological analysis of a single word as provided by the backing linguistic service. Analyses are sorted by their estimated probability.",
			OperationID: "AnalyzeWord",
			Parameters: []Parameter{
				{
					Name:        "word",
					In:          "query",
					Description: "The word to analyze",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
			},
			Responses: jsonResponse(
				"Morphological analyses of the word",
				schemas["WordAnalyses"],
			),
		},
	}

	return &APIResponse{
		OpenAPI: "3.1.0",
		Info: Info{
			Title:       "SUBCOMP - annotate verb complementation",
			Description: "Annotates sentences with grammatical properties of a target verb and the predicate of its subordinate clause",
			Version:     ver,
		},
		Servers: []Server{
			{URL: url},
		},
		Paths: paths,
	}
}
