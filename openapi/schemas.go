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

func featuresSchema() ObjectProperty {
	return ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"tense": ObjectProperty{
				Type: "string",
				Enum: []any{"past", "present", "future", "-"},
			},
			"person": ObjectProperty{
				Type: "string",
				Enum: []any{"first", "second", "third", "-"},
			},
			"number": ObjectProperty{
				Type: "string",
				Enum: []any{"singular", "plural", "-"},
			},
			"aspect": ObjectProperty{
				Type: "string",
				Enum: []any{"pf", "ipf", "-"},
			},
		},
	}
}

func createSchemas() ObjectProperties {
	ans := make(ObjectProperties)
	ans["SentenceAnnotation"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"verb": ObjectProperty{
				Type: "string",
			},
			"text": ObjectProperty{
				Type: "string",
			},
			"annotation": ObjectProperty{
				Type: "object",
				Properties: ObjectProperties{
					"found": ObjectProperty{
						Type:        "boolean",
						Description: "Whether the target verb and its subordinate clause were found",
					},
					"negation": ObjectProperty{
						Type: "string",
						Enum: []any{"negation", "no", "-"},
					},
					"main": featuresSchema(),
					"sub":  featuresSchema(),
					"conjunction": ObjectProperty{
						Type: "string",
					},
				},
			},
		},
	}
	ans["WordAnalyses"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"word": ObjectProperty{
				Type: "string",
			},
			"analyses": ObjectProperty{
				Type: "array",
				Items: &arrayItem{
					Type: "object",
					Properties: ObjectProperties{
						"normalForm": ObjectProperty{
							Type: "string",
						},
						"tense": ObjectProperty{
							Type: "string",
						},
						"aspect": ObjectProperty{
							Type: "string",
						},
					},
				},
			},
		},
	}
	return ans
}
