package keywords

import (
	"github.com/msto63/strkw/foundation/utils/stringx"
)

// Keyword families
const (
	FamilyLines     = "Line access"
	FamilyFilter    = "Line filtering"
	FamilyTransform = "Transformation"
	FamilyCase      = "Case assertions"
)

var (
	paramString = Parameter{Name: "string", Kind: KindString, Required: true, Description: "Input text"}
	paramMsg    = Parameter{Name: "msg", Kind: KindString, Description: "Message replacing the default failure message"}
	paramIgnore = Parameter{Name: "case_insensitive", Kind: KindBool, Default: "False", Description: "Lowercase both sides before comparing"}
	paramCount  = Parameter{Name: "count", Kind: KindInteger, Default: "-1", Description: "Maximum replacements, negative for all"}
	paramSep    = Parameter{Name: "separator", Kind: KindString, Description: "Separator, whitespace when not given"}
	paramMax    = Parameter{Name: "max_split", Kind: KindInteger, Default: "-1", Description: "Maximum splits, negative for all"}
	paramMarker = Parameter{Name: "marker", Kind: KindString, Required: true, Description: "Literal marker"}
)

// Builtins returns the definitions of the string keywords
func Builtins() []*Definition {
	return []*Definition{
		{
			Name:        "Get Line Count",
			Alias:       "line_count",
			Family:      FamilyLines,
			Description: "Returns the number of lines in the string.",
			Parameters:  []Parameter{paramString},
			Returns:     "integer",
			Examples:    []string{`Get Line Count    ${text}`},
			Handler: func(lib *stringx.Library, a Args) (interface{}, error) {
				return lib.LineCount(a.String("string")), nil
			},
		},
		{
			Name:        "Split To Lines",
			Alias:       "lines_in_range",
			Family:      FamilyLines,
			Description: "Splits the string to lines and returns the half-open range [start, end).",
			Parameters: []Parameter{
				paramString,
				{Name: "start", Kind: KindIndex, Default: "0", Description: "First line, negative counts from the end"},
				{Name: "end", Kind: KindIndex, Description: "Line after the last one returned"},
			},
			Returns:  "list",
			Examples: []string{`Split To Lines    ${text}    1    -1`},
			Handler: func(lib *stringx.Library, a Args) (interface{}, error) {
				return lib.LinesInRange(a.String("string"), a.Index("start"), a.Index("end")), nil
			},
		},
		{
			Name:        "Get Line",
			Alias:       "line_at",
			Family:      FamilyLines,
			Description: "Returns the line at line_number. Negative numbers count from the end.",
			Parameters: []Parameter{
				paramString,
				{Name: "line_number", Kind: KindInteger, Required: true, Description: "Zero-based line index"},
			},
			Returns:  "string",
			Examples: []string{`Get Line    ${text}    -1`},
			Handler: func(lib *stringx.Library, a Args) (interface{}, error) {
				return lib.LineAt(a.String("string"), a.Int("line_number"))
			},
		},
		{
			Name:        "Get Lines Containing String",
			Alias:       "lines_containing",
			Family:      FamilyFilter,
			Description: "Returns the lines containing pattern, joined with newlines.",
			Parameters: []Parameter{
				paramString,
				{Name: "pattern", Kind: KindString, Required: true, Description: "Literal substring"},
				paramIgnore,
			},
			Returns:  "string",
			Examples: []string{`Get Lines Containing String    ${log}    error    case_insensitive=yes`},
			Handler: func(lib *stringx.Library, a Args) (interface{}, error) {
				return lib.LinesContaining(a.String("string"), a.String("pattern"), a.Bool("case_insensitive")), nil
			},
		},
		{
			Name:        "Get Lines Matching Pattern",
			Alias:       "lines_matching_glob",
			Family:      FamilyFilter,
			Description: "Returns the lines fully matching the glob pattern, joined with newlines.",
			Parameters: []Parameter{
				paramString,
				{Name: "pattern", Kind: KindString, Required: true, Description: "Glob with *, ?, [chars] and [!chars]"},
				paramIgnore,
			},
			Returns:  "string",
			Examples: []string{`Get Lines Matching Pattern    ${files}    *.txt`},
			Handler: func(lib *stringx.Library, a Args) (interface{}, error) {
				return lib.LinesMatchingGlob(a.String("string"), a.String("pattern"), a.Bool("case_insensitive"))
			},
		},
		{
			Name:        "Get Lines Matching Regexp",
			Alias:       "lines_matching_regex",
			Family:      FamilyFilter,
			Description: "Returns the lines fully matching the regular expression, joined with newlines.",
			Parameters: []Parameter{
				paramString,
				{Name: "pattern", Kind: KindString, Required: true, Description: "Regular expression, (?i) for case-insensitive"},
			},
			Returns:  "string",
			Examples: []string{`Get Lines Matching Regexp    ${log}    (?i)warn.*`},
			Handler: func(lib *stringx.Library, a Args) (interface{}, error) {
				return lib.LinesMatchingRegex(a.String("string"), a.String("pattern"))
			},
		},
		{
			Name:        "Replace String",
			Alias:       "replace_literal",
			Family:      FamilyTransform,
			Description: "Replaces search_for with replace_with, at most count times.",
			Parameters: []Parameter{
				paramString,
				{Name: "search_for", Kind: KindString, Required: true, Description: "Literal text to replace"},
				{Name: "replace_with", Kind: KindString, Required: true, Description: "Replacement text"},
				paramCount,
			},
			Returns:  "string",
			Examples: []string{`Replace String    aaa    a    b    count=2`},
			Handler: func(lib *stringx.Library, a Args) (interface{}, error) {
				return lib.Replace(a.String("string"), a.String("search_for"), a.String("replace_with"), a.Int("count")), nil
			},
		},
		{
			Name:        "Replace String Using Regexp",
			Alias:       "replace_regex",
			Family:      FamilyTransform,
			Description: "Replaces matches of pattern with replace_with, at most count times.",
			Parameters: []Parameter{
				paramString,
				{Name: "pattern", Kind: KindString, Required: true, Description: "Regular expression"},
				{Name: "replace_with", Kind: KindString, Required: true, Description: `Replacement, groups as \1 or \g<name>`},
				paramCount,
			},
			Returns:  "string",
			Examples: []string{`Replace String Using Regexp    ${date}    (\d+)-(\d+)    \2-\1`},
			Handler: func(lib *stringx.Library, a Args) (interface{}, error) {
				return lib.ReplaceRegex(a.String("string"), a.String("pattern"), a.String("replace_with"), a.Int("count"))
			},
		},
		{
			Name:        "Split String",
			Alias:       "split",
			Family:      FamilyTransform,
			Description: "Splits the string around separator from the left.",
			Parameters:  []Parameter{paramString, paramSep, paramMax},
			Returns:     "list",
			Examples:    []string{`Split String    a-b-c    -    max_split=1`},
			Handler: func(lib *stringx.Library, a Args) (interface{}, error) {
				return lib.Split(a.String("string"), a.String("separator"), a.Int("max_split")), nil
			},
		},
		{
			Name:        "Split String From Right",
			Alias:       "split_from_right",
			Family:      FamilyTransform,
			Description: "Splits the string around separator from the right.",
			Parameters:  []Parameter{paramString, paramSep, paramMax},
			Returns:     "list",
			Examples:    []string{`Split String From Right    a-b-c-d    -    1`},
			Handler: func(lib *stringx.Library, a Args) (interface{}, error) {
				return lib.SplitFromRight(a.String("string"), a.String("separator"), a.Int("max_split")), nil
			},
		},
		{
			Name:        "Split String To Characters",
			Alias:       "split_to_characters",
			Family:      FamilyTransform,
			Description: "Splits the string into its characters.",
			Parameters:  []Parameter{paramString},
			Returns:     "list",
			Examples:    []string{`Split String To Characters    abc`},
			Handler: func(lib *stringx.Library, a Args) (interface{}, error) {
				return lib.SplitToCharacters(a.String("string")), nil
			},
		},
		{
			Name:        "Get Substring",
			Alias:       "substring",
			Family:      FamilyTransform,
			Description: "Returns the characters in the half-open range [start, end).",
			Parameters: []Parameter{
				paramString,
				{Name: "start", Kind: KindIndex, Required: true, Description: "First character, negative counts from the end"},
				{Name: "end", Kind: KindIndex, Description: "Character after the last one returned"},
			},
			Returns:  "string",
			Examples: []string{`Get Substring    abcdef    -2`},
			Handler: func(lib *stringx.Library, a Args) (interface{}, error) {
				return lib.Substring(a.String("string"), a.Index("start"), a.Index("end")), nil
			},
		},
		{
			Name:        "Fetch From Left",
			Alias:       "fetch_before",
			Family:      FamilyTransform,
			Description: "Returns the text before the first occurrence of marker.",
			Parameters:  []Parameter{paramString, paramMarker},
			Returns:     "string",
			Examples:    []string{`Fetch From Left    key=value    =`},
			Handler: func(lib *stringx.Library, a Args) (interface{}, error) {
				return lib.FetchBefore(a.String("string"), a.String("marker"))
			},
		},
		{
			Name:        "Fetch From Right",
			Alias:       "fetch_after",
			Family:      FamilyTransform,
			Description: "Returns the text after the last occurrence of marker.",
			Parameters:  []Parameter{paramString, paramMarker},
			Returns:     "string",
			Examples:    []string{`Fetch From Right    key=value    =`},
			Handler: func(lib *stringx.Library, a Args) (interface{}, error) {
				return lib.FetchAfter(a.String("string"), a.String("marker"))
			},
		},
		{
			Name:        "Should Be Lowercase",
			Alias:       "assert_lowercase",
			Family:      FamilyCase,
			Description: "Fails unless the string is lowercase.",
			Parameters:  []Parameter{paramString, paramMsg},
			Examples:    []string{`Should Be Lowercase    ${name}`},
			Handler: func(lib *stringx.Library, a Args) (interface{}, error) {
				return nil, lib.AssertLowercase(a.String("string"), a.String("msg"))
			},
		},
		{
			Name:        "Should Be Uppercase",
			Alias:       "assert_uppercase",
			Family:      FamilyCase,
			Description: "Fails unless the string is uppercase.",
			Parameters:  []Parameter{paramString, paramMsg},
			Examples:    []string{`Should Be Uppercase    ${code}`},
			Handler: func(lib *stringx.Library, a Args) (interface{}, error) {
				return nil, lib.AssertUppercase(a.String("string"), a.String("msg"))
			},
		},
		{
			Name:        "Should Be Titlecase",
			Alias:       "assert_titlecase",
			Family:      FamilyCase,
			Description: "Fails unless the string is titlecase.",
			Parameters:  []Parameter{paramString, paramMsg},
			Examples:    []string{`Should Be Titlecase    ${heading}`},
			Handler: func(lib *stringx.Library, a Args) (interface{}, error) {
				return nil, lib.AssertTitlecase(a.String("string"), a.String("msg"))
			},
		},
	}
}
