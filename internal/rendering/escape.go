// Package rendering lays out a tailored resume as Markdown, plain text or LaTeX.
package rendering

import "strings"

// latexEscapes maps LaTeX special characters to their escaped form
var latexEscapes = map[rune]string{
	'\\': `\textbackslash{}`,
	'{':  `\{`,
	'}':  `\}`,
	'$':  `\$`,
	'&':  `\&`,
	'%':  `\%`,
	'#':  `\#`,
	'^':  `\textasciicircum{}`,
	'_':  `\_`,
	'~':  `\textasciitilde{}`,
}

// EscapeLaTeX escapes special LaTeX characters in text
// Special characters: \ { } $ & % # ^ _ ~
func EscapeLaTeX(text string) string {
	return escapeRunes(text, latexEscapes)
}

// markdownEscapes covers the inline characters that change Markdown rendering
var markdownEscapes = map[rune]string{
	'\\': `\\`,
	'*':  `\*`,
	'_':  `\_`,
	'`':  "\\`",
	'[':  `\[`,
	']':  `\]`,
	'<':  `\<`,
	'>':  `\>`,
}

// EscapeMarkdown escapes characters that Markdown would treat as emphasis,
// code, links or HTML.
func EscapeMarkdown(text string) string {
	return escapeRunes(text, markdownEscapes)
}

func escapeRunes(text string, table map[rune]string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for _, r := range text {
		if escaped, ok := table[r]; ok {
			result.WriteString(escaped)
			continue
		}
		result.WriteRune(r)
	}

	return result.String()
}
