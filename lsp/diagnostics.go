package lsp

import (
	"errors"
	"strings"
	"unicode/utf16"

	"github.com/dhamidi/advent/handheld"
	"github.com/dhamidi/advent/notes"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// LanguageHandheld marks documents holding handheld programs. Files ending
// in .prog are treated the same way; everything else is read as notes.
const LanguageHandheld = "handheld"

// Diagnose parses text and returns at most one diagnostic for the first
// error. A nil error yields an empty, non-nil slice so that clients clear
// stale diagnostics.
func Diagnose(uri, languageID, text string) []protocol.Diagnostic {
	if languageID == LanguageHandheld || strings.HasSuffix(uri, ".prog") {
		if _, err := handheld.ParseProgram(text); err != nil {
			return []protocol.Diagnostic{programDiagnostic(err)}
		}
		return []protocol.Diagnostic{}
	}
	if _, err := notes.ParseBatch(text); err != nil {
		return []protocol.Diagnostic{notesDiagnostic(text, err)}
	}
	return []protocol.Diagnostic{}
}

func notesDiagnostic(text string, err error) protocol.Diagnostic {
	var perr *notes.ParseError
	if !errors.As(err, &perr) {
		return newDiagnostic(0, 0, 0, err.Error())
	}
	line := protocol.UInteger(perr.Pos.Line - 1)
	char := utf16Column(text, perr.Pos.Offset)
	return newDiagnostic(line, char, char+1, perr.Rule+": "+perr.Msg)
}

func programDiagnostic(err error) protocol.Diagnostic {
	var serr *handheld.SyntaxError
	if !errors.As(err, &serr) {
		return newDiagnostic(0, 0, 0, err.Error())
	}
	end := utf16Column(serr.Text, len(serr.Text))
	return newDiagnostic(protocol.UInteger(serr.Line-1), 0, end, serr.Err.Error())
}

// utf16Column converts the byte offset into text to an LSP character
// position: UTF-16 code units since the start of its line.
func utf16Column(text string, offset int) protocol.UInteger {
	if offset > len(text) {
		offset = len(text)
	}
	start := strings.LastIndexByte(text[:offset], '\n') + 1
	return protocol.UInteger(len(utf16.Encode([]rune(text[start:offset]))))
}

func newDiagnostic(line, start, end protocol.UInteger, message string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: start},
			End:   protocol.Position{Line: line, Character: end},
		},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}
