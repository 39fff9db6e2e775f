package javagen

import (
	"strings"
	"unicode"
)

// NamingStyle selects how mixed-case ErrorId names are converted to Java constant names.
type NamingStyle int

//go:generate go tool enumer -type=NamingStyle -trimprefix=Naming -transform=lower -text naming.go

const (
	// NamingRuns inserts a "_" before each run of upper-case letters and digits: runs are never split.
	// E.g.: "TriggerIncomplete2FA" -> "TRIGGER_INCOMPLETE_2FA".
	NamingRuns NamingStyle = iota

	// NamingLegacy reproduces the constant names already published in p4java's IServerMessageCode, where
	// every second character of a run of upper-case letters and digits starts a new word.
	// E.g.: "TriggerIncomplete2FA" -> "TRIGGER_INCOMPLETE_2F_A", "JobName101" -> "JOB_NAME_10_1".
	NamingLegacy
)

const (
	exPrefix      = "Ex"
	exConstant    = "EX_"
	diff2Prefix   = "Diff2"
	diff2Constant = "DIFF2"
	wordSeparator = '_'
)

// ConstantName converts an ErrorId name to the Java constant name.
//
// Names starting with "Ex" keep the rest as is, prefixed with "EX_" ("ExCHANGE" -> "EX_CHANGE"). Names starting
// with "Diff2" are converted to "DIFF2" plus the conversion of the rest ("Diff2DataLeft" -> "DIFF2_DATA_LEFT").
// Anything else is converted to upper-case, with words separated by "_", according to style.
func ConstantName(name string, style NamingStyle) string {
	if strings.HasPrefix(name, exPrefix) {
		return exConstant + name[len(exPrefix):]
	}
	var sb strings.Builder
	sb.Grow(len(name) + len(name)/2)

	// previousUpper is true at the start so that no separator is inserted before the first character.
	previousUpper := true
	if strings.HasPrefix(name, diff2Prefix) {
		sb.WriteString(diff2Constant)
		name = name[len(diff2Prefix):]
		previousUpper = false
	}
	for _, r := range name {
		isUpper := unicode.IsUpper(r) || unicode.IsDigit(r)
		switch style {
		case NamingLegacy:
			if isUpper {
				if !previousUpper {
					sb.WriteRune(wordSeparator)
					previousUpper = true
				} else {
					previousUpper = false
				}
			} else {
				previousUpper = false
			}
		default:
			if isUpper && !previousUpper {
				sb.WriteRune(wordSeparator)
			}
			previousUpper = isUpper
		}
		sb.WriteRune(unicode.ToUpper(r))
	}
	return sb.String()
}
