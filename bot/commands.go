package bot

import "strings"

// Command is the closed set of keyword commands the bot recognizes.
// Anything else is treated as a question about the stored image.
type Command int

const (
	CommandNone Command = iota
	CommandStart
	CommandClear
)

// keyword -> command, lowercase. Adding a locale variant is a table
// change, not new branching.
var commandKeywords = map[string]Command{
	"เริ่มต้น": CommandStart,
	"start":    CommandStart,
	"สวัสดี":   CommandStart,
	"hello":    CommandStart,
	"ลบข้อมูล": CommandClear,
	"clear":    CommandClear,
	"เคลียร์":  CommandClear,
}

// ParseCommand matches the whole trimmed text against the keyword table,
// case-insensitively. Substrings do not match.
func ParseCommand(text string) Command {
	return commandKeywords[strings.ToLower(text)]
}
