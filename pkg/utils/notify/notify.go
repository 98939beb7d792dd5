package notify

import (
	"fmt"
	"io"
	"os"
	"strings"

	fcolor "github.com/fatih/color"
)

// MessageType selects the symbol and color of a message.
type MessageType int

const (
	// ErrorType is a fatal error (red, ✗).
	ErrorType MessageType = iota
	// WarningType is a non-fatal problem (yellow, ⚠).
	WarningType
	// ActivityType announces a step in progress (►).
	ActivityType
	// GenerateType reports a generated file (✚).
	GenerateType
	// SuccessType reports a completed step (green, ✔).
	SuccessType
	// InfoType is neutral information (blue, ℹ).
	InfoType
	// TitleType starts a workflow stage (bold, emoji).
	TitleType
)

// defaultTitleEmoji is used for titles without an explicit emoji.
const defaultTitleEmoji = "ℹ️"

// Message is a single notification.
type Message struct {
	Type    MessageType
	Content string
	// Args are applied to Content with fmt.Sprintf when non-empty.
	Args []any
	// Emoji is only used by TitleType.
	Emoji string
	// Writer defaults to os.Stdout.
	Writer io.Writer
}

type style struct {
	symbol string
	color  *fcolor.Color
}

//nolint:gochecknoglobals // immutable lookup table
var styles = map[MessageType]style{
	ErrorType:    {symbol: "✗ ", color: fcolor.New(fcolor.FgRed)},
	WarningType:  {symbol: "⚠ ", color: fcolor.New(fcolor.FgYellow)},
	ActivityType: {symbol: "► ", color: fcolor.New(fcolor.Reset)},
	GenerateType: {symbol: "✚ ", color: fcolor.New(fcolor.Reset)},
	SuccessType:  {symbol: "✔ ", color: fcolor.New(fcolor.FgGreen)},
	InfoType:     {symbol: "ℹ ", color: fcolor.New(fcolor.FgBlue)},
	TitleType:    {symbol: "", color: fcolor.New(fcolor.Reset, fcolor.Bold)},
}

// Errorf writes an error message.
func Errorf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ErrorType, Content: format, Args: args, Writer: writer})
}

// Warningf writes a warning message.
func Warningf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: WarningType, Content: format, Args: args, Writer: writer})
}

// Activityf writes an activity message.
func Activityf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ActivityType, Content: format, Args: args, Writer: writer})
}

// Generatef writes a file generation message.
func Generatef(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: GenerateType, Content: format, Args: args, Writer: writer})
}

// Successf writes a success message.
func Successf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: SuccessType, Content: format, Args: args, Writer: writer})
}

// Infof writes an informational message.
func Infof(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: InfoType, Content: format, Args: args, Writer: writer})
}

// Titlef writes a stage title.
func Titlef(writer io.Writer, emoji, format string, args ...any) {
	WriteMessage(Message{Type: TitleType, Content: format, Args: args, Emoji: emoji, Writer: writer})
}

// WriteMessage renders msg to its writer.
func WriteMessage(msg Message) {
	writer := msg.Writer
	if writer == nil {
		writer = os.Stdout
	}

	content := msg.Content
	if len(msg.Args) > 0 {
		content = fmt.Sprintf(msg.Content, msg.Args...)
	}

	msgStyle, ok := styles[msg.Type]
	if !ok {
		msgStyle = style{color: fcolor.New(fcolor.Reset)}
	}

	prefix := msgStyle.symbol

	if msg.Type == TitleType {
		prefix = msg.Emoji
		if prefix == "" {
			prefix = defaultTitleEmoji
		}

		prefix += " "
	}

	content = indentContinuationLines(content, prefix)

	_, err := msgStyle.color.Fprintf(writer, "%s%s\n", prefix, content)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "notify: failed to print message: %v\n", err)
	}
}

// indentContinuationLines aligns the lines after the first one with the text after prefix.
func indentContinuationLines(content, prefix string) string {
	if prefix == "" || !strings.Contains(content, "\n") {
		return content
	}

	indent := strings.Repeat(" ", len([]rune(prefix)))
	lines := strings.Split(content, "\n")

	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = indent + lines[i]
		}
	}

	return strings.Join(lines, "\n")
}
