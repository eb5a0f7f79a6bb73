// Package persona builds the instruction/content pair sent to the model.
// Everything here is pure: identical inputs produce identical output.
package persona

import "strings"

type Personality string

const (
	Formal       Personality = "formal"
	Friendly     Personality = "friendly"
	Professional Personality = "professional"
	Teacher      Personality = "teacher"
	DCMode       Personality = "dc-mode"
)

// Personalities lists every preset, in display order.
var Personalities = []Personality{Formal, Friendly, Professional, Teacher, DCMode}

// ParsePersonality never fails; anything unrecognised is Friendly.
func ParsePersonality(s string) Personality {
	switch Personality(strings.ToLower(strings.TrimSpace(s))) {
	case Formal:
		return Formal
	case Professional:
		return Professional
	case Teacher:
		return Teacher
	case DCMode:
		return DCMode
	default:
		return Friendly
	}
}

func (p Personality) instruction() string {
	switch p {
	case Formal:
		return "Respond in a formal and polished manner."
	case Professional:
		return "Respond in a business-focused, efficient manner."
	case Teacher:
		return "Respond like a patient teacher and explain concepts step by step."
	case DCMode:
		return "Respond with the utmost respect and formality, as when addressing a senior government official. Use honorifics and dignified language."
	default:
		return "Respond in a warm and conversational tone."
	}
}

type Mode int

const (
	ModeChat Mode = iota
	ModeVoice
)

func (m Mode) String() string {
	if m == ModeVoice {
		return "voice"
	}
	return "chat"
}

func (m Mode) lengthPolicy() string {
	if m == ModeVoice {
		return "Keep answers short and clear: one to three sentences for simple questions and never more than five sentences. Speak naturally, as in a conversation."
	}
	return "Keep answers focused and well structured: a few sentences for simple questions and up to around eight for complex ones. Use bullet points or numbered lists where they help."
}

// SystemPrompt is the fixed assistant identity shared by chat and tools.
const SystemPrompt = `You are Swadesh AI, an intelligent, respectful and culturally aware Indian AI assistant, built in India for the world.

Identity rules:
- Always introduce yourself as Swadesh AI.
- Never mention the underlying model or its vendor.
- Stay respectful and dignified, especially with government officials.

Personality presets:
- Formal: polished and concise.
- Friendly: warm and conversational.
- Professional: business-focused and efficient.
- Teacher: patient and explanatory.
- DC Mode: government-grade formality for senior officials.`

const memoryHeader = "User's memories for context:"

type Prompt struct {
	SystemInstruction string
	Content           string
}

// Compose merges the persona, the length policy for mode, the personality
// preset and the optional context around message.
func Compose(message string, personality Personality, context string, mode Mode) Prompt {
	var system strings.Builder
	system.WriteString(SystemPrompt)
	system.WriteString("\n\n")
	system.WriteString(mode.lengthPolicy())
	system.WriteString("\n\nCurrent personality: ")
	system.WriteString(ParsePersonality(string(personality)).instruction())

	content := message
	if context != "" {
		content = context + "\n\nUser: " + message
	}

	return Prompt{SystemInstruction: system.String(), Content: content}
}

// ToolInstruction is the system instruction for a tool: the shared persona
// followed by the tool's role.
func ToolInstruction(role string) string {
	if role == "" {
		return SystemPrompt
	}
	return SystemPrompt + "\n\n" + role
}

// MemoryBlock renders memories as the context header and one "- " line each.
// It returns "" for no memories.
func MemoryBlock(contents []string) string {
	if len(contents) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(memoryHeader)
	for _, c := range contents {
		b.WriteString("\n- ")
		b.WriteString(c)
	}
	return b.String()
}

// JoinContext places the memory block before the explicit context with a
// blank line between them, dropping whichever half is empty.
func JoinContext(memories, explicit string) string {
	switch {
	case memories == "":
		return explicit
	case explicit == "":
		return memories
	default:
		return memories + "\n\n" + explicit
	}
}
