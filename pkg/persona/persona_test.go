package persona

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestComposeIsIdempotent(t *testing.T) {
	for _, p := range Personalities {
		for _, mode := range []Mode{ModeChat, ModeVoice} {
			first := Compose("hello", p, "ctx", mode)
			second := Compose("hello", p, "ctx", mode)
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("Compose(%s, %s) not stable (-first +second):\n%s", p, mode, diff)
			}
		}
	}
}

func TestUnknownPersonalityFallsBackToFriendly(t *testing.T) {
	assert.Equal(t, Friendly, ParsePersonality("sarcastic"))
	assert.Equal(t, Friendly, ParsePersonality(""))
	assert.Equal(t, DCMode, ParsePersonality(" DC-Mode "))

	got := Compose("hi", Personality("sarcastic"), "", ModeChat)
	want := Compose("hi", Friendly, "", ModeChat)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestComposeSystemInstructionLayout(t *testing.T) {
	got := Compose("hi", Teacher, "", ModeVoice).SystemInstruction

	want := SystemPrompt + "\n\n" + ModeVoice.lengthPolicy() + "\n\nCurrent personality: " + Teacher.instruction()
	assert.Equal(t, want, got)
}

func TestModeSelectsLengthPolicy(t *testing.T) {
	chat := Compose("hi", Friendly, "", ModeChat).SystemInstruction
	voice := Compose("hi", Friendly, "", ModeVoice).SystemInstruction

	assert.NotEqual(t, chat, voice)
	assert.Contains(t, voice, "five sentences")
	assert.Contains(t, chat, "bullet points")
}

func TestEachPersonalityIsDistinct(t *testing.T) {
	seen := map[string]Personality{}
	for _, p := range Personalities {
		instr := Compose("hi", p, "", ModeChat).SystemInstruction
		if other, dup := seen[instr]; dup {
			t.Fatalf("%s and %s share an instruction", p, other)
		}
		seen[instr] = p
	}
}

func TestComposeContent(t *testing.T) {
	assert.Equal(t, "hello", Compose("hello", Friendly, "", ModeChat).Content)
	assert.Equal(t, "Prefers tea\n\nUser: hello", Compose("hello", Friendly, "Prefers tea", ModeChat).Content)
}

func TestMemoryBlockAndJoin(t *testing.T) {
	block := MemoryBlock([]string{"Born in Delhi", "Prefers Hindi replies"})
	assert.Equal(t, "User's memories for context:\n- Born in Delhi\n- Prefers Hindi replies", block)
	assert.Empty(t, MemoryBlock(nil))

	assert.Equal(t, "", JoinContext("", ""))
	assert.Equal(t, "explicit", JoinContext("", "explicit"))
	assert.Equal(t, block, JoinContext(block, ""))
	assert.True(t, strings.HasPrefix(JoinContext(block, "explicit"), block+"\n\nexplicit"))
}

func TestToolInstruction(t *testing.T) {
	assert.Equal(t, SystemPrompt, ToolInstruction(""))
	assert.Equal(t, SystemPrompt+"\n\nYou are a translator.", ToolInstruction("You are a translator."))
}
