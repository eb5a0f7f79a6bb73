package service

import (
	"context"
	"testing"
	"time"

	"swadesh-ai-be/internal/apperror"
	"swadesh-ai-be/internal/dto"
	"swadesh-ai-be/pkg/persona"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImage(t *testing.T) {
	plain, err := DecodeImage("YWJj", "")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", plain.MimeType)
	assert.Equal(t, []byte("abc"), plain.Data)

	dataURL, err := DecodeImage("data:image/png;base64,YWJj", "")
	require.NoError(t, err)
	assert.Equal(t, "image/png", dataURL.MimeType)

	explicit, err := DecodeImage("data:image/png;base64,YWJj", "image/webp")
	require.NoError(t, err)
	assert.Equal(t, "image/webp", explicit.MimeType)

	_, err = DecodeImage("%%%not base64", "")
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestToolBuildersApplyDefaults(t *testing.T) {
	travel, err := TravelTool(&dto.TravelToolRequest{Destination: "Jaipur"})
	require.NoError(t, err)
	assert.Contains(t, travel.Prompt, "Duration: 3 days | Budget: moderate")

	recipe, err := RecipeTool(&dto.RecipeToolRequest{Query: "dal makhani"})
	require.NoError(t, err)
	assert.Contains(t, recipe.Prompt, "Cuisine: Indian")

	health, err := HealthTool(&dto.HealthToolRequest{})
	require.NoError(t, err)
	assert.Contains(t, health.Prompt, "general wellness")

	lang, err := LanguageTool(&dto.LanguageToolRequest{Text: "hello", SourceLanguage: "en", TargetLanguage: "ta", Transliterate: true})
	require.NoError(t, err)
	assert.Contains(t, lang.Prompt, "English text to Tamil, and also provide a Roman transliteration")

	_, err = CodeTool(&dto.CodeToolRequest{Action: "generate"})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestToolServiceRun(t *testing.T) {
	provider := &fakeProvider{reply: "summary"}
	svc := NewToolService(NewGenerationService(provider, time.Second, nopLog), nopLog)

	inv, err := DocumentTool(&dto.DocumentToolRequest{Content: "long text", Action: "summarize"})
	require.NoError(t, err)
	res, err := svc.Run(context.Background(), inv)
	require.NoError(t, err)
	assert.Equal(t, "summary", res.Result)
	assert.Equal(t, persona.ToolInstruction(inv.Role), provider.lastCall(t).SystemInstruction)

	ocr, err := OCRTool(&dto.OCRToolRequest{ImageBase64: "YWJj"})
	require.NoError(t, err)
	_, err = svc.Run(context.Background(), ocr)
	require.NoError(t, err)
	call := provider.lastCall(t)
	assert.Empty(t, call.SystemInstruction)
	require.Len(t, call.Attachments, 1)
}
