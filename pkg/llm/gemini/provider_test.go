package gemini

import (
	"context"
	"testing"

	"swadesh-ai-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestNewProviderRequiresKey(t *testing.T) {
	_, err := NewProvider(context.Background(), "", "")
	assert.Error(t, err)
}

func TestContentsForPlacesImagesBeforeText(t *testing.T) {
	contents := contentsFor(llm.Request{
		Content:     "what is this?",
		Attachments: []llm.Attachment{{MimeType: "image/jpeg", Data: []byte{0xff, 0xd8}}},
	})

	require.Len(t, contents, 1)
	assert.Equal(t, genai.RoleUser, contents[0].Role)
	require.Len(t, contents[0].Parts, 2)
	require.NotNil(t, contents[0].Parts[0].InlineData)
	assert.Equal(t, "image/jpeg", contents[0].Parts[0].InlineData.MIMEType)
	assert.Equal(t, "what is this?", contents[0].Parts[1].Text)
}
