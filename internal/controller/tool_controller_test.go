package controller_test

import (
	"encoding/base64"
	"testing"

	"swadesh-ai-be/internal/dto"
	"swadesh-ai-be/internal/repository/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolEndpoints(t *testing.T) {
	provider := &stubProvider{reply: "done"}
	h := newHarness(t, repotest.NewForbidden(t), provider)
	img := base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8, 0xff})

	cases := []struct {
		path string
		body string
	}{
		{"/api/tools/document", `{"content":"Lorem","action":"summarize"}`},
		{"/api/tools/code", `{"action":"generate","prompt":"fizzbuzz","language":"go"}`},
		{"/api/tools/study", `{"topic":"Photosynthesis","action":"long-answer"}`},
		{"/api/tools/language", `{"text":"hello","sourceLanguage":"en","targetLanguage":"hi"}`},
		{"/api/tools/search", `{"query":"monsoon forecast"}`},
		{"/api/tools/image", `{"imageBase64":"` + img + `","action":"analyze-scene"}`},
		{"/api/tools/ocr", `{"imageBase64":"data:image/png;base64,` + img + `"}`},
	}
	for _, tc := range cases {
		resp := h.do(t, call{method: "POST", path: tc.path, body: tc.body, guest: true})
		require.Equal(t, 200, resp.StatusCode, tc.path)
		assert.Equal(t, "done", decode[dto.ToolResponse](t, resp).Result, tc.path)
	}

	ocr := provider.last()
	require.Len(t, ocr.Attachments, 1)
	assert.Equal(t, "image/png", ocr.Attachments[0].MimeType)
}

func TestToolValidation(t *testing.T) {
	provider := &stubProvider{reply: "unused"}
	h := newHarness(t, repotest.NewStore(), provider)

	resp := h.do(t, call{method: "POST", path: "/api/tools/document", body: `{"content":"x","action":"shred"}`})
	assert.Equal(t, 400, resp.StatusCode)

	resp = h.do(t, call{method: "POST", path: "/api/tools/code", body: `{"action":"generate"}`})
	assert.Equal(t, 400, resp.StatusCode)

	resp = h.do(t, call{method: "POST", path: "/api/tools/image", body: `{"imageBase64":"%%%","action":"analyze-scene"}`})
	assert.Equal(t, 400, resp.StatusCode)

	assert.Zero(t, provider.callCount())
}
