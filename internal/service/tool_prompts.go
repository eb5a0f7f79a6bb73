package service

import (
	"encoding/base64"
	"fmt"
	"strings"

	"swadesh-ai-be/internal/apperror"
	"swadesh-ai-be/internal/dto"
	"swadesh-ai-be/pkg/llm"
)

const defaultImageMimeType = "image/jpeg"

var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"ta": "Tamil",
	"te": "Telugu",
	"bn": "Bengali",
}

func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// DecodeImage turns a base64 payload, with or without a data: URL prefix,
// into an attachment.
func DecodeImage(payload, mimeType string) (llm.Attachment, error) {
	if i := strings.Index(payload, ","); strings.HasPrefix(payload, "data:") && i > 0 {
		header := payload[len("data:"):i]
		if mimeType == "" {
			mimeType = strings.TrimSuffix(header, ";base64")
		}
		payload = payload[i+1:]
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil || len(data) == 0 {
		return llm.Attachment{}, apperror.Validation("imageBase64 must be valid base64 image data")
	}
	return llm.Attachment{MimeType: orDefault(mimeType, defaultImageMimeType), Data: data}, nil
}

func DocumentTool(req *dto.DocumentToolRequest) (ToolInvocation, error) {
	var prompt string
	switch req.Action {
	case "explain":
		prompt = "Explain the following document in detail, breaking down complex concepts:\n\n"
	case "translate":
		prompt = fmt.Sprintf("Translate the following text to %s:\n\n", orDefault(req.TargetLanguage, "Hindi"))
	case "extract-notes":
		prompt = "Extract the key notes and important points from the following document as a structured list:\n\n"
	case "highlight":
		prompt = "Identify the most important sentences and concepts in the following document:\n\n"
	default:
		prompt = "Summarize the following document concisely, highlighting the key points:\n\n"
	}
	return ToolInvocation{
		Name:   "document",
		Role:   "You are a document analysis expert. Give clear, accurate and helpful analysis.",
		Prompt: prompt + req.Content,
	}, nil
}

func CodeTool(req *dto.CodeToolRequest) (ToolInvocation, error) {
	language := orDefault(req.Language, "JavaScript")
	var prompt string
	switch req.Action {
	case "generate":
		if strings.TrimSpace(req.Prompt) == "" {
			return ToolInvocation{}, apperror.Validation("prompt is required to generate code")
		}
		prompt = fmt.Sprintf("Generate %s code for the following requirement:\n\n%s", language, req.Prompt)
	case "debug":
		prompt = fmt.Sprintf("Debug the following %s code and explain the issues found:\n\n%s", language, req.Code)
	case "optimize":
		prompt = fmt.Sprintf("Optimize the following %s code for performance and readability:\n\n%s", language, req.Code)
	default:
		prompt = fmt.Sprintf("Explain the following %s code in detail, part by part:\n\n%s", language, req.Code)
	}
	return ToolInvocation{
		Name:   "code",
		Role:   "You are an expert programmer. Write clean, well-commented, production-ready code and be thorough when debugging or explaining.",
		Prompt: prompt,
	}, nil
}

func StudyTool(req *dto.StudyToolRequest) (ToolInvocation, error) {
	scope := ""
	if req.Grade != "" && req.Subject != "" {
		scope = fmt.Sprintf("For Class %s %s: ", req.Grade, req.Subject)
	}

	var prompt string
	switch req.Action {
	case "mcq-generate":
		prompt = scope + "Generate 5 multiple choice questions with answers and explanations on: " + req.Topic
	case "long-answer":
		prompt = scope + "Write a comprehensive long answer with introduction, main points and conclusion for: " + req.Topic
	case "math-solve":
		prompt = "Solve the following math problem step by step, showing all work: " + req.Topic
	case "explain-diagram":
		prompt = "Give a detailed textual explanation of the following diagram or concept, describing every component and how they relate: " + req.Topic
	default:
		prompt = scope + "Provide a detailed NCERT-style solution with a step-by-step explanation for: " + req.Topic
	}
	return ToolInvocation{
		Name:   "study",
		Role:   "You are an expert Indian education tutor familiar with the NCERT curriculum. Give accurate, student-friendly explanations.",
		Prompt: prompt,
	}, nil
}

func LanguageTool(req *dto.LanguageToolRequest) (ToolInvocation, error) {
	prompt := fmt.Sprintf("Translate the following %s text to %s", languageName(req.SourceLanguage), languageName(req.TargetLanguage))
	if req.Transliterate {
		prompt += ", and also provide a Roman transliteration"
	}
	return ToolInvocation{
		Name:   "language",
		Role:   "You are a professional translator specialising in Indian languages. Give accurate, natural translations.",
		Prompt: prompt + ":\n\n" + req.Text,
	}, nil
}

func SearchTool(req *dto.SearchToolRequest) (ToolInvocation, error) {
	var lead string
	switch req.Type {
	case "news":
		lead = "Focus on recent news and current events"
	case "academic":
		lead = "Give an academic, research-focused answer with citations"
	default:
		lead = "Give a comprehensive answer"
	}
	return ToolInvocation{
		Name:   "search",
		Role:   "You are a search and research assistant. Give accurate, well-organised information.",
		Prompt: lead + " for the following query: " + req.Query,
	}, nil
}

func ImageTool(req *dto.ImageToolRequest) (ToolInvocation, error) {
	image, err := DecodeImage(req.ImageBase64, req.MimeType)
	if err != nil {
		return ToolInvocation{}, err
	}

	var prompt string
	switch req.Action {
	case "ocr":
		prompt = "Extract all text from this image exactly as it appears."
	case "detect-objects":
		prompt = "Identify and list every object visible in this image with its approximate location."
	case "extract-text":
		prompt = "Extract and organise any text, numbers or symbols in this image in a structured format."
	default:
		prompt = "Describe this image in detail, including the scene, setting, colours and notable elements."
	}
	return ToolInvocation{
		Name:        "image",
		Prompt:      prompt,
		Attachments: []llm.Attachment{image},
		NoPersona:   true,
	}, nil
}

func CreativeTool(req *dto.CreativeToolRequest) (ToolInvocation, error) {
	var prompt string
	switch req.Type {
	case "script":
		prompt = "Write a detailed video or drama script with scene descriptions, dialogue and directions for: " + req.Prompt
	case "poem":
		prompt = fmt.Sprintf("Write a %s poem with a fitting rhyme scheme about: %s", languageName(orDefault(req.Language, "en")), req.Prompt)
	case "video-idea":
		prompt = "Suggest 5 creative video ideas, each with a title, concept and short outline, for: " + req.Prompt
	default:
		prompt = "Write a creative short story with memorable characters and a satisfying ending based on: " + req.Prompt
	}
	return ToolInvocation{
		Name:   "creative",
		Role:   "You are a creative writer and content creator. Produce engaging, original content.",
		Prompt: prompt,
	}, nil
}

func OCRTool(req *dto.OCRToolRequest) (ToolInvocation, error) {
	image, err := DecodeImage(req.ImageBase64, req.MimeType)
	if err != nil {
		return ToolInvocation{}, err
	}
	return ToolInvocation{
		Name:        "ocr",
		Prompt:      "Extract ALL text from this image exactly as it appears, preserving line breaks and structure. Transcribe handwriting accurately and name each language if there are several. Return only the extracted text.",
		Attachments: []llm.Attachment{image},
		NoPersona:   true,
	}, nil
}

func ImageGenTool(req *dto.ImageGenToolRequest) (ToolInvocation, error) {
	var style string
	switch req.Style {
	case "artistic":
		style = "artistic, painterly, impressionist with vibrant colours"
	case "cartoon":
		style = "cartoon, colourful, playful, animated"
	case "indian":
		style = "traditional Indian folk art inspired by Madhubani and Warli, vibrant colours and cultural motifs"
	case "3d":
		style = "3D render, CGI, modern and high-tech"
	case "sketch":
		style = "pencil sketch, hand-drawn, detailed line art"
	default:
		style = "photorealistic, highly detailed, professional photography"
	}
	return ToolInvocation{
		Name: "image-gen",
		Prompt: fmt.Sprintf("Describe this image vividly for an artist: %q in a %s style. Use 3-4 sentences rich in colour, composition, lighting and atmosphere. "+
			"Then on a new line write \"PROMPT:\" followed by a concise text-to-image prompt for it.", req.Prompt, style),
		NoPersona: true,
	}, nil
}

func GrammarTool(req *dto.GrammarToolRequest) (ToolInvocation, error) {
	var prompt string
	switch req.Mode {
	case "improve":
		prompt = "Rewrite the following text to be clearer and more professional while keeping its meaning:\n\n"
	case "formal":
		prompt = "Convert the following text to formal English:\n\n"
	case "casual":
		prompt = "Rewrite the following text in a friendly, casual tone:\n\n"
	case "hindi":
		prompt = "Check the grammar of the following Hindi text and suggest corrections:\n\n"
	default:
		prompt = "Check the following text for grammar, spelling, punctuation and style errors. List each error with its correction and a short explanation:\n\n"
	}
	return ToolInvocation{
		Name:   "grammar",
		Role:   "You are an expert language editor and writing assistant.",
		Prompt: prompt + req.Text,
	}, nil
}

func RecipeTool(req *dto.RecipeToolRequest) (ToolInvocation, error) {
	return ToolInvocation{
		Name: "recipe",
		Role: "You are an expert Indian chef and nutritionist who knows traditional and fusion cuisine.",
		Prompt: fmt.Sprintf("Write a detailed recipe for %q. Dietary preference: %s. Cuisine: %s.\n"+
			"Include the name, a description, prep and cook time, servings, ingredients with quantities, step-by-step instructions, tips and approximate nutrition.",
			req.Query, orDefault(req.Dietary, "any"), orDefault(req.Cuisine, "Indian")),
	}, nil
}

func TravelTool(req *dto.TravelToolRequest) (ToolInvocation, error) {
	return ToolInvocation{
		Name: "travel",
		Role: "You are an expert travel guide with deep knowledge of destinations across India and the world.",
		Prompt: fmt.Sprintf("Create a detailed travel itinerary for %s.\nDuration: %s | Budget: %s | Interests: %s\n"+
			"Include a day-by-day plan, attractions, local food, where to stay, transport, estimated costs and etiquette tips.",
			req.Destination, orDefault(req.Duration, "3 days"), orDefault(req.Budget, "moderate"), orDefault(req.Interests, "culture, food, sightseeing")),
	}, nil
}

func ResumeTool(req *dto.ResumeToolRequest) (ToolInvocation, error) {
	var b strings.Builder
	b.WriteString("Create a professional, ATS-friendly resume from this information:\n")
	fields := []struct{ label, value string }{
		{"Name", req.Name},
		{"Email", req.Email},
		{"Phone", req.Phone},
		{"Role", req.Role},
		{"Experience", req.Experience},
		{"Skills", req.Skills},
		{"Education", req.Education},
		{"Achievements", req.Achievements},
	}
	for _, f := range fields {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
	}
	b.WriteString("Include a professional summary, experience bullets with measurable impact, skills and education.")

	return ToolInvocation{
		Name:   "resume",
		Role:   "You are an experienced HR consultant and resume writer for the Indian and global job market.",
		Prompt: b.String(),
	}, nil
}

func HealthTool(req *dto.HealthToolRequest) (ToolInvocation, error) {
	symptom := orDefault(req.Symptom, "general wellness")
	age := orDefault(req.Age, "adult")

	var prompt string
	switch req.Type {
	case "yoga":
		prompt = fmt.Sprintf("Recommend yoga poses and breathing exercises for: %s. Give the pose name, how to do it, duration and benefits. Age: %s.", symptom, age)
	case "ayurveda":
		prompt = fmt.Sprintf("Give Ayurvedic home remedies, herbs and dietary advice for: %s. Age: %s.", symptom, age)
	case "diet":
		prompt = fmt.Sprintf("Create a healthy Indian diet plan for: %s. Age: %s. Cover breakfast, lunch, dinner and snacks.", symptom, age)
	default:
		prompt = fmt.Sprintf("Symptoms: %s. Age: %s. List possible causes, home remedies and when to see a doctor.", symptom, age)
	}
	return ToolInvocation{
		Name:   "health",
		Role:   "You are a health and wellness advisor versed in modern medicine, Ayurveda and yoga. Always state that this is general information, not medical advice, and recommend consulting a qualified doctor.",
		Prompt: prompt,
	}, nil
}
