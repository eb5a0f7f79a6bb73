package dto

type ToolResponse struct {
	Result string `json:"result"`
}

type DocumentToolRequest struct {
	Content        string `json:"content" validate:"required"`
	Action         string `json:"action" validate:"required,oneof=summarize explain translate extract-notes highlight"`
	TargetLanguage string `json:"targetLanguage"`
}

type CodeToolRequest struct {
	Code     string `json:"code"`
	Action   string `json:"action" validate:"required,oneof=generate debug optimize explain"`
	Language string `json:"language"`
	Prompt   string `json:"prompt"`
}

type StudyToolRequest struct {
	Topic   string `json:"topic" validate:"required"`
	Action  string `json:"action" validate:"required,oneof=ncert-solution mcq-generate long-answer math-solve explain-diagram"`
	Grade   string `json:"grade"`
	Subject string `json:"subject"`
}

type LanguageToolRequest struct {
	Text           string `json:"text" validate:"required"`
	SourceLanguage string `json:"sourceLanguage" validate:"required"`
	TargetLanguage string `json:"targetLanguage" validate:"required"`
	Transliterate  bool   `json:"transliterate"`
}

type SearchToolRequest struct {
	Query string `json:"query" validate:"required"`
	Type  string `json:"type" validate:"omitempty,oneof=general news academic"`
}

type ImageToolRequest struct {
	ImageBase64 string `json:"imageBase64" validate:"required"`
	Action      string `json:"action" validate:"required,oneof=ocr detect-objects analyze-scene extract-text"`
	MimeType    string `json:"mimeType"`
}

type CreativeToolRequest struct {
	Type     string `json:"type" validate:"required,oneof=script story poem video-idea"`
	Prompt   string `json:"prompt" validate:"required"`
	Language string `json:"language" validate:"omitempty,oneof=en hi"`
}

type OCRToolRequest struct {
	ImageBase64 string `json:"imageBase64" validate:"required"`
	MimeType    string `json:"mimeType"`
}

type ImageGenToolRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	Style  string `json:"style"`
}

type GrammarToolRequest struct {
	Text string `json:"text" validate:"required"`
	Mode string `json:"mode"`
}

type RecipeToolRequest struct {
	Query   string `json:"query" validate:"required"`
	Dietary string `json:"dietary"`
	Cuisine string `json:"cuisine"`
}

type TravelToolRequest struct {
	Destination string `json:"destination" validate:"required"`
	Duration    string `json:"duration"`
	Budget      string `json:"budget"`
	Interests   string `json:"interests"`
}

type ResumeToolRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Role         string `json:"role" validate:"required"`
	Experience   string `json:"experience"`
	Skills       string `json:"skills"`
	Education    string `json:"education"`
	Achievements string `json:"achievements"`
}

type HealthToolRequest struct {
	Symptom string `json:"symptom"`
	Age     string `json:"age"`
	Type    string `json:"type" validate:"omitempty,oneof=symptoms yoga ayurveda diet"`
}
