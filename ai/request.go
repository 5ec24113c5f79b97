package ai

import "fmt"

const (
	defaultModel = "claude-sonnet-4-20250514"
	maxTokens    = 1000
)

const visionPromptTemplate = `คุณเป็น AI ผู้ช่วยด้านการแปลผลตรวจสุขภาพ กรุณาวิเคราะห์รูปผลตรวจสุขภาพนี้และตอบคำถาม

คำถาม: %s

กรุณา:
1. ดูรูปผลตรวจที่ส่งมา
2. ค้นหาค่าที่เกี่ยวข้องกับคำถาม
3. อธิบายว่าค่านั้นปกติหรือไม่ (ระบุช่วงปกติด้วย)
4. ให้คำแนะนำเบื้องต้นถ้าจำเป็น

ตอบเป็นภาษาไทยที่เข้าใจง่าย ไม่เกิน 1000 ตัวอักษร`

const textPromptTemplate = `คุณเป็น AI ผู้ช่วยด้านสุขภาพ

คำถาม: %s

ตอบเป็นภาษาไทยที่เข้าใจง่าย ไม่เกิน 500 ตัวอักษร`

type MessagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

type Message struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

type ContentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *ImageSource `json:"source,omitempty"`
}

type ImageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type MessagesResponse struct {
	Model   string            `json:"model"`
	Content []ResponseContent `json:"content"`
	Error   *APIError         `json:"error,omitempty"`
}

type ResponseContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type APIError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NewTextRequest builds a question-only request with the health
// assistant persona and a short answer directive.
func NewTextRequest(question string) *MessagesRequest {
	return &MessagesRequest{
		Model:     defaultModel,
		MaxTokens: maxTokens,
		Messages: []Message{{
			Role: "user",
			Content: []ContentBlock{
				{Type: "text", Text: fmt.Sprintf(textPromptTemplate, question)},
			},
		}},
	}
}

// NewVisionRequest builds an image+question request carrying the stored
// report image and the four-step analysis instruction.
func NewVisionRequest(question, imageBase64 string) *MessagesRequest {
	return &MessagesRequest{
		Model:     defaultModel,
		MaxTokens: maxTokens,
		Messages: []Message{{
			Role: "user",
			Content: []ContentBlock{
				{
					Type: "image",
					Source: &ImageSource{
						Type:      "base64",
						MediaType: "image/jpeg",
						Data:      imageBase64,
					},
				},
				{Type: "text", Text: fmt.Sprintf(visionPromptTemplate, question)},
			},
		}},
	}
}
