package domain

type Badge struct {
	ImageURL string `json:"badge_image_url"`
	Message  string `json:"message,omitempty"`
	Fallback bool   `json:"fallback"`
}
