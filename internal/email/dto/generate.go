package dto

type GenerateInput struct {
	Type         string `json:"type"`
	Tone         string `json:"tone"`
	Prompt       string `json:"prompt"`
	LengthOption string `json:"lengthOption"`
	WordCount    int    `json:"wordCount"`
}

type GenerateOutput struct {
	Content         string `json:"content"`
	WordCount       int    `json:"wordCount"`
	TargetWordCount int    `json:"targetWordCount"`
	EmailID         string `json:"emailId"`
}
