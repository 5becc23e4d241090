package types

import "time"

type ScoreSubmission struct {
	// Per criterion values, each a number or a string
	Scores     map[string]any `json:"scores"     swaggertype:"object"`
	TotalScore *float64       `json:"totalScore"`
	Comment    string         `json:"comment"`
}

type ScoreResponse struct {
	CreatedAt      time.Time      `json:"createdAt"`
	Scores         map[string]any `json:"scores"         swaggertype:"object"`
	TotalScore     *float64       `json:"totalScore"`
	Comment        string         `json:"comment"`
	ID             int64          `json:"id"`
	RegistrationID int64          `json:"registrationId"`
	JudgeID        int64          `json:"judgeId"`
}
