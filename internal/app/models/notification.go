package models

// NotificationIntent describes a message that must be sent, decoupled from
// delivery. Intents are published to the mailer queue; delivery is best
// effort and never affects the state transition that produced the intent.
type NotificationIntent struct {
	Kind           string                 `json:"kind"`
	RecipientEmail string                 `json:"recipientEmail"`
	TemplateData   map[string]interface{} `json:"templateData"`
}
